package product

import (
	"context"
	"errors"
	"time"

	"swapcloset/internal/core/domain/account"
	"swapcloset/internal/core/domain/catalog"
	"swapcloset/internal/core/domain/product"
	"swapcloset/internal/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
)

var productColumns = []string{"id", "seller_id", "category_id", "title", "price_cents", "created_at"}

type PgxProductRepository struct {
	exec    db.Executor
	builder sq.StatementBuilderType
}

func NewPgxRepository(exec db.Executor) *PgxProductRepository {
	if exec == nil {
		panic("Argument exec must not be nil.")
	}
	return &PgxProductRepository{exec: exec, builder: db.NewStatementBuilder()}
}

func (r *PgxProductRepository) GetByID(ctx context.Context, id product.ID) (p product.Product, err error) {
	query, args, err := r.builder.
		Select(productColumns...).
		From("product").
		Where(sq.Eq{"id": int64(id)}).
		ToSql()
	if err != nil {
		return p, err
	}
	p, err = scanProduct(r.exec.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return p, product.ErrProductDoesNotExist
	}
	return p, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (p product.Product, err error) {
	var (
		id         int64
		sellerID   int64
		categoryID int64
		title      string
		priceCents int64
		createdAt  time.Time
	)
	err = row.Scan(&id, &sellerID, &categoryID, &title, &priceCents, &createdAt)
	if err != nil {
		return p, err
	}
	return product.Product{
		ID:         product.ID(id),
		SellerID:   account.ID(sellerID),
		CategoryID: catalog.CategoryID(categoryID),
		Title:      title,
		PriceCents: priceCents,
		CreatedAt:  createdAt,
	}, nil
}
