package product

import (
	"context"

	"swapcloset/internal/core/domain/account"
	"swapcloset/internal/core/domain/product"
	"swapcloset/internal/db"

	sq "github.com/Masterminds/squirrel"
)

type PgxFavoriteRepository struct {
	exec    db.Executor
	builder sq.StatementBuilderType
}

func NewPgxFavoriteRepository(exec db.Executor) *PgxFavoriteRepository {
	if exec == nil {
		panic("Argument exec must not be nil.")
	}
	return &PgxFavoriteRepository{exec: exec, builder: db.NewStatementBuilder()}
}

func (r *PgxFavoriteRepository) Add(ctx context.Context, input product.AddFavoriteInput) error {
	query, args, err := r.builder.
		Insert("favorite").
		Columns("account_id", "product_id", "created_at").
		Values(int64(input.AccountID), int64(input.ProductID), input.CreatedAt).
		Suffix("ON CONFLICT (account_id, product_id) DO NOTHING").
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.exec.Exec(ctx, query, args...)
	return err
}

func (r *PgxFavoriteRepository) Remove(
	ctx context.Context,
	accountID account.ID,
	productID product.ID,
) error {
	query, args, err := r.builder.
		Delete("favorite").
		Where(sq.Eq{"account_id": int64(accountID), "product_id": int64(productID)}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.exec.Exec(ctx, query, args...)
	return err
}

func (r *PgxFavoriteRepository) ListByAccount(
	ctx context.Context,
	accountID account.ID,
) ([]product.Product, error) {
	columns := make([]string, 0, len(productColumns))
	for _, column := range productColumns {
		columns = append(columns, "product."+column)
	}
	query, args, err := r.builder.
		Select(columns...).
		From("favorite").
		Join("product ON product.id = favorite.product_id").
		Where(sq.Eq{"favorite.account_id": int64(accountID)}).
		OrderBy("favorite.created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.exec.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]product.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
