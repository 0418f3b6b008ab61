package rating

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"swapcloset/internal/core/domain/account"
	c "swapcloset/internal/core/domain/common"
	"swapcloset/internal/core/domain/rating"
	"swapcloset/internal/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const TRANSACTION_CONSTRAINT_NAME = "rating_transaction_id_key"

type PgxRatingRepository struct {
	exec    db.Executor
	builder sq.StatementBuilderType
}

func NewPgxRepository(exec db.Executor) *PgxRatingRepository {
	if exec == nil {
		panic("Argument exec must not be nil.")
	}
	return &PgxRatingRepository{exec: exec, builder: db.NewStatementBuilder()}
}

func (r *PgxRatingRepository) Create(
	ctx context.Context,
	input rating.CreateRatingInput,
) (rt rating.Rating, err error) {
	query, args, err := r.builder.
		Insert("rating").
		Columns("transaction_id", "buyer_id", "seller_id", "value", "comment", "created_at").
		Values(
			int64(input.TransactionID),
			int64(input.BuyerID),
			int64(input.SellerID),
			input.Value,
			sql.NullString{String: input.Comment.Value, Valid: input.Comment.IsPresent},
			input.CreatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return rt, err
	}

	var id int64
	err = r.exec.QueryRow(ctx, query, args...).Scan(&id)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == TRANSACTION_CONSTRAINT_NAME {
			return rt, rating.ErrRatingAlreadyExists
		}
	}
	if err != nil {
		return rt, err
	}
	return rating.Rating{
		ID:            rating.ID(id),
		TransactionID: input.TransactionID,
		BuyerID:       input.BuyerID,
		SellerID:      input.SellerID,
		Value:         input.Value,
		Comment:       input.Comment,
		CreatedAt:     input.CreatedAt,
	}, nil
}

func (r *PgxRatingRepository) ListBySeller(
	ctx context.Context,
	sellerID account.ID,
) ([]rating.SellerRating, error) {
	query, args, err := r.builder.
		Select(
			"rating.id",
			"rating.transaction_id",
			"rating.buyer_id",
			"rating.seller_id",
			"rating.value",
			"rating.comment",
			"rating.created_at",
			"account.name",
		).
		From("rating").
		Join("account ON account.id = rating.buyer_id").
		Where(sq.Eq{"rating.seller_id": int64(sellerID)}).
		OrderBy("rating.created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.exec.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := make([]rating.SellerRating, 0)
	for rows.Next() {
		var (
			id            int64
			transactionID int64
			buyerID       int64
			rowSellerID   int64
			value         int
			comment       sql.NullString
			createdAt     time.Time
			buyerName     string
		)
		err = rows.Scan(&id, &transactionID, &buyerID, &rowSellerID, &value, &comment, &createdAt, &buyerName)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, rating.SellerRating{
			Rating: rating.Rating{
				ID:            rating.ID(id),
				TransactionID: rating.TransactionID(transactionID),
				BuyerID:       account.ID(buyerID),
				SellerID:      account.ID(rowSellerID),
				Value:         value,
				Comment:       c.NewOptional(comment.String, comment.Valid),
				CreatedAt:     createdAt,
			},
			BuyerName: buyerName,
		})
	}
	return ratings, rows.Err()
}

func (r *PgxRatingRepository) GetSellerAverage(ctx context.Context, sellerID account.ID) (float64, error) {
	query, args, err := r.builder.
		Select("AVG(value)").
		From("rating").
		Where(sq.Eq{"seller_id": int64(sellerID)}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var average pgtype.Numeric
	if err := r.exec.QueryRow(ctx, query, args...).Scan(&average); err != nil {
		return 0, err
	}
	if average.Status != pgtype.Present {
		return 0, nil
	}
	var value float64
	if err := average.AssignTo(&value); err != nil {
		return 0, err
	}
	return value, nil
}
