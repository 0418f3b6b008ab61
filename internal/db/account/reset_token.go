package account

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"swapcloset/internal/core/domain/account"
	c "swapcloset/internal/core/domain/common"
	"swapcloset/internal/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
)

// PgxResetTokenRepository keeps at most one reset token row per email.
// Issuing a new token overwrites the previous row, so older links stop
// working the moment a newer one is requested.
type PgxResetTokenRepository struct {
	exec    db.Executor
	builder sq.StatementBuilderType
}

func NewPgxResetTokenRepository(exec db.Executor) *PgxResetTokenRepository {
	if exec == nil {
		panic("Argument exec must not be nil.")
	}
	return &PgxResetTokenRepository{exec: exec, builder: db.NewStatementBuilder()}
}

func (r *PgxResetTokenRepository) Create(ctx context.Context, input account.CreateResetTokenInput) error {
	query, args, err := r.builder.
		Insert("password_reset_token").
		Columns("email", "token_hash", "created_at").
		Values(string(input.Email), string(input.TokenHash), input.CreatedAt).
		Suffix(
			"ON CONFLICT (email) DO UPDATE SET " +
				"token_hash = EXCLUDED.token_hash, " +
				"created_at = EXCLUDED.created_at, " +
				"consumed_at = NULL",
		).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.exec.Exec(ctx, query, args...)
	return err
}

func (r *PgxResetTokenRepository) GetByEmail(
	ctx context.Context,
	email c.Email,
) (t account.ResetToken, err error) {
	query, args, err := r.builder.
		Select("email", "token_hash", "created_at", "consumed_at").
		From("password_reset_token").
		Where(sq.Eq{"email": string(email)}).
		ToSql()
	if err != nil {
		return t, err
	}

	var (
		tokenEmail string
		tokenHash  string
		createdAt  time.Time
		consumedAt sql.NullTime
	)
	err = r.exec.QueryRow(ctx, query, args...).Scan(&tokenEmail, &tokenHash, &createdAt, &consumedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return t, account.ErrResetTokenDoesNotExist
	}
	if err != nil {
		return t, err
	}
	return account.ResetToken{
		Email:      c.Email(tokenEmail),
		TokenHash:  account.ResetTokenHash(tokenHash),
		CreatedAt:  createdAt,
		ConsumedAt: c.NewOptional(consumedAt.Time, consumedAt.Valid),
	}, nil
}

// Consume marks the token used. The WHERE clause is the compare-and-set:
// of two concurrent consumers exactly one sees an affected row.
func (r *PgxResetTokenRepository) Consume(ctx context.Context, email c.Email, at time.Time) (bool, error) {
	query, args, err := r.builder.
		Update("password_reset_token").
		Set("consumed_at", at).
		Where(sq.Eq{"email": string(email)}).
		Where("consumed_at IS NULL").
		ToSql()
	if err != nil {
		return false, err
	}
	tag, err := r.exec.Exec(ctx, query, args...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PgxResetTokenRepository) DeleteByEmail(ctx context.Context, email c.Email) error {
	query, args, err := r.builder.
		Delete("password_reset_token").
		Where(sq.Eq{"email": string(email)}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.exec.Exec(ctx, query, args...)
	return err
}
