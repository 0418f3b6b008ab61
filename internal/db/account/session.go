package account

import (
	"context"
	"errors"

	"swapcloset/internal/core/domain/account"
	"swapcloset/internal/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
)

type PgxSessionRepository struct {
	exec    db.Executor
	builder sq.StatementBuilderType
}

func NewPgxSessionRepository(exec db.Executor) *PgxSessionRepository {
	if exec == nil {
		panic("Argument exec must not be nil.")
	}
	return &PgxSessionRepository{exec: exec, builder: db.NewStatementBuilder()}
}

func (r *PgxSessionRepository) Create(ctx context.Context, input account.CreateSessionInput) error {
	query, args, err := r.builder.
		Insert("session").
		Columns("token", "account_id", "created_at").
		Values(string(input.Token), int64(input.AccountID), input.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.exec.Exec(ctx, query, args...)
	return err
}

func (r *PgxSessionRepository) GetAccountByToken(
	ctx context.Context,
	token account.SessionToken,
) (a account.Account, err error) {
	columns := make([]string, 0, len(accountColumns))
	for _, column := range accountColumns {
		columns = append(columns, "account."+column)
	}
	query, args, err := r.builder.
		Select(columns...).
		From("session").
		Join("account ON account.id = session.account_id").
		Where(sq.Eq{"session.token": string(token)}).
		ToSql()
	if err != nil {
		return a, err
	}
	a, err = scanAccount(r.exec.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return a, account.ErrSessionDoesNotExist
	}
	if err != nil {
		return a, err
	}
	return a, a.Validate()
}

func (r *PgxSessionRepository) Delete(
	ctx context.Context,
	token account.SessionToken,
) (accountID account.ID, err error) {
	query, args, err := r.builder.
		Delete("session").
		Where(sq.Eq{"token": string(token)}).
		Suffix("RETURNING account_id").
		ToSql()
	if err != nil {
		return accountID, err
	}
	var id int64
	err = r.exec.QueryRow(ctx, query, args...).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return accountID, account.ErrSessionDoesNotExist
	}
	if err != nil {
		return accountID, err
	}
	return account.ID(id), nil
}
