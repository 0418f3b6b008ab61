package uow

import (
	"context"
	"swapcloset/internal/core/domain/account"
	uow "swapcloset/internal/core/domain/unit_of_work"
	dbaccount "swapcloset/internal/db/account"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type pgxUnitOfWorkContext struct {
	tx pgx.Tx
}

func newPgxUnitOfWorkContext(tx pgx.Tx) *pgxUnitOfWorkContext {
	return &pgxUnitOfWorkContext{
		tx: tx,
	}
}

func (c *pgxUnitOfWorkContext) Commit(ctx context.Context) error {
	return c.tx.Commit(ctx)
}

func (c *pgxUnitOfWorkContext) Rollback(ctx context.Context) error {
	return c.tx.Rollback(ctx)
}

func (c *pgxUnitOfWorkContext) Accounts() account.AccountRepository {
	return dbaccount.NewPgxRepository(c.tx)
}

func (c *pgxUnitOfWorkContext) Sessions() account.SessionRepository {
	return dbaccount.NewPgxSessionRepository(c.tx)
}

func (c *pgxUnitOfWorkContext) ResetTokens() account.ResetTokenRepository {
	return dbaccount.NewPgxResetTokenRepository(c.tx)
}

type PgxUnitOfWork struct {
	db *pgxpool.Pool
}

func NewPgxUnitOfWork(db *pgxpool.Pool) *PgxUnitOfWork {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxUnitOfWork{db: db}
}

func (u *PgxUnitOfWork) Begin(ctx context.Context) (uow.Context, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return newPgxUnitOfWorkContext(tx), nil
}
