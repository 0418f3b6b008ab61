package uow

import (
	"context"
	"swapcloset/internal/core/domain/account"
)

// Context is one transactional boundary: everything done through its
// repositories commits or rolls back as a unit. The reset-password flow
// relies on this to keep the token consume and the credential write atomic.
type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Accounts() account.AccountRepository
	Sessions() account.SessionRepository
	ResetTokens() account.ResetTokenRepository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
