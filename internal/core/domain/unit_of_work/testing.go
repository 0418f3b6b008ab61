package uow

import (
	"context"
	"swapcloset/internal/core/domain/account"
)

type FakeUnitOfWorkContext struct {
	AccountRepository    *account.FakeAccountRepository
	SessionRepository    *account.FakeSessionRepository
	ResetTokenRepository *account.FakeResetTokenRepository
	WasRollbackCalled    bool
	WasCommitCalled      bool
}

func NewFakeUnitOfWorkContext(
	accountRepository *account.FakeAccountRepository,
	sessionRepository *account.FakeSessionRepository,
	resetTokenRepository *account.FakeResetTokenRepository,
) *FakeUnitOfWorkContext {
	return &FakeUnitOfWorkContext{
		AccountRepository:    accountRepository,
		SessionRepository:    sessionRepository,
		ResetTokenRepository: resetTokenRepository,
	}
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	c.WasCommitCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Accounts() account.AccountRepository {
	return c.AccountRepository
}

func (c *FakeUnitOfWorkContext) Sessions() account.SessionRepository {
	return c.SessionRepository
}

func (c *FakeUnitOfWorkContext) ResetTokens() account.ResetTokenRepository {
	return c.ResetTokenRepository
}

type FakeUnitOfWork struct {
	Context *FakeUnitOfWorkContext
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	accountRepository := account.NewFakeAccountRepository()
	return &FakeUnitOfWork{
		Context: NewFakeUnitOfWorkContext(
			accountRepository,
			account.NewFakeSessionRepository(accountRepository),
			account.NewFakeResetTokenRepository(),
		),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	return u.Context, nil
}
