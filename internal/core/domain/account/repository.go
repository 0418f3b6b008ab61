package account

import (
	"context"
	c "swapcloset/internal/core/domain/common"
	"time"
)

type CreateAccountInput struct {
	Name            string
	Email           c.Email
	PasswordHash    PasswordHash
	IsAdmin         bool
	EmailVerifiedAt c.Optional[time.Time]
	Payout          PayoutDetails
	CreatedAt       time.Time
}

type UpdateAccountInput struct {
	ID     ID
	Name   string
	Email  c.Email
	Payout PayoutDetails
}

type SetPasswordInput struct {
	ID            ID
	PasswordHash  PasswordHash
	RememberToken c.Optional[RememberToken]
}

type ListMembersOptions struct {
	Limit  uint
	Offset uint
}

type AccountRepository interface {
	Create(ctx context.Context, input CreateAccountInput) (Account, error)
	GetByID(ctx context.Context, id ID) (Account, error)
	GetByEmail(ctx context.Context, email c.Email) (Account, error)
	// ListMembers returns non-administrative accounts only, newest first.
	ListMembers(ctx context.Context, options ListMembersOptions) ([]Account, error)
	Update(ctx context.Context, input UpdateAccountInput) (Account, error)
	Delete(ctx context.Context, id ID) error
	SetPassword(ctx context.Context, input SetPasswordInput) error
	ExistsByEmailExcludingID(ctx context.Context, email c.Email, excludeID ID) (bool, error)
}

type CreateSessionInput struct {
	AccountID ID
	Token     SessionToken
	CreatedAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, input CreateSessionInput) error
	GetAccountByToken(ctx context.Context, token SessionToken) (Account, error)
	Delete(ctx context.Context, token SessionToken) (accountID ID, err error)
}

type SessionTokenGenerator interface {
	GenerateSessionToken() SessionToken
}
