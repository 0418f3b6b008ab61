package account

import (
	"fmt"
	c "swapcloset/internal/core/domain/common"
	e "swapcloset/internal/core/domain/errors"
	"time"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type RememberToken string

func (t RememberToken) String() string {
	return "***"
}

type SessionToken string

// PayoutDetails holds the payment destination attached to a seller account.
// It is hidden on every listing surface and elevated to visible only on
// admin single-account views.
type PayoutDetails struct {
	GcashNumber       c.Optional[string]
	BankName          c.Optional[string]
	BankAccountNumber c.Optional[string]
	BankAccountName   c.Optional[string]
}

type Account struct {
	ID              ID
	Name            string
	Email           c.Email
	PasswordHash    PasswordHash
	RememberToken   c.Optional[RememberToken]
	IsAdmin         bool
	EmailVerifiedAt c.Optional[time.Time]
	Payout          PayoutDetails
	CreatedAt       time.Time
}

func (a *Account) Validate() error {
	if a.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for account %d", a.ID))
	}
	if a.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for account %d", a.ID))
	}
	return nil
}

func (a *Account) IsEmailVerified() bool {
	return a.EmailVerifiedAt.IsPresent
}
