package response

import (
	"swapcloset/internal/core/domain/account"
	"time"
)

// AccountSummary is the listing projection. Payout details are deliberately
// absent: lists never expose payment destinations.
type AccountSummary struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (a *AccountSummary) FromDomainAccount(da account.Account) {
	a.ID = int64(da.ID)
	a.Name = da.Name
	a.Email = string(da.Email)
	if da.EmailVerifiedAt.IsPresent {
		verifiedAt := da.EmailVerifiedAt.Value
		a.EmailVerifiedAt = &verifiedAt
	}
	a.CreatedAt = da.CreatedAt
}

// AccountDetail is the single-account admin projection, payout included.
type AccountDetail struct {
	AccountSummary
	Payout PayoutDetails `json:"payout"`
}

type PayoutDetails struct {
	GcashNumber       *string `json:"gcash_number,omitempty"`
	BankName          *string `json:"bank_name,omitempty"`
	BankAccountNumber *string `json:"bank_account_number,omitempty"`
	BankAccountName   *string `json:"bank_account_name,omitempty"`
}

func (a *AccountDetail) FromDomainAccount(da account.Account) {
	a.AccountSummary.FromDomainAccount(da)
	if da.Payout.GcashNumber.IsPresent {
		gcash := da.Payout.GcashNumber.Value
		a.Payout.GcashNumber = &gcash
	}
	if da.Payout.BankName.IsPresent {
		bank := da.Payout.BankName.Value
		a.Payout.BankName = &bank
	}
	if da.Payout.BankAccountNumber.IsPresent {
		number := da.Payout.BankAccountNumber.Value
		a.Payout.BankAccountNumber = &number
	}
	if da.Payout.BankAccountName.IsPresent {
		name := da.Payout.BankAccountName.Value
		a.Payout.BankAccountName = &name
	}
}
