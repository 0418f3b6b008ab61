package getaccount

import (
	"context"
	"swapcloset/internal/core/domain/account"
	c "swapcloset/internal/core/domain/common"
	"swapcloset/internal/core/domain/logging"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	ADMIN_ID  = account.ID(1)
	MEMBER_ID = account.ID(2)
)

func setupAccountRepo() *account.FakeAccountRepository {
	repo := account.NewFakeAccountRepository()
	repo.Accounts = []account.Account{
		{ID: ADMIN_ID, Email: c.Email("admin@test.example"), IsAdmin: true},
		{
			ID:    MEMBER_ID,
			Name:  "Member",
			Email: c.Email("member@test.example"),
			Payout: account.PayoutDetails{
				BankName:          c.NewOptional("Test Bank", true),
				BankAccountNumber: c.NewOptional("0012345678", true),
				BankAccountName:   c.NewOptional("Member", true),
			},
		},
	}
	return repo
}

func TestAccountReturnedWithPayoutDetails(t *testing.T) {
	service := New(logging.NewFakeLogger(), setupAccountRepo())

	result, err := service.Run(context.Background(), Input{
		Caller:    account.Account{ID: ADMIN_ID, IsAdmin: true},
		AccountID: MEMBER_ID,
	})

	require.NoError(t, err)
	require.Equal(t, MEMBER_ID, result.Account.ID)
	require.Equal(t, c.NewOptional("Test Bank", true), result.Account.Payout.BankName)
}

func TestAdministrativeAccountIsProtected(t *testing.T) {
	service := New(logging.NewFakeLogger(), setupAccountRepo())

	_, err := service.Run(context.Background(), Input{
		Caller:    account.Account{ID: ADMIN_ID, IsAdmin: true},
		AccountID: ADMIN_ID,
	})

	require.ErrorIs(t, err, account.ErrAdminAccountProtected)
}

func TestNonAdminCallerDenied(t *testing.T) {
	service := New(logging.NewFakeLogger(), setupAccountRepo())

	_, err := service.Run(context.Background(), Input{
		Caller:    account.Account{ID: MEMBER_ID},
		AccountID: MEMBER_ID,
	})

	require.ErrorIs(t, err, account.ErrPermissionDenied)
}

func TestAccountDoesNotExist(t *testing.T) {
	service := New(logging.NewFakeLogger(), setupAccountRepo())

	_, err := service.Run(context.Background(), Input{
		Caller:    account.Account{ID: ADMIN_ID, IsAdmin: true},
		AccountID: account.ID(999),
	})

	require.ErrorIs(t, err, account.ErrAccountDoesNotExist)
}
