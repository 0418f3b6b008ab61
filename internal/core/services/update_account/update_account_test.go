package updateaccount

import (
	"context"
	"swapcloset/internal/core/domain/account"
	c "swapcloset/internal/core/domain/common"
	"swapcloset/internal/core/domain/logging"
	"swapcloset/internal/core/services"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	ADMIN_ID  = account.ID(1)
	MEMBER_ID = account.ID(2)
	OTHER_ID  = account.ID(3)
)

type suite struct {
	log         *logging.FakeLogger
	accountRepo *account.FakeAccountRepository
}

func setupSuite() *suite {
	accountRepo := account.NewFakeAccountRepository()
	accountRepo.Accounts = []account.Account{
		{ID: ADMIN_ID, Email: c.Email("admin@test.example"), IsAdmin: true},
		{ID: MEMBER_ID, Name: "Member", Email: c.Email("member@test.example")},
		{ID: OTHER_ID, Name: "Other", Email: c.Email("other@test.example")},
	}
	return &suite{log: logging.NewFakeLogger(), accountRepo: accountRepo}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.accountRepo)
}

func admin() account.Account {
	return account.Account{ID: ADMIN_ID, IsAdmin: true}
}

func TestAccountUpdated(t *testing.T) {
	suite := setupSuite()
	service := suite.createService()

	payout := account.PayoutDetails{
		GcashNumber: c.NewOptional("09171234567", true),
	}
	result, err := service.Run(context.Background(), Input{
		Caller:    admin(),
		AccountID: MEMBER_ID,
		Name:      "Renamed",
		Email:     c.Email("renamed@test.example"),
		Payout:    payout,
	})

	require.NoError(t, err)
	require.Equal(t, "Renamed", result.Account.Name)
	require.Equal(t, c.Email("renamed@test.example"), result.Account.Email)
	require.Equal(t, payout, result.Account.Payout)

	stored, err := suite.accountRepo.GetByID(context.Background(), MEMBER_ID)
	require.NoError(t, err)
	require.Equal(t, result.Account, stored)
}

func TestKeepingOwnEmailIsAllowed(t *testing.T) {
	suite := setupSuite()
	service := suite.createService()

	_, err := service.Run(context.Background(), Input{
		Caller:    admin(),
		AccountID: MEMBER_ID,
		Name:      "Member",
		Email:     c.Email("member@test.example"),
	})

	require.NoError(t, err)
}

func TestEmailTakenByAnotherAccount(t *testing.T) {
	suite := setupSuite()
	service := suite.createService()

	_, err := service.Run(context.Background(), Input{
		Caller:    admin(),
		AccountID: MEMBER_ID,
		Name:      "Member",
		Email:     c.Email("other@test.example"),
	})

	require.ErrorIs(t, err, account.ErrEmailAlreadyExists)
}

func TestAdministrativeAccountIsProtected(t *testing.T) {
	suite := setupSuite()
	service := suite.createService()

	_, err := service.Run(context.Background(), Input{
		Caller:    admin(),
		AccountID: ADMIN_ID,
		Name:      "Renamed",
		Email:     c.Email("renamed@test.example"),
	})

	require.ErrorIs(t, err, account.ErrAdminAccountProtected)
}

func TestNonAdminCallerDenied(t *testing.T) {
	suite := setupSuite()
	service := suite.createService()

	_, err := service.Run(context.Background(), Input{
		Caller:    account.Account{ID: MEMBER_ID},
		AccountID: OTHER_ID,
		Name:      "Renamed",
		Email:     c.Email("renamed@test.example"),
	})

	require.ErrorIs(t, err, account.ErrPermissionDenied)
}

func TestAccountDoesNotExist(t *testing.T) {
	suite := setupSuite()
	service := suite.createService()

	_, err := service.Run(context.Background(), Input{
		Caller:    admin(),
		AccountID: account.ID(999),
		Name:      "Renamed",
		Email:     c.Email("renamed@test.example"),
	})

	require.ErrorIs(t, err, account.ErrAccountDoesNotExist)
}
