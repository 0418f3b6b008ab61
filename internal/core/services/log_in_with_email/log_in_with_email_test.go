package loginwithemail

import (
	"context"
	"swapcloset/internal/core/domain/account"
	c "swapcloset/internal/core/domain/common"
	"swapcloset/internal/core/domain/logging"
	"swapcloset/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	ACCOUNT_ID    = account.ID(9)
	ACCOUNT_EMAIL = c.Email("member@test.example")
	PASSWORD      = account.RawPassword("correct-password")
	SESSION_TOKEN = "test-session-token"
)

type suite struct {
	log         *logging.FakeLogger
	accountRepo *account.FakeAccountRepository
	sessionRepo *account.FakeSessionRepository
	hasher      *account.FakePasswordHasher
}

func setupSuite() *suite {
	hasher := account.NewFakePasswordHasher()
	hash, err := hasher.HashPassword(PASSWORD)
	if err != nil {
		panic(err)
	}
	accountRepo := account.NewFakeAccountRepository()
	accountRepo.Accounts = []account.Account{
		{ID: ACCOUNT_ID, Email: ACCOUNT_EMAIL, PasswordHash: hash},
	}
	return &suite{
		log:         logging.NewFakeLogger(),
		accountRepo: accountRepo,
		sessionRepo: account.NewFakeSessionRepository(accountRepo),
		hasher:      hasher,
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(
		s.log,
		s.accountRepo,
		s.sessionRepo,
		s.hasher,
		account.NewFakeSessionTokenGenerator(SESSION_TOKEN),
		func() time.Time { return time.Now().UTC() },
	)
}

func TestSessionCreatedForValidCredentials(t *testing.T) {
	suite := setupSuite()
	service := suite.createService()

	result, err := service.Run(context.Background(), Input{
		Email:    ACCOUNT_EMAIL,
		Password: PASSWORD,
	})

	require.NoError(t, err)
	require.Equal(t, account.SessionToken(SESSION_TOKEN), result.Token)

	a, err := suite.sessionRepo.GetAccountByToken(context.Background(), result.Token)
	require.NoError(t, err)
	require.Equal(t, ACCOUNT_ID, a.ID)
}

func TestInvalidPassword(t *testing.T) {
	suite := setupSuite()
	service := suite.createService()

	_, err := service.Run(context.Background(), Input{
		Email:    ACCOUNT_EMAIL,
		Password: account.RawPassword("wrong-password"),
	})

	require.ErrorIs(t, err, account.ErrInvalidCredentials)
	require.Empty(t, suite.sessionRepo.AccountIDByToken)
}

func TestUnknownEmail(t *testing.T) {
	suite := setupSuite()
	service := suite.createService()

	_, err := service.Run(context.Background(), Input{
		Email:    c.Email("nobody@test.example"),
		Password: PASSWORD,
	})

	require.ErrorIs(t, err, account.ErrInvalidCredentials)
}
