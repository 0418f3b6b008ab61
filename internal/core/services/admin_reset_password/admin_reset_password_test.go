package adminresetpassword

import (
	"context"
	"swapcloset/internal/core/domain/account"
	c "swapcloset/internal/core/domain/common"
	"swapcloset/internal/core/domain/logging"
	uow "swapcloset/internal/core/domain/unit_of_work"
	"swapcloset/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	ADMIN_ID       = account.ID(1)
	MEMBER_ID      = account.ID(2)
	MEMBER_EMAIL   = c.Email("member@test.example")
	NEW_PASSWORD   = account.RawPassword("new-password")
	REMEMBER_TOKEN = "rotated-remember-token"
)

type testSuite struct {
	suite.Suite
	logger     *logging.FakeLogger
	unitOfWork *uow.FakeUnitOfWork
	hasher     *account.FakePasswordHasher
	service    services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.unitOfWork = uow.NewFakeUnitOfWork()
	suite.hasher = account.NewFakePasswordHasher()

	oldHash, err := suite.hasher.HashPassword(account.RawPassword("old-password"))
	if err != nil {
		panic(err)
	}
	suite.unitOfWork.Context.AccountRepository.Accounts = []account.Account{
		{ID: ADMIN_ID, Email: c.Email("admin@test.example"), IsAdmin: true},
		{ID: MEMBER_ID, Email: MEMBER_EMAIL, PasswordHash: oldHash},
	}
	suite.service = New(
		suite.logger,
		suite.unitOfWork,
		suite.hasher,
		account.NewFakeRememberTokenGenerator(REMEMBER_TOKEN),
	)
}

func TestAdminResetPasswordService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestPasswordResetAndRememberTokenRotated() {
	_, err := s.service.Run(context.Background(), Input{
		Caller:      account.Account{ID: ADMIN_ID, IsAdmin: true},
		AccountID:   MEMBER_ID,
		NewPassword: NEW_PASSWORD,
	})

	s.Nil(err)
	s.True(s.unitOfWork.Context.WasCommitCalled)

	a, err := s.unitOfWork.Context.AccountRepository.GetByID(context.Background(), MEMBER_ID)
	s.Nil(err)
	s.True(s.hasher.ValidatePassword(NEW_PASSWORD, a.PasswordHash))
	s.Equal(
		c.NewOptional(account.RememberToken(REMEMBER_TOKEN), true),
		a.RememberToken,
	)
}

func (s *testSuite) TestOutstandingResetTokenRevoked() {
	err := s.unitOfWork.Context.ResetTokenRepository.Create(
		context.Background(),
		account.CreateResetTokenInput{
			Email:     MEMBER_EMAIL,
			TokenHash: account.HashResetTokenSecret(account.ResetTokenSecret("pending")),
			CreatedAt: time.Now().UTC(),
		},
	)
	s.Nil(err)

	_, err = s.service.Run(context.Background(), Input{
		Caller:      account.Account{ID: ADMIN_ID, IsAdmin: true},
		AccountID:   MEMBER_ID,
		NewPassword: NEW_PASSWORD,
	})
	s.Nil(err)

	_, err = s.unitOfWork.Context.ResetTokenRepository.GetByEmail(context.Background(), MEMBER_EMAIL)
	s.ErrorIs(err, account.ErrResetTokenDoesNotExist)
}

func (s *testSuite) TestAdministrativeAccountIsProtected() {
	_, err := s.service.Run(context.Background(), Input{
		Caller:      account.Account{ID: ADMIN_ID, IsAdmin: true},
		AccountID:   ADMIN_ID,
		NewPassword: NEW_PASSWORD,
	})

	s.ErrorIs(err, account.ErrAdminAccountProtected)
	s.False(s.unitOfWork.Context.WasCommitCalled)
}

func (s *testSuite) TestNonAdminCallerDenied() {
	_, err := s.service.Run(context.Background(), Input{
		Caller:      account.Account{ID: MEMBER_ID},
		AccountID:   MEMBER_ID,
		NewPassword: NEW_PASSWORD,
	})

	s.ErrorIs(err, account.ErrPermissionDenied)
}

func (s *testSuite) TestAccountDoesNotExist() {
	_, err := s.service.Run(context.Background(), Input{
		Caller:      account.Account{ID: ADMIN_ID, IsAdmin: true},
		AccountID:   account.ID(999),
		NewPassword: NEW_PASSWORD,
	})

	s.ErrorIs(err, account.ErrAccountDoesNotExist)
	s.False(s.unitOfWork.Context.WasCommitCalled)
}
