package resetpassword

import (
	"context"
	"errors"
	"swapcloset/internal/core/domain/account"
	c "swapcloset/internal/core/domain/common"
	e "swapcloset/internal/core/domain/errors"
	"swapcloset/internal/core/domain/logging"
	uow "swapcloset/internal/core/domain/unit_of_work"
	"swapcloset/internal/core/services"
	"time"
)

type Input struct {
	Email       c.Email
	Token       account.ResetTokenSecret
	NewPassword account.RawPassword
}

func (i Input) GetRateLimitKey() string {
	return "reset-password::" + string(i.Email)
}

type Result struct{}

type service struct {
	log                    logging.Logger
	unitOfWork             uow.UnitOfWork
	passwordHasher         account.PasswordHasher
	rememberTokenGenerator account.RememberTokenGenerator
	tokenValidDuration     time.Duration
	now                    func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher account.PasswordHasher,
	rememberTokenGenerator account.RememberTokenGenerator,
	tokenValidDuration time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if rememberTokenGenerator == nil {
		panic(e.NewNilArgumentError("rememberTokenGenerator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                    log,
		unitOfWork:             unitOfWork,
		passwordHasher:         passwordHasher,
		rememberTokenGenerator: rememberTokenGenerator,
		tokenValidDuration:     tokenValidDuration,
		now:                    now,
	}
}

// Run validates and consumes the reset grant and sets the new credential
// inside one transaction. Two concurrent submissions of the same token race
// on the consume step; the loser sees the token as already used and gets the
// same generic error as any other invalid token.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	defer u.Rollback(ctx)

	token, err := u.ResetTokens().GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, account.ErrResetTokenDoesNotExist) {
		s.log.Info(ctx, "No reset token for email.", logging.Entry("email", input.Email))
		return result, account.ErrInvalidResetToken
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}

	now := s.now()
	switch {
	case token.IsConsumed():
		s.log.Info(ctx, "Reset token already consumed.", logging.Entry("email", input.Email))
		return result, account.ErrInvalidResetToken
	case token.IsExpired(now, s.tokenValidDuration):
		s.log.Info(
			ctx,
			"Reset token expired.",
			logging.Entry("email", input.Email),
			logging.Entry("issuedAt", token.CreatedAt),
		)
		return result, account.ErrInvalidResetToken
	case !token.TokenHash.Matches(input.Token):
		s.log.Info(ctx, "Reset token hash mismatch.", logging.Entry("email", input.Email))
		return result, account.ErrInvalidResetToken
	}

	consumed, err := u.ResetTokens().Consume(ctx, input.Email, now)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}
	if !consumed {
		s.log.Info(ctx, "Lost reset token consume race.", logging.Entry("email", input.Email))
		return result, account.ErrInvalidResetToken
	}

	a, err := u.Accounts().GetByEmail(ctx, input.Email)
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		s.log.Warning(ctx, "Reset token exists but account does not.", logging.Entry("email", input.Email))
		return result, account.ErrInvalidResetToken
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("accountID", a.ID))
		return result, err
	}
	err = u.Accounts().SetPassword(ctx, account.SetPasswordInput{
		ID:            a.ID,
		PasswordHash:  newPasswordHash,
		RememberToken: c.NewOptional(s.rememberTokenGenerator.GenerateRememberToken(), true),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("accountID", a.ID))
		return result, err
	}

	if err := u.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("accountID", a.ID))
		return result, err
	}

	s.log.Info(ctx, "Password reset via token.", logging.Entry("accountID", a.ID))
	return result, nil
}
