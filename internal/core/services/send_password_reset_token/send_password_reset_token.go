package sendpasswordresettoken

import (
	"context"
	"errors"
	"swapcloset/internal/core/domain/account"
	c "swapcloset/internal/core/domain/common"
	e "swapcloset/internal/core/domain/errors"
	"swapcloset/internal/core/domain/logging"
	"swapcloset/internal/core/services"
	"time"
)

type Input struct {
	Email c.Email
}

func (i Input) GetRateLimitKey() string {
	return "send-password-reset-token::" + string(i.Email)
}

// Result carries the issued secret so test mode can surface it; production
// handlers never serialize it.
type Result struct {
	Token account.ResetTokenSecret
}

type service struct {
	log                  logging.Logger
	accountRepository    account.AccountRepository
	resetTokenRepository account.ResetTokenRepository
	secretGenerator      account.ResetTokenSecretGenerator
	tokenSender          account.ResetTokenSender
	now                  func() time.Time
}

func New(
	log logging.Logger,
	accountRepository account.AccountRepository,
	resetTokenRepository account.ResetTokenRepository,
	secretGenerator account.ResetTokenSecretGenerator,
	tokenSender account.ResetTokenSender,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accountRepository == nil {
		panic(e.NewNilArgumentError("accountRepository"))
	}
	if resetTokenRepository == nil {
		panic(e.NewNilArgumentError("resetTokenRepository"))
	}
	if secretGenerator == nil {
		panic(e.NewNilArgumentError("secretGenerator"))
	}
	if tokenSender == nil {
		panic(e.NewNilArgumentError("tokenSender"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                  log,
		accountRepository:    accountRepository,
		resetTokenRepository: resetTokenRepository,
		secretGenerator:      secretGenerator,
		tokenSender:          tokenSender,
		now:                  now,
	}
}

// Run acknowledges every request identically whether or not the email maps
// to an account, so the endpoint cannot be used to probe for registered
// addresses.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	a, err := s.accountRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		s.log.Info(
			ctx,
			"Password reset requested for unknown email, acknowledging anyway.",
			logging.Entry("email", input.Email),
		)
		return result, nil
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}

	secret := s.secretGenerator.GenerateResetTokenSecret()
	err = s.resetTokenRepository.Create(ctx, account.CreateResetTokenInput{
		Email:     a.Email,
		TokenHash: account.HashResetTokenSecret(secret),
		CreatedAt: s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("accountID", a.ID))
		return result, err
	}

	if err := s.tokenSender.SendResetToken(ctx, a.Email, secret); err != nil {
		// Delivery is best effort; the outward acknowledgment must not change.
		s.log.Error(
			ctx,
			"Could not send password reset token.",
			logging.Entry("accountID", a.ID),
			logging.Entry("err", err),
		)
	}

	s.log.Info(
		ctx,
		"Password reset token issued.",
		logging.Entry("accountID", a.ID),
	)
	return Result{Token: secret}, nil
}
