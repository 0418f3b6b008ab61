package adminresetpassword

import (
	"context"
	"errors"
	"swapcloset/internal/core/domain/account"
	c "swapcloset/internal/core/domain/common"
	e "swapcloset/internal/core/domain/errors"
	"swapcloset/internal/core/domain/logging"
	uow "swapcloset/internal/core/domain/unit_of_work"
	"swapcloset/internal/core/services"
	"swapcloset/internal/core/services/auth"
)

type Input struct {
	Caller      account.Account
	AccountID   account.ID
	NewPassword account.RawPassword
}

func (i Input) WithAuthenticatedAccount(a account.Account) auth.Input {
	i.Caller = a
	return i
}

type Result struct{}

type service struct {
	log                    logging.Logger
	unitOfWork             uow.UnitOfWork
	passwordHasher         account.PasswordHasher
	rememberTokenGenerator account.RememberTokenGenerator
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher account.PasswordHasher,
	rememberTokenGenerator account.RememberTokenGenerator,
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
	return &service{
		log:                    log,
		unitOfWork:             unitOfWork,
		passwordHasher:         passwordHasher,
		rememberTokenGenerator: rememberTokenGenerator,
	}
}

// Run replaces the target's credential and revokes any outstanding reset
// token for it in one transaction, so a self-service reset link issued
// before the administrative change cannot undo it.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if !input.Caller.IsAdmin {
		return result, account.ErrPermissionDenied
	}

	u, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	defer u.Rollback(ctx)

	target, err := u.Accounts().GetByID(ctx, input.AccountID)
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("accountID", input.AccountID))
		return result, err
	}
	if target.IsAdmin {
		s.log.Warning(
			ctx,
			"Attempt to reset password of an administrative account.",
			logging.Entry("callerID", input.Caller.ID),
			logging.Entry("accountID", target.ID),
		)
		return result, account.ErrAdminAccountProtected
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("accountID", target.ID))
		return result, err
	}
	err = u.Accounts().SetPassword(ctx, account.SetPasswordInput{
		ID:            target.ID,
		PasswordHash:  newPasswordHash,
		RememberToken: c.NewOptional(s.rememberTokenGenerator.GenerateRememberToken(), true),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("accountID", target.ID))
		return result, err
	}
	if err := u.ResetTokens().DeleteByEmail(ctx, target.Email); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("accountID", target.ID))
		return result, err
	}

	if err := u.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("accountID", target.ID))
		return result, err
	}

	s.log.Info(
		ctx,
		"Password reset by administrator.",
		logging.Entry("callerID", input.Caller.ID),
		logging.Entry("accountID", target.ID),
	)
	return result, nil
}
