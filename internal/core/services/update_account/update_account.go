package updateaccount

import (
	"context"
	"errors"
	"swapcloset/internal/core/domain/account"
	c "swapcloset/internal/core/domain/common"
	e "swapcloset/internal/core/domain/errors"
	"swapcloset/internal/core/domain/logging"
	"swapcloset/internal/core/services"
	"swapcloset/internal/core/services/auth"
)

type Input struct {
	Caller    account.Account
	AccountID account.ID
	Name      string
	Email     c.Email
	Payout    account.PayoutDetails
}

func (i Input) WithAuthenticatedAccount(a account.Account) auth.Input {
	i.Caller = a
	return i
}

type Result struct {
	Account account.Account
}

type service struct {
	log               logging.Logger
	accountRepository account.AccountRepository
}

func New(
	log logging.Logger,
	accountRepository account.AccountRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accountRepository == nil {
		panic(e.NewNilArgumentError("accountRepository"))
	}
	return &service{log: log, accountRepository: accountRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if !input.Caller.IsAdmin {
		return result, account.ErrPermissionDenied
	}
	target, err := s.accountRepository.GetByID(ctx, input.AccountID)
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
			"Attempt to update an administrative account.",
			logging.Entry("callerID", input.Caller.ID),
			logging.Entry("accountID", target.ID),
		)
		return result, account.ErrAdminAccountProtected
	}

	// Keeping the account's own email is not a collision.
	exists, err := s.accountRepository.ExistsByEmailExcludingID(ctx, input.Email, input.AccountID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("accountID", input.AccountID))
		return result, err
	}
	if exists {
		return result, account.ErrEmailAlreadyExists
	}

	updated, err := s.accountRepository.Update(ctx, account.UpdateAccountInput{
		ID:     input.AccountID,
		Name:   input.Name,
		Email:  input.Email,
		Payout: input.Payout,
	})
	if errors.Is(err, account.ErrEmailAlreadyExists) {
		// Lost a race with a concurrent update; same outcome as the
		// uniqueness pre-check.
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("accountID", input.AccountID))
		return result, err
	}

	s.log.Info(
		ctx,
		"Account updated by administrator.",
		logging.Entry("callerID", input.Caller.ID),
		logging.Entry("accountID", updated.ID),
	)
	return Result{Account: updated}, nil
}
