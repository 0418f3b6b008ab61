package deleteaccount

import (
	"context"
	"errors"
	"swapcloset/internal/core/domain/account"
	e "swapcloset/internal/core/domain/errors"
	"swapcloset/internal/core/domain/logging"
	"swapcloset/internal/core/services"
	"swapcloset/internal/core/services/auth"
)

type Input struct {
	Caller    account.Account
	AccountID account.ID
}

func (i Input) WithAuthenticatedAccount(a account.Account) auth.Input {
	i.Caller = a
	return i
}

type Result struct{}

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
			"Attempt to delete an administrative account.",
			logging.Entry("callerID", input.Caller.ID),
			logging.Entry("accountID", target.ID),
		)
		return result, account.ErrAdminAccountProtected
	}
	if err := s.accountRepository.Delete(ctx, input.AccountID); err != nil {
		if errors.Is(err, account.ErrAccountDoesNotExist) {
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("accountID", input.AccountID))
		return result, err
	}
	s.log.Info(
		ctx,
		"Account deleted by administrator.",
		logging.Entry("callerID", input.Caller.ID),
		logging.Entry("accountID", input.AccountID),
	)
	return result, nil
}
