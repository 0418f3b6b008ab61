package listaccounts

import (
	"context"
	"swapcloset/internal/core/domain/account"
	e "swapcloset/internal/core/domain/errors"
	"swapcloset/internal/core/domain/logging"
	"swapcloset/internal/core/services"
	"swapcloset/internal/core/services/auth"
)

const DefaultLimit = 10

type Input struct {
	Caller account.Account
	Limit  uint
	Offset uint
}

func (i Input) WithAuthenticatedAccount(a account.Account) auth.Input {
	i.Caller = a
	return i
}

type Result struct {
	Accounts []account.Account
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
	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	accounts, err := s.accountRepository.ListMembers(ctx, account.ListMembersOptions{
		Limit:  limit,
		Offset: input.Offset,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("callerID", input.Caller.ID))
		return result, err
	}
	return Result{Accounts: accounts}, nil
}
