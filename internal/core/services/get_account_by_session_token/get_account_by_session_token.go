package getaccountbysessiontoken

import (
	"context"
	"errors"
	"swapcloset/internal/core/domain/account"
	e "swapcloset/internal/core/domain/errors"
	"swapcloset/internal/core/domain/logging"
	"swapcloset/internal/core/services"
)

type Input struct {
	Token account.SessionToken
}

type Result struct {
	Account account.Account
}

type service struct {
	log               logging.Logger
	sessionRepository account.SessionRepository
}

func New(
	log logging.Logger,
	sessionRepository account.SessionRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	return &service{log: log, sessionRepository: sessionRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	a, err := s.sessionRepository.GetAccountByToken(ctx, input.Token)
	if errors.Is(err, account.ErrSessionDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	return Result{Account: a}, nil
}
