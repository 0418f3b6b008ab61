package auth

import (
	"context"
	"swapcloset/internal/core/domain/account"
	e "swapcloset/internal/core/domain/errors"
	"swapcloset/internal/core/services"
)

type contextAuthToken string

const CONTEXT_AUTH_TOKEN_KEY = contextAuthToken("authToken")

// Input is implemented by service inputs that carry the authenticated
// caller. The caller is always threaded explicitly; services never reach
// into ambient state for it.
type Input interface {
	WithAuthenticatedAccount(a account.Account) Input
}

type service[T Input, S any] struct {
	sessionRepository account.SessionRepository
	inner             services.Service[T, S]
}

func WithAuthentication[T Input, S any](
	sessionRepository account.SessionRepository,
	inner services.Service[T, S],
) services.Service[T, S] {
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &service[T, S]{
		sessionRepository: sessionRepository,
		inner:             inner,
	}
}

func (s *service[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	authToken, ok := ctx.Value(CONTEXT_AUTH_TOKEN_KEY).(account.SessionToken)
	if !ok {
		return result, account.ErrSessionDoesNotExist
	}
	a, err := s.sessionRepository.GetAccountByToken(ctx, authToken)
	if err != nil {
		return result, err
	}
	return s.inner.Run(ctx, input.WithAuthenticatedAccount(a).(T))
}
