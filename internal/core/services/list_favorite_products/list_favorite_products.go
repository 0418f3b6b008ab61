package listfavoriteproducts

import (
	"context"
	"swapcloset/internal/core/domain/account"
	e "swapcloset/internal/core/domain/errors"
	"swapcloset/internal/core/domain/logging"
	"swapcloset/internal/core/domain/product"
	"swapcloset/internal/core/services"
	"swapcloset/internal/core/services/auth"
)

type Input struct {
	Caller account.Account
}

func (i Input) WithAuthenticatedAccount(a account.Account) auth.Input {
	i.Caller = a
	return i
}

type Result struct {
	Products []product.Product
}

type service struct {
	log                logging.Logger
	favoriteRepository product.FavoriteRepository
}

func New(
	log logging.Logger,
	favoriteRepository product.FavoriteRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if favoriteRepository == nil {
		panic(e.NewNilArgumentError("favoriteRepository"))
	}
	return &service{log: log, favoriteRepository: favoriteRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	products, err := s.favoriteRepository.ListByAccount(ctx, input.Caller.ID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("accountID", input.Caller.ID))
		return result, err
	}
	return Result{Products: products}, nil
}
