package removefavorite

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
	Caller    account.Account
	ProductID product.ID
}

func (i Input) WithAuthenticatedAccount(a account.Account) auth.Input {
	i.Caller = a
	return i
}

type Result struct{}

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

// Run removes the favorite if it exists. Removing a product that was never
// favorited is not an error.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	err = s.favoriteRepository.Remove(ctx, input.Caller.ID, input.ProductID)
	if err != nil {
		logging.Error(
			ctx,
			s.log,
			err,
			logging.Entry("accountID", input.Caller.ID),
			logging.Entry("productID", input.ProductID),
		)
		return result, err
	}
	return result, nil
}
