package addfavorite

import (
	"context"
	"errors"
	"swapcloset/internal/core/domain/account"
	e "swapcloset/internal/core/domain/errors"
	"swapcloset/internal/core/domain/logging"
	"swapcloset/internal/core/domain/product"
	"swapcloset/internal/core/services"
	"swapcloset/internal/core/services/auth"
	"time"
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
	productRepository  product.Repository
	favoriteRepository product.FavoriteRepository
	now                func() time.Time
}

func New(
	log logging.Logger,
	productRepository product.Repository,
	favoriteRepository product.FavoriteRepository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if productRepository == nil {
		panic(e.NewNilArgumentError("productRepository"))
	}
	if favoriteRepository == nil {
		panic(e.NewNilArgumentError("favoriteRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                log,
		productRepository:  productRepository,
		favoriteRepository: favoriteRepository,
		now:                now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if _, err := s.productRepository.GetByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, product.ErrProductDoesNotExist) {
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("productID", input.ProductID))
		return result, err
	}
	err = s.favoriteRepository.Add(ctx, product.AddFavoriteInput{
		AccountID: input.Caller.ID,
		ProductID: input.ProductID,
		CreatedAt: s.now(),
	})
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
