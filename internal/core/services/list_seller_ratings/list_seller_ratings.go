package listsellerratings

import (
	"context"
	"swapcloset/internal/core/domain/account"
	e "swapcloset/internal/core/domain/errors"
	"swapcloset/internal/core/domain/logging"
	"swapcloset/internal/core/domain/rating"
	"swapcloset/internal/core/services"
)

type Input struct {
	SellerID account.ID
}

type Result struct {
	Ratings []rating.SellerRating
	Average float64
}

type service struct {
	log              logging.Logger
	ratingRepository rating.Repository
}

func New(
	log logging.Logger,
	ratingRepository rating.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if ratingRepository == nil {
		panic(e.NewNilArgumentError("ratingRepository"))
	}
	return &service{log: log, ratingRepository: ratingRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	ratings, err := s.ratingRepository.ListBySeller(ctx, input.SellerID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("sellerID", input.SellerID))
		return result, err
	}
	average, err := s.ratingRepository.GetSellerAverage(ctx, input.SellerID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("sellerID", input.SellerID))
		return result, err
	}
	return Result{Ratings: ratings, Average: average}, nil
}
