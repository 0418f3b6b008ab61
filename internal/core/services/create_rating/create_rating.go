package createrating

import (
	"context"
	"errors"
	"swapcloset/internal/core/domain/account"
	c "swapcloset/internal/core/domain/common"
	e "swapcloset/internal/core/domain/errors"
	"swapcloset/internal/core/domain/logging"
	"swapcloset/internal/core/domain/rating"
	"swapcloset/internal/core/services"
	"swapcloset/internal/core/services/auth"
	"time"
)

type Input struct {
	Caller        account.Account
	TransactionID rating.TransactionID
	SellerID      account.ID
	Value         int
	Comment       c.Optional[string]
}

func (i Input) WithAuthenticatedAccount(a account.Account) auth.Input {
	i.Caller = a
	return i
}

type Result struct {
	Rating rating.SellerRating
}

type service struct {
	log              logging.Logger
	ratingRepository rating.Repository
	now              func() time.Time
}

func New(
	log logging.Logger,
	ratingRepository rating.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if ratingRepository == nil {
		panic(e.NewNilArgumentError("ratingRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, ratingRepository: ratingRepository, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	created, err := s.ratingRepository.Create(ctx, rating.CreateRatingInput{
		TransactionID: input.TransactionID,
		BuyerID:       input.Caller.ID,
		SellerID:      input.SellerID,
		Value:         input.Value,
		Comment:       input.Comment,
		CreatedAt:     s.now(),
	})
	if errors.Is(err, rating.ErrRatingAlreadyExists) {
		return result, err
	}
	if err != nil {
		logging.Error(
			ctx,
			s.log,
			err,
			logging.Entry("buyerID", input.Caller.ID),
			logging.Entry("transactionID", input.TransactionID),
		)
		return result, err
	}
	s.log.Info(
		ctx,
		"Seller rated.",
		logging.Entry("ratingID", created.ID),
		logging.Entry("sellerID", created.SellerID),
	)
	return Result{Rating: rating.SellerRating{Rating: created, BuyerName: input.Caller.Name}}, nil
}
