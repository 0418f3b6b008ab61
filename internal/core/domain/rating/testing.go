package rating

import (
	"context"
	"fmt"
	"swapcloset/internal/core/domain/account"
	"sync"
)

type FakeRepository struct {
	Ratings     []Rating
	BuyerNames  map[account.ID]string
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{BuyerNames: make(map[account.ID]string)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateRatingInput) (rt Rating, err error) {
	if r.ReturnError {
		return rt, fmt.Errorf("could not create rating %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Ratings {
		if existing.TransactionID == input.TransactionID {
			return rt, ErrRatingAlreadyExists
		}
	}
	rt = Rating{
		ID:            ID(len(r.Ratings) + 1),
		TransactionID: input.TransactionID,
		BuyerID:       input.BuyerID,
		SellerID:      input.SellerID,
		Value:         input.Value,
		Comment:       input.Comment,
		CreatedAt:     input.CreatedAt,
	}
	r.Ratings = append(r.Ratings, rt)
	return rt, nil
}

func (r *FakeRepository) ListBySeller(ctx context.Context, sellerID account.ID) ([]SellerRating, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	result := make([]SellerRating, 0)
	for _, rt := range r.Ratings {
		if rt.SellerID == sellerID {
			result = append(result, SellerRating{Rating: rt, BuyerName: r.BuyerNames[rt.BuyerID]})
		}
	}
	return result, nil
}

func (r *FakeRepository) GetSellerAverage(ctx context.Context, sellerID account.ID) (float64, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	sum, count := 0, 0
	for _, rt := range r.Ratings {
		if rt.SellerID == sellerID {
			sum += rt.Value
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return float64(sum) / float64(count), nil
}
