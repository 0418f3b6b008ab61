package rating

import (
	"context"
	"errors"
	"swapcloset/internal/core/domain/account"
	c "swapcloset/internal/core/domain/common"
	"time"
)

type ID int64

type TransactionID int64

// Rating is a buyer's review of a completed transaction's seller.
type Rating struct {
	ID            ID
	TransactionID TransactionID
	BuyerID       account.ID
	SellerID      account.ID
	Value         int
	Comment       c.Optional[string]
	CreatedAt     time.Time
}

// SellerRating is the listing projection: the rating joined with the buyer's
// display name (buyers are shown by name only, never by payment details).
type SellerRating struct {
	Rating
	BuyerName string
}

var (
	ErrRatingAlreadyExists = errors.New("transaction has already been rated")
	ErrRatingDoesNotExist  = errors.New("rating does not exist")
)

type CreateRatingInput struct {
	TransactionID TransactionID
	BuyerID       account.ID
	SellerID      account.ID
	Value         int
	Comment       c.Optional[string]
	CreatedAt     time.Time
}

type Repository interface {
	Create(ctx context.Context, input CreateRatingInput) (Rating, error)
	ListBySeller(ctx context.Context, sellerID account.ID) ([]SellerRating, error)
	// GetSellerAverage returns 0 when the seller has no ratings yet.
	GetSellerAverage(ctx context.Context, sellerID account.ID) (float64, error)
}
