package product

import (
	"context"
	"errors"
	"swapcloset/internal/core/domain/account"
	"swapcloset/internal/core/domain/catalog"
	"time"
)

type ID int64

type Product struct {
	ID         ID
	SellerID   account.ID
	CategoryID catalog.CategoryID
	Title      string
	PriceCents int64
	CreatedAt  time.Time
}

var ErrProductDoesNotExist = errors.New("product does not exist")

type Repository interface {
	GetByID(ctx context.Context, id ID) (Product, error)
}

type AddFavoriteInput struct {
	AccountID account.ID
	ProductID ID
	CreatedAt time.Time
}

type FavoriteRepository interface {
	// Add is idempotent: favoriting an already-favorited product keeps the
	// original timestamp and succeeds.
	Add(ctx context.Context, input AddFavoriteInput) error
	Remove(ctx context.Context, accountID account.ID, productID ID) error
	ListByAccount(ctx context.Context, accountID account.ID) ([]Product, error)
}
