package product

import (
	"context"
	"fmt"
	"swapcloset/internal/core/domain/account"
	"sync"
)

type FakeRepository struct {
	Products    []Product
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{}
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (p Product, err error) {
	if r.ReturnError {
		return p, fmt.Errorf("could not get product %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, p := range r.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return p, ErrProductDoesNotExist
}

type favoriteKey struct {
	accountID account.ID
	productID ID
}

type FakeFavoriteRepository struct {
	ProductRepository *FakeRepository
	Favorites         map[favoriteKey]struct{}
	ReturnError       bool
	lock              sync.Mutex
}

func NewFakeFavoriteRepository(productRepository *FakeRepository) *FakeFavoriteRepository {
	return &FakeFavoriteRepository{
		ProductRepository: productRepository,
		Favorites:         make(map[favoriteKey]struct{}),
	}
}

func (r *FakeFavoriteRepository) Add(ctx context.Context, input AddFavoriteInput) error {
	if r.ReturnError {
		return fmt.Errorf("could not add favorite %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Favorites[favoriteKey{accountID: input.AccountID, productID: input.ProductID}] = struct{}{}
	return nil
}

func (r *FakeFavoriteRepository) Remove(ctx context.Context, accountID account.ID, productID ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	delete(r.Favorites, favoriteKey{accountID: accountID, productID: productID})
	return nil
}

func (r *FakeFavoriteRepository) ListByAccount(ctx context.Context, accountID account.ID) ([]Product, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	products := make([]Product, 0)
	for key := range r.Favorites {
		if key.accountID != accountID {
			continue
		}
		for _, p := range r.ProductRepository.Products {
			if p.ID == key.productID {
				products = append(products, p)
			}
		}
	}
	return products, nil
}

func (r *FakeFavoriteRepository) Count() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.Favorites)
}
