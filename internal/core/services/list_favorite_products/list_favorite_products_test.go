package listfavoriteproducts

import (
	"context"
	"swapcloset/internal/core/domain/account"
	"swapcloset/internal/core/domain/logging"
	"swapcloset/internal/core/domain/product"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const ACCOUNT_ID = account.ID(5)

func TestOnlyOwnFavoritesListed(t *testing.T) {
	productRepo := product.NewFakeRepository()
	productRepo.Products = []product.Product{
		{ID: product.ID(1), Title: "Denim jacket"},
		{ID: product.ID(2), Title: "Linen dress"},
	}
	favoriteRepo := product.NewFakeFavoriteRepository(productRepo)
	now := time.Now().UTC()
	for _, favorite := range []product.AddFavoriteInput{
		{AccountID: ACCOUNT_ID, ProductID: product.ID(1), CreatedAt: now},
		{AccountID: account.ID(99), ProductID: product.ID(2), CreatedAt: now},
	} {
		require.NoError(t, favoriteRepo.Add(context.Background(), favorite))
	}
	service := New(logging.NewFakeLogger(), favoriteRepo)

	result, err := service.Run(context.Background(), Input{
		Caller: account.Account{ID: ACCOUNT_ID},
	})

	require.NoError(t, err)
	require.Len(t, result.Products, 1)
	require.Equal(t, product.ID(1), result.Products[0].ID)
}

func TestNoFavorites(t *testing.T) {
	favoriteRepo := product.NewFakeFavoriteRepository(product.NewFakeRepository())
	service := New(logging.NewFakeLogger(), favoriteRepo)

	result, err := service.Run(context.Background(), Input{
		Caller: account.Account{ID: ACCOUNT_ID},
	})

	require.NoError(t, err)
	require.Empty(t, result.Products)
}
