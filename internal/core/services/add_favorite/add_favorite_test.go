package addfavorite

import (
	"context"
	"swapcloset/internal/core/domain/account"
	"swapcloset/internal/core/domain/logging"
	"swapcloset/internal/core/domain/product"
	"swapcloset/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	ACCOUNT_ID = account.ID(5)
	PRODUCT_ID = product.ID(42)
)

type suite struct {
	log          *logging.FakeLogger
	productRepo  *product.FakeRepository
	favoriteRepo *product.FakeFavoriteRepository
}

func setupSuite() *suite {
	productRepo := product.NewFakeRepository()
	productRepo.Products = []product.Product{{ID: PRODUCT_ID, Title: "Denim jacket"}}
	return &suite{
		log:          logging.NewFakeLogger(),
		productRepo:  productRepo,
		favoriteRepo: product.NewFakeFavoriteRepository(productRepo),
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.productRepo, s.favoriteRepo, func() time.Time { return time.Now().UTC() })
}

func TestProductFavorited(t *testing.T) {
	suite := setupSuite()
	service := suite.createService()

	_, err := service.Run(context.Background(), Input{
		Caller:    account.Account{ID: ACCOUNT_ID},
		ProductID: PRODUCT_ID,
	})

	require.NoError(t, err)
	require.Equal(t, 1, suite.favoriteRepo.Count())
}

func TestFavoritingTwiceIsIdempotent(t *testing.T) {
	suite := setupSuite()
	service := suite.createService()
	input := Input{Caller: account.Account{ID: ACCOUNT_ID}, ProductID: PRODUCT_ID}

	_, err := service.Run(context.Background(), input)
	require.NoError(t, err)
	_, err = service.Run(context.Background(), input)
	require.NoError(t, err)

	require.Equal(t, 1, suite.favoriteRepo.Count())
}

func TestProductDoesNotExist(t *testing.T) {
	suite := setupSuite()
	service := suite.createService()

	_, err := service.Run(context.Background(), Input{
		Caller:    account.Account{ID: ACCOUNT_ID},
		ProductID: product.ID(999),
	})

	require.ErrorIs(t, err, product.ErrProductDoesNotExist)
	require.Equal(t, 0, suite.favoriteRepo.Count())
}
