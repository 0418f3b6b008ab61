package services

import (
	"swapcloset/internal/app/deps"
	drl "swapcloset/internal/core/domain/rate_limiter"
	"swapcloset/internal/core/services"
	addfavorite "swapcloset/internal/core/services/add_favorite"
	adminresetpassword "swapcloset/internal/core/services/admin_reset_password"
	"swapcloset/internal/core/services/auth"
	createrating "swapcloset/internal/core/services/create_rating"
	deleteaccount "swapcloset/internal/core/services/delete_account"
	getaccount "swapcloset/internal/core/services/get_account"
	getaccountbysessiontoken "swapcloset/internal/core/services/get_account_by_session_token"
	listaccounts "swapcloset/internal/core/services/list_accounts"
	listcategories "swapcloset/internal/core/services/list_categories"
	listfavoriteproducts "swapcloset/internal/core/services/list_favorite_products"
	listsellerratings "swapcloset/internal/core/services/list_seller_ratings"
	loginwithemail "swapcloset/internal/core/services/log_in_with_email"
	logout "swapcloset/internal/core/services/log_out"
	ratelimiting "swapcloset/internal/core/services/rate_limiting"
	removefavorite "swapcloset/internal/core/services/remove_favorite"
	resetpassword "swapcloset/internal/core/services/reset_password"
	seedcategories "swapcloset/internal/core/services/seed_categories"
	sendpasswordresettoken "swapcloset/internal/core/services/send_password_reset_token"
	updateaccount "swapcloset/internal/core/services/update_account"
)

type Services struct {
	LogInWithEmail           services.Service[loginwithemail.Input, loginwithemail.Result]
	LogOut                   services.Service[logout.Input, logout.Result]
	GetAccountBySessionToken services.Service[getaccountbysessiontoken.Input, getaccountbysessiontoken.Result]
	SendPasswordResetToken   services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	ResetPassword            services.Service[resetpassword.Input, resetpassword.Result]

	ListAccounts       services.Service[listaccounts.Input, listaccounts.Result]
	GetAccount         services.Service[getaccount.Input, getaccount.Result]
	UpdateAccount      services.Service[updateaccount.Input, updateaccount.Result]
	DeleteAccount      services.Service[deleteaccount.Input, deleteaccount.Result]
	AdminResetPassword services.Service[adminresetpassword.Input, adminresetpassword.Result]

	AddFavorite          services.Service[addfavorite.Input, addfavorite.Result]
	RemoveFavorite       services.Service[removefavorite.Input, removefavorite.Result]
	ListFavoriteProducts services.Service[listfavoriteproducts.Input, listfavoriteproducts.Result]

	CreateRating      services.Service[createrating.Input, createrating.Result]
	ListSellerRatings services.Service[listsellerratings.Input, listsellerratings.Result]

	ListCategories services.Service[listcategories.Input, listcategories.Result]
	SeedCategories services.Service[seedcategories.Input, seedcategories.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.LogInWithEmail = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		loginwithemail.New(
			deps.Logger,
			deps.AccountRepository,
			deps.SessionRepository,
			deps.PasswordHasher,
			deps.SessionTokenGenerator,
			deps.Now,
		),
	)
	s.LogOut = logout.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.GetAccountBySessionToken = getaccountbysessiontoken.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.SendPasswordResetToken = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 3},
		sendpasswordresettoken.New(
			deps.Logger,
			deps.AccountRepository,
			deps.ResetTokenRepository,
			deps.ResetTokenSecretGenerator,
			deps.ResetTokenSender,
			deps.Now,
		),
	)
	s.ResetPassword = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		resetpassword.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.PasswordHasher,
			deps.RememberTokenGenerator,
			deps.Config.ResetTokenValidDuration,
			deps.Now,
		),
	)

	s.ListAccounts = auth.WithAuthentication(
		deps.SessionRepository,
		listaccounts.New(
			deps.Logger,
			deps.AccountRepository,
		),
	)
	s.GetAccount = auth.WithAuthentication(
		deps.SessionRepository,
		getaccount.New(
			deps.Logger,
			deps.AccountRepository,
		),
	)
	s.UpdateAccount = auth.WithAuthentication(
		deps.SessionRepository,
		updateaccount.New(
			deps.Logger,
			deps.AccountRepository,
		),
	)
	s.DeleteAccount = auth.WithAuthentication(
		deps.SessionRepository,
		deleteaccount.New(
			deps.Logger,
			deps.AccountRepository,
		),
	)
	s.AdminResetPassword = auth.WithAuthentication(
		deps.SessionRepository,
		adminresetpassword.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.PasswordHasher,
			deps.RememberTokenGenerator,
		),
	)

	s.AddFavorite = auth.WithAuthentication(
		deps.SessionRepository,
		addfavorite.New(
			deps.Logger,
			deps.ProductRepository,
			deps.FavoriteRepository,
			deps.Now,
		),
	)
	s.RemoveFavorite = auth.WithAuthentication(
		deps.SessionRepository,
		removefavorite.New(
			deps.Logger,
			deps.FavoriteRepository,
		),
	)
	s.ListFavoriteProducts = auth.WithAuthentication(
		deps.SessionRepository,
		listfavoriteproducts.New(
			deps.Logger,
			deps.FavoriteRepository,
		),
	)

	s.CreateRating = auth.WithAuthentication(
		deps.SessionRepository,
		createrating.New(
			deps.Logger,
			deps.RatingRepository,
			deps.Now,
		),
	)
	s.ListSellerRatings = listsellerratings.New(
		deps.Logger,
		deps.RatingRepository,
	)

	s.ListCategories = listcategories.New(
		deps.Logger,
		deps.CategoryRepository,
	)
	s.SeedCategories = seedcategories.New(
		deps.Logger,
		deps.CategoryRepository,
	)

	return s
}
