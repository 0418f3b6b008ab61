package app

import (
	"fmt"
	"net/http"
	"swapcloset/internal/app/deps"
	"swapcloset/internal/app/services"
	deleteaccount "swapcloset/internal/http/handlers/accounts/delete_account"
	getaccount "swapcloset/internal/http/handlers/accounts/get_account"
	listaccounts "swapcloset/internal/http/handlers/accounts/list_accounts"
	resetaccountpassword "swapcloset/internal/http/handlers/accounts/reset_account_password"
	updateaccount "swapcloset/internal/http/handlers/accounts/update_account"
	"swapcloset/internal/http/handlers/auth"
	loginwithemail "swapcloset/internal/http/handlers/auth/log_in_with_email"
	logout "swapcloset/internal/http/handlers/auth/log_out"
	me "swapcloset/internal/http/handlers/auth/me"
	resetpassword "swapcloset/internal/http/handlers/auth/reset_password"
	sendpasswordresettoken "swapcloset/internal/http/handlers/auth/send_password_reset_token"
	listcategories "swapcloset/internal/http/handlers/catalog/list_categories"
	addfavorite "swapcloset/internal/http/handlers/favorites/add_favorite"
	listfavorites "swapcloset/internal/http/handlers/favorites/list_favorites"
	removefavorite "swapcloset/internal/http/handlers/favorites/remove_favorite"
	createrating "swapcloset/internal/http/handlers/ratings/create_rating"
	listsellerratings "swapcloset/internal/http/handlers/ratings/list_seller_ratings"
	"swapcloset/internal/http/handlers/support"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/login", loginwithemail.New(s.LogInWithEmail))
	authRouter.Method(http.MethodPost, "/logout", logout.New(s.LogOut))
	authRouter.Method(http.MethodGet, "/me", me.New(s.GetAccountBySessionToken))
	authRouter.Method(
		http.MethodPost,
		"/password_reset/token",
		sendpasswordresettoken.New(s.SendPasswordResetToken, isTestMode),
	)
	authRouter.Method(http.MethodPut, "/password_reset", resetpassword.New(s.ResetPassword))

	accountsRouter := chi.NewRouter()
	accountsRouter.Use(auth.SetAuthTokenToContext)
	accountsRouter.Method(http.MethodGet, "/", listaccounts.New(s.ListAccounts))
	accountsRouter.Method(http.MethodGet, "/{accountID:[0-9]+}", getaccount.New(s.GetAccount))
	accountsRouter.Method(http.MethodPut, "/{accountID:[0-9]+}", updateaccount.New(s.UpdateAccount))
	accountsRouter.Method(http.MethodDelete, "/{accountID:[0-9]+}", deleteaccount.New(s.DeleteAccount))
	accountsRouter.Method(
		http.MethodPost,
		"/{accountID:[0-9]+}/password-reset",
		resetaccountpassword.New(s.AdminResetPassword),
	)

	favoritesRouter := chi.NewRouter()
	favoritesRouter.Use(auth.SetAuthTokenToContext)
	favoritesRouter.Method(http.MethodGet, "/", listfavorites.New(s.ListFavoriteProducts))
	favoritesRouter.Method(http.MethodPut, "/{productID:[0-9]+}", addfavorite.New(s.AddFavorite))
	favoritesRouter.Method(http.MethodDelete, "/{productID:[0-9]+}", removefavorite.New(s.RemoveFavorite))

	ratingsRouter := chi.NewRouter()
	ratingsRouter.Use(auth.SetAuthTokenToContext)
	ratingsRouter.Method(http.MethodPost, "/", createrating.New(s.CreateRating))
	ratingsRouter.Method(http.MethodGet, "/sellers/{sellerID:[0-9]+}", listsellerratings.New(s.ListSellerRatings))

	catalogRouter := chi.NewRouter()
	catalogRouter.Method(http.MethodGet, "/categories", listcategories.New(s.ListCategories))

	supportRouter := chi.NewRouter()
	supportRouter.Method(http.MethodGet, "/{page}", support.New())

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)
	router.Mount("/accounts", accountsRouter)
	router.Mount("/favorites", favoritesRouter)
	router.Mount("/ratings", ratingsRouter)
	router.Mount("/catalog", catalogRouter)
	router.Mount("/support", supportRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
