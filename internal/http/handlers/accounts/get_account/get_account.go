package getaccount

import (
	"errors"
	"net/http"
	"strconv"
	"swapcloset/internal/core/domain/account"
	e "swapcloset/internal/core/domain/errors"
	"swapcloset/internal/core/services"
	service "swapcloset/internal/core/services/get_account"
	"swapcloset/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Account response.AccountDetail `json:"account"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawAccountID := chi.URLParam(r, "accountID")
	accountID, err := strconv.ParseInt(rawAccountID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid account ID", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{AccountID: account.ID(accountID)})
	if err != nil {
		switch {
		case errors.Is(err, account.ErrSessionDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, account.ErrPermissionDenied):
			response.RenderForbidden(rw)
		case errors.Is(err, account.ErrAdminAccountProtected):
			response.RenderForbidden(rw)
		case errors.Is(err, account.ErrAccountDoesNotExist):
			response.RenderNotFound(rw, err.Error())
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	respAccount := response.AccountDetail{}
	respAccount.FromDomainAccount(result.Account)
	response.Render(rw, Result{Account: respAccount}, http.StatusOK)
}
