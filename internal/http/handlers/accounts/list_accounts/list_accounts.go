package listaccounts

import (
	"errors"
	"net/http"
	"strconv"
	"swapcloset/internal/core/domain/account"
	e "swapcloset/internal/core/domain/errors"
	"swapcloset/internal/core/services"
	service "swapcloset/internal/core/services/list_accounts"
	"swapcloset/internal/http/handlers/response"
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
	Accounts []response.AccountSummary `json:"accounts"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	limit, err := parseUintParam(r.URL.Query().Get("limit"))
	if err != nil {
		response.RenderError(rw, "invalid limit query parameter", http.StatusBadRequest)
		return
	}

	offset, err := parseUintParam(r.URL.Query().Get("offset"))
	if err != nil {
		response.RenderError(rw, "invalid offset query parameter", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Limit: limit, Offset: offset})
	if err != nil {
		switch {
		case errors.Is(err, account.ErrSessionDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, account.ErrPermissionDenied):
			response.RenderForbidden(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	respAccounts := make([]response.AccountSummary, 0, len(result.Accounts))
	for _, a := range result.Accounts {
		respAccount := response.AccountSummary{}
		respAccount.FromDomainAccount(a)
		respAccounts = append(respAccounts, respAccount)
	}
	response.Render(rw, Result{Accounts: respAccounts}, http.StatusOK)
}

func parseUintParam(raw string) (uint, error) {
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}
