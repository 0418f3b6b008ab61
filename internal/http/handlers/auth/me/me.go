package me

import (
	"errors"
	"net/http"
	"swapcloset/internal/core/domain/account"
	"swapcloset/internal/core/services"
	service "swapcloset/internal/core/services/get_account_by_session_token"
	"swapcloset/internal/http/handlers/auth"
	"swapcloset/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	return &Handler{service: service}
}

type Result struct {
	Account response.AccountSummary `json:"account"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token, ok := auth.ParseToken(r)
	if !ok {
		response.RenderUnauthorized(rw)
		return
	}
	result, err := h.service.Run(
		r.Context(),
		service.Input{Token: token},
	)
	if errors.Is(err, account.ErrSessionDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	summary := response.AccountSummary{}
	summary.FromDomainAccount(result.Account)
	response.Render(rw, Result{Account: summary}, http.StatusOK)
}
