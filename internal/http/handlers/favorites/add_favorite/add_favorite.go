package addfavorite

import (
	"errors"
	"net/http"
	"strconv"
	"swapcloset/internal/core/domain/account"
	e "swapcloset/internal/core/domain/errors"
	"swapcloset/internal/core/domain/product"
	"swapcloset/internal/core/services"
	service "swapcloset/internal/core/services/add_favorite"
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

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawProductID := chi.URLParam(r, "productID")
	productID, err := strconv.ParseInt(rawProductID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid product ID", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(r.Context(), service.Input{ProductID: product.ID(productID)})
	if err != nil {
		switch {
		case errors.Is(err, account.ErrSessionDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, product.ErrProductDoesNotExist):
			response.RenderNotFound(rw, err.Error())
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.Render(rw, struct{}{}, http.StatusCreated)
}
