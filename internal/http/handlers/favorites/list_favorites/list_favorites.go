package listfavorites

import (
	"errors"
	"net/http"
	"swapcloset/internal/core/domain/account"
	e "swapcloset/internal/core/domain/errors"
	"swapcloset/internal/core/services"
	service "swapcloset/internal/core/services/list_favorite_products"
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
	Products []response.Product `json:"products"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		switch {
		case errors.Is(err, account.ErrSessionDoesNotExist):
			response.RenderUnauthorized(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	respProducts := make([]response.Product, 0, len(result.Products))
	for _, p := range result.Products {
		respProduct := response.Product{}
		respProduct.FromDomainProduct(p)
		respProducts = append(respProducts, respProduct)
	}
	response.Render(rw, Result{Products: respProducts}, http.StatusOK)
}
