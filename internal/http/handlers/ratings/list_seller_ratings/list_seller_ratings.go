package listsellerratings

import (
	"net/http"
	"strconv"
	"swapcloset/internal/core/domain/account"
	e "swapcloset/internal/core/domain/errors"
	"swapcloset/internal/core/services"
	service "swapcloset/internal/core/services/list_seller_ratings"
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
	Ratings []response.SellerRating `json:"ratings"`
	Average float64                 `json:"average"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawSellerID := chi.URLParam(r, "sellerID")
	sellerID, err := strconv.ParseInt(rawSellerID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid seller ID", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{SellerID: account.ID(sellerID)})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	respRatings := make([]response.SellerRating, 0, len(result.Ratings))
	for _, sellerRating := range result.Ratings {
		respRating := response.SellerRating{}
		respRating.FromDomainRating(sellerRating)
		respRatings = append(respRatings, respRating)
	}
	response.Render(rw, Result{Ratings: respRatings, Average: result.Average}, http.StatusOK)
}
