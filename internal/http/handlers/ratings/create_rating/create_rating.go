package createrating

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"swapcloset/internal/core/domain/account"
	c "swapcloset/internal/core/domain/common"
	e "swapcloset/internal/core/domain/errors"
	"swapcloset/internal/core/domain/rating"
	"swapcloset/internal/core/services"
	service "swapcloset/internal/core/services/create_rating"
	"swapcloset/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
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

type Input struct {
	TransactionID int64  `json:"transaction_id"`
	SellerID      int64  `json:"seller_id"`
	Value         int    `json:"value"`
	Comment       string `json:"comment"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.TransactionID, validation.Required),
		validation.Field(&i.SellerID, validation.Required),
		validation.Field(&i.Value, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&i.Comment, validation.Length(0, 1024)),
	)
}

type Result struct {
	Rating response.SellerRating `json:"rating"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			TransactionID: rating.TransactionID(input.TransactionID),
			SellerID:      account.ID(input.SellerID),
			Value:         input.Value,
			Comment:       c.NewOptional(input.Comment, input.Comment != ""),
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrSessionDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, rating.ErrRatingAlreadyExists):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	respRating := response.SellerRating{}
	respRating.FromDomainRating(result.Rating)
	response.Render(rw, Result{Rating: respRating}, http.StatusCreated)
}
