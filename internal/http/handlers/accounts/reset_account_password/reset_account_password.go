package resetaccountpassword

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"swapcloset/internal/core/domain/account"
	e "swapcloset/internal/core/domain/errors"
	"swapcloset/internal/core/services"
	service "swapcloset/internal/core/services/admin_reset_password"
	"swapcloset/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
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
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Password, validation.Required, validation.Length(8, 256)),
		validation.Field(&i.PasswordConfirmation, validation.Required, validation.In(i.Password)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawAccountID := chi.URLParam(r, "accountID")
	accountID, err := strconv.ParseInt(rawAccountID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid account ID", http.StatusBadRequest)
		return
	}

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(
		r.Context(),
		service.Input{
			AccountID:   account.ID(accountID),
			NewPassword: account.RawPassword(input.Password),
		},
	)
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

	response.Render(rw, struct{}{}, http.StatusOK)
}
