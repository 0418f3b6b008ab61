package updateaccount

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"swapcloset/internal/core/domain/account"
	c "swapcloset/internal/core/domain/common"
	e "swapcloset/internal/core/domain/errors"
	"swapcloset/internal/core/services"
	service "swapcloset/internal/core/services/update_account"
	"swapcloset/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var gcashNumberPattern = regexp.MustCompile(`^09\d{9}$`)

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
	Name              string `json:"name"`
	Email             string `json:"email"`
	GcashNumber       string `json:"gcash_number"`
	BankName          string `json:"bank_name"`
	BankAccountNumber string `json:"bank_account_number"`
	BankAccountName   string `json:"bank_account_name"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 100)),
		validation.Field(&i.GcashNumber, validation.Match(gcashNumberPattern)),
		validation.Field(&i.BankName, validation.Length(0, 100)),
		validation.Field(&i.BankAccountNumber, validation.Length(0, 100)),
		validation.Field(&i.BankAccountName, validation.Length(0, 100)),
	)
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
			AccountID: account.ID(accountID),
			Name:      input.Name,
			Email:     c.NewEmail(input.Email),
			Payout: account.PayoutDetails{
				GcashNumber:       optionalString(input.GcashNumber),
				BankName:          optionalString(input.BankName),
				BankAccountNumber: optionalString(input.BankAccountNumber),
				BankAccountName:   optionalString(input.BankAccountName),
			},
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
		case errors.Is(err, account.ErrEmailAlreadyExists):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	respAccount := response.AccountDetail{}
	respAccount.FromDomainAccount(result.Account)
	response.Render(rw, Result{Account: respAccount}, http.StatusOK)
}

func optionalString(value string) c.Optional[string] {
	return c.NewOptional(value, value != "")
}
