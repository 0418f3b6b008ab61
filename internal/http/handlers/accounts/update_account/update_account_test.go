package updateaccount

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"swapcloset/internal/core/domain/account"
	c "swapcloset/internal/core/domain/common"
	service "swapcloset/internal/core/services/update_account"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Account = account.Account{
		ID:    input.AccountID,
		Name:  input.Name,
		Email: input.Email,
	}
	return result, nil
}

func newTestRouter(stub *stubService) *chi.Mux {
	router := chi.NewRouter()
	router.Method(http.MethodPut, "/accounts/{accountID:[0-9]+}", New(stub))
	return router
}

func TestUpdateAccountHandlerValidation(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		expectedStatus int
	}{
		{
			id:             "valid",
			body:           `{"name": "Alice Reyes", "email": "alice@test.test", "gcash_number": "09171234567"}`,
			expectedStatus: http.StatusOK,
		},
		{
			id:             "valid without payout",
			body:           `{"name": "Alice Reyes", "email": "alice@test.test"}`,
			expectedStatus: http.StatusOK,
		},
		{
			id:             "missing name",
			body:           `{"email": "alice@test.test"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid email",
			body:           `{"name": "Alice Reyes", "email": "not-an-email"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "gcash number not a mobile number",
			body:           `{"name": "Alice Reyes", "email": "alice@test.test", "gcash_number": "12345"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "malformed body",
			body:           `{"name": `,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			assert := assert.New(t)
			req, err := http.NewRequest("PUT", "/accounts/7", strings.NewReader(testcase.body))
			assert.Nil(err)

			stub := &stubService{}
			recorder := httptest.NewRecorder()
			newTestRouter(stub).ServeHTTP(recorder, req)

			assert.Equal(testcase.expectedStatus, recorder.Code)
		})
	}
}

func TestUpdateAccountHandlerInput(t *testing.T) {
	assert := assert.New(t)
	body := `{
		"name": "Alice Reyes",
		"email": "ALICE@test.test",
		"gcash_number": "09171234567",
		"bank_name": "BDO"
	}`
	req, err := http.NewRequest("PUT", "/accounts/7", strings.NewReader(body))
	assert.Nil(err)

	stub := &stubService{}
	recorder := httptest.NewRecorder()
	newTestRouter(stub).ServeHTTP(recorder, req)

	assert.Equal(http.StatusOK, recorder.Code)
	assert.NotNil(stub.input)
	assert.Equal(account.ID(7), stub.input.AccountID)
	assert.Equal(c.NewEmail("ALICE@test.test"), stub.input.Email)
	assert.Equal(c.NewOptional("09171234567", true), stub.input.Payout.GcashNumber)
	assert.Equal(c.NewOptional("BDO", true), stub.input.Payout.BankName)
	assert.False(stub.input.Payout.BankAccountNumber.IsPresent)
}

func TestUpdateAccountHandlerErrors(t *testing.T) {
	cases := []struct {
		id             string
		err            error
		expectedStatus int
	}{
		{id: "unauthenticated", err: account.ErrSessionDoesNotExist, expectedStatus: http.StatusUnauthorized},
		{id: "not admin", err: account.ErrPermissionDenied, expectedStatus: http.StatusForbidden},
		{id: "admin target", err: account.ErrAdminAccountProtected, expectedStatus: http.StatusForbidden},
		{id: "unknown account", err: account.ErrAccountDoesNotExist, expectedStatus: http.StatusNotFound},
		{id: "email taken", err: account.ErrEmailAlreadyExists, expectedStatus: http.StatusUnprocessableEntity},
		{id: "internal", err: assert.AnError, expectedStatus: http.StatusInternalServerError},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			assert := assert.New(t)
			body := `{"name": "Alice Reyes", "email": "alice@test.test"}`
			req, err := http.NewRequest("PUT", "/accounts/7", strings.NewReader(body))
			assert.Nil(err)

			stub := &stubService{err: testcase.err}
			recorder := httptest.NewRecorder()
			newTestRouter(stub).ServeHTTP(recorder, req)

			assert.Equal(testcase.expectedStatus, recorder.Code)
		})
	}
}
