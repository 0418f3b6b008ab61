package listaccounts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"swapcloset/internal/core/domain/account"
	c "swapcloset/internal/core/domain/common"
	service "swapcloset/internal/core/services/list_accounts"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var Accounts []account.Account = []account.Account{
	{
		ID:        account.ID(1),
		Name:      "Alice Reyes",
		Email:     c.Email("alice@test.test"),
		CreatedAt: time.Date(2025, 6, 2, 1, 1, 1, 0, time.UTC),
		Payout: account.PayoutDetails{
			GcashNumber: c.NewOptional("09171234567", true),
		},
	},
	{
		ID:        account.ID(2),
		Name:      "Ben Cruz",
		Email:     c.Email("ben@test.test"),
		CreatedAt: time.Date(2025, 6, 1, 1, 1, 1, 0, time.UTC),
	},
}

type stubService struct {
	accounts []account.Account
	err      error
	input    *service.Input
}

func newStubService() *stubService {
	return &stubService{accounts: Accounts}
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Accounts = s.accounts
	return result, nil
}

func TestListAccountsHandler(t *testing.T) {
	cases := []struct {
		url            string
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			url:            "/accounts",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{},
		},
		{
			url:            "/accounts?limit=25",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{Limit: 25},
		},
		{
			url:            "/accounts?limit=25&offset=50",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{Limit: 25, Offset: 50},
		},
		{
			url:            "/accounts?limit=aaa",
			expectedStatus: http.StatusBadRequest,
			expectedInput:  nil,
		},
		{
			url:            "/accounts?offset=-1",
			expectedStatus: http.StatusBadRequest,
			expectedInput:  nil,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.url, func(t *testing.T) {
			req, err := http.NewRequest("GET", testcase.url, nil)
			assert := assert.New(t)
			assert.Nil(err)

			stub := newStubService()
			handler := New(stub)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)

			assert.Equal(testcase.expectedStatus, recorder.Code)
			assert.Equal(testcase.expectedInput, stub.input)
		})
	}
}

func TestListAccountsHandlerRendersSummariesWithoutPayout(t *testing.T) {
	assert := assert.New(t)
	req, err := http.NewRequest("GET", "/accounts", nil)
	assert.Nil(err)

	handler := New(newStubService())
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(http.StatusOK, recorder.Code)

	body := struct {
		Accounts []map[string]any `json:"accounts"`
	}{}
	assert.Nil(json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Len(body.Accounts, 2)
	assert.Equal("alice@test.test", body.Accounts[0]["email"])
	for _, respAccount := range body.Accounts {
		assert.NotContains(respAccount, "payout")
		assert.NotContains(respAccount, "gcash_number")
	}
}

func TestListAccountsHandlerErrors(t *testing.T) {
	cases := []struct {
		id             string
		err            error
		expectedStatus int
	}{
		{id: "unauthenticated", err: account.ErrSessionDoesNotExist, expectedStatus: http.StatusUnauthorized},
		{id: "not admin", err: account.ErrPermissionDenied, expectedStatus: http.StatusForbidden},
		{id: "internal", err: assert.AnError, expectedStatus: http.StatusInternalServerError},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			assert := assert.New(t)
			req, err := http.NewRequest("GET", "/accounts", nil)
			assert.Nil(err)

			stub := newStubService()
			stub.err = testcase.err
			handler := New(stub)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)

			assert.Equal(testcase.expectedStatus, recorder.Code)
		})
	}
}
