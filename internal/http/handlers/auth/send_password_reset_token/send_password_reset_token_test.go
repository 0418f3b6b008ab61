package sendpasswordresettoken

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"swapcloset/internal/core/domain/account"
	c "swapcloset/internal/core/domain/common"
	ratelimiter "swapcloset/internal/core/domain/rate_limiter"
	service "swapcloset/internal/core/services/send_password_reset_token"
	"testing"

	"github.com/stretchr/testify/assert"
)

const TOKEN = account.ResetTokenSecret("test-reset-token")

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Token = TOKEN
	return result, nil
}

func TestSendPasswordResetTokenHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		expectedStatus int
		expectedEmail  c.Email
	}{
		{
			id:             "valid email",
			body:           `{"email": "member@test.test"}`,
			expectedStatus: http.StatusOK,
			expectedEmail:  c.Email("member@test.test"),
		},
		{
			id:             "email is normalized",
			body:           `{"email": "  Member@Test.test "}`,
			expectedStatus: http.StatusOK,
			expectedEmail:  c.Email("member@test.test"),
		},
		{
			id:             "invalid email",
			body:           `{"email": "not-an-email"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "missing email",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "malformed body",
			body:           `{"email": `,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			assert := assert.New(t)
			req, err := http.NewRequest("POST", "/auth/password_reset/token", strings.NewReader(testcase.body))
			assert.Nil(err)

			stub := &stubService{}
			handler := New(stub, false)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)

			assert.Equal(testcase.expectedStatus, recorder.Code)
			if testcase.expectedEmail != "" {
				assert.NotNil(stub.input)
				assert.Equal(testcase.expectedEmail, stub.input.Email)
			}
			assert.Equal("", recorder.Header().Get("x-test-password-reset-token"))
		})
	}
}

func TestSendPasswordResetTokenHandlerTestMode(t *testing.T) {
	assert := assert.New(t)
	req, err := http.NewRequest(
		"POST",
		"/auth/password_reset/token",
		strings.NewReader(`{"email": "member@test.test"}`),
	)
	assert.Nil(err)

	handler := New(&stubService{}, true)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(http.StatusOK, recorder.Code)
	assert.Equal(string(TOKEN), recorder.Header().Get("x-test-password-reset-token"))
}

func TestSendPasswordResetTokenHandlerRateLimited(t *testing.T) {
	assert := assert.New(t)
	req, err := http.NewRequest(
		"POST",
		"/auth/password_reset/token",
		strings.NewReader(`{"email": "member@test.test"}`),
	)
	assert.Nil(err)

	handler := New(&stubService{err: ratelimiter.ErrRateLimitExceeded}, false)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(http.StatusTooManyRequests, recorder.Code)
}
