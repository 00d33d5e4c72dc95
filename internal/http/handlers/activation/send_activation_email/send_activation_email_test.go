package sendactivationemail

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"tabnews/internal/core/domain/activation"
	ratelimiter "tabnews/internal/core/domain/rate_limiter"
	"tabnews/internal/core/domain/user"
	service "tabnews/internal/core/services/send_activation_email"
	"testing"

	"github.com/stretchr/testify/assert"
)

const TOKEN_ID = activation.TokenID("2ecac55a-d0a9-4e0b-9a4f-c21cbeabc77c")

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Token = activation.Token{ID: TOKEN_ID, UserID: input.UserID}
	return result, nil
}

func TestSendActivationEmailHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		isTestMode     bool
		expectedStatus int
	}{
		{
			id:             "success",
			body:           `{"user_id": 42}`,
			expectedStatus: http.StatusCreated,
		},
		{
			id:             "token echoed in test mode",
			body:           `{"user_id": 42}`,
			isTestMode:     true,
			expectedStatus: http.StatusCreated,
		},
		{
			id:             "invalid json",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "missing user id",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "user not found",
			body:           `{"user_id": 404}`,
			serviceErr:     user.NewUserNotFoundError(404),
			expectedStatus: http.StatusNotFound,
		},
		{
			id:             "rate limited",
			body:           `{"user_id": 42}`,
			serviceErr:     ratelimiter.ErrRateLimitExceeded,
			expectedStatus: http.StatusTooManyRequests,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{err: testcase.serviceErr}
			handler := New(stub, testcase.isTestMode)

			request := httptest.NewRequest(
				http.MethodPost,
				"/api/v1/activation",
				strings.NewReader(testcase.body),
			)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, testcase.expectedStatus, recorder.Code)

			if testcase.expectedStatus == http.StatusCreated {
				assert.NotNil(t, stub.input)
				assert.Equal(t, user.ID(42), stub.input.UserID)
			}
			if testcase.isTestMode {
				assert.Equal(t, string(TOKEN_ID), recorder.Header().Get("x-test-activation-token"))
			}
		})
	}
}
