package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_HTTPCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected int
	}{
		{"not found", NotFound("episode", "abc"), http.StatusNotFound},
		{"invalid input", InvalidInput("bad index"), http.StatusBadRequest},
		{"validation", ValidationFailed([]string{"url"}), http.StatusBadRequest},
		{"external", ExternalServiceError("episodes-api", stderrors.New("boom")), http.StatusBadGateway},
		{"external timeout", ExternalServiceError("episodes-api", fmt.Errorf("executing request: %w", context.DeadlineExceeded)), http.StatusGatewayTimeout},
		{"unavailable", ServiceUnavailable("player store"), http.StatusServiceUnavailable},
		{"internal", New(ErrCodeInternal, "oops"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.GetHTTPCode())
			assert.Equal(t, tt.expected, GetHTTPCode(tt.err))
		})
	}
}

func TestAppError_Wrapping(t *testing.T) {
	cause := stderrors.New("connection refused")
	appErr := ExternalServiceError("episodes-api", cause)
	wrapped := fmt.Errorf("loading page: %w", appErr)

	assert.True(t, Is(wrapped, ErrCodeExternalService))
	assert.False(t, Is(wrapped, ErrCodeNotFound))
	assert.Equal(t, ErrCodeExternalService, GetCode(wrapped))
	assert.Equal(t, http.StatusBadGateway, GetHTTPCode(wrapped))
	assert.ErrorIs(t, wrapped, cause)
	assert.Contains(t, appErr.Error(), "caused by: connection refused")
}

func TestGetCode_PlainError(t *testing.T) {
	err := stderrors.New("plain")
	assert.Equal(t, ErrCodeInternal, GetCode(err))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPCode(err))
}

func TestAppError_Details(t *testing.T) {
	err := NotFound("episode", "a-slug")
	assert.Equal(t, "episode", err.Details["resource"])
	assert.Equal(t, "a-slug", err.Details["id"])
	assert.Equal(t, "NOT_FOUND: episode not found", err.Error())
}

func TestExternalServiceError_Timeout(t *testing.T) {
	err := ExternalServiceError("episodes-api", &timeoutError{})
	assert.Equal(t, ErrCodeAPITimeout, err.Code)
	assert.Equal(t, "episodes-api", err.Details["service"])

	err = ExternalServiceError("episodes-api", stderrors.New("connection refused"))
	assert.Equal(t, ErrCodeExternalService, err.Code)
}

type timeoutError struct{}

func (*timeoutError) Error() string   { return "i/o timeout" }
func (*timeoutError) Timeout() bool   { return true }
func (*timeoutError) Temporary() bool { return true }
