package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/josephmowjew/communication-agent/internal/domain/errors"
)

func TestDomainError_Error(t *testing.T) {
	err := domainerrors.NewValidationError("invalid request body", "message is required")
	assert.Equal(t, "VALIDATION_ERROR: invalid request body (message is required)", err.Error())

	err = domainerrors.NewServiceUnavailableError("AI service", nil)
	assert.Equal(t, "SERVICE_UNAVAILABLE: AI service is unavailable", err.Error())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *domainerrors.DomainError
		code       string
		httpStatus int
	}{
		{"not found", domainerrors.NewNotFoundError("transcript", "sess-1"), domainerrors.ErrCodeNotFound, http.StatusNotFound},
		{"validation", domainerrors.NewValidationError("bad", "field"), domainerrors.ErrCodeValidation, http.StatusBadRequest},
		{"internal", domainerrors.NewInternalError("boom", nil), domainerrors.ErrCodeInternal, http.StatusInternalServerError},
		{"bad request", domainerrors.NewBadRequestError("bad", ""), domainerrors.ErrCodeBadRequest, http.StatusBadRequest},
		{"unavailable", domainerrors.NewServiceUnavailableError("AI service", nil), domainerrors.ErrCodeServiceUnavailable, http.StatusServiceUnavailable},
		{"timeout", domainerrors.NewTimeoutError("generation request"), domainerrors.ErrCodeTimeout, http.StatusGatewayTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestGetDomainError_Wrapped(t *testing.T) {
	inner := domainerrors.NewServiceUnavailableError("AI service", nil)
	wrapped := fmt.Errorf("handling request: %w", inner)

	got, ok := domainerrors.GetDomainError(wrapped)
	require.True(t, ok)
	assert.Same(t, inner, got)
	assert.True(t, domainerrors.IsServiceUnavailable(wrapped))
}

func TestGetDomainError_NotDomain(t *testing.T) {
	_, ok := domainerrors.GetDomainError(fmt.Errorf("plain error"))
	assert.False(t, ok)
	assert.False(t, domainerrors.IsValidationError(fmt.Errorf("plain error")))
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := domainerrors.NewInternalError("boom", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.Contains(t, err.Details, "root cause")
}
