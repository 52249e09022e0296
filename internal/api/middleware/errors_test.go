package middleware_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephmowjew/communication-agent/internal/api/middleware"
	"github.com/josephmowjew/communication-agent/internal/core/llm"
	domainerrors "github.com/josephmowjew/communication-agent/internal/domain/errors"
)

func serveWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/boom", func(c *gin.Context) {
		middleware.HandleError(c, err)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) middleware.ErrorResponse {
	t.Helper()
	var body middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandleError_DomainError(t *testing.T) {
	w := serveWithError(t, domainerrors.NewValidationError("invalid request body", "message is required"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, domainerrors.ErrCodeValidation, body.Code)
	assert.Equal(t, "invalid request body", body.Message)
	assert.Equal(t, "message is required", body.Details)
}

func TestHandleError_GenerationUnavailable(t *testing.T) {
	w := serveWithError(t, llm.NewError(llm.KindUnavailable, "backend down", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, domainerrors.ErrCodeServiceUnavailable, decodeError(t, w).Code)
}

func TestHandleError_GenerationEmptyOutput(t *testing.T) {
	w := serveWithError(t, llm.NewError(llm.KindEmptyOutput, "nothing came back", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, domainerrors.ErrCodeServiceUnavailable, decodeError(t, w).Code)
}

func TestHandleError_GenerationCanceled(t *testing.T) {
	w := serveWithError(t, llm.NewError(llm.KindCanceled, "context canceled", nil))

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Equal(t, domainerrors.ErrCodeTimeout, decodeError(t, w).Code)
}

func TestHandleError_UnknownErrorStaysGeneric(t *testing.T) {
	w := serveWithError(t, fmt.Errorf("database blew up at 10.0.0.3"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, domainerrors.ErrCodeInternal, body.Code)
	// Internal detail must not leak to the client.
	assert.NotContains(t, body.Message, "10.0.0.3")
	assert.Empty(t, body.Details)
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.NewErrorMiddleware().Recovery())
	router.GET("/panic", func(c *gin.Context) {
		panic("unexpected state")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.NoRoute(middleware.NotFound())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, domainerrors.ErrCodeNotFound, body.Code)
	assert.Equal(t, "/missing", body.Details)
}
