// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/josephmowjew/communication-agent/internal/core/llm"
	domainerrors "github.com/josephmowjew/communication-agent/internal/domain/errors"
)

// ErrorMiddleware handles error recovery and formatting.
type ErrorMiddleware struct{}

// NewErrorMiddleware creates a new ErrorMiddleware.
func NewErrorMiddleware() *ErrorMiddleware {
	return &ErrorMiddleware{}
}

// Recovery returns a gin middleware that recovers from panics.
func (m *ErrorMiddleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Interface("error", err).
					Str("path", c.Request.URL.Path).
					Str("method", c.Request.Method).
					Msg("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"code":    domainerrors.ErrCodeInternal,
					"message": "internal server error",
				})
			}
		}()
		c.Next()
	}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// HandleError translates an error into an HTTP response. Generation
// failures map to service-unavailable or timeout; everything else not
// carrying a domain error becomes a generic internal error so internal
// detail never leaks past a short description.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	// Typed generation failures from the llm port.
	if genErr, ok := llm.AsError(err); ok {
		domainErr := translateGenerationError(genErr)
		c.AbortWithStatusJSON(domainErr.HTTPStatus, ErrorResponse{
			Code:    domainErr.Code,
			Message: domainErr.Message,
			Details: domainErr.Details,
		})
		return
	}

	if domainErr, ok := domainerrors.GetDomainError(err); ok {
		c.AbortWithStatusJSON(domainErr.HTTPStatus, ErrorResponse{
			Code:    domainErr.Code,
			Message: domainErr.Message,
			Details: domainErr.Details,
		})
		return
	}

	log.Error().Err(err).Msg("unhandled error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Code:    domainerrors.ErrCodeInternal,
		Message: "internal server error",
	})
}

// translateGenerationError maps a generation failure kind to a domain error.
func translateGenerationError(genErr *llm.Error) *domainerrors.DomainError {
	switch genErr.Kind {
	case llm.KindCanceled:
		return domainerrors.NewTimeoutError("generation request")
	case llm.KindEmptyOutput, llm.KindUnavailable:
		return domainerrors.NewServiceUnavailableError("AI service", genErr)
	default:
		return domainerrors.NewInternalError("generation failed", genErr)
	}
}

// NotFound returns a 404 handler.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    domainerrors.ErrCodeNotFound,
			Message: "resource not found",
			Details: c.Request.URL.Path,
		})
	}
}

// MethodNotAllowed returns a 405 handler.
func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{
			Code:    "METHOD_NOT_ALLOWED",
			Message: "method not allowed",
			Details: c.Request.Method,
		})
	}
}
