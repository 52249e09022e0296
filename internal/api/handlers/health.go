// Package handlers provides HTTP handlers for the API.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/josephmowjew/communication-agent/internal/api/dto"
	"github.com/josephmowjew/communication-agent/internal/api/middleware"
	"github.com/josephmowjew/communication-agent/internal/domain/errors"
	"github.com/josephmowjew/communication-agent/internal/services/conversation"
)

// APIVersion is reported by the status endpoint.
const APIVersion = "1.0.0"

// HealthHandler handles service status endpoints.
type HealthHandler struct {
	conversationSvc *conversation.Service
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(conversationSvc *conversation.Service) *HealthHandler {
	return &HealthHandler{
		conversationSvc: conversationSvc,
	}
}

// Root handles the / endpoint.
// @Summary Root health check
// @Description Returns a basic liveness message
// @Tags Health
// @Produce json
// @Success 200 {object} dto.RootResponse
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.RootResponse{
		Status:  "healthy",
		Message: "Communication Agent API is running",
	})
}

// Status handles the /status endpoint. It probes the generation capability
// so callers can distinguish model-backend unavailability from
// request-level mistakes.
// @Summary Get service status
// @Description Checks whether the service and the model backend are running
// @Tags Health
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/status [get]
func (h *HealthHandler) Status(c *gin.Context) {
	if !h.conversationSvc.HealthCheck(c.Request.Context()) {
		middleware.HandleError(c, errors.NewServiceUnavailableError("AI service", nil))
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		Status:    "running",
		Version:   APIVersion,
		Timestamp: time.Now().UTC(),
	})
}
