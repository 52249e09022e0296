package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/josephmowjew/communication-agent/internal/api/dto"
	"github.com/josephmowjew/communication-agent/internal/api/middleware"
	"github.com/josephmowjew/communication-agent/internal/domain/errors"
	"github.com/josephmowjew/communication-agent/internal/services/conversation"
	"github.com/josephmowjew/communication-agent/internal/services/responder"
)

// EmailHandler handles email-response endpoints.
type EmailHandler struct {
	responderSvc    *responder.Service
	conversationSvc *conversation.Service
}

// NewEmailHandler creates a new EmailHandler.
func NewEmailHandler(responderSvc *responder.Service, conversationSvc *conversation.Service) *EmailHandler {
	return &EmailHandler{
		responderSvc:    responderSvc,
		conversationSvc: conversationSvc,
	}
}

// Respond handles POST /api/v1/email/respond.
// @Summary Generate email response
// @Description Generates a response to a customer email with the requested or auto-detected tone
// @Tags Email
// @Accept json
// @Produce json
// @Param request body dto.EmailRequest true "Customer message with optional context, tone and length limit"
// @Success 200 {object} models.EmailResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/email/respond [post]
func (h *EmailHandler) Respond(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if !h.conversationSvc.HealthCheck(ctx) {
		middleware.HandleError(c, errors.NewServiceUnavailableError("AI service", nil))
		return
	}

	log.Info().Str("tone", req.Tone).Msg("received email response request")
	response, err := h.responderSvc.GenerateEmailResponse(ctx, responder.Request{
		CustomerMessage: req.CustomerMessage,
		Context:         req.Context,
		Tone:            req.Tone,
		MaxLength:       req.MaxLength,
	})
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
