package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/josephmowjew/communication-agent/internal/api/dto"
	"github.com/josephmowjew/communication-agent/internal/api/middleware"
	"github.com/josephmowjew/communication-agent/internal/domain/errors"
	"github.com/josephmowjew/communication-agent/internal/services/conversation"
)

// sessionHeader carries the session identifier; absent means the default
// single session.
const sessionHeader = "X-Session-ID"

// sessionID extracts the session identifier from a request.
func sessionID(c *gin.Context) string {
	if id := c.GetHeader(sessionHeader); id != "" {
		return id
	}
	return conversation.DefaultSessionID
}

// ChatHandler handles conversational endpoints.
type ChatHandler struct {
	conversationSvc *conversation.Service
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(conversationSvc *conversation.Service) *ChatHandler {
	return &ChatHandler{
		conversationSvc: conversationSvc,
	}
}

// Chat handles POST /api/v1/chat.
// @Summary Chat with the AI agent
// @Description Sends a message to the AI agent and returns its response
// @Tags Chat
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session identifier"
// @Param request body dto.ChatRequest true "User message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if !h.conversationSvc.HealthCheck(ctx) {
		middleware.HandleError(c, errors.NewServiceUnavailableError("AI service", nil))
		return
	}

	log.Info().Str("session", sessionID(c)).Msg("received chat request")
	response, err := h.conversationSvc.Send(ctx, sessionID(c), req.Message)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{
		Response:  response,
		Timestamp: time.Now().UTC(),
	})
}

// History handles GET /api/v1/chat/history.
// @Summary Get conversation history
// @Description Retrieves the transcript for the session
// @Tags Chat
// @Produce json
// @Param X-Session-ID header string false "Session identifier"
// @Success 200 {object} dto.ConversationHistory
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/chat/history [get]
func (h *ChatHandler) History(c *gin.Context) {
	turns, err := h.conversationSvc.History(c.Request.Context(), sessionID(c))
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError("failed to retrieve chat history", err))
		return
	}

	c.JSON(http.StatusOK, dto.ConversationHistory{Messages: turns})
}

// Clear handles POST /api/v1/chat/clear.
// @Summary Clear conversation
// @Description Wipes the transcript for the session
// @Tags Chat
// @Produce json
// @Param X-Session-ID header string false "Session identifier"
// @Success 200 {object} map[string]string
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/chat/clear [post]
func (h *ChatHandler) Clear(c *gin.Context) {
	if err := h.conversationSvc.Clear(c.Request.Context(), sessionID(c)); err != nil {
		middleware.HandleError(c, errors.NewInternalError("failed to clear chat history", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "conversation cleared"})
}
