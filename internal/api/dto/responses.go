// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/josephmowjew/communication-agent/internal/domain/models"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ChatResponse represents the response to a chat turn.
type ChatResponse struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// ConversationHistory represents the transcript of a session.
type ConversationHistory struct {
	Messages []models.Turn `json:"messages"`
}

// StatusResponse represents the service status.
type StatusResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// RootResponse is the root health probe body.
type RootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
