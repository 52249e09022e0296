// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import "github.com/josephmowjew/communication-agent/internal/domain/models"

// ChatRequest represents the request body for a chat turn.
type ChatRequest struct {
	Message string `json:"message" binding:"required,min=1,max=4096"`
}

// EmailRequest represents the request body for generating an email response.
type EmailRequest struct {
	CustomerMessage string               `json:"customer_message" binding:"required,min=1,max=8192"`
	Context         *models.EmailContext `json:"context"`
	Tone            string               `json:"tone" binding:"omitempty,oneof=professional friendly formal empathetic direct"`
	MaxLength       int                  `json:"max_length" binding:"omitempty,min=1,max=4096"`
}
