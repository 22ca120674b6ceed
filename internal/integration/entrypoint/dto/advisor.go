package dto

import (
	"github.com/mintmind/backend/internal/application/usecase/advisor"
)

// ChatRequest represents the request body for a coaching chat message.
type ChatRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

// ChatResponse represents the coach's reply.
type ChatResponse struct {
	Reply    string `json:"reply"`
	Fallback bool   `json:"fallback"`
}

// ToChatResponse converts a ChatOutput to a ChatResponse DTO.
func ToChatResponse(output *advisor.ChatOutput) ChatResponse {
	return ChatResponse{
		Reply:    output.Reply,
		Fallback: output.Fallback,
	}
}
