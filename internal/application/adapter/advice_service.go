package adapter

import "context"

// AdviceService defines the interface for AI-backed financial coaching.
type AdviceService interface {
	// Advise sends a prompt with the user's financial context and returns
	// the generated advice text.
	Advise(ctx context.Context, prompt string) (string, error)

	// IsAvailable returns whether the service is configured and ready.
	IsAvailable() bool
}
