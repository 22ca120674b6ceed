// Package advisor contains the AI financial coach use cases.
package advisor

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Error code constants for advice generation errors.
const (
	ErrCodeAdviceServiceUnavailable = "ADVICE_SERVICE_UNAVAILABLE"
	ErrCodeAdviceRateLimited        = "ADVICE_RATE_LIMITED"
	ErrCodeAdviceAuthError          = "ADVICE_AUTH_ERROR"
	ErrCodeAdviceTimeout            = "ADVICE_TIMEOUT"
	ErrCodeAdviceUnknownError       = "ADVICE_UNKNOWN_ERROR"
)

// errorMessages contains user-facing messages for each error code.
var errorMessages = map[string]string{
	ErrCodeAdviceServiceUnavailable: "The coaching service is temporarily unavailable. Please try again later.",
	ErrCodeAdviceRateLimited:        "Too many requests. Wait a few minutes and try again.",
	ErrCodeAdviceAuthError:          "Coaching service configuration error. Please contact support.",
	ErrCodeAdviceTimeout:            "The request took longer than expected. Please try again.",
	ErrCodeAdviceUnknownError:       "An unexpected error occurred while generating advice. Please try again.",
}

// ProcessingError represents an error that occurred during advice generation.
type ProcessingError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

// classifyError converts a Go error to a ProcessingError with appropriate
// error code, user-facing message, and retryable flag.
func classifyError(err error) *ProcessingError {
	now := time.Now()
	errStr := strings.ToLower(err.Error())

	// Check for timeout/cancellation (context errors)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &ProcessingError{
			Code:      ErrCodeAdviceTimeout,
			Message:   errorMessages[ErrCodeAdviceTimeout],
			Retryable: true,
			Timestamp: now,
		}
	}

	// Check for rate limiting
	if strings.Contains(errStr, "rate limit") || strings.Contains(errStr, "quota") ||
		strings.Contains(errStr, "429") || strings.Contains(errStr, "resource exhausted") {
		return &ProcessingError{
			Code:      ErrCodeAdviceRateLimited,
			Message:   errorMessages[ErrCodeAdviceRateLimited],
			Retryable: true,
			Timestamp: now,
		}
	}

	// Check for authentication errors
	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") ||
		strings.Contains(errStr, "invalid api key") || strings.Contains(errStr, "unauthorized") ||
		strings.Contains(errStr, "authentication") {
		return &ProcessingError{
			Code:      ErrCodeAdviceAuthError,
			Message:   errorMessages[ErrCodeAdviceAuthError],
			Retryable: false,
			Timestamp: now,
		}
	}

	// Check for network/connection errors
	if strings.Contains(errStr, "connection") || strings.Contains(errStr, "network") ||
		strings.Contains(errStr, "dial") || strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "unavailable") || strings.Contains(errStr, "503") {
		return &ProcessingError{
			Code:      ErrCodeAdviceServiceUnavailable,
			Message:   errorMessages[ErrCodeAdviceServiceUnavailable],
			Retryable: true,
			Timestamp: now,
		}
	}

	// Default to unknown error
	return &ProcessingError{
		Code:      ErrCodeAdviceUnknownError,
		Message:   errorMessages[ErrCodeAdviceUnknownError],
		Retryable: true,
		Timestamp: now,
	}
}
