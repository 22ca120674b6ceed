package advisor

import (
	"context"
	"errors"
	"testing"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
		expectRetry  bool
	}{
		// Timeout/cancellation errors
		{
			name:         "context deadline exceeded",
			err:          context.DeadlineExceeded,
			expectedCode: ErrCodeAdviceTimeout,
			expectRetry:  true,
		},
		{
			name:         "context canceled",
			err:          context.Canceled,
			expectedCode: ErrCodeAdviceTimeout,
			expectRetry:  true,
		},
		// Rate limiting errors
		{
			name:         "rate limit error",
			err:          errors.New("rate limit exceeded"),
			expectedCode: ErrCodeAdviceRateLimited,
			expectRetry:  true,
		},
		{
			name:         "quota error",
			err:          errors.New("quota exceeded"),
			expectedCode: ErrCodeAdviceRateLimited,
			expectRetry:  true,
		},
		{
			name:         "429 status code error",
			err:          errors.New("HTTP 429: too many requests"),
			expectedCode: ErrCodeAdviceRateLimited,
			expectRetry:  true,
		},
		{
			name:         "resource exhausted error",
			err:          errors.New("resource exhausted"),
			expectedCode: ErrCodeAdviceRateLimited,
			expectRetry:  true,
		},
		// Authentication errors
		{
			name:         "401 unauthorized",
			err:          errors.New("401 unauthorized"),
			expectedCode: ErrCodeAdviceAuthError,
			expectRetry:  false,
		},
		{
			name:         "invalid api key",
			err:          errors.New("invalid api key"),
			expectedCode: ErrCodeAdviceAuthError,
			expectRetry:  false,
		},
		{
			name:         "authentication error",
			err:          errors.New("authentication failed"),
			expectedCode: ErrCodeAdviceAuthError,
			expectRetry:  false,
		},
		// Network/connection errors
		{
			name:         "connection refused",
			err:          errors.New("connection refused"),
			expectedCode: ErrCodeAdviceServiceUnavailable,
			expectRetry:  true,
		},
		{
			name:         "dial error",
			err:          errors.New("dial tcp: connection refused"),
			expectedCode: ErrCodeAdviceServiceUnavailable,
			expectRetry:  true,
		},
		{
			name:         "503 status code error",
			err:          errors.New("HTTP 503: service unavailable"),
			expectedCode: ErrCodeAdviceServiceUnavailable,
			expectRetry:  true,
		},
		// Unknown errors
		{
			name:         "unknown error",
			err:          errors.New("something unexpected happened"),
			expectedCode: ErrCodeAdviceUnknownError,
			expectRetry:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifyError(tt.err)

			if result.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, result.Code)
			}

			if result.Retryable != tt.expectRetry {
				t.Errorf("expected retryable %v, got %v", tt.expectRetry, result.Retryable)
			}

			if result.Message != errorMessages[tt.expectedCode] {
				t.Errorf("expected message %q, got %q", errorMessages[tt.expectedCode], result.Message)
			}

			if result.Timestamp.IsZero() {
				t.Error("expected non-zero timestamp")
			}
		})
	}
}

func TestClassifyError_CaseInsensitive(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
	}{
		{
			name:         "uppercase rate limit",
			err:          errors.New("RATE LIMIT exceeded"),
			expectedCode: ErrCodeAdviceRateLimited,
		},
		{
			name:         "mixed case network",
			err:          errors.New("Network Error"),
			expectedCode: ErrCodeAdviceServiceUnavailable,
		},
		{
			name:         "mixed case unauthorized",
			err:          errors.New("Unauthorized access"),
			expectedCode: ErrCodeAdviceAuthError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifyError(tt.err)

			if result.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, result.Code)
			}
		})
	}
}

func TestErrorMessages_AllCodesHaveMessages(t *testing.T) {
	codes := []string{
		ErrCodeAdviceServiceUnavailable,
		ErrCodeAdviceRateLimited,
		ErrCodeAdviceAuthError,
		ErrCodeAdviceTimeout,
		ErrCodeAdviceUnknownError,
	}

	for _, code := range codes {
		t.Run(code, func(t *testing.T) {
			message, exists := errorMessages[code]
			if !exists {
				t.Errorf("missing message for code %s", code)
			}
			if message == "" {
				t.Errorf("empty message for code %s", code)
			}
		})
	}
}
