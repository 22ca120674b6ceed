package error

import "errors"

// Insight domain errors.
var (
	// ErrMonthlyLimitNotConfigured is returned when insight generation is requested
	// before the user's budget profile exists. There is deliberately no fallback
	// limit: insights without a real limit are misleading.
	ErrMonthlyLimitNotConfigured = errors.New("monthly limit not configured")

	// ErrInsightTransactionNotFound is returned when the target transaction does not exist.
	ErrInsightTransactionNotFound = errors.New("transaction for insight not found")

	// ErrInvalidPatternCategory is returned when pattern analysis is requested for
	// a label that is not an expense category.
	ErrInvalidPatternCategory = errors.New("invalid expense category")
)

// InsightErrorCode defines error codes for insight errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InsightErrorCode string

const (
	ErrCodeMonthlyLimitNotConfigured  InsightErrorCode = "INS-010001"
	ErrCodeInsightTransactionNotFound InsightErrorCode = "INS-010002"
	ErrCodeInvalidPatternCategory     InsightErrorCode = "INS-010003"
)

// InsightError represents an insight error with code and message.
type InsightError struct {
	Code    InsightErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InsightError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InsightError) Unwrap() error {
	return e.Err
}

// NewInsightError creates a new InsightError with the given code and message.
func NewInsightError(code InsightErrorCode, message string, err error) *InsightError {
	return &InsightError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
