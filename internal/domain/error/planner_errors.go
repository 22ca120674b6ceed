package error

import "errors"

// Planner domain errors.
var (
	// ErrInvalidMonthlyIncome is returned when a budget split is requested for a
	// negative monthly income.
	ErrInvalidMonthlyIncome = errors.New("monthly income must not be negative")

	// ErrInvalidBudgetSplit is returned when custom budget percentages do not sum to 100.
	ErrInvalidBudgetSplit = errors.New("budget percentages must sum to 100")

	// ErrInvalidInvestmentAmount is returned for a non-positive SIP contribution.
	ErrInvalidInvestmentAmount = errors.New("investment amount must be positive")

	// ErrInvalidTenure is returned for a non-positive tenure.
	ErrInvalidTenure = errors.New("tenure must be positive")

	// ErrInvalidInterestRate is returned for a negative interest rate.
	ErrInvalidInterestRate = errors.New("interest rate must not be negative")

	// ErrInvalidPrincipal is returned for a non-positive loan principal.
	ErrInvalidPrincipal = errors.New("principal must be positive")

	// ErrInvalidGoalTarget is returned for a non-positive goal target amount.
	ErrInvalidGoalTarget = errors.New("goal target amount must be positive")
)

// PlannerErrorCode defines error codes for planner errors.
// Format: PLN-XXYYYY where XX is category and YYYY is specific error.
type PlannerErrorCode string

const (
	ErrCodeInvalidMonthlyIncome    PlannerErrorCode = "PLN-010001"
	ErrCodeInvalidBudgetSplit      PlannerErrorCode = "PLN-010002"
	ErrCodeInvalidInvestmentAmount PlannerErrorCode = "PLN-010003"
	ErrCodeInvalidTenure           PlannerErrorCode = "PLN-010004"
	ErrCodeInvalidInterestRate     PlannerErrorCode = "PLN-010005"
	ErrCodeInvalidPrincipal        PlannerErrorCode = "PLN-010006"
	ErrCodeInvalidGoalTarget       PlannerErrorCode = "PLN-010007"
)

// PlannerError represents a planner error with code and message.
type PlannerError struct {
	Code    PlannerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PlannerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PlannerError) Unwrap() error {
	return e.Err
}

// NewPlannerError creates a new PlannerError with the given code and message.
func NewPlannerError(code PlannerErrorCode, message string, err error) *PlannerError {
	return &PlannerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
