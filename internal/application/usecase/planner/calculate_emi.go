package planner

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mintmind/backend/internal/application/adapter"
	domainerror "github.com/mintmind/backend/internal/domain/error"
	"github.com/mintmind/backend/internal/domain/finance"
)

// maxLoanTenureYears bounds EMI tenure.
const maxLoanTenureYears = 30

// CalculateEMIInput represents the input for an EMI calculation.
type CalculateEMIInput struct {
	UserID             uuid.UUID
	Principal          decimal.Decimal
	AnnualInterestRate float64
	TenureYears        int
}

// CalculateEMIOutput represents the amortization result with affordability
// context from the user's profile.
type CalculateEMIOutput struct {
	Principal     decimal.Decimal `json:"principal"`
	InterestRate  float64         `json:"interest_rate"`
	TenureMonths  int             `json:"tenure_months"`
	EMI           decimal.Decimal `json:"emi"`
	TotalPayment  decimal.Decimal `json:"total_payment"`
	TotalInterest decimal.Decimal `json:"total_interest"`
	MaxAffordable decimal.Decimal `json:"max_affordable_emi"`
	MaxLoanAmount decimal.Decimal `json:"max_loan_amount"`
	Affordable    bool            `json:"affordable"`
}

// CalculateEMIUseCase handles EMI calculation.
type CalculateEMIUseCase struct {
	userRepo adapter.UserRepository
}

// NewCalculateEMIUseCase creates a new CalculateEMIUseCase instance.
func NewCalculateEMIUseCase(userRepo adapter.UserRepository) *CalculateEMIUseCase {
	return &CalculateEMIUseCase{userRepo: userRepo}
}

// Execute computes the EMI and compares it against the 40%-of-income cap.
func (uc *CalculateEMIUseCase) Execute(ctx context.Context, input CalculateEMIInput) (*CalculateEMIOutput, error) {
	if !input.Principal.IsPositive() {
		return nil, domainerror.NewPlannerError(
			domainerror.ErrCodeInvalidPrincipal,
			"principal must be positive",
			domainerror.ErrInvalidPrincipal,
		)
	}
	if input.TenureYears < 1 || input.TenureYears > maxLoanTenureYears {
		return nil, domainerror.NewPlannerError(
			domainerror.ErrCodeInvalidTenure,
			fmt.Sprintf("tenure must be between 1 and %d years", maxLoanTenureYears),
			domainerror.ErrInvalidTenure,
		)
	}
	if input.AnnualInterestRate < 0 {
		return nil, domainerror.NewPlannerError(
			domainerror.ErrCodeInvalidInterestRate,
			"interest rate must not be negative",
			domainerror.ErrInvalidInterestRate,
		)
	}

	result := finance.CalculateEMI(input.Principal, input.AnnualInterestRate, input.TenureYears)

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	maxEMI := finance.MaxEMI(user.Profile.MonthlyIncome)
	maxLoan := finance.MaxLoanAmount(user.Profile.MonthlyIncome, input.AnnualInterestRate, input.TenureYears)

	return &CalculateEMIOutput{
		Principal:     result.Principal,
		InterestRate:  result.InterestRate,
		TenureMonths:  result.TenureMonths,
		EMI:           result.EMI,
		TotalPayment:  result.TotalPayment,
		TotalInterest: result.TotalInterest,
		MaxAffordable: maxEMI,
		MaxLoanAmount: maxLoan,
		Affordable:    result.EMI.LessThanOrEqual(maxEMI),
	}, nil
}
