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

// maxProjectionYears bounds SIP and goal horizons to something renderable.
const maxProjectionYears = 50

// CalculateSIPInput represents the input for a SIP projection.
type CalculateSIPInput struct {
	UserID                uuid.UUID
	MonthlyInvestment     decimal.Decimal
	ExpectedReturnPercent float64
	Years                 int
}

// SIPYearOutput is one row of the yearly projection.
type SIPYearOutput struct {
	Year     int             `json:"year"`
	Invested decimal.Decimal `json:"invested"`
	Returns  decimal.Decimal `json:"returns"`
	Total    decimal.Decimal `json:"total"`
}

// CalculateSIPOutput represents the SIP projection with the profile-derived
// recommendation.
type CalculateSIPOutput struct {
	MonthlyInvestment decimal.Decimal `json:"monthly_investment"`
	ExpectedReturn    float64         `json:"expected_return"`
	Years             int             `json:"years"`
	TotalInvested     decimal.Decimal `json:"total_invested"`
	TotalReturns      decimal.Decimal `json:"total_returns"`
	FinalValue        decimal.Decimal `json:"final_value"`
	YearlyBreakdown   []SIPYearOutput `json:"yearly_breakdown"`
	RecommendedSIP    decimal.Decimal `json:"recommended_sip"`
}

// CalculateSIPUseCase handles SIP projection.
type CalculateSIPUseCase struct {
	userRepo adapter.UserRepository
}

// NewCalculateSIPUseCase creates a new CalculateSIPUseCase instance.
func NewCalculateSIPUseCase(userRepo adapter.UserRepository) *CalculateSIPUseCase {
	return &CalculateSIPUseCase{userRepo: userRepo}
}

// Execute projects the SIP and attaches the recommendation derived from the
// user's profile surplus and risk level.
func (uc *CalculateSIPUseCase) Execute(ctx context.Context, input CalculateSIPInput) (*CalculateSIPOutput, error) {
	if !input.MonthlyInvestment.IsPositive() {
		return nil, domainerror.NewPlannerError(
			domainerror.ErrCodeInvalidInvestmentAmount,
			"monthly investment must be positive",
			domainerror.ErrInvalidInvestmentAmount,
		)
	}
	if input.Years < 1 || input.Years > maxProjectionYears {
		return nil, domainerror.NewPlannerError(
			domainerror.ErrCodeInvalidTenure,
			fmt.Sprintf("years must be between 1 and %d", maxProjectionYears),
			domainerror.ErrInvalidTenure,
		)
	}
	if input.ExpectedReturnPercent < 0 {
		return nil, domainerror.NewPlannerError(
			domainerror.ErrCodeInvalidInterestRate,
			"expected return must not be negative",
			domainerror.ErrInvalidInterestRate,
		)
	}

	result := finance.CalculateSIP(input.MonthlyInvestment, input.ExpectedReturnPercent, input.Years)

	breakdown := make([]SIPYearOutput, 0, len(result.YearlyBreakdown))
	for _, y := range result.YearlyBreakdown {
		breakdown = append(breakdown, SIPYearOutput{
			Year:     y.Year,
			Invested: y.Invested,
			Returns:  y.Returns,
			Total:    y.Total,
		})
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	recommended := finance.RecommendedSIP(
		user.Profile.MonthlyIncome,
		user.Profile.MonthlyExpenses,
		user.Profile.RiskLevel,
	)

	return &CalculateSIPOutput{
		MonthlyInvestment: result.MonthlyInvestment,
		ExpectedReturn:    result.ExpectedReturn,
		Years:             result.Years,
		TotalInvested:     result.TotalInvested,
		TotalReturns:      result.TotalReturns,
		FinalValue:        result.FinalValue,
		YearlyBreakdown:   breakdown,
		RecommendedSIP:    recommended,
	}, nil
}
