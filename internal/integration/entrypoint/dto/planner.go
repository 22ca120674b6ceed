package dto

import (
	"github.com/mintmind/backend/internal/application/usecase/planner"
)

// CalculateBudgetRequest represents the request body for a budget split.
// Income falls back to the profile when omitted; custom percentages must sum
// to 100 and all-zero means the standard 50/30/20 rule.
type CalculateBudgetRequest struct {
	MonthlyIncome  float64 `json:"monthly_income,omitempty"`
	NeedsPercent   int64   `json:"needs_percent,omitempty"`
	WantsPercent   int64   `json:"wants_percent,omitempty"`
	SavingsPercent int64   `json:"savings_percent,omitempty"`
}

// CalculateSIPRequest represents the request body for a SIP projection.
type CalculateSIPRequest struct {
	MonthlyInvestment float64 `json:"monthly_investment" binding:"required"`
	ExpectedReturn    float64 `json:"expected_return" binding:"required"`
	Years             int     `json:"years" binding:"required"`
}

// CalculateEMIRequest represents the request body for an EMI calculation.
type CalculateEMIRequest struct {
	Principal    float64 `json:"principal" binding:"required"`
	InterestRate float64 `json:"interest_rate" binding:"required"`
	TenureYears  int     `json:"tenure_years" binding:"required"`
}

// CreateGoalPlanRequest represents the request body for a goal plan.
type CreateGoalPlanRequest struct {
	TargetAmount   float64 `json:"target_amount" binding:"required"`
	TimelineYears  int     `json:"timeline_years" binding:"required"`
	CurrentSavings float64 `json:"current_savings,omitempty"`
}

// BudgetResponse represents the budget split with derived limits.
type BudgetResponse struct {
	MonthlyIncome string `json:"monthly_income"`
	Needs         string `json:"needs"`
	Wants         string `json:"wants"`
	Savings       string `json:"savings"`
	MonthlyLimit  string `json:"monthly_limit"`
	WeeklyLimit   string `json:"weekly_limit"`
	DailyLimit    string `json:"daily_limit"`
	EmergencyFund string `json:"emergency_fund"`
}

// SIPYearResponse is one row of the yearly SIP projection.
type SIPYearResponse struct {
	Year     int    `json:"year"`
	Invested string `json:"invested"`
	Returns  string `json:"returns"`
	Total    string `json:"total"`
}

// SIPResponse represents the SIP projection.
type SIPResponse struct {
	MonthlyInvestment string            `json:"monthly_investment"`
	ExpectedReturn    float64           `json:"expected_return"`
	Years             int               `json:"years"`
	TotalInvested     string            `json:"total_invested"`
	TotalReturns      string            `json:"total_returns"`
	FinalValue        string            `json:"final_value"`
	YearlyBreakdown   []SIPYearResponse `json:"yearly_breakdown"`
	RecommendedSIP    string            `json:"recommended_sip"`
}

// EMIResponse represents the amortization result with affordability context.
type EMIResponse struct {
	Principal     string  `json:"principal"`
	InterestRate  float64 `json:"interest_rate"`
	TenureMonths  int     `json:"tenure_months"`
	EMI           string  `json:"emi"`
	TotalPayment  string  `json:"total_payment"`
	TotalInterest string  `json:"total_interest"`
	MaxAffordable string  `json:"max_affordable_emi"`
	MaxLoanAmount string  `json:"max_loan_amount"`
	Affordable    bool    `json:"affordable"`
}

// GoalMilestoneResponse is one yearly milestone of a goal plan.
type GoalMilestoneResponse struct {
	Year        int    `json:"year"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

// GoalPlanResponse represents the goal plan.
type GoalPlanResponse struct {
	TargetAmount       string                  `json:"target_amount"`
	TimelineYears      int                     `json:"timeline_years"`
	CurrentSavings     string                  `json:"current_savings"`
	RequiredMonthlySIP string                  `json:"required_monthly_sip"`
	PossibleLoanAmount string                  `json:"possible_loan_amount"`
	Milestones         []GoalMilestoneResponse `json:"milestones"`
}

// ToBudgetResponse converts a CalculateBudgetOutput to a BudgetResponse DTO.
func ToBudgetResponse(output *planner.CalculateBudgetOutput) BudgetResponse {
	return BudgetResponse{
		MonthlyIncome: output.MonthlyIncome.String(),
		Needs:         output.Needs.String(),
		Wants:         output.Wants.String(),
		Savings:       output.Savings.String(),
		MonthlyLimit:  output.MonthlyLimit.String(),
		WeeklyLimit:   output.WeeklyLimit.String(),
		DailyLimit:    output.DailyLimit.String(),
		EmergencyFund: output.EmergencyFund.String(),
	}
}

// ToSIPResponse converts a CalculateSIPOutput to a SIPResponse DTO.
func ToSIPResponse(output *planner.CalculateSIPOutput) SIPResponse {
	breakdown := make([]SIPYearResponse, len(output.YearlyBreakdown))
	for i, year := range output.YearlyBreakdown {
		breakdown[i] = SIPYearResponse{
			Year:     year.Year,
			Invested: year.Invested.String(),
			Returns:  year.Returns.String(),
			Total:    year.Total.String(),
		}
	}

	return SIPResponse{
		MonthlyInvestment: output.MonthlyInvestment.String(),
		ExpectedReturn:    output.ExpectedReturn,
		Years:             output.Years,
		TotalInvested:     output.TotalInvested.String(),
		TotalReturns:      output.TotalReturns.String(),
		FinalValue:        output.FinalValue.String(),
		YearlyBreakdown:   breakdown,
		RecommendedSIP:    output.RecommendedSIP.String(),
	}
}

// ToEMIResponse converts a CalculateEMIOutput to an EMIResponse DTO.
func ToEMIResponse(output *planner.CalculateEMIOutput) EMIResponse {
	return EMIResponse{
		Principal:     output.Principal.String(),
		InterestRate:  output.InterestRate,
		TenureMonths:  output.TenureMonths,
		EMI:           output.EMI.String(),
		TotalPayment:  output.TotalPayment.String(),
		TotalInterest: output.TotalInterest.String(),
		MaxAffordable: output.MaxAffordable.String(),
		MaxLoanAmount: output.MaxLoanAmount.String(),
		Affordable:    output.Affordable,
	}
}

// ToGoalPlanResponse converts a CreateGoalPlanOutput to a GoalPlanResponse DTO.
func ToGoalPlanResponse(output *planner.CreateGoalPlanOutput) GoalPlanResponse {
	milestones := make([]GoalMilestoneResponse, len(output.Milestones))
	for i, milestone := range output.Milestones {
		milestones[i] = GoalMilestoneResponse{
			Year:        milestone.Year,
			Amount:      milestone.Amount.String(),
			Description: milestone.Description,
		}
	}

	return GoalPlanResponse{
		TargetAmount:       output.TargetAmount.String(),
		TimelineYears:      output.TimelineYears,
		CurrentSavings:     output.CurrentSavings.String(),
		RequiredMonthlySIP: output.RequiredMonthlySIP.String(),
		PossibleLoanAmount: output.PossibleLoanAmount.String(),
		Milestones:         milestones,
	}
}
