package finance

import (
	"github.com/shopspring/decimal"
)

// GoalMilestone is one year of projected progress towards a goal.
type GoalMilestone struct {
	Year        int
	Amount      decimal.Decimal
	Description string
}

// GoalPlan is the plan for reaching a savings target: the required monthly
// SIP for the shortfall, the loan the income could service instead, and
// year-by-year milestones.
type GoalPlan struct {
	TargetAmount       decimal.Decimal
	TimelineYears      int
	CurrentSavings     decimal.Decimal
	RequiredMonthlySIP decimal.Decimal
	PossibleLoanAmount decimal.Decimal
	Milestones         []GoalMilestone
}

const (
	defaultGoalReturnPercent = 12
	defaultLoanRatePercent   = 8.5
	maxLoanTenureYears       = 20
)

// CreateGoalPlan plans a savings target over the given timeline. The SIP
// return defaults to 12% and the alternative loan rate to 8.5%.
func CreateGoalPlan(targetAmount decimal.Decimal, timelineYears int, currentSavings, monthlyIncome decimal.Decimal) GoalPlan {
	remaining := targetAmount.Sub(currentSavings)
	requiredSIP := TargetSIP(remaining, timelineYears, defaultGoalReturnPercent)

	loanTenure := timelineYears
	if loanTenure > maxLoanTenureYears {
		loanTenure = maxLoanTenureYears
	}
	possibleLoan := MaxLoanAmount(monthlyIncome, defaultLoanRatePercent, loanTenure)

	sip, _ := requiredSIP.Float64()
	monthlyRate := float64(defaultGoalReturnPercent) / 100 / 12

	milestones := make([]GoalMilestone, 0, timelineYears)
	for year := 1; year <= timelineYears; year++ {
		accumulated := currentSavings.Add(decimal.NewFromFloat(sipFutureValue(sip, monthlyRate, year*12)))

		percentage := 0.0
		if targetAmount.IsPositive() {
			percentage, _ = accumulated.Div(targetAmount).Mul(decimal.NewFromInt(100)).Float64()
		}

		milestones = append(milestones, GoalMilestone{
			Year:        year,
			Amount:      accumulated.Round(0),
			Description: milestoneDescription(percentage),
		})
	}

	return GoalPlan{
		TargetAmount:       targetAmount,
		TimelineYears:      timelineYears,
		CurrentSavings:     currentSavings,
		RequiredMonthlySIP: requiredSIP,
		PossibleLoanAmount: possibleLoan,
		Milestones:         milestones,
	}
}

func milestoneDescription(percentage float64) string {
	switch {
	case percentage >= 100:
		return "Goal achieved!"
	case percentage >= 75:
		return "Almost there!"
	case percentage >= 50:
		return "Halfway to your goal"
	case percentage >= 25:
		return "Good progress"
	default:
		return "Building momentum"
	}
}
