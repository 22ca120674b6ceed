package finance

import "github.com/shopspring/decimal"

// BudgetBreakdown is the 50/30/20 (or custom) split of a monthly income, with
// the derived spending limits the dashboard and insight engine consume.
type BudgetBreakdown struct {
	Needs        decimal.Decimal
	Wants        decimal.Decimal
	Savings      decimal.Decimal
	MonthlyLimit decimal.Decimal // needs + wants
	WeeklyLimit  decimal.Decimal // monthly / 4.33
	DailyLimit   decimal.Decimal // monthly / 30
}

var (
	weeksPerMonth = decimal.NewFromFloat(4.33)
	daysPerMonth  = decimal.NewFromInt(30)
)

// SplitBudget applies the standard 50/30/20 rule to a monthly income. All
// amounts are rounded to whole currency units.
func SplitBudget(monthlyIncome decimal.Decimal) BudgetBreakdown {
	return SplitBudgetCustom(monthlyIncome, 50, 30, 20)
}

// SplitBudgetCustom splits a monthly income by the given needs/wants/savings
// percentages.
func SplitBudgetCustom(monthlyIncome decimal.Decimal, needsPercent, wantsPercent, savingsPercent int64) BudgetBreakdown {
	hundred := decimal.NewFromInt(100)
	needs := monthlyIncome.Mul(decimal.NewFromInt(needsPercent)).Div(hundred)
	wants := monthlyIncome.Mul(decimal.NewFromInt(wantsPercent)).Div(hundred)
	savings := monthlyIncome.Mul(decimal.NewFromInt(savingsPercent)).Div(hundred)

	monthlyLimit := needs.Add(wants)

	return BudgetBreakdown{
		Needs:        needs.Round(0),
		Wants:        wants.Round(0),
		Savings:      savings.Round(0),
		MonthlyLimit: monthlyLimit.Round(0),
		WeeklyLimit:  monthlyLimit.Div(weeksPerMonth).Round(0),
		DailyLimit:   monthlyLimit.Div(daysPerMonth).Round(0),
	}
}

// EmergencyFund is the recommended reserve: six months of expenses.
func EmergencyFund(monthlyExpenses decimal.Decimal) decimal.Decimal {
	return monthlyExpenses.Mul(decimal.NewFromInt(6)).Round(0)
}
