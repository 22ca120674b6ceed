package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mintmind/backend/internal/domain/entity"
)

// MonthSummary is the derived month aggregate the dashboard is built on.
// It is recomputed on demand and never persisted.
//
// Refund accounting: income transactions in the Refund category are excluded
// from TrueIncome and subtracted from gross expenses instead, with the result
// floored at zero.
type MonthSummary struct {
	TrueIncome         decimal.Decimal
	TotalRefunds       decimal.Decimal
	RawExpenses        decimal.Decimal
	NetExpenses        decimal.Decimal
	RemainingBudget    decimal.Decimal
	BurnRate           decimal.Decimal // net expenses per elapsed calendar day, 2dp
	MonthEndProjection decimal.Decimal // true income minus burn rate over the full month, 2dp
	DailySpent         decimal.Decimal
	WeeklySpent        decimal.Decimal
	Breakdown          []CategoryBreakdown // expense categories, percentage of net expenses
}

// BuildMonthSummary derives the month aggregate from transactions already
// restricted to the reporting month. The burn-rate denominator is the current
// calendar day number at now, not the number of days that contain
// transactions; see TransactionInsight for the active-day variant.
func BuildMonthSummary(monthTxs []*entity.Transaction, now time.Time) MonthSummary {
	var (
		trueIncome   = decimal.Zero
		totalRefunds = decimal.Zero
		rawExpenses  = decimal.Zero
	)

	for _, t := range monthTxs {
		switch t.Type {
		case entity.TransactionTypeIncome:
			if t.Category == entity.CategoryRefund {
				totalRefunds = totalRefunds.Add(t.Amount)
			} else {
				trueIncome = trueIncome.Add(t.Amount)
			}
		case entity.TransactionTypeExpense:
			rawExpenses = rawExpenses.Add(t.Amount)
		}
	}

	netExpenses := rawExpenses.Sub(totalRefunds)
	if netExpenses.IsNegative() {
		netExpenses = decimal.Zero
	}

	dayOfMonth := now.Day()
	if dayOfMonth < 1 {
		dayOfMonth = 1
	}
	burnRate := netExpenses.Div(decimal.NewFromInt(int64(dayOfMonth))).Round(2)
	projection := trueIncome.Sub(burnRate.Mul(decimal.NewFromInt(int64(daysInMonth(now))))).Round(2)

	dayStart, dayEnd := DayWindow(now)
	weekStart, weekEnd := WeekWindow(now)

	return MonthSummary{
		TrueIncome:         trueIncome,
		TotalRefunds:       totalRefunds,
		RawExpenses:        rawExpenses,
		NetExpenses:        netExpenses,
		RemainingBudget:    trueIncome.Sub(netExpenses),
		BurnRate:           burnRate,
		MonthEndProjection: projection,
		DailySpent:         TotalByType(FilterByDateRange(monthTxs, dayStart, dayEnd), entity.TransactionTypeExpense),
		WeeklySpent:        TotalByType(FilterByDateRange(monthTxs, weekStart, weekEnd), entity.TransactionTypeExpense),
		Breakdown:          expenseBreakdownOfNet(monthTxs, netExpenses),
	}
}

// expenseBreakdownOfNet builds the expense category breakdown with percentages
// taken against net expenses rather than the gross expense total.
func expenseBreakdownOfNet(txs []*entity.Transaction, netExpenses decimal.Decimal) []CategoryBreakdown {
	sums := make(map[entity.Category]decimal.Decimal)
	for _, t := range txs {
		if t.Type != entity.TransactionTypeExpense {
			continue
		}
		sums[t.Category] = sums[t.Category].Add(t.Amount)
	}
	return breakdownFromSums(sums, netExpenses)
}

// RemainingBudget compares spend in the day/week/month windows around now
// against the configured limits.
type RemainingBudget struct {
	DailySpent       decimal.Decimal
	WeeklySpent      decimal.Decimal
	MonthlySpent     decimal.Decimal
	DailyRemaining   decimal.Decimal
	WeeklyRemaining  decimal.Decimal
	MonthlyRemaining decimal.Decimal
}

// BuildRemainingBudget computes window spend and remaining headroom from the
// full transaction collection.
func BuildRemainingBudget(txs []*entity.Transaction, dailyLimit, weeklyLimit, monthlyLimit decimal.Decimal, now time.Time) RemainingBudget {
	dayStart, dayEnd := DayWindow(now)
	weekStart, weekEnd := WeekWindow(now)
	monthStart, monthEnd := MonthWindow(now)

	dailySpent := TotalByType(FilterByDateRange(txs, dayStart, dayEnd), entity.TransactionTypeExpense)
	weeklySpent := TotalByType(FilterByDateRange(txs, weekStart, weekEnd), entity.TransactionTypeExpense)
	monthlySpent := TotalByType(FilterByDateRange(txs, monthStart, monthEnd), entity.TransactionTypeExpense)

	return RemainingBudget{
		DailySpent:       dailySpent,
		WeeklySpent:      weeklySpent,
		MonthlySpent:     monthlySpent,
		DailyRemaining:   dailyLimit.Sub(dailySpent),
		WeeklyRemaining:  weeklyLimit.Sub(weeklySpent),
		MonthlyRemaining: monthlyLimit.Sub(monthlySpent),
	}
}
