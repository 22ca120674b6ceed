package finance

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mintmind/backend/internal/domain/entity"
)

// Trend classifies how the current month compares to the trailing average.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// PatternAnalysis holds per-category statistics over a trailing three-month
// window ending in the month that contains the evaluation instant.
type PatternAnalysis struct {
	Category          entity.Category
	MonthlyTotals     [3]decimal.Decimal // oldest first, current month last
	CurrentMonthTotal decimal.Decimal
	ThreeMonthAverage decimal.Decimal
	Trend             Trend
	Volatility        decimal.Decimal // population standard deviation of the three totals, 2dp
	RecurringExpenses int             // distinct repeated amounts in the current month
}

// AnalyzePattern computes trailing statistics for one expense category from
// the full transaction collection. It is idempotent: the same inputs always
// yield the same analysis.
func AnalyzePattern(txs []*entity.Transaction, category entity.Category, now time.Time) PatternAnalysis {
	var totals [3]decimal.Decimal
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	for i := 0; i < 3; i++ {
		// totals[0] is two months back, totals[2] is the current month.
		monthStart := anchor.AddDate(0, i-2, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)
		total := decimal.Zero
		for _, t := range txs {
			if t.Type != entity.TransactionTypeExpense || t.Category != category {
				continue
			}
			if t.Date.Before(monthStart) || !t.Date.Before(monthEnd) {
				continue
			}
			total = total.Add(t.Amount)
		}
		totals[i] = total
	}

	average := totals[0].Add(totals[1]).Add(totals[2]).Div(decimal.NewFromInt(3))
	current := totals[2]

	trend := TrendStable
	switch {
	case current.GreaterThan(average.Mul(decimal.NewFromFloat(1.1))):
		trend = TrendIncreasing
	case current.LessThan(average.Mul(decimal.NewFromFloat(0.9))):
		trend = TrendDecreasing
	}

	return PatternAnalysis{
		Category:          category,
		MonthlyTotals:     totals,
		CurrentMonthTotal: current,
		ThreeMonthAverage: average.Round(2),
		Trend:             trend,
		Volatility:        populationStdDev(totals[:]),
		RecurringExpenses: countRecurringAmounts(txs, category, now),
	}
}

// populationStdDev computes the population standard deviation of the monthly
// totals, rounded to 2 decimal places. decimal has no square root, so the
// final step goes through float64.
func populationStdDev(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}

	n := decimal.NewFromInt(int64(len(values)))
	mean := decimal.Zero
	for _, v := range values {
		mean = mean.Add(v)
	}
	mean = mean.Div(n)

	variance := decimal.Zero
	for _, v := range values {
		diff := v.Sub(mean)
		variance = variance.Add(diff.Mul(diff))
	}
	varianceFloat, _ := variance.Div(n).Float64()

	return decimal.NewFromFloat(math.Sqrt(varianceFloat)).Round(2)
}

// countRecurringAmounts counts the distinct amount values appearing more than
// once among the current month's expenses in the category. Repeated identical
// amounts are a cheap proxy for subscriptions and recurring bills.
func countRecurringAmounts(txs []*entity.Transaction, category entity.Category, now time.Time) int {
	monthStart, monthEnd := MonthWindow(now)

	occurrences := make(map[string]int)
	for _, t := range txs {
		if t.Type != entity.TransactionTypeExpense || t.Category != category {
			continue
		}
		if t.Date.Before(monthStart) || t.Date.After(monthEnd) {
			continue
		}
		occurrences[t.Amount.String()]++
	}

	recurring := 0
	for _, count := range occurrences {
		if count > 1 {
			recurring++
		}
	}
	return recurring
}
