package finance

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mintmind/backend/internal/domain/entity"
)

// CategoryHealth is the tri-state classification of how much of a category's
// assumed budget share has been consumed.
type CategoryHealth string

const (
	CategoryHealthy  CategoryHealth = "healthy"
	CategoryWarning  CategoryHealth = "warning"
	CategoryCritical CategoryHealth = "critical"
)

// categoryAllocationShare is the assumed fraction of the monthly limit
// allocated to a single expense category.
var categoryAllocationShare = decimal.NewFromFloat(0.25)

// nonEssentialCategories are the only categories a skip suggestion may target.
var nonEssentialCategories = map[entity.Category]bool{
	entity.CategoryEntertainment: true,
	entity.CategoryShopping:      true,
	entity.CategoryFuel:          true,
}

// TransactionInsight is the per-transaction advisory signal set. It is derived
// on demand from the owning month's transaction set and never persisted.
type TransactionInsight struct {
	TransactionID uuid.UUID

	// AccurateBurnRate divides net expenses by the count of distinct days that
	// actually contain transactions, which corrects the calendar-day burn rate's
	// over-penalty early in the month.
	AccurateBurnRate decimal.Decimal
	// BurnRateDrift is this transaction's marginal effect on AccurateBurnRate.
	BurnRateDrift decimal.Decimal
	// MonthEndImpact is the change in projected month-end expenses attributable
	// to this transaction, in whole currency units.
	MonthEndImpact decimal.Decimal
	CategoryHealth CategoryHealth
	// ShouldSkip is only ever true for non-essential categories in critical
	// health with no recurring pattern; recurring bills are never flagged.
	ShouldSkip bool
	// SavingsIndex scores the transaction 1-10 relative to the category's
	// per-active-day average. 5 is neutral.
	SavingsIndex float64
	// MomentAnalysis compares the transaction to the category's average spend
	// per active day.
	MomentAnalysis string
	// PredictiveAlert is non-empty when the calendar-day burn rate projects the
	// month to exceed the limit by more than 5%.
	PredictiveAlert string
}

// BuildTransactionInsight derives the advisory signals for one transaction
// given the full this-month set and the user's configured monthly limit.
// Income transactions get a neutral insight: the engine only evaluates
// behavior for expenses.
func BuildTransactionInsight(
	target *entity.Transaction,
	monthTxs []*entity.Transaction,
	monthlyLimit decimal.Decimal,
	now time.Time,
) TransactionInsight {
	if target.Type == entity.TransactionTypeIncome {
		return TransactionInsight{
			TransactionID:  target.ID,
			CategoryHealth: CategoryHealthy,
			SavingsIndex:   5,
			MonthEndImpact: target.Amount.Round(0),
		}
	}

	withoutTarget := make([]*entity.Transaction, 0, len(monthTxs))
	for _, t := range monthTxs {
		if t.ID != target.ID {
			withoutTarget = append(withoutTarget, t)
		}
	}

	rateWith := accurateBurnRate(monthTxs)
	rateWithout := accurateBurnRate(withoutTarget)

	remaining := daysInMonth(now) - now.Day()
	if remaining < 0 {
		remaining = 0
	}
	remainingDays := decimal.NewFromInt(int64(remaining))

	projectedWith := netExpenses(monthTxs).Add(rateWith.Mul(remainingDays))
	projectedWithout := netExpenses(withoutTarget).Add(rateWithout.Mul(remainingDays))

	categoryTotal, categoryActiveDays := categorySpendProfile(monthTxs, target.Category)
	health := classifyCategoryHealth(categoryTotal, monthlyLimit)
	recurring := countRecurringAmounts(monthTxs, target.Category, now)

	avgPerActiveDay := categoryTotal.Div(decimal.NewFromInt(int64(maxInt(1, categoryActiveDays))))

	return TransactionInsight{
		TransactionID:    target.ID,
		AccurateBurnRate: rateWith.Round(2),
		BurnRateDrift:    rateWith.Sub(rateWithout).Round(2),
		MonthEndImpact:   projectedWith.Sub(projectedWithout).Round(0),
		CategoryHealth:   health,
		ShouldSkip:       nonEssentialCategories[target.Category] && health == CategoryCritical && recurring == 0,
		SavingsIndex:     savingsIndex(target.Amount, avgPerActiveDay),
		MomentAnalysis:   momentAnalysis(target, avgPerActiveDay),
		PredictiveAlert:  predictiveAlert(monthTxs, monthlyLimit, now),
	}
}

// netExpenses is gross expenses minus refunds, floored at zero.
func netExpenses(txs []*entity.Transaction) decimal.Decimal {
	raw := TotalByType(txs, entity.TransactionTypeExpense)
	refunds := decimal.Zero
	for _, t := range txs {
		if t.Type == entity.TransactionTypeIncome && t.Category == entity.CategoryRefund {
			refunds = refunds.Add(t.Amount)
		}
	}
	net := raw.Sub(refunds)
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}

// accurateBurnRate divides net expenses by the number of distinct days that
// contain at least one transaction, floored at one day.
func accurateBurnRate(txs []*entity.Transaction) decimal.Decimal {
	days := make(map[string]bool)
	for _, t := range txs {
		days[t.Date.Format(dateKeyFormat)] = true
	}
	return netExpenses(txs).Div(decimal.NewFromInt(int64(maxInt(1, len(days)))))
}

// categorySpendProfile returns the category's expense total and the count of
// distinct days with at least one expense in the category.
func categorySpendProfile(txs []*entity.Transaction, category entity.Category) (decimal.Decimal, int) {
	total := decimal.Zero
	days := make(map[string]bool)
	for _, t := range txs {
		if t.Type != entity.TransactionTypeExpense || t.Category != category {
			continue
		}
		total = total.Add(t.Amount)
		days[t.Date.Format(dateKeyFormat)] = true
	}
	return total, len(days)
}

// classifyCategoryHealth compares the category's month total against an
// assumed 25%-of-limit allocation: critical above 90% of it, warning above 70%.
func classifyCategoryHealth(categoryTotal, monthlyLimit decimal.Decimal) CategoryHealth {
	allocation := monthlyLimit.Mul(categoryAllocationShare)
	switch {
	case categoryTotal.GreaterThan(allocation.Mul(decimal.NewFromFloat(0.9))):
		return CategoryCritical
	case categoryTotal.GreaterThan(allocation.Mul(decimal.NewFromFloat(0.7))):
		return CategoryWarning
	default:
		return CategoryHealthy
	}
}

// savingsIndex maps how far the amount sits above the category's per-active-day
// average onto a 1-10 scale, 5 being neutral, rounded to one decimal.
func savingsIndex(amount, avgPerActiveDay decimal.Decimal) float64 {
	pctAbove := 0.0
	if avgPerActiveDay.IsPositive() {
		pctAbove, _ = amount.Sub(avgPerActiveDay).Div(avgPerActiveDay).Mul(decimal.NewFromInt(100)).Float64()
	}

	index := 5 + pctAbove/100*5
	if index < 1 {
		index = 1
	}
	if index > 10 {
		index = 10
	}
	return roundTo1(index)
}

func roundTo1(v float64) float64 {
	d := decimal.NewFromFloat(v).Round(1)
	f, _ := d.Float64()
	return f
}

// momentAnalysis describes the transaction against the category's average
// spend per active day, flagging spends more than 20% above it.
func momentAnalysis(target *entity.Transaction, avgPerActiveDay decimal.Decimal) string {
	if !avgPerActiveDay.IsPositive() {
		return fmt.Sprintf("First %s spend recorded this month", target.Category)
	}

	threshold := avgPerActiveDay.Mul(decimal.NewFromFloat(1.2))
	if target.Amount.GreaterThan(threshold) {
		pct, _ := target.Amount.Sub(avgPerActiveDay).Div(avgPerActiveDay).Mul(decimal.NewFromInt(100)).Float64()
		return fmt.Sprintf(
			"This %s spend of %s is %.0f%% above your usual %s per spending day",
			target.Category, target.Amount.StringFixed(0), pct, avgPerActiveDay.StringFixed(0),
		)
	}
	return fmt.Sprintf(
		"This %s spend of %s is in line with your usual %s per spending day",
		target.Category, target.Amount.StringFixed(0), avgPerActiveDay.StringFixed(0),
	)
}

// predictiveAlert extrapolates the month by the calendar-day burn rate and
// reports a breach when the projection exceeds the limit by more than 5%.
func predictiveAlert(monthTxs []*entity.Transaction, monthlyLimit decimal.Decimal, now time.Time) string {
	if !monthlyLimit.IsPositive() {
		return ""
	}

	net := netExpenses(monthTxs)
	burnRate := net.Div(decimal.NewFromInt(int64(maxInt(1, now.Day()))))
	projected := burnRate.Mul(decimal.NewFromInt(int64(daysInMonth(now))))

	if projected.LessThanOrEqual(monthlyLimit.Mul(decimal.NewFromFloat(1.05))) {
		return ""
	}

	breach := projected.Sub(monthlyLimit).Round(0)
	return fmt.Sprintf(
		"On track to exceed the monthly limit by %s (current burn rate %s/day)",
		breach.StringFixed(0), burnRate.Round(2).String(),
	)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
