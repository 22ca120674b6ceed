// Package finance implements the analytics engine: pure, stateless
// computations over in-memory transaction collections. Every function is a
// pure function of its inputs — the evaluation instant is always passed in
// explicitly, there is no hidden clock, cache or randomness, and identical
// inputs always produce identical outputs. Divisions are guarded by
// construction so no NaN or Infinity can ever surface.
package finance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mintmind/backend/internal/domain/entity"
)

// dateKeyFormat is the date-only key used to bucket transactions by calendar day.
const dateKeyFormat = "2006-01-02"

// CategoryBreakdown is the derived per-category slice of a transaction subset.
// Percentage is relative to the subset's own total, not to overall activity.
type CategoryBreakdown struct {
	Category   entity.Category
	Amount     decimal.Decimal
	Percentage float64
}

// DailyExpense is one point of the daily expense series.
type DailyExpense struct {
	Date   string // "2006-01-02"
	Amount decimal.Decimal
}

// FilterByDateRange returns the transactions whose date falls inside
// [start, end], compared as instants (both bounds inclusive).
func FilterByDateRange(txs []*entity.Transaction, start, end time.Time) []*entity.Transaction {
	filtered := make([]*entity.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

// TotalByType sums the amounts of transactions matching the given type.
// An empty input yields zero.
func TotalByType(txs []*entity.Transaction, transactionType entity.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		if t.Type == transactionType {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// Breakdown aggregates transactions of the given type per category, sorted by
// descending amount. Percentages are taken against the filtered subset's own
// total; when that total is zero every percentage is zero.
func Breakdown(txs []*entity.Transaction, transactionType entity.TransactionType) []CategoryBreakdown {
	sums := make(map[entity.Category]decimal.Decimal)
	total := decimal.Zero
	for _, t := range txs {
		if t.Type != transactionType {
			continue
		}
		sums[t.Category] = sums[t.Category].Add(t.Amount)
		total = total.Add(t.Amount)
	}

	return breakdownFromSums(sums, total)
}

// breakdownFromSums turns per-category sums into a sorted breakdown with
// percentages relative to the given total.
func breakdownFromSums(sums map[entity.Category]decimal.Decimal, total decimal.Decimal) []CategoryBreakdown {
	breakdown := make([]CategoryBreakdown, 0, len(sums))
	for category, amount := range sums {
		percentage := 0.0
		if total.IsPositive() {
			percentage, _ = amount.Div(total).Mul(decimal.NewFromInt(100)).Float64()
		}
		breakdown = append(breakdown, CategoryBreakdown{
			Category:   category,
			Amount:     amount,
			Percentage: percentage,
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Amount.Equal(breakdown[j].Amount) {
			return breakdown[i].Category < breakdown[j].Category
		}
		return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
	})

	return breakdown
}

// DailySeries returns the expense total for each of the last days calendar
// days ending at now (oldest first, today included). Days without expenses
// report zero so chart rendering never sees gaps.
func DailySeries(txs []*entity.Transaction, days int, now time.Time) []DailyExpense {
	if days <= 0 {
		return []DailyExpense{}
	}

	// Bucket keys and the series grid must share one location, otherwise a
	// transaction stored in another zone can land on the wrong local day.
	sums := make(map[string]decimal.Decimal)
	for _, t := range txs {
		if t.Type != entity.TransactionTypeExpense {
			continue
		}
		key := t.Date.In(now.Location()).Format(dateKeyFormat)
		sums[key] = sums[key].Add(t.Amount)
	}

	series := make([]DailyExpense, 0, days)
	for i := days - 1; i >= 0; i-- {
		key := now.AddDate(0, 0, -i).Format(dateKeyFormat)
		series = append(series, DailyExpense{
			Date:   key,
			Amount: sums[key],
		})
	}
	return series
}

// MonthWindow returns the inclusive bounds of the calendar month containing
// now: the 1st at 00:00:00 through the last day at 23:59:59.
func MonthWindow(now time.Time) (start, end time.Time) {
	loc := now.Location()
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	end = time.Date(now.Year(), now.Month()+1, 0, 23, 59, 59, 0, loc)
	return start, end
}

// WeekWindow returns the inclusive bounds of the week containing now, with
// Sunday as the first day: Sunday 00:00:00 through Saturday 23:59:59.
func WeekWindow(now time.Time) (start, end time.Time) {
	loc := now.Location()
	start = time.Date(now.Year(), now.Month(), now.Day()-int(now.Weekday()), 0, 0, 0, 0, loc)
	end = time.Date(start.Year(), start.Month(), start.Day()+6, 23, 59, 59, 0, loc)
	return start, end
}

// DayWindow returns the inclusive bounds of the calendar day containing now.
func DayWindow(now time.Time) (start, end time.Time) {
	loc := now.Location()
	start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	end = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, loc)
	return start, end
}

// daysInMonth returns the number of calendar days of the month containing now.
func daysInMonth(now time.Time) int {
	return time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
}
