package finance

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mintmind/backend/internal/domain/entity"
)

func TestAnalyzePattern(t *testing.T) {
	now := day(2025, time.September, 20)

	t.Run("buckets three months oldest first", func(t *testing.T) {
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeExpense, 100, entity.CategoryFood, day(2025, time.July, 10)),
			tx(entity.TransactionTypeExpense, 200, entity.CategoryFood, day(2025, time.August, 10)),
			tx(entity.TransactionTypeExpense, 600, entity.CategoryFood, day(2025, time.September, 10)),
			// Other categories and months must not leak in.
			tx(entity.TransactionTypeExpense, 999, entity.CategoryFuel, day(2025, time.September, 10)),
			tx(entity.TransactionTypeExpense, 999, entity.CategoryFood, day(2025, time.June, 30)),
		}

		p := AnalyzePattern(txs, entity.CategoryFood, now)

		want := []int64{100, 200, 600}
		for i, w := range want {
			if !p.MonthlyTotals[i].Equal(decimal.NewFromInt(w)) {
				t.Errorf("bucket[%d] = %s, want %d", i, p.MonthlyTotals[i], w)
			}
		}
		if !p.ThreeMonthAverage.Equal(decimal.NewFromInt(300)) {
			t.Errorf("average = %s, want 300", p.ThreeMonthAverage)
		}
	})

	t.Run("trend classification", func(t *testing.T) {
		cases := []struct {
			name                string
			july, august, sept  float64
			want                Trend
		}{
			{"increasing above 1.1x average", 100, 200, 600, TrendIncreasing},
			{"decreasing below 0.9x average", 600, 500, 100, TrendDecreasing},
			{"stable within the band", 300, 300, 300, TrendStable},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				txs := []*entity.Transaction{
					tx(entity.TransactionTypeExpense, tc.july, entity.CategoryBills, day(2025, time.July, 5)),
					tx(entity.TransactionTypeExpense, tc.august, entity.CategoryBills, day(2025, time.August, 5)),
					tx(entity.TransactionTypeExpense, tc.sept, entity.CategoryBills, day(2025, time.September, 5)),
				}

				p := AnalyzePattern(txs, entity.CategoryBills, now)
				if p.Trend != tc.want {
					t.Errorf("trend = %s, want %s", p.Trend, tc.want)
				}
			})
		}
	})

	t.Run("volatility is the population standard deviation", func(t *testing.T) {
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeExpense, 100, entity.CategoryFood, day(2025, time.July, 10)),
			tx(entity.TransactionTypeExpense, 200, entity.CategoryFood, day(2025, time.August, 10)),
			tx(entity.TransactionTypeExpense, 600, entity.CategoryFood, day(2025, time.September, 10)),
		}

		p := AnalyzePattern(txs, entity.CategoryFood, now)

		// mean 300, squared deviations 40000+10000+90000, /3, sqrt.
		want := math.Sqrt(140000.0 / 3.0)
		got, _ := p.Volatility.Float64()
		if math.Abs(got-want) > 0.01 {
			t.Errorf("volatility = %f, want %f", got, want)
		}
	})

	t.Run("volatility is zero for identical months", func(t *testing.T) {
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeExpense, 300, entity.CategoryFood, day(2025, time.July, 10)),
			tx(entity.TransactionTypeExpense, 300, entity.CategoryFood, day(2025, time.August, 10)),
			tx(entity.TransactionTypeExpense, 300, entity.CategoryFood, day(2025, time.September, 10)),
		}

		p := AnalyzePattern(txs, entity.CategoryFood, now)
		if !p.Volatility.IsZero() {
			t.Errorf("volatility = %s, want 0", p.Volatility)
		}
	})

	t.Run("recurring counts distinct repeated amounts in the current month", func(t *testing.T) {
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeExpense, 199, entity.CategoryEntertainment, day(2025, time.September, 1)),
			tx(entity.TransactionTypeExpense, 199, entity.CategoryEntertainment, day(2025, time.September, 8)),
			tx(entity.TransactionTypeExpense, 50, entity.CategoryEntertainment, day(2025, time.September, 9)),
			// Repeats from earlier months don't count.
			tx(entity.TransactionTypeExpense, 75, entity.CategoryEntertainment, day(2025, time.August, 1)),
			tx(entity.TransactionTypeExpense, 75, entity.CategoryEntertainment, day(2025, time.August, 8)),
		}

		p := AnalyzePattern(txs, entity.CategoryEntertainment, now)
		if p.RecurringExpenses != 1 {
			t.Errorf("recurring = %d, want 1", p.RecurringExpenses)
		}
	})

	t.Run("empty collection yields zeroed analysis", func(t *testing.T) {
		p := AnalyzePattern(nil, entity.CategoryFood, now)
		if !p.ThreeMonthAverage.IsZero() || !p.Volatility.IsZero() || p.RecurringExpenses != 0 {
			t.Errorf("expected zeroed analysis, got %+v", p)
		}
		if p.Trend != TrendStable {
			t.Errorf("empty data should classify stable, got %s", p.Trend)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeExpense, 100, entity.CategoryFood, day(2025, time.July, 10)),
			tx(entity.TransactionTypeExpense, 600, entity.CategoryFood, day(2025, time.September, 10)),
		}

		first := AnalyzePattern(txs, entity.CategoryFood, now)
		second := AnalyzePattern(txs, entity.CategoryFood, now)

		if first.Trend != second.Trend ||
			!first.Volatility.Equal(second.Volatility) ||
			!first.ThreeMonthAverage.Equal(second.ThreeMonthAverage) ||
			first.RecurringExpenses != second.RecurringExpenses {
			t.Error("two evaluations with identical inputs differ")
		}
	})
}
