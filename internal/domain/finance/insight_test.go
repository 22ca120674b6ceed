package finance

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mintmind/backend/internal/domain/entity"
)

func TestBuildTransactionInsight(t *testing.T) {
	limit := decimal.NewFromInt(4000)

	t.Run("income transaction gets a neutral insight", func(t *testing.T) {
		target := tx(entity.TransactionTypeIncome, 5000, entity.CategorySalary, day(2025, time.September, 1))
		insight := BuildTransactionInsight(target, []*entity.Transaction{target}, limit, day(2025, time.September, 15))

		if insight.SavingsIndex != 5 {
			t.Errorf("savings index = %f, want 5", insight.SavingsIndex)
		}
		if !insight.MonthEndImpact.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("month-end impact = %s, want the amount 5000", insight.MonthEndImpact)
		}
		if !insight.AccurateBurnRate.IsZero() || !insight.BurnRateDrift.IsZero() {
			t.Error("income insights must not carry burn rates")
		}
		if insight.ShouldSkip || insight.PredictiveAlert != "" {
			t.Error("income insights must be neutral")
		}
	})

	t.Run("active-day burn rate dominates calendar-day rate for concentrated spend", func(t *testing.T) {
		// A single 3000 expense on day 5 of a 30-day month: calendar rate is
		// 600/day but the active-day rate is the full 3000.
		now := day(2025, time.September, 5)
		target := tx(entity.TransactionTypeExpense, 3000, entity.CategoryFood, day(2025, time.September, 5))
		monthTxs := []*entity.Transaction{target}

		insight := BuildTransactionInsight(target, monthTxs, limit, now)
		summary := BuildMonthSummary(monthTxs, now)

		if !summary.BurnRate.Equal(decimal.NewFromInt(600)) {
			t.Errorf("calendar burn rate = %s, want 600", summary.BurnRate)
		}
		if !insight.AccurateBurnRate.Equal(decimal.NewFromInt(3000)) {
			t.Errorf("accurate burn rate = %s, want 3000", insight.AccurateBurnRate)
		}
		if insight.AccurateBurnRate.LessThan(summary.BurnRate) {
			t.Error("accurate burn rate must dominate the calendar rate for concentrated spend")
		}
	})

	t.Run("burn-rate drift isolates the transaction's marginal effect", func(t *testing.T) {
		now := day(2025, time.September, 10)
		target := tx(entity.TransactionTypeExpense, 900, entity.CategoryFuel, day(2025, time.September, 10))
		other := tx(entity.TransactionTypeExpense, 300, entity.CategoryFood, day(2025, time.September, 5))

		insight := BuildTransactionInsight(target, []*entity.Transaction{target, other}, limit, now)

		// With: 1200 over 2 active days = 600. Without: 300 over 1 day = 300.
		if !insight.BurnRateDrift.Equal(decimal.NewFromInt(300)) {
			t.Errorf("drift = %s, want 300", insight.BurnRateDrift)
		}
	})

	t.Run("month-end impact is the projected expense delta in whole units", func(t *testing.T) {
		now := day(2025, time.September, 5)
		target := tx(entity.TransactionTypeExpense, 3000, entity.CategoryFood, day(2025, time.September, 5))

		insight := BuildTransactionInsight(target, []*entity.Transaction{target}, limit, now)

		// With: 3000 + 3000/day over 25 remaining days = 78000. Without: 0.
		if !insight.MonthEndImpact.Equal(decimal.NewFromInt(78000)) {
			t.Errorf("month-end impact = %s, want 78000", insight.MonthEndImpact)
		}
	})

	t.Run("category health thresholds against the 25% allocation", func(t *testing.T) {
		// Limit 4000 -> allocation 1000; warning above 700, critical above 900.
		cases := []struct {
			name   string
			amount float64
			want   CategoryHealth
		}{
			{"healthy below 70%", 600, CategoryHealthy},
			{"warning above 70%", 750, CategoryWarning},
			{"critical above 90%", 950, CategoryCritical},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				now := day(2025, time.September, 10)
				target := tx(entity.TransactionTypeExpense, tc.amount, entity.CategoryMedical, day(2025, time.September, 10))

				insight := BuildTransactionInsight(target, []*entity.Transaction{target}, limit, now)
				if insight.CategoryHealth != tc.want {
					t.Errorf("health = %s, want %s", insight.CategoryHealth, tc.want)
				}
			})
		}
	})

	t.Run("skip suggestion for critical non-essential category", func(t *testing.T) {
		now := day(2025, time.September, 10)
		target := tx(entity.TransactionTypeExpense, 950, entity.CategoryEntertainment, day(2025, time.September, 10))

		insight := BuildTransactionInsight(target, []*entity.Transaction{target}, limit, now)
		if !insight.ShouldSkip {
			t.Error("expected skip suggestion for critical non-essential spend")
		}
	})

	t.Run("recurring pattern always blocks the skip suggestion", func(t *testing.T) {
		now := day(2025, time.September, 10)
		first := tx(entity.TransactionTypeExpense, 500, entity.CategoryEntertainment, day(2025, time.September, 3))
		second := tx(entity.TransactionTypeExpense, 500, entity.CategoryEntertainment, day(2025, time.September, 10))
		monthTxs := []*entity.Transaction{first, second}

		for _, target := range monthTxs {
			insight := BuildTransactionInsight(target, monthTxs, limit, now)
			if insight.CategoryHealth != CategoryCritical {
				t.Fatalf("test setup expects critical health, got %s", insight.CategoryHealth)
			}
			if insight.ShouldSkip {
				t.Error("recurring bills must never be flagged as skippable")
			}
		}
	})

	t.Run("essential categories are never skippable", func(t *testing.T) {
		now := day(2025, time.September, 10)
		target := tx(entity.TransactionTypeExpense, 3000, entity.CategoryMedical, day(2025, time.September, 10))

		insight := BuildTransactionInsight(target, []*entity.Transaction{target}, limit, now)
		if insight.ShouldSkip {
			t.Error("Medical is not in the non-essential set")
		}
	})

	t.Run("savings index is relative to the per-active-day average", func(t *testing.T) {
		now := day(2025, time.September, 10)
		small := tx(entity.TransactionTypeExpense, 100, entity.CategoryFood, day(2025, time.September, 5))
		target := tx(entity.TransactionTypeExpense, 300, entity.CategoryFood, day(2025, time.September, 10))

		insight := BuildTransactionInsight(target, []*entity.Transaction{small, target}, limit, now)

		// Category total 400 over 2 active days: average 200; 300 is 50% above,
		// so the index is 5 + 0.5*5 = 7.5.
		if insight.SavingsIndex != 7.5 {
			t.Errorf("savings index = %f, want 7.5", insight.SavingsIndex)
		}
	})

	t.Run("savings index clamped to 10", func(t *testing.T) {
		now := day(2025, time.September, 10)
		small := tx(entity.TransactionTypeExpense, 1, entity.CategoryFood, day(2025, time.September, 5))
		target := tx(entity.TransactionTypeExpense, 10000, entity.CategoryFood, day(2025, time.September, 10))

		insight := BuildTransactionInsight(target, []*entity.Transaction{small, target}, limit, now)
		if insight.SavingsIndex != 10 {
			t.Errorf("savings index = %f, want clamp at 10", insight.SavingsIndex)
		}
	})

	t.Run("moment analysis flags spends over 20% above average", func(t *testing.T) {
		now := day(2025, time.September, 10)
		small := tx(entity.TransactionTypeExpense, 100, entity.CategoryFood, day(2025, time.September, 5))
		target := tx(entity.TransactionTypeExpense, 300, entity.CategoryFood, day(2025, time.September, 10))

		insight := BuildTransactionInsight(target, []*entity.Transaction{small, target}, limit, now)
		if !strings.Contains(insight.MomentAnalysis, "above") {
			t.Errorf("expected above-average flag, got %q", insight.MomentAnalysis)
		}
	})

	t.Run("predictive alert fires only past 105% of the limit", func(t *testing.T) {
		now := day(2025, time.September, 5)

		heavy := tx(entity.TransactionTypeExpense, 3000, entity.CategoryShopping, day(2025, time.September, 5))
		insight := BuildTransactionInsight(heavy, []*entity.Transaction{heavy}, limit, now)
		if insight.PredictiveAlert == "" {
			t.Error("expected a predictive alert: 600/day projects to 18000 against a 4000 limit")
		}

		light := tx(entity.TransactionTypeExpense, 100, entity.CategoryShopping, day(2025, time.September, 5))
		insight = BuildTransactionInsight(light, []*entity.Transaction{light}, limit, now)
		if insight.PredictiveAlert != "" {
			t.Errorf("no alert expected within the limit, got %q", insight.PredictiveAlert)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		now := day(2025, time.September, 10)
		target := tx(entity.TransactionTypeExpense, 950, entity.CategoryEntertainment, day(2025, time.September, 10))
		monthTxs := []*entity.Transaction{target}

		first := BuildTransactionInsight(target, monthTxs, limit, now)
		second := BuildTransactionInsight(target, monthTxs, limit, now)

		if first.SavingsIndex != second.SavingsIndex ||
			first.MomentAnalysis != second.MomentAnalysis ||
			first.PredictiveAlert != second.PredictiveAlert ||
			!first.BurnRateDrift.Equal(second.BurnRateDrift) {
			t.Error("two evaluations with identical inputs differ")
		}
	})
}
