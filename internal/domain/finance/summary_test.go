package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mintmind/backend/internal/domain/entity"
)

func TestBuildMonthSummary(t *testing.T) {
	t.Run("salary plus two expenses on day 15 of a 30-day month", func(t *testing.T) {
		now := day(2025, time.September, 15)
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeIncome, 50000, entity.CategorySalary, day(2025, time.September, 1)),
			tx(entity.TransactionTypeExpense, 10000, entity.CategoryFood, day(2025, time.September, 1)),
			tx(entity.TransactionTypeExpense, 8000, entity.CategoryTravel, day(2025, time.September, 10)),
		}

		s := BuildMonthSummary(txs, now)

		if !s.TrueIncome.Equal(decimal.NewFromInt(50000)) {
			t.Errorf("true income = %s, want 50000", s.TrueIncome)
		}
		if !s.NetExpenses.Equal(decimal.NewFromInt(18000)) {
			t.Errorf("net expenses = %s, want 18000", s.NetExpenses)
		}
		if !s.BurnRate.Equal(decimal.NewFromInt(1200)) {
			t.Errorf("burn rate = %s, want 1200", s.BurnRate)
		}
		if !s.MonthEndProjection.Equal(decimal.NewFromInt(14000)) {
			t.Errorf("projection = %s, want 14000", s.MonthEndProjection)
		}
		if !s.RemainingBudget.Equal(decimal.NewFromInt(32000)) {
			t.Errorf("remaining = %s, want 32000", s.RemainingBudget)
		}
	})

	t.Run("refund reduces expenses instead of counting as income", func(t *testing.T) {
		now := day(2025, time.September, 15)
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeExpense, 1000, entity.CategoryShopping, day(2025, time.September, 5)),
			tx(entity.TransactionTypeIncome, 1000, entity.CategoryRefund, day(2025, time.September, 6)),
			tx(entity.TransactionTypeIncome, 2000, entity.CategoryFreelance, day(2025, time.September, 7)),
		}

		s := BuildMonthSummary(txs, now)

		if !s.TotalRefunds.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("refunds = %s, want 1000", s.TotalRefunds)
		}
		if !s.RawExpenses.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("raw expenses = %s, want 1000", s.RawExpenses)
		}
		if !s.NetExpenses.IsZero() {
			t.Errorf("net expenses = %s, want 0", s.NetExpenses)
		}
		if !s.TrueIncome.Equal(decimal.NewFromInt(2000)) {
			t.Errorf("true income = %s, want 2000 (refund excluded)", s.TrueIncome)
		}
	})

	t.Run("net expenses floored at zero when refunds exceed expenses", func(t *testing.T) {
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeExpense, 100, entity.CategoryFood, day(2025, time.September, 5)),
			tx(entity.TransactionTypeIncome, 500, entity.CategoryRefund, day(2025, time.September, 6)),
		}

		s := BuildMonthSummary(txs, day(2025, time.September, 15))
		if s.NetExpenses.IsNegative() {
			t.Errorf("net expenses must never be negative, got %s", s.NetExpenses)
		}
		if !s.NetExpenses.IsZero() {
			t.Errorf("net expenses = %s, want 0", s.NetExpenses)
		}
	})

	t.Run("empty month yields all zeros", func(t *testing.T) {
		s := BuildMonthSummary(nil, day(2025, time.September, 1))

		for name, v := range map[string]decimal.Decimal{
			"true income": s.TrueIncome,
			"net":         s.NetExpenses,
			"burn rate":   s.BurnRate,
			"projection":  s.MonthEndProjection,
			"daily":       s.DailySpent,
			"weekly":      s.WeeklySpent,
		} {
			if !v.IsZero() {
				t.Errorf("%s = %s, want 0", name, v)
			}
		}
		if len(s.Breakdown) != 0 {
			t.Errorf("expected empty breakdown, got %d entries", len(s.Breakdown))
		}
	})

	t.Run("first of February in a leap year", func(t *testing.T) {
		now := day(2024, time.February, 1)
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeExpense, 290, entity.CategoryBills, day(2024, time.February, 1)),
		}

		s := BuildMonthSummary(txs, now)

		// Day 1: the whole spend counts as one day's burn.
		if !s.BurnRate.Equal(decimal.NewFromInt(290)) {
			t.Errorf("burn rate = %s, want 290", s.BurnRate)
		}
		// 29 days in February 2024.
		if !s.MonthEndProjection.Equal(decimal.NewFromInt(-8410)) {
			t.Errorf("projection = %s, want -8410", s.MonthEndProjection)
		}
	})

	t.Run("breakdown percentage is relative to net expenses", func(t *testing.T) {
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeExpense, 600, entity.CategoryFood, day(2025, time.September, 2)),
			tx(entity.TransactionTypeExpense, 400, entity.CategoryFuel, day(2025, time.September, 3)),
			tx(entity.TransactionTypeIncome, 200, entity.CategoryRefund, day(2025, time.September, 4)),
		}

		s := BuildMonthSummary(txs, day(2025, time.September, 15))
		// Net is 800; Food's 600 is 75% of net.
		if len(s.Breakdown) != 2 || s.Breakdown[0].Category != entity.CategoryFood {
			t.Fatalf("unexpected breakdown %+v", s.Breakdown)
		}
		if s.Breakdown[0].Percentage < 74.9 || s.Breakdown[0].Percentage > 75.1 {
			t.Errorf("Food percentage = %f, want 75", s.Breakdown[0].Percentage)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		now := day(2025, time.September, 15)
		txs := []*entity.Transaction{
			tx(entity.TransactionTypeIncome, 50000, entity.CategorySalary, day(2025, time.September, 1)),
			tx(entity.TransactionTypeExpense, 10000, entity.CategoryFood, day(2025, time.September, 1)),
		}

		first := BuildMonthSummary(txs, now)
		second := BuildMonthSummary(txs, now)

		if !first.BurnRate.Equal(second.BurnRate) ||
			!first.MonthEndProjection.Equal(second.MonthEndProjection) ||
			!first.NetExpenses.Equal(second.NetExpenses) {
			t.Error("two evaluations with identical inputs differ")
		}
	})
}

func TestBuildRemainingBudget(t *testing.T) {
	now := day(2025, time.September, 15) // Monday

	txs := []*entity.Transaction{
		tx(entity.TransactionTypeExpense, 100, entity.CategoryFood, day(2025, time.September, 15)),
		tx(entity.TransactionTypeExpense, 200, entity.CategoryFuel, day(2025, time.September, 14)), // Sunday, same week
		tx(entity.TransactionTypeExpense, 400, entity.CategoryBills, day(2025, time.September, 1)), // same month only
	}

	rb := BuildRemainingBudget(txs,
		decimal.NewFromInt(500), decimal.NewFromInt(2000), decimal.NewFromInt(8000), now)

	if !rb.DailySpent.Equal(decimal.NewFromInt(100)) {
		t.Errorf("daily spent = %s, want 100", rb.DailySpent)
	}
	if !rb.WeeklySpent.Equal(decimal.NewFromInt(300)) {
		t.Errorf("weekly spent = %s, want 300", rb.WeeklySpent)
	}
	if !rb.MonthlySpent.Equal(decimal.NewFromInt(700)) {
		t.Errorf("monthly spent = %s, want 700", rb.MonthlySpent)
	}
	if !rb.MonthlyRemaining.Equal(decimal.NewFromInt(7300)) {
		t.Errorf("monthly remaining = %s, want 7300", rb.MonthlyRemaining)
	}
}
