package finance

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mintmind/backend/internal/domain/entity"
)

func TestSplitBudget(t *testing.T) {
	t.Run("50/30/20 with derived limits", func(t *testing.T) {
		b := SplitBudget(decimal.NewFromInt(65000))

		if !b.Needs.Equal(decimal.NewFromInt(32500)) {
			t.Errorf("needs = %s, want 32500", b.Needs)
		}
		if !b.Wants.Equal(decimal.NewFromInt(19500)) {
			t.Errorf("wants = %s, want 19500", b.Wants)
		}
		if !b.Savings.Equal(decimal.NewFromInt(13000)) {
			t.Errorf("savings = %s, want 13000", b.Savings)
		}
		if !b.MonthlyLimit.Equal(decimal.NewFromInt(52000)) {
			t.Errorf("monthly limit = %s, want 52000", b.MonthlyLimit)
		}
		if !b.WeeklyLimit.Equal(decimal.NewFromInt(12009)) {
			t.Errorf("weekly limit = %s, want 12009", b.WeeklyLimit)
		}
		if !b.DailyLimit.Equal(decimal.NewFromInt(1733)) {
			t.Errorf("daily limit = %s, want 1733", b.DailyLimit)
		}
	})

	t.Run("zero income yields all zeros", func(t *testing.T) {
		b := SplitBudget(decimal.Zero)
		if !b.MonthlyLimit.IsZero() || !b.WeeklyLimit.IsZero() || !b.DailyLimit.IsZero() {
			t.Errorf("expected zero limits, got %+v", b)
		}
	})

	t.Run("custom split", func(t *testing.T) {
		b := SplitBudgetCustom(decimal.NewFromInt(10000), 60, 20, 20)
		if !b.Needs.Equal(decimal.NewFromInt(6000)) || !b.Wants.Equal(decimal.NewFromInt(2000)) {
			t.Errorf("unexpected custom split %+v", b)
		}
		if !b.MonthlyLimit.Equal(decimal.NewFromInt(8000)) {
			t.Errorf("monthly limit = %s, want 8000", b.MonthlyLimit)
		}
	})
}

func TestEmergencyFund(t *testing.T) {
	if got := EmergencyFund(decimal.NewFromInt(30000)); !got.Equal(decimal.NewFromInt(180000)) {
		t.Errorf("emergency fund = %s, want 180000", got)
	}
}

func TestCalculateSIP(t *testing.T) {
	t.Run("zero rate degenerates to plain accumulation", func(t *testing.T) {
		calc := CalculateSIP(decimal.NewFromInt(1000), 0, 2)

		if !calc.FinalValue.Equal(decimal.NewFromInt(24000)) {
			t.Errorf("final value = %s, want 24000", calc.FinalValue)
		}
		if !calc.TotalReturns.IsZero() {
			t.Errorf("returns = %s, want 0", calc.TotalReturns)
		}
		if len(calc.YearlyBreakdown) != 2 {
			t.Fatalf("expected 2 yearly rows, got %d", len(calc.YearlyBreakdown))
		}
	})

	t.Run("compounding grows year over year", func(t *testing.T) {
		calc := CalculateSIP(decimal.NewFromInt(5000), 12, 10)

		if !calc.TotalInvested.Equal(decimal.NewFromInt(600000)) {
			t.Errorf("invested = %s, want 600000", calc.TotalInvested)
		}
		if !calc.FinalValue.GreaterThan(calc.TotalInvested) {
			t.Error("final value should exceed the invested amount at a positive rate")
		}
		for i := 1; i < len(calc.YearlyBreakdown); i++ {
			if !calc.YearlyBreakdown[i].Total.GreaterThan(calc.YearlyBreakdown[i-1].Total) {
				t.Errorf("yearly totals not monotonic at year %d", i+1)
			}
		}
		last := calc.YearlyBreakdown[len(calc.YearlyBreakdown)-1]
		if !last.Total.Equal(calc.FinalValue) {
			t.Errorf("last yearly total %s != final value %s", last.Total, calc.FinalValue)
		}
	})
}

func TestRecommendedSIP(t *testing.T) {
	income := decimal.NewFromInt(60000)
	expenses := decimal.NewFromInt(50000)

	cases := []struct {
		risk entity.RiskLevel
		want int64
	}{
		{entity.RiskLevelLow, 2000},
		{entity.RiskLevelMedium, 3500},
		{entity.RiskLevelHigh, 5000},
	}
	for _, tc := range cases {
		t.Run(string(tc.risk), func(t *testing.T) {
			if got := RecommendedSIP(income, expenses, tc.risk); !got.Equal(decimal.NewFromInt(tc.want)) {
				t.Errorf("recommended SIP = %s, want %d", got, tc.want)
			}
		})
	}

	t.Run("no surplus means no recommendation", func(t *testing.T) {
		if got := RecommendedSIP(expenses, income, entity.RiskLevelHigh); !got.IsZero() {
			t.Errorf("expected 0 for negative surplus, got %s", got)
		}
	})
}

func TestTargetSIP(t *testing.T) {
	t.Run("zero rate divides evenly", func(t *testing.T) {
		if got := TargetSIP(decimal.NewFromInt(12000), 1, 0); !got.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("target SIP = %s, want 1000", got)
		}
	})

	t.Run("zero tenure yields zero", func(t *testing.T) {
		if got := TargetSIP(decimal.NewFromInt(12000), 0, 12); !got.IsZero() {
			t.Errorf("expected 0 for zero tenure, got %s", got)
		}
	})
}

func TestCalculateEMI(t *testing.T) {
	t.Run("standard amortization", func(t *testing.T) {
		calc := CalculateEMI(decimal.NewFromInt(100000), 12, 1)

		if !calc.EMI.Equal(decimal.NewFromInt(8885)) {
			t.Errorf("EMI = %s, want 8885", calc.EMI)
		}
		if calc.TenureMonths != 12 {
			t.Errorf("tenure = %d months, want 12", calc.TenureMonths)
		}
		if !calc.TotalInterest.IsPositive() {
			t.Errorf("total interest = %s, want positive", calc.TotalInterest)
		}
	})

	t.Run("zero rate is straight division", func(t *testing.T) {
		calc := CalculateEMI(decimal.NewFromInt(1200), 0, 1)

		if !calc.EMI.Equal(decimal.NewFromInt(100)) {
			t.Errorf("EMI = %s, want 100", calc.EMI)
		}
		if !calc.TotalInterest.IsZero() {
			t.Errorf("interest = %s, want 0", calc.TotalInterest)
		}
	})

	t.Run("zero tenure yields zero installment", func(t *testing.T) {
		for _, rate := range []float64{0, 8.5} {
			calc := CalculateEMI(decimal.NewFromInt(100000), rate, 0)

			if calc.TenureMonths != 0 {
				t.Errorf("rate %v: tenure = %d months, want 0", rate, calc.TenureMonths)
			}
			if !calc.EMI.IsZero() || !calc.TotalPayment.IsZero() || !calc.TotalInterest.IsZero() {
				t.Errorf("rate %v: expected all-zero amounts, got EMI=%s total=%s interest=%s",
					rate, calc.EMI, calc.TotalPayment, calc.TotalInterest)
			}
		}
	})
}

func TestMaxLoanAmount(t *testing.T) {
	t.Run("caps servicing at 40% of income", func(t *testing.T) {
		if got := MaxEMI(decimal.NewFromInt(50000)); !got.Equal(decimal.NewFromInt(20000)) {
			t.Errorf("max EMI = %s, want 20000", got)
		}
	})

	t.Run("zero rate multiplies out", func(t *testing.T) {
		got := MaxLoanAmount(decimal.NewFromInt(50000), 0, 2)
		if !got.Equal(decimal.NewFromInt(480000)) {
			t.Errorf("max loan = %s, want 480000", got)
		}
	})
}

func TestCreateGoalPlan(t *testing.T) {
	plan := CreateGoalPlan(decimal.NewFromInt(1000000), 5, decimal.NewFromInt(100000), decimal.NewFromInt(80000))

	t.Run("one milestone per year", func(t *testing.T) {
		if len(plan.Milestones) != 5 {
			t.Fatalf("expected 5 milestones, got %d", len(plan.Milestones))
		}
		for i, m := range plan.Milestones {
			if m.Year != i+1 {
				t.Errorf("milestone %d has year %d", i, m.Year)
			}
			if m.Description == "" {
				t.Errorf("milestone %d has no description", i)
			}
		}
	})

	t.Run("milestones grow monotonically", func(t *testing.T) {
		for i := 1; i < len(plan.Milestones); i++ {
			if !plan.Milestones[i].Amount.GreaterThan(plan.Milestones[i-1].Amount) {
				t.Errorf("milestones not monotonic at year %d", i+1)
			}
		}
	})

	t.Run("loan tenure is capped at 20 years", func(t *testing.T) {
		long := CreateGoalPlan(decimal.NewFromInt(1000000), 25, decimal.Zero, decimal.NewFromInt(80000))
		capped := MaxLoanAmount(decimal.NewFromInt(80000), defaultLoanRatePercent, maxLoanTenureYears)
		if !long.PossibleLoanAmount.Equal(capped) {
			t.Errorf("loan amount = %s, want tenure capped value %s", long.PossibleLoanAmount, capped)
		}
	})

	t.Run("required SIP is positive for a shortfall", func(t *testing.T) {
		if !plan.RequiredMonthlySIP.IsPositive() {
			t.Errorf("required SIP = %s, want positive", plan.RequiredMonthlySIP)
		}
	})
}
