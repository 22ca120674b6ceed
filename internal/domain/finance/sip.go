package finance

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/mintmind/backend/internal/domain/entity"
)

// SIPYear is one row of the year-by-year SIP projection.
type SIPYear struct {
	Year     int
	Invested decimal.Decimal
	Returns  decimal.Decimal
	Total    decimal.Decimal
}

// SIPCalculation is the projected outcome of a recurring monthly investment
// compounding at an assumed annual rate (annuity-due: contributions at the
// start of each period).
type SIPCalculation struct {
	MonthlyInvestment decimal.Decimal
	ExpectedReturn    float64 // annual %, as entered
	Years             int
	TotalInvested     decimal.Decimal
	TotalReturns      decimal.Decimal
	FinalValue        decimal.Decimal
	YearlyBreakdown   []SIPYear
}

// sipFutureValue is the annuity-due future value of a fixed monthly
// contribution after the given number of months.
func sipFutureValue(monthly float64, monthlyRate float64, months int) float64 {
	if monthlyRate == 0 {
		return monthly * float64(months)
	}
	return monthly * ((math.Pow(1+monthlyRate, float64(months)) - 1) / monthlyRate) * (1 + monthlyRate)
}

// CalculateSIP projects a fixed monthly investment over the given horizon.
// All money amounts are rounded to whole currency units.
func CalculateSIP(monthlyInvestment decimal.Decimal, expectedReturnPercent float64, years int) SIPCalculation {
	monthly, _ := monthlyInvestment.Float64()
	monthlyRate := expectedReturnPercent / 100 / 12
	months := years * 12

	finalValue := sipFutureValue(monthly, monthlyRate, months)
	totalInvested := monthly * float64(months)

	breakdown := make([]SIPYear, 0, years)
	for year := 1; year <= years; year++ {
		elapsed := year * 12
		value := sipFutureValue(monthly, monthlyRate, elapsed)
		invested := monthly * float64(elapsed)
		breakdown = append(breakdown, SIPYear{
			Year:     year,
			Invested: decimal.NewFromFloat(invested).Round(0),
			Returns:  decimal.NewFromFloat(value - invested).Round(0),
			Total:    decimal.NewFromFloat(value).Round(0),
		})
	}

	return SIPCalculation{
		MonthlyInvestment: monthlyInvestment,
		ExpectedReturn:    expectedReturnPercent,
		Years:             years,
		TotalInvested:     decimal.NewFromFloat(totalInvested).Round(0),
		TotalReturns:      decimal.NewFromFloat(finalValue - totalInvested).Round(0),
		FinalValue:        decimal.NewFromFloat(finalValue).Round(0),
		YearlyBreakdown:   breakdown,
	}
}

// riskMultipliers maps risk appetite to the share of monthly surplus worth
// committing to a SIP.
var riskMultipliers = map[entity.RiskLevel]float64{
	entity.RiskLevelLow:    0.2,
	entity.RiskLevelMedium: 0.35,
	entity.RiskLevelHigh:   0.5,
}

// RecommendedSIP suggests a monthly contribution from the income/expense
// surplus scaled by risk appetite. A non-positive surplus yields zero.
func RecommendedSIP(monthlyIncome, monthlyExpenses decimal.Decimal, risk entity.RiskLevel) decimal.Decimal {
	surplus := monthlyIncome.Sub(monthlyExpenses)
	if !surplus.IsPositive() {
		return decimal.Zero
	}
	return surplus.Mul(decimal.NewFromFloat(riskMultipliers[risk])).Round(0)
}

// TargetSIP inverts the SIP formula: the monthly contribution needed to reach
// targetAmount in the given horizon at the assumed return.
func TargetSIP(targetAmount decimal.Decimal, years int, expectedReturnPercent float64) decimal.Decimal {
	target, _ := targetAmount.Float64()
	monthlyRate := expectedReturnPercent / 100 / 12
	months := years * 12
	if months <= 0 {
		return decimal.Zero
	}

	if monthlyRate == 0 {
		return decimal.NewFromFloat(target / float64(months)).Round(0)
	}

	factor := ((math.Pow(1+monthlyRate, float64(months)) - 1) / monthlyRate) * (1 + monthlyRate)
	return decimal.NewFromFloat(target / factor).Round(0)
}
