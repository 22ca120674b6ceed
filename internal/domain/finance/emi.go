package finance

import (
	"math"

	"github.com/shopspring/decimal"
)

// EMICalculation is the standard amortization result for a loan.
type EMICalculation struct {
	Principal     decimal.Decimal
	InterestRate  float64 // annual %, as entered
	TenureMonths  int
	EMI           decimal.Decimal
	TotalPayment  decimal.Decimal
	TotalInterest decimal.Decimal
}

// CalculateEMI computes the equated monthly installment for a loan at the
// given annual rate over the given tenure. Amounts are rounded to whole
// currency units.
func CalculateEMI(principal decimal.Decimal, annualInterestRate float64, tenureYears int) EMICalculation {
	p, _ := principal.Float64()
	monthlyRate := annualInterestRate / 100 / 12
	tenureMonths := tenureYears * 12
	if tenureMonths <= 0 {
		return EMICalculation{Principal: principal, InterestRate: annualInterestRate}
	}

	var emi float64
	if monthlyRate == 0 {
		emi = p / float64(tenureMonths)
	} else {
		factor := math.Pow(1+monthlyRate, float64(tenureMonths))
		emi = (p * monthlyRate * factor) / (factor - 1)
	}

	totalPayment := emi * float64(tenureMonths)

	return EMICalculation{
		Principal:     principal,
		InterestRate:  annualInterestRate,
		TenureMonths:  tenureMonths,
		EMI:           decimal.NewFromFloat(emi).Round(0),
		TotalPayment:  decimal.NewFromFloat(totalPayment).Round(0),
		TotalInterest: decimal.NewFromFloat(totalPayment - p).Round(0),
	}
}

// MaxEMI caps loan servicing at 40% of monthly income.
func MaxEMI(monthlyIncome decimal.Decimal) decimal.Decimal {
	return monthlyIncome.Mul(decimal.NewFromFloat(0.4)).Round(0)
}

// MaxLoanAmount inverts the EMI formula: the largest principal serviceable by
// MaxEMI at the given rate and tenure.
func MaxLoanAmount(monthlyIncome decimal.Decimal, annualInterestRate float64, tenureYears int) decimal.Decimal {
	maxEMI, _ := MaxEMI(monthlyIncome).Float64()
	monthlyRate := annualInterestRate / 100 / 12
	tenureMonths := tenureYears * 12
	if tenureMonths <= 0 {
		return decimal.Zero
	}

	if monthlyRate == 0 {
		return decimal.NewFromFloat(maxEMI * float64(tenureMonths)).Round(0)
	}

	factor := math.Pow(1+monthlyRate, float64(tenureMonths))
	principal := (maxEMI * (factor - 1)) / (monthlyRate * factor)
	return decimal.NewFromFloat(principal).Round(0)
}
