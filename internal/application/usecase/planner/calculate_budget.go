// Package planner contains the budgeting and investment planning use cases.
// These are thin orchestration layers over the pure finance calculators: they
// validate input, fill defaults from the user's stored profile, and shape
// output.
package planner

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mintmind/backend/internal/application/adapter"
	domainerror "github.com/mintmind/backend/internal/domain/error"
	"github.com/mintmind/backend/internal/domain/finance"
)

// CalculateBudgetInput represents the input for a budget split.
type CalculateBudgetInput struct {
	UserID uuid.UUID
	// MonthlyIncome overrides the profile income when positive.
	MonthlyIncome decimal.Decimal
	// Custom percentages; all zero means the standard 50/30/20 rule.
	NeedsPercent   int64
	WantsPercent   int64
	SavingsPercent int64
}

// CalculateBudgetOutput represents the budget split with derived limits.
type CalculateBudgetOutput struct {
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	Needs         decimal.Decimal `json:"needs"`
	Wants         decimal.Decimal `json:"wants"`
	Savings       decimal.Decimal `json:"savings"`
	MonthlyLimit  decimal.Decimal `json:"monthly_limit"`
	WeeklyLimit   decimal.Decimal `json:"weekly_limit"`
	DailyLimit    decimal.Decimal `json:"daily_limit"`
	EmergencyFund decimal.Decimal `json:"emergency_fund"`
}

// CalculateBudgetUseCase handles budget split calculation.
type CalculateBudgetUseCase struct {
	userRepo adapter.UserRepository
}

// NewCalculateBudgetUseCase creates a new CalculateBudgetUseCase instance.
func NewCalculateBudgetUseCase(userRepo adapter.UserRepository) *CalculateBudgetUseCase {
	return &CalculateBudgetUseCase{userRepo: userRepo}
}

// Execute splits the monthly income by the requested (or standard) rule.
func (uc *CalculateBudgetUseCase) Execute(ctx context.Context, input CalculateBudgetInput) (*CalculateBudgetOutput, error) {
	income := input.MonthlyIncome
	var expenses decimal.Decimal

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !income.IsPositive() {
		income = user.Profile.MonthlyIncome
	}
	expenses = user.Profile.MonthlyExpenses

	if income.IsNegative() {
		return nil, domainerror.NewPlannerError(
			domainerror.ErrCodeInvalidMonthlyIncome,
			"monthly income must not be negative",
			domainerror.ErrInvalidMonthlyIncome,
		)
	}

	needs, wants, savings := input.NeedsPercent, input.WantsPercent, input.SavingsPercent
	if needs == 0 && wants == 0 && savings == 0 {
		needs, wants, savings = 50, 30, 20
	}
	if needs+wants+savings != 100 || needs < 0 || wants < 0 || savings < 0 {
		return nil, domainerror.NewPlannerError(
			domainerror.ErrCodeInvalidBudgetSplit,
			"budget percentages must be non-negative and sum to 100",
			domainerror.ErrInvalidBudgetSplit,
		)
	}

	split := finance.SplitBudgetCustom(income, needs, wants, savings)

	return &CalculateBudgetOutput{
		MonthlyIncome: income,
		Needs:         split.Needs,
		Wants:         split.Wants,
		Savings:       split.Savings,
		MonthlyLimit:  split.MonthlyLimit,
		WeeklyLimit:   split.WeeklyLimit,
		DailyLimit:    split.DailyLimit,
		EmergencyFund: finance.EmergencyFund(expenses),
	}, nil
}
