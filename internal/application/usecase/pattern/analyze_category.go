// Package pattern contains spending pattern analysis use cases.
package pattern

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mintmind/backend/internal/application/adapter"
	"github.com/mintmind/backend/internal/domain/entity"
	domainerror "github.com/mintmind/backend/internal/domain/error"
	"github.com/mintmind/backend/internal/domain/finance"
)

// AnalyzeCategoryInput represents the input for category pattern analysis.
type AnalyzeCategoryInput struct {
	UserID   uuid.UUID
	Category entity.Category
}

// AnalyzeCategoryOutput represents the trailing three month pattern for a
// single expense category.
type AnalyzeCategoryOutput struct {
	Category          entity.Category   `json:"category"`
	MonthlyTotals     []decimal.Decimal `json:"monthly_totals"`
	CurrentMonthTotal decimal.Decimal   `json:"current_month_total"`
	ThreeMonthAverage decimal.Decimal   `json:"three_month_average"`
	Trend             finance.Trend     `json:"trend"`
	Volatility        decimal.Decimal   `json:"volatility"`
	RecurringExpenses int               `json:"recurring_expenses"`
}

// AnalyzeCategoryUseCase handles three-month pattern analysis per category.
type AnalyzeCategoryUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewAnalyzeCategoryUseCase creates a new AnalyzeCategoryUseCase instance.
func NewAnalyzeCategoryUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *AnalyzeCategoryUseCase {
	return &AnalyzeCategoryUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute analyzes the user's spending pattern for one expense category.
func (uc *AnalyzeCategoryUseCase) Execute(ctx context.Context, input AnalyzeCategoryInput) (*AnalyzeCategoryOutput, error) {
	if !input.Category.ValidFor(entity.TransactionTypeExpense) {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInvalidPatternCategory,
			fmt.Sprintf("%q is not an expense category", input.Category),
			domainerror.ErrInvalidPatternCategory,
		)
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	analysis := finance.AnalyzePattern(transactions, input.Category, uc.clock.Now())

	return &AnalyzeCategoryOutput{
		Category:          analysis.Category,
		MonthlyTotals:     analysis.MonthlyTotals[:],
		CurrentMonthTotal: analysis.CurrentMonthTotal,
		ThreeMonthAverage: analysis.ThreeMonthAverage,
		Trend:             analysis.Trend,
		Volatility:        analysis.Volatility,
		RecurringExpenses: analysis.RecurringExpenses,
	}, nil
}
