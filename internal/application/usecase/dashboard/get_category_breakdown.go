package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mintmind/backend/internal/application/adapter"
	"github.com/mintmind/backend/internal/domain/entity"
	"github.com/mintmind/backend/internal/domain/finance"
)

// GetCategoryBreakdownInput represents the input for the category breakdown.
type GetCategoryBreakdownInput struct {
	UserID    uuid.UUID
	Type      entity.TransactionType
	StartDate time.Time
	EndDate   time.Time
}

// GetCategoryBreakdownOutput represents per-category totals for a period.
type GetCategoryBreakdownOutput struct {
	StartDate  string                      `json:"start_date"`
	EndDate    string                      `json:"end_date"`
	Total      decimal.Decimal             `json:"total"`
	Categories []finance.CategoryBreakdown `json:"categories"`
}

// GetCategoryBreakdownUseCase handles per-category aggregation for a period.
type GetCategoryBreakdownUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute aggregates the user's transactions of the given type per category.
// A zero range defaults to the current month; type defaults to expense.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	start, end := input.StartDate, input.EndDate
	if start.IsZero() || end.IsZero() {
		start, end = finance.MonthWindow(uc.clock.Now())
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end date %s is before start date %s", end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	transactionType := input.Type
	if transactionType == "" {
		transactionType = entity.TransactionTypeExpense
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	inRange := finance.FilterByDateRange(transactions, start, end)

	return &GetCategoryBreakdownOutput{
		StartDate:  start.Format("2006-01-02"),
		EndDate:    end.Format("2006-01-02"),
		Total:      finance.TotalByType(inRange, transactionType),
		Categories: finance.Breakdown(inRange, transactionType),
	}, nil
}
