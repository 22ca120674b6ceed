package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mintmind/backend/internal/application/adapter"
	"github.com/mintmind/backend/internal/domain/finance"
)

// maxSeriesDays caps the zero-filled daily series length.
const maxSeriesDays = 366

// GetDailySeriesInput represents the input for the daily spending series.
type GetDailySeriesInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GetDailySeriesOutput represents a zero-filled per-day expense series.
type GetDailySeriesOutput struct {
	StartDate string                 `json:"start_date"`
	EndDate   string                 `json:"end_date"`
	Series    []finance.DailyExpense `json:"series"`
}

// GetDailySeriesUseCase handles the daily spending series.
type GetDailySeriesUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewGetDailySeriesUseCase creates a new GetDailySeriesUseCase instance.
func NewGetDailySeriesUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *GetDailySeriesUseCase {
	return &GetDailySeriesUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute builds the daily expense series for the requested range. A zero
// range defaults to the current month.
func (uc *GetDailySeriesUseCase) Execute(ctx context.Context, input GetDailySeriesInput) (*GetDailySeriesOutput, error) {
	start, end := input.StartDate, input.EndDate
	if start.IsZero() || end.IsZero() {
		start, end = finance.MonthWindow(uc.clock.Now())
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end date %s is before start date %s", end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	if end.Sub(start) > maxSeriesDays*24*time.Hour {
		return nil, fmt.Errorf("date range exceeds %d days", maxSeriesDays)
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	days := int(endDay.Sub(startDay).Hours()/24) + 1

	return &GetDailySeriesOutput{
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
		Series:    finance.DailySeries(transactions, days, endDay),
	}, nil
}
