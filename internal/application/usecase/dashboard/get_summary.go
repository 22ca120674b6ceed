// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mintmind/backend/internal/application/adapter"
	"github.com/mintmind/backend/internal/domain/finance"
)

// summaryCacheTTL bounds staleness when cache invalidation is missed.
const summaryCacheTTL = 10 * time.Minute

// GetSummaryInput represents the input for getting the monthly dashboard summary.
type GetSummaryInput struct {
	UserID uuid.UUID
	// Month selects the calendar month to summarize. Zero value means the
	// current month.
	Month time.Time
}

// GetSummaryOutput represents the monthly dashboard summary.
type GetSummaryOutput struct {
	Month              string                      `json:"month"`
	TrueIncome         decimal.Decimal             `json:"true_income"`
	TotalRefunds       decimal.Decimal             `json:"total_refunds"`
	RawExpenses        decimal.Decimal             `json:"raw_expenses"`
	NetExpenses        decimal.Decimal             `json:"net_expenses"`
	RemainingBudget    decimal.Decimal             `json:"remaining_budget"`
	BurnRate           decimal.Decimal             `json:"burn_rate"`
	MonthEndProjection decimal.Decimal             `json:"month_end_projection"`
	DailySpent         decimal.Decimal             `json:"daily_spent"`
	WeeklySpent        decimal.Decimal             `json:"weekly_spent"`
	CategoryBreakdown  []finance.CategoryBreakdown `json:"category_breakdown"`
	BudgetStatus       *BudgetStatusOutput         `json:"budget_status,omitempty"`
}

// BudgetStatusOutput compares window spend against the limits derived from
// the user's budget profile. Nil when the profile has no monthly income yet.
type BudgetStatusOutput struct {
	DailyLimit       decimal.Decimal `json:"daily_limit"`
	WeeklyLimit      decimal.Decimal `json:"weekly_limit"`
	MonthlyLimit     decimal.Decimal `json:"monthly_limit"`
	DailyRemaining   decimal.Decimal `json:"daily_remaining"`
	WeeklyRemaining  decimal.Decimal `json:"weekly_remaining"`
	MonthlyRemaining decimal.Decimal `json:"monthly_remaining"`
}

// GetSummaryUseCase handles the monthly finance summary.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	userRepo        adapter.UserRepository
	summaryCache    adapter.SummaryCache
	clock           adapter.Clock
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	userRepo adapter.UserRepository,
	summaryCache adapter.SummaryCache,
	clock adapter.Clock,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		summaryCache:    summaryCache,
		clock:           clock,
	}
}

// Execute computes the monthly summary, serving from cache when possible.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	now := uc.clock.Now()
	month := input.Month
	if month.IsZero() {
		month = now
	}

	if cached, err := uc.summaryCache.Get(ctx, input.UserID, month); err != nil {
		slog.Warn("Summary cache read failed", "userID", input.UserID, "error", err)
	} else if cached != "" {
		var output GetSummaryOutput
		if err := json.Unmarshal([]byte(cached), &output); err == nil {
			return &output, nil
		}
		slog.Warn("Discarding malformed cached summary", "userID", input.UserID)
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	start, end := finance.MonthWindow(month)
	monthTxs := finance.FilterByDateRange(transactions, start, end)

	// The summary is evaluated as of "now" only when summarizing the
	// current month. Past months are evaluated at their last day so the
	// burn rate covers the whole month.
	evalAt := now
	if month.Year() != now.Year() || month.Month() != now.Month() {
		evalAt = end
	}

	summary := finance.BuildMonthSummary(monthTxs, evalAt)

	output := &GetSummaryOutput{
		Month:              month.Format("2006-01"),
		TrueIncome:         summary.TrueIncome,
		TotalRefunds:       summary.TotalRefunds,
		RawExpenses:        summary.RawExpenses,
		NetExpenses:        summary.NetExpenses,
		RemainingBudget:    summary.RemainingBudget,
		BurnRate:           summary.BurnRate,
		MonthEndProjection: summary.MonthEndProjection,
		DailySpent:         summary.DailySpent,
		WeeklySpent:        summary.WeeklySpent,
		CategoryBreakdown:  summary.Breakdown,
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user.Profile.MonthlyIncome.IsPositive() {
		split := finance.SplitBudget(user.Profile.MonthlyIncome)
		remaining := finance.BuildRemainingBudget(transactions, split.DailyLimit, split.WeeklyLimit, split.MonthlyLimit, evalAt)
		output.BudgetStatus = &BudgetStatusOutput{
			DailyLimit:       split.DailyLimit,
			WeeklyLimit:      split.WeeklyLimit,
			MonthlyLimit:     split.MonthlyLimit,
			DailyRemaining:   remaining.DailyRemaining,
			WeeklyRemaining:  remaining.WeeklyRemaining,
			MonthlyRemaining: remaining.MonthlyRemaining,
		}
	}

	if payload, err := json.Marshal(output); err == nil {
		if err := uc.summaryCache.Set(ctx, input.UserID, month, string(payload), summaryCacheTTL); err != nil {
			slog.Warn("Summary cache write failed", "userID", input.UserID, "error", err)
		}
	}

	return output, nil
}
