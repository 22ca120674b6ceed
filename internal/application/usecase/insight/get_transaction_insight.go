// Package insight contains the per-transaction and roll-up insight use cases.
package insight

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

// GetTransactionInsightInput represents the input for a per-transaction insight.
type GetTransactionInsightInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// GetTransactionInsightOutput represents all advisory signals for one transaction.
type GetTransactionInsightOutput struct {
	TransactionID    uuid.UUID              `json:"transaction_id"`
	AccurateBurnRate decimal.Decimal        `json:"accurate_burn_rate"`
	BurnRateDrift    decimal.Decimal        `json:"burn_rate_drift"`
	MonthEndImpact   decimal.Decimal        `json:"month_end_impact"`
	CategoryHealth   finance.CategoryHealth `json:"category_health"`
	ShouldSkip       bool                   `json:"should_skip"`
	SavingsIndex     float64                `json:"savings_index"`
	MomentAnalysis   string                 `json:"moment_analysis"`
	PredictiveAlert  string                 `json:"predictive_alert,omitempty"`
}

// GetTransactionInsightUseCase handles per-transaction insight generation.
type GetTransactionInsightUseCase struct {
	transactionRepo adapter.TransactionRepository
	userRepo        adapter.UserRepository
	alertNotifier   *BreachNotifier
	clock           adapter.Clock
}

// NewGetTransactionInsightUseCase creates a new GetTransactionInsightUseCase instance.
func NewGetTransactionInsightUseCase(
	transactionRepo adapter.TransactionRepository,
	userRepo adapter.UserRepository,
	alertNotifier *BreachNotifier,
	clock adapter.Clock,
) *GetTransactionInsightUseCase {
	return &GetTransactionInsightUseCase{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		alertNotifier:   alertNotifier,
		clock:           clock,
	}
}

// Execute derives the insight for a single transaction. The monthly limit is
// resolved from the user's stored budget profile and is required: without it
// insight generation fails rather than guessing a limit.
func (uc *GetTransactionInsightUseCase) Execute(ctx context.Context, input GetTransactionInsightInput) (*GetTransactionInsightOutput, error) {
	user, monthlyLimit, err := resolveMonthlyLimit(ctx, uc.userRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	target, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil || target.UserID != input.UserID {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInsightTransactionNotFound,
			"transaction not found",
			domainerror.ErrInsightTransactionNotFound,
		)
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	// Insights are computed over the month containing the transaction. For
	// past months the evaluation instant is the month's last day so elapsed
	// and remaining days reflect the whole month.
	now := uc.clock.Now()
	monthStart, monthEnd := finance.MonthWindow(target.Date)
	evalAt := now
	if target.Date.Year() != now.Year() || target.Date.Month() != now.Month() {
		evalAt = monthEnd
	}

	monthTxs := finance.FilterByDateRange(transactions, monthStart, monthEnd)
	summary := finance.BuildMonthSummary(monthTxs, evalAt)
	result := finance.BuildTransactionInsight(target, monthTxs, monthlyLimit, evalAt)

	if result.PredictiveAlert != "" {
		uc.alertNotifier.Notify(ctx, user, evalAt, result.PredictiveAlert, summary)
	}

	return &GetTransactionInsightOutput{
		TransactionID:    result.TransactionID,
		AccurateBurnRate: result.AccurateBurnRate,
		BurnRateDrift:    result.BurnRateDrift,
		MonthEndImpact:   result.MonthEndImpact,
		CategoryHealth:   result.CategoryHealth,
		ShouldSkip:       result.ShouldSkip,
		SavingsIndex:     result.SavingsIndex,
		MomentAnalysis:   result.MomentAnalysis,
		PredictiveAlert:  result.PredictiveAlert,
	}, nil
}

// resolveMonthlyLimit loads the user and derives the monthly spending limit
// from their budget profile. Returns ErrMonthlyLimitNotConfigured when the
// profile has no monthly income.
func resolveMonthlyLimit(ctx context.Context, userRepo adapter.UserRepository, userID uuid.UUID) (*entity.User, decimal.Decimal, error) {
	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to load user: %w", err)
	}

	if !user.Profile.MonthlyIncome.IsPositive() {
		return nil, decimal.Zero, domainerror.NewInsightError(
			domainerror.ErrCodeMonthlyLimitNotConfigured,
			"budget profile with monthly income is required for insights",
			domainerror.ErrMonthlyLimitNotConfigured,
		)
	}

	return user, finance.SplitBudget(user.Profile.MonthlyIncome).MonthlyLimit, nil
}
