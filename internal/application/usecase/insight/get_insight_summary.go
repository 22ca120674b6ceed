package insight

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mintmind/backend/internal/application/adapter"
	"github.com/mintmind/backend/internal/domain/entity"
	"github.com/mintmind/backend/internal/domain/finance"
)

// GetInsightSummaryInput represents the input for the insight roll-up.
type GetInsightSummaryInput struct {
	UserID uuid.UUID
}

// CategoryScoreOutput is one category's consumed share of its allocation.
type CategoryScoreOutput struct {
	Category    entity.Category        `json:"category"`
	Spent       decimal.Decimal        `json:"spent"`
	Allocated   decimal.Decimal        `json:"allocated"`
	PercentUsed float64                `json:"percent_used"`
	Health      finance.CategoryHealth `json:"health"`
}

// GetInsightSummaryOutput represents the current-month insight roll-up.
type GetInsightSummaryOutput struct {
	CategoryScores     []CategoryScoreOutput `json:"category_scores"`
	OverThreshold      []entity.Category     `json:"over_threshold"`
	SavingsPotential   decimal.Decimal       `json:"savings_potential"`
	Confidence         int                   `json:"confidence"`
	RecommendedActions []string              `json:"recommended_actions"`
}

// GetInsightSummaryUseCase handles the current-month insight roll-up.
type GetInsightSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	userRepo        adapter.UserRepository
	clock           adapter.Clock
}

// NewGetInsightSummaryUseCase creates a new GetInsightSummaryUseCase instance.
func NewGetInsightSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	userRepo adapter.UserRepository,
	clock adapter.Clock,
) *GetInsightSummaryUseCase {
	return &GetInsightSummaryUseCase{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		clock:           clock,
	}
}

// Execute builds the insight summary for the current month.
func (uc *GetInsightSummaryUseCase) Execute(ctx context.Context, input GetInsightSummaryInput) (*GetInsightSummaryOutput, error) {
	_, monthlyLimit, err := resolveMonthlyLimit(ctx, uc.userRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	summary := finance.BuildInsightSummary(transactions, monthlyLimit, uc.clock.Now())

	scores := make([]CategoryScoreOutput, 0, len(summary.CategoryScores))
	for _, s := range summary.CategoryScores {
		scores = append(scores, CategoryScoreOutput{
			Category:    s.Category,
			Spent:       s.Spent,
			Allocated:   s.Allocated,
			PercentUsed: s.PercentUsed,
			Health:      s.Health,
		})
	}

	return &GetInsightSummaryOutput{
		CategoryScores:     scores,
		OverThreshold:      summary.OverThreshold,
		SavingsPotential:   summary.SavingsPotential,
		Confidence:         summary.Confidence,
		RecommendedActions: summary.RecommendedActions,
	}, nil
}
