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

// CreateGoalPlanInput represents the input for a goal plan.
type CreateGoalPlanInput struct {
	UserID         uuid.UUID
	TargetAmount   decimal.Decimal
	TimelineYears  int
	CurrentSavings decimal.Decimal
}

// GoalMilestoneOutput is one yearly milestone of the plan.
type GoalMilestoneOutput struct {
	Year        int             `json:"year"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// CreateGoalPlanOutput represents the goal plan.
type CreateGoalPlanOutput struct {
	TargetAmount       decimal.Decimal       `json:"target_amount"`
	TimelineYears      int                   `json:"timeline_years"`
	CurrentSavings     decimal.Decimal       `json:"current_savings"`
	RequiredMonthlySIP decimal.Decimal       `json:"required_monthly_sip"`
	PossibleLoanAmount decimal.Decimal       `json:"possible_loan_amount"`
	Milestones         []GoalMilestoneOutput `json:"milestones"`
}

// CreateGoalPlanUseCase handles goal planning.
type CreateGoalPlanUseCase struct {
	userRepo adapter.UserRepository
}

// NewCreateGoalPlanUseCase creates a new CreateGoalPlanUseCase instance.
func NewCreateGoalPlanUseCase(userRepo adapter.UserRepository) *CreateGoalPlanUseCase {
	return &CreateGoalPlanUseCase{userRepo: userRepo}
}

// Execute plans the savings goal over the requested timeline.
func (uc *CreateGoalPlanUseCase) Execute(ctx context.Context, input CreateGoalPlanInput) (*CreateGoalPlanOutput, error) {
	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewPlannerError(
			domainerror.ErrCodeInvalidGoalTarget,
			"target amount must be positive",
			domainerror.ErrInvalidGoalTarget,
		)
	}
	if input.TimelineYears < 1 || input.TimelineYears > maxProjectionYears {
		return nil, domainerror.NewPlannerError(
			domainerror.ErrCodeInvalidTenure,
			fmt.Sprintf("timeline must be between 1 and %d years", maxProjectionYears),
			domainerror.ErrInvalidTenure,
		)
	}
	if input.CurrentSavings.IsNegative() {
		return nil, domainerror.NewPlannerError(
			domainerror.ErrCodeInvalidGoalTarget,
			"current savings must not be negative",
			domainerror.ErrInvalidGoalTarget,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	plan := finance.CreateGoalPlan(input.TargetAmount, input.TimelineYears, input.CurrentSavings, user.Profile.MonthlyIncome)

	milestones := make([]GoalMilestoneOutput, 0, len(plan.Milestones))
	for _, m := range plan.Milestones {
		milestones = append(milestones, GoalMilestoneOutput{
			Year:        m.Year,
			Amount:      m.Amount,
			Description: m.Description,
		})
	}

	return &CreateGoalPlanOutput{
		TargetAmount:       plan.TargetAmount,
		TimelineYears:      plan.TimelineYears,
		CurrentSavings:     plan.CurrentSavings,
		RequiredMonthlySIP: plan.RequiredMonthlySIP,
		PossibleLoanAmount: plan.PossibleLoanAmount,
		Milestones:         milestones,
	}, nil
}
