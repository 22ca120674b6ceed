// Package profile contains financial profile use cases.
package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mintmind/backend/internal/application/adapter"
	"github.com/mintmind/backend/internal/domain/entity"
)

// GetProfileInput represents the input for getting a user's profile.
type GetProfileInput struct {
	UserID uuid.UUID
}

// GetProfileOutput represents a user's financial profile.
type GetProfileOutput struct {
	Email           string           `json:"email"`
	Name            string           `json:"name"`
	MonthlyIncome   decimal.Decimal  `json:"monthly_income"`
	MonthlyExpenses decimal.Decimal  `json:"monthly_expenses"`
	TravelCost      decimal.Decimal  `json:"travel_cost"`
	FoodSnacks      decimal.Decimal  `json:"food_snacks"`
	RandomExpenses  decimal.Decimal  `json:"random_expenses"`
	SIPGoal         decimal.Decimal  `json:"sip_goal"`
	RiskLevel       entity.RiskLevel `json:"risk_level"`
	OnboardingDone  bool             `json:"onboarding_done"`
}

// GetProfileUseCase handles reading a user's financial profile.
type GetProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(userRepo adapter.UserRepository) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo}
}

// Execute retrieves the user's financial profile.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return &GetProfileOutput{
		Email:           user.Email,
		Name:            user.Name,
		MonthlyIncome:   user.Profile.MonthlyIncome,
		MonthlyExpenses: user.Profile.MonthlyExpenses,
		TravelCost:      user.Profile.TravelCost,
		FoodSnacks:      user.Profile.FoodSnacks,
		RandomExpenses:  user.Profile.RandomExpenses,
		SIPGoal:         user.Profile.SIPGoal,
		RiskLevel:       user.Profile.RiskLevel,
		OnboardingDone:  user.Profile.OnboardingDone,
	}, nil
}
