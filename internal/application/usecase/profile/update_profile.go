package profile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mintmind/backend/internal/application/adapter"
	"github.com/mintmind/backend/internal/domain/entity"
	domainerror "github.com/mintmind/backend/internal/domain/error"
)

// UpdateProfileInput represents the input for updating a user's profile.
// Completing it marks onboarding as done.
type UpdateProfileInput struct {
	UserID          uuid.UUID
	MonthlyIncome   decimal.Decimal
	MonthlyExpenses decimal.Decimal
	TravelCost      decimal.Decimal
	FoodSnacks      decimal.Decimal
	RandomExpenses  decimal.Decimal
	SIPGoal         decimal.Decimal
	RiskLevel       entity.RiskLevel
}

// UpdateProfileOutput represents the output of updating a profile.
type UpdateProfileOutput struct {
	Profile *GetProfileOutput
}

// UpdateProfileUseCase handles updating a user's financial profile.
type UpdateProfileUseCase struct {
	userRepo     adapter.UserRepository
	summaryCache adapter.SummaryCache
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository, summaryCache adapter.SummaryCache) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo:     userRepo,
		summaryCache: summaryCache,
	}
}

// Execute validates and stores the profile. Budget limits in cached summaries
// derive from the profile, so the cache is invalidated too.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	if input.MonthlyIncome.IsNegative() || input.MonthlyExpenses.IsNegative() ||
		input.TravelCost.IsNegative() || input.FoodSnacks.IsNegative() ||
		input.RandomExpenses.IsNegative() || input.SIPGoal.IsNegative() {
		return nil, domainerror.NewPlannerError(
			domainerror.ErrCodeInvalidMonthlyIncome,
			"profile amounts must not be negative",
			domainerror.ErrInvalidMonthlyIncome,
		)
	}

	risk := input.RiskLevel
	switch risk {
	case entity.RiskLevelLow, entity.RiskLevelMedium, entity.RiskLevelHigh:
	case "":
		risk = entity.RiskLevelMedium
	default:
		return nil, fmt.Errorf("invalid risk level %q", input.RiskLevel)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	user.Profile = entity.Profile{
		MonthlyIncome:   input.MonthlyIncome,
		MonthlyExpenses: input.MonthlyExpenses,
		TravelCost:      input.TravelCost,
		FoodSnacks:      input.FoodSnacks,
		RandomExpenses:  input.RandomExpenses,
		SIPGoal:         input.SIPGoal,
		RiskLevel:       risk,
		OnboardingDone:  true,
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if err := uc.summaryCache.Invalidate(ctx, input.UserID); err != nil {
		slog.Warn("Failed to invalidate summary cache", "userID", input.UserID, "error", err)
	}

	return &UpdateProfileOutput{
		Profile: &GetProfileOutput{
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
		},
	}, nil
}
