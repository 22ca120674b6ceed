package dto

import (
	"github.com/mintmind/backend/internal/application/usecase/profile"
)

// UpdateProfileRequest represents the request body for updating the financial
// profile collected during onboarding.
type UpdateProfileRequest struct {
	MonthlyIncome   float64 `json:"monthly_income" binding:"required"`
	MonthlyExpenses float64 `json:"monthly_expenses,omitempty"`
	TravelCost      float64 `json:"travel_cost,omitempty"`
	FoodSnacks      float64 `json:"food_snacks,omitempty"`
	RandomExpenses  float64 `json:"random_expenses,omitempty"`
	SIPGoal         float64 `json:"sip_goal,omitempty"`
	RiskLevel       string  `json:"risk_level,omitempty" binding:"omitempty,oneof=low medium high"`
}

// ProfileResponse represents a user's financial profile in API responses.
type ProfileResponse struct {
	Email           string `json:"email"`
	Name            string `json:"name"`
	MonthlyIncome   string `json:"monthly_income"`
	MonthlyExpenses string `json:"monthly_expenses"`
	TravelCost      string `json:"travel_cost"`
	FoodSnacks      string `json:"food_snacks"`
	RandomExpenses  string `json:"random_expenses"`
	SIPGoal         string `json:"sip_goal"`
	RiskLevel       string `json:"risk_level"`
	OnboardingDone  bool   `json:"onboarding_done"`
}

// ToProfileResponse converts a GetProfileOutput to a ProfileResponse DTO.
func ToProfileResponse(output *profile.GetProfileOutput) ProfileResponse {
	return ProfileResponse{
		Email:           output.Email,
		Name:            output.Name,
		MonthlyIncome:   output.MonthlyIncome.String(),
		MonthlyExpenses: output.MonthlyExpenses.String(),
		TravelCost:      output.TravelCost.String(),
		FoodSnacks:      output.FoodSnacks.String(),
		RandomExpenses:  output.RandomExpenses.String(),
		SIPGoal:         output.SIPGoal.String(),
		RiskLevel:       string(output.RiskLevel),
		OnboardingDone:  output.OnboardingDone,
	}
}
