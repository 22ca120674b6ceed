// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RiskLevel represents the user's declared investment risk appetite.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// User represents a user of the MintMind planner.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Profile      Profile
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile holds the financial profile collected during onboarding. The
// dashboard's budget limits and the AI coach prompt are both derived from it.
type Profile struct {
	MonthlyIncome   decimal.Decimal
	MonthlyExpenses decimal.Decimal
	TravelCost      decimal.Decimal
	FoodSnacks      decimal.Decimal
	RandomExpenses  decimal.Decimal
	SIPGoal         decimal.Decimal
	RiskLevel       RiskLevel
	OnboardingDone  bool
}

// NewUser creates a new User with an empty profile.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Profile: Profile{
			RiskLevel: RiskLevelMedium,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
