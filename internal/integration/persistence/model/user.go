package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mintmind/backend/internal/domain/entity"
)

// UserModel represents the users table in the database. The financial profile
// is embedded as columns: it is always read together with the user.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`

	MonthlyIncome   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	MonthlyExpenses decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TravelCost      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	FoodSnacks      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	RandomExpenses  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	SIPGoal         decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	RiskLevel       string          `gorm:"type:varchar(10);not null;default:'medium'"`
	OnboardingDone  bool            `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Profile: entity.Profile{
			MonthlyIncome:   m.MonthlyIncome,
			MonthlyExpenses: m.MonthlyExpenses,
			TravelCost:      m.TravelCost,
			FoodSnacks:      m.FoodSnacks,
			RandomExpenses:  m.RandomExpenses,
			SIPGoal:         m.SIPGoal,
			RiskLevel:       entity.RiskLevel(m.RiskLevel),
			OnboardingDone:  m.OnboardingDone,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// UserFromEntity creates a UserModel from a domain User entity.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:              user.ID,
		Email:           user.Email,
		Name:            user.Name,
		PasswordHash:    user.PasswordHash,
		MonthlyIncome:   user.Profile.MonthlyIncome,
		MonthlyExpenses: user.Profile.MonthlyExpenses,
		TravelCost:      user.Profile.TravelCost,
		FoodSnacks:      user.Profile.FoodSnacks,
		RandomExpenses:  user.Profile.RandomExpenses,
		SIPGoal:         user.Profile.SIPGoal,
		RiskLevel:       string(user.Profile.RiskLevel),
		OnboardingDone:  user.Profile.OnboardingDone,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}
