package model

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/mintmind/backend/internal/domain/entity"
)

// AlertEmailModel represents the alert_emails table in the database.
type AlertEmailModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index"`
	RecipientEmail string         `gorm:"type:varchar(255);not null"`
	RecipientName  string         `gorm:"type:varchar(255)"`
	Subject        string         `gorm:"type:varchar(500);not null"`
	Lines          pq.StringArray `gorm:"type:text[];not null"`
	MonthKey       string         `gorm:"type:varchar(7);not null;index:idx_alert_user_month"`
	Status         string         `gorm:"type:varchar(20);not null;default:'pending';index"`
	Attempts       int            `gorm:"not null;default:0"`
	MaxAttempts    int            `gorm:"not null;default:3"`
	LastError      string         `gorm:"type:text"`
	ResendID       string         `gorm:"type:varchar(100)"`
	CreatedAt      time.Time      `gorm:"not null"`
	ScheduledAt    time.Time      `gorm:"not null;index"`
	ProcessedAt    sql.NullTime
}

// TableName returns the table name for the AlertEmailModel.
func (AlertEmailModel) TableName() string {
	return "alert_emails"
}

// ToEntity converts an AlertEmailModel to a domain AlertEmail entity.
func (m *AlertEmailModel) ToEntity() *entity.AlertEmail {
	var processedAt *time.Time
	if m.ProcessedAt.Valid {
		processedAt = &m.ProcessedAt.Time
	}

	return &entity.AlertEmail{
		ID:             m.ID,
		UserID:         m.UserID,
		RecipientEmail: m.RecipientEmail,
		RecipientName:  m.RecipientName,
		Subject:        m.Subject,
		Lines:          []string(m.Lines),
		MonthKey:       m.MonthKey,
		Status:         entity.AlertStatus(m.Status),
		Attempts:       m.Attempts,
		MaxAttempts:    m.MaxAttempts,
		LastError:      m.LastError,
		ResendID:       m.ResendID,
		CreatedAt:      m.CreatedAt,
		ScheduledAt:    m.ScheduledAt,
		ProcessedAt:    processedAt,
	}
}

// AlertEmailFromEntity creates an AlertEmailModel from a domain AlertEmail entity.
func AlertEmailFromEntity(alert *entity.AlertEmail) *AlertEmailModel {
	var processedAt sql.NullTime
	if alert.ProcessedAt != nil {
		processedAt = sql.NullTime{Time: *alert.ProcessedAt, Valid: true}
	}

	return &AlertEmailModel{
		ID:             alert.ID,
		UserID:         alert.UserID,
		RecipientEmail: alert.RecipientEmail,
		RecipientName:  alert.RecipientName,
		Subject:        alert.Subject,
		Lines:          pq.StringArray(alert.Lines),
		MonthKey:       alert.MonthKey,
		Status:         string(alert.Status),
		Attempts:       alert.Attempts,
		MaxAttempts:    alert.MaxAttempts,
		LastError:      alert.LastError,
		ResendID:       alert.ResendID,
		CreatedAt:      alert.CreatedAt,
		ScheduledAt:    alert.ScheduledAt,
		ProcessedAt:    processedAt,
	}
}
