// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertStatus represents the status of a budget alert email in the queue.
type AlertStatus string

const (
	AlertStatusPending    AlertStatus = "pending"
	AlertStatusProcessing AlertStatus = "processing"
	AlertStatusSent       AlertStatus = "sent"
	AlertStatusFailed     AlertStatus = "failed"
)

// AlertEmail represents a budget-breach alert waiting to be sent. Alerts are
// enqueued when insight generation projects the month to exceed the user's
// monthly limit, and drained by the alert worker.
type AlertEmail struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	RecipientEmail string
	RecipientName  string
	Subject        string
	Lines          []string // pre-rendered body lines, one metric per line
	MonthKey       string   // "2006-01", one alert per user and month
	Status         AlertStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ResendID       string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewAlertEmail creates a pending AlertEmail.
func NewAlertEmail(userID uuid.UUID, recipientEmail, recipientName, subject string, lines []string, monthKey string) *AlertEmail {
	now := time.Now().UTC()
	return &AlertEmail{
		ID:             uuid.New(),
		UserID:         userID,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		Lines:          lines,
		MonthKey:       monthKey,
		Status:         AlertStatusPending,
		MaxAttempts:    3,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// MarkProcessing marks the alert as currently being processed.
func (a *AlertEmail) MarkProcessing() {
	a.Status = AlertStatusProcessing
}

// MarkSent marks the alert as successfully sent.
func (a *AlertEmail) MarkSent(resendID string) {
	a.Status = AlertStatusSent
	a.ResendID = resendID
	now := time.Now().UTC()
	a.ProcessedAt = &now
}

// MarkFailed records a failed attempt and schedules a retry with backoff if
// attempts remain.
func (a *AlertEmail) MarkFailed(err error, permanent bool) {
	a.Attempts++
	a.LastError = err.Error()

	if permanent || a.Attempts >= a.MaxAttempts {
		a.Status = AlertStatusFailed
		now := time.Now().UTC()
		a.ProcessedAt = &now
		return
	}

	a.Status = AlertStatusPending
	a.ScheduledAt = time.Now().UTC().Add(time.Duration(a.Attempts) * time.Minute)
}
