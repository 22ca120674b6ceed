package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mintmind/backend/internal/application/adapter"
	"github.com/mintmind/backend/internal/domain/entity"
	"github.com/mintmind/backend/internal/integration/persistence/model"
)

// alertEmailRepository implements the adapter.AlertQueueRepository interface.
type alertEmailRepository struct {
	db *gorm.DB
}

// NewAlertEmailRepository creates a new alert email repository instance.
func NewAlertEmailRepository(db *gorm.DB) adapter.AlertQueueRepository {
	return &alertEmailRepository{
		db: db,
	}
}

// Enqueue adds an alert email to the queue.
func (r *alertEmailRepository) Enqueue(ctx context.Context, alert *entity.AlertEmail) error {
	alertModel := model.AlertEmailFromEntity(alert)
	result := r.db.WithContext(ctx).Create(alertModel)
	if result.Error != nil {
		return fmt.Errorf("failed to enqueue alert email: %w", result.Error)
	}
	return nil
}

// DequeuePending retrieves up to limit pending alerts that are due and marks
// them as processing. The select and the status update run in one transaction
// so concurrent workers never pick up the same alert.
func (r *alertEmailRepository) DequeuePending(ctx context.Context, limit int) ([]*entity.AlertEmail, error) {
	var models []model.AlertEmailModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("status = ?", entity.AlertStatusPending).
			Where("scheduled_at <= ?", time.Now().UTC()).
			Order("scheduled_at ASC").
			Limit(limit).
			Find(&models)
		if result.Error != nil {
			return result.Error
		}

		if len(models) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, len(models))
		for i, m := range models {
			ids[i] = m.ID
		}

		return tx.
			Model(&model.AlertEmailModel{}).
			Where("id IN ?", ids).
			Update("status", entity.AlertStatusProcessing).Error
	})
	if err != nil {
		return nil, err
	}

	alerts := make([]*entity.AlertEmail, len(models))
	for i, m := range models {
		alert := m.ToEntity()
		alert.MarkProcessing()
		alerts[i] = alert
	}
	return alerts, nil
}

// Update persists status changes on an alert.
func (r *alertEmailRepository) Update(ctx context.Context, alert *entity.AlertEmail) error {
	alertModel := model.AlertEmailFromEntity(alert)
	result := r.db.WithContext(ctx).Save(alertModel)
	return result.Error
}

// ExistsPendingForUserMonth checks if an unsent alert already exists for the
// user in the given month. Sent alerts count too, so a user gets at most one
// breach alert per month.
func (r *alertEmailRepository) ExistsPendingForUserMonth(ctx context.Context, userID uuid.UUID, monthKey string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.AlertEmailModel{}).
		Where("user_id = ? AND month_key = ?", userID, monthKey).
		Where("status IN ?", []entity.AlertStatus{
			entity.AlertStatusPending,
			entity.AlertStatusProcessing,
			entity.AlertStatusSent,
		}).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
