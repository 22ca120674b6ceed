package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/mintmind/backend/internal/domain/entity"
)

// AlertQueueRepository defines the interface for the budget alert email queue.
type AlertQueueRepository interface {
	// Enqueue adds an alert email to the queue.
	Enqueue(ctx context.Context, alert *entity.AlertEmail) error

	// DequeuePending retrieves up to limit pending alerts that are due,
	// marking them as processing atomically.
	DequeuePending(ctx context.Context, limit int) ([]*entity.AlertEmail, error)

	// Update persists status changes on an alert.
	Update(ctx context.Context, alert *entity.AlertEmail) error

	// ExistsPendingForUserMonth reports whether an unsent alert already
	// exists for the user in the given month key (YYYY-MM). Used to avoid
	// flooding a user with duplicate breach alerts.
	ExistsPendingForUserMonth(ctx context.Context, userID uuid.UUID, monthKey string) (bool, error)
}
