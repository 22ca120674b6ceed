// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mintmind/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
	Category  *entity.Category
}

// TransactionPagination defines pagination options.
type TransactionPagination struct {
	Page  int
	Limit int
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByUser retrieves all transactions for a given user, newest first.
	// The analytics engine always receives this full collection.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// FindByFilter retrieves transactions based on filter criteria with pagination.
	FindByFilter(ctx context.Context, filter TransactionFilter, pagination TransactionPagination) (*entity.TransactionListResult, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete soft-deletes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByIDAndUser checks if a transaction exists for a given ID and user.
	ExistsByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (bool, error)
}
