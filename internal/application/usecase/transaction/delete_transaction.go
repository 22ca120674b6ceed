package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mintmind/backend/internal/application/adapter"
	domainerror "github.com/mintmind/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	summaryCache    adapter.SummaryCache
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	summaryCache adapter.SummaryCache,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		summaryCache:    summaryCache,
	}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	exists, err := uc.transactionRepo.ExistsByIDAndUser(ctx, input.ID, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to check transaction ownership: %w", err)
	}
	if !exists {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if err := uc.transactionRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if err := uc.summaryCache.Invalidate(ctx, input.UserID); err != nil {
		slog.Warn("Failed to invalidate summary cache",
			"userID", input.UserID,
			"error", err,
		)
	}

	return nil
}
