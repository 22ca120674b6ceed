package transaction

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

// UpdateTransactionInput represents the input for transaction update.
type UpdateTransactionInput struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Type     entity.TransactionType
	Amount   decimal.Decimal
	Category entity.Category
	Date     time.Time
	Note     string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	summaryCache    adapter.SummaryCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	summaryCache adapter.SummaryCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		summaryCache:    summaryCache,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if err := validateTransactionInput(input.Type, input.Amount, input.Category, input.Date, input.Note); err != nil {
		return nil, err
	}

	transaction, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if transaction.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"transaction does not belong to user",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	transaction.Type = input.Type
	transaction.Amount = input.Amount
	transaction.Category = input.Category
	transaction.Date = input.Date
	transaction.Note = input.Note
	transaction.UpdatedAt = time.Now()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	if err := uc.summaryCache.Invalidate(ctx, input.UserID); err != nil {
		slog.Warn("Failed to invalidate summary cache",
			"userID", input.UserID,
			"error", err,
		)
	}

	return &UpdateTransactionOutput{
		Transaction: toTransactionOutput(transaction),
	}, nil
}
