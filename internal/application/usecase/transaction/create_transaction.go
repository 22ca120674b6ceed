// Package transaction contains transaction-related use cases.
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

// MaxNoteLength is the maximum allowed length for transaction notes.
const MaxNoteLength = 500

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID   uuid.UUID
	Type     entity.TransactionType
	Amount   decimal.Decimal
	Category entity.Category
	Date     time.Time
	Note     string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	summaryCache    adapter.SummaryCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	summaryCache adapter.SummaryCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		summaryCache:    summaryCache,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionInput(input.Type, input.Amount, input.Category, input.Date, input.Note); err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.Type,
		input.Amount,
		input.Category,
		input.Date,
		input.Note,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	uc.invalidateSummaries(ctx, input.UserID)

	return &CreateTransactionOutput{
		Transaction: toTransactionOutput(transaction),
	}, nil
}

// invalidateSummaries drops cached dashboard summaries after a write.
// Cache failures are logged and never fail the write itself.
func (uc *CreateTransactionUseCase) invalidateSummaries(ctx context.Context, userID uuid.UUID) {
	if err := uc.summaryCache.Invalidate(ctx, userID); err != nil {
		slog.Warn("Failed to invalidate summary cache",
			"userID", userID,
			"error", err,
		)
	}
}

// validateTransactionInput applies the validation rules shared by create and update.
func validateTransactionInput(
	transactionType entity.TransactionType,
	amount decimal.Decimal,
	category entity.Category,
	date time.Time,
	note string,
) error {
	if transactionType != entity.TransactionTypeExpense && transactionType != entity.TransactionTypeIncome {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if amount.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNegativeAmount,
			"transaction amount must not be negative",
			domainerror.ErrNegativeTransactionAmount,
		)
	}

	if !category.ValidFor(transactionType) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryInvalidForType,
			fmt.Sprintf("category %q is not valid for %s transactions", category, transactionType),
			domainerror.ErrCategoryInvalidForType,
		)
	}

	if date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"transaction date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if len(note) > MaxNoteLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNoteTooLong,
			fmt.Sprintf("note must not exceed %d characters", MaxNoteLength),
			domainerror.ErrNoteTooLong,
		)
	}

	return nil
}
