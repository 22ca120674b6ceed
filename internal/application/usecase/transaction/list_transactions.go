package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mintmind/backend/internal/application/adapter"
	"github.com/mintmind/backend/internal/domain/entity"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
	Category  *entity.Category
	Page      int
	Limit     int
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Total        int64
	Page         int
	Limit        int
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	result, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Type:      input.Type,
		Category:  input.Category,
	}, adapter.TransactionPagination{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	outputs := make([]*TransactionOutput, 0, len(result.Transactions))
	for _, transaction := range result.Transactions {
		outputs = append(outputs, toTransactionOutput(transaction))
	}

	return &ListTransactionsOutput{
		Transactions: outputs,
		Total:        result.Total,
		Page:         page,
		Limit:        limit,
	}, nil
}
