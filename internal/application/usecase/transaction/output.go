package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mintmind/backend/internal/domain/entity"
)

// TransactionOutput represents a transaction in use case outputs.
type TransactionOutput struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      entity.TransactionType
	Amount    decimal.Decimal
	Category  entity.Category
	Date      time.Time
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func toTransactionOutput(transaction *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:        transaction.ID,
		UserID:    transaction.UserID,
		Type:      transaction.Type,
		Amount:    transaction.Amount,
		Category:  transaction.Category,
		Date:      transaction.Date,
		Note:      transaction.Note,
		CreatedAt: transaction.CreatedAt,
		UpdatedAt: transaction.UpdatedAt,
	}
}
