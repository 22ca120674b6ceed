package dto

import (
	"time"

	"github.com/mintmind/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type     string  `json:"type" binding:"required,oneof=expense income"`
	Amount   float64 `json:"amount" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Date     string  `json:"date" binding:"required"`
	Note     string  `json:"note,omitempty" binding:"omitempty,max=500"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// Updates are full replacements: every field of the transaction is sent.
type UpdateTransactionRequest struct {
	Type     string  `json:"type" binding:"required,oneof=expense income"`
	Amount   float64 `json:"amount" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Date     string  `json:"date" binding:"required"`
	Note     string  `json:"note,omitempty" binding:"omitempty,max=500"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Amount    string    `json:"amount"`
	Category  string    `json:"category"`
	Date      string    `json:"date"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TransactionPaginationResponse represents pagination information in API responses.
type TransactionPaginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse         `json:"transactions"`
	Pagination   TransactionPaginationResponse `json:"pagination"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(txn *transaction.TransactionOutput) TransactionResponse {
	return TransactionResponse{
		ID:        txn.ID.String(),
		UserID:    txn.UserID.String(),
		Type:      string(txn.Type),
		Amount:    txn.Amount.String(),
		Category:  string(txn.Category),
		Date:      txn.Date.Format("2006-01-02"),
		Note:      txn.Note,
		CreatedAt: txn.CreatedAt,
		UpdatedAt: txn.UpdatedAt,
	}
}

// ToTransactionListResponse converts a ListTransactionsOutput to TransactionListResponse.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}

	return TransactionListResponse{
		Transactions: transactions,
		Pagination: TransactionPaginationResponse{
			Page:  output.Page,
			Limit: output.Limit,
			Total: output.Total,
		},
	}
}
