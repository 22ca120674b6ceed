// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Category is a closed category label. Which labels are valid depends on the
// transaction type.
type Category string

// Expense categories.
const (
	CategoryFood          Category = "Food"
	CategoryTravel        Category = "Travel"
	CategoryShopping      Category = "Shopping"
	CategoryBills         Category = "Bills"
	CategoryFuel          Category = "Fuel"
	CategoryEntertainment Category = "Entertainment"
	CategoryMedical       Category = "Medical"
	CategoryOther         Category = "Other"
)

// Income categories. Refund has special accounting treatment: it is never
// counted as income, it reduces net expenses instead.
const (
	CategorySalary    Category = "Salary"
	CategoryFreelance Category = "Freelance"
	CategoryGift      Category = "Gift"
	CategoryRefund    Category = "Refund"
	CategoryInterest  Category = "Interest"
)

// ExpenseCategories lists the valid expense categories in display order.
var ExpenseCategories = []Category{
	CategoryFood,
	CategoryTravel,
	CategoryShopping,
	CategoryBills,
	CategoryFuel,
	CategoryEntertainment,
	CategoryMedical,
	CategoryOther,
}

// IncomeCategories lists the valid income categories in display order.
var IncomeCategories = []Category{
	CategorySalary,
	CategoryFreelance,
	CategoryGift,
	CategoryRefund,
	CategoryInterest,
	CategoryOther,
}

// ValidFor reports whether the category is valid for the given transaction type.
func (c Category) ValidFor(t TransactionType) bool {
	var valid []Category
	switch t {
	case TransactionTypeExpense:
		valid = ExpenseCategories
	case TransactionTypeIncome:
		valid = IncomeCategories
	default:
		return false
	}
	for _, v := range valid {
		if v == c {
			return true
		}
	}
	return false
}

// Transaction represents a single manually entered financial transaction.
// Amount is unsigned; the sign is implied by Type. Date is the user-editable
// occurrence date, CreatedAt is the immutable insertion timestamp and is used
// for audit only, never for financial calculations.
type Transaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      TransactionType
	Amount    decimal.Decimal
	Category  Category
	Date      time.Time
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	category Category,
	date time.Time,
	note string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      transactionType,
		Amount:    amount,
		Category:  category,
		Date:      date,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*Transaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}

// TransactionsByDate represents transactions grouped by calendar date.
type TransactionsByDate struct {
	Date         time.Time
	Transactions []*Transaction
	DailyTotal   decimal.Decimal
}
