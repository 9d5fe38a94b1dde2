package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice represents a receivable the organization expects to collect.
type Invoice struct {
	ID            uuid.UUID
	Number        string // Invoice number, e.g. "INV-2024-117"
	CustomerName  string
	Amount        decimal.Decimal
	DueDate       time.Time
	ReferenceCode string // Optional alternate code quoted by payers
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewInvoice creates a new Invoice entity.
func NewInvoice(
	number string,
	customerName string,
	amount decimal.Decimal,
	dueDate time.Time,
	referenceCode string,
) *Invoice {
	now := time.Now().UTC()

	return &Invoice{
		ID:            uuid.New(),
		Number:        number,
		CustomerName:  customerName,
		Amount:        amount,
		DueDate:       dueDate,
		ReferenceCode: referenceCode,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsWellFormed reports whether the invoice can participate in matching.
func (i *Invoice) IsWellFormed() bool {
	return i.Number != "" && i.Amount.IsPositive() && !i.DueDate.IsZero()
}
