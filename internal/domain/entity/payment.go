// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment represents an incoming payment sourced from a bank feed or import.
// Payments are never mutated by the reconciliation engine.
type Payment struct {
	ID        uuid.UUID
	Reference string // Human-facing reference, e.g. "PAY-2024-001"
	PayerName string
	Amount    decimal.Decimal
	Date      time.Time
	Memo      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPayment creates a new Payment entity.
func NewPayment(
	reference string,
	payerName string,
	amount decimal.Decimal,
	date time.Time,
	memo string,
) *Payment {
	now := time.Now().UTC()

	return &Payment{
		ID:        uuid.New(),
		Reference: reference,
		PayerName: payerName,
		Amount:    amount,
		Date:      date,
		Memo:      memo,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsWellFormed reports whether the payment carries the fields matching needs.
// Malformed payments are excluded from matching and surfaced as issues,
// never aborting a reconciliation pass.
func (p *Payment) IsWellFormed() bool {
	return p.Reference != "" && p.Amount.IsPositive() && !p.Date.IsZero()
}
