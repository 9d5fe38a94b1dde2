package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntry cross-references a transaction already posted to the ledger.
// Entries are used as corroborating evidence during reconciliation, never as
// a primary matching target.
type LedgerEntry struct {
	ID               uuid.UUID
	EntryRef         string // Ledger posting reference, e.g. "GL-55201"
	PaymentReference string // Payment the posting refers to, if any
	InvoiceNumber    string // Invoice the posting refers to, if any
	Amount           decimal.Decimal
	PostedAt         time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewLedgerEntry creates a new LedgerEntry entity.
func NewLedgerEntry(
	entryRef string,
	paymentReference string,
	invoiceNumber string,
	amount decimal.Decimal,
	postedAt time.Time,
) *LedgerEntry {
	now := time.Now().UTC()

	return &LedgerEntry{
		ID:               uuid.New(),
		EntryRef:         entryRef,
		PaymentReference: paymentReference,
		InvoiceNumber:    invoiceNumber,
		Amount:           amount,
		PostedAt:         postedAt,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
