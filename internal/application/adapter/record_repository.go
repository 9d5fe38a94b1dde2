// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/paymatch/backend/internal/domain/entity"
)

// PaymentRepository defines persistence operations for imported payments.
type PaymentRepository interface {
	// SaveBatch stores a batch of imported payments.
	SaveBatch(ctx context.Context, payments []*entity.Payment) error

	// FindAll retrieves every stored payment ordered by date, then reference.
	FindAll(ctx context.Context) ([]*entity.Payment, error)
}

// InvoiceRepository defines persistence operations for outstanding invoices.
type InvoiceRepository interface {
	// SaveBatch stores a batch of imported invoices.
	SaveBatch(ctx context.Context, invoices []*entity.Invoice) error

	// FindAll retrieves every stored invoice ordered by due date, then number.
	FindAll(ctx context.Context) ([]*entity.Invoice, error)
}

// LedgerEntryRepository defines persistence operations for raw ledger entries.
type LedgerEntryRepository interface {
	// SaveBatch stores a batch of imported ledger entries.
	SaveBatch(ctx context.Context, entries []*entity.LedgerEntry) error

	// FindAll retrieves every stored ledger entry ordered by posting date.
	FindAll(ctx context.Context) ([]*entity.LedgerEntry, error)
}
