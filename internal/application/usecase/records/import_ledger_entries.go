package records

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/paymatch/backend/internal/application/adapter"
	"github.com/paymatch/backend/internal/domain/entity"
	domainerror "github.com/paymatch/backend/internal/domain/error"
)

// LedgerEntryInput represents one ledger entry record to import.
type LedgerEntryInput struct {
	EntryRef         string
	PaymentReference string
	InvoiceNumber    string
	Amount           decimal.Decimal
	PostedAt         time.Time
}

// ImportLedgerEntriesInput represents a batch of ledger entries to import.
type ImportLedgerEntriesInput struct {
	Entries []LedgerEntryInput
}

// ImportLedgerEntriesOutput reports how many entries were stored.
type ImportLedgerEntriesOutput struct {
	Imported int
}

// ImportLedgerEntriesUseCase handles importing ledger entry batches.
type ImportLedgerEntriesUseCase struct {
	ledgerRepo adapter.LedgerEntryRepository
}

// NewImportLedgerEntriesUseCase creates a new ImportLedgerEntriesUseCase instance.
func NewImportLedgerEntriesUseCase(ledgerRepo adapter.LedgerEntryRepository) *ImportLedgerEntriesUseCase {
	return &ImportLedgerEntriesUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute stores a batch of imported ledger entries.
func (uc *ImportLedgerEntriesUseCase) Execute(ctx context.Context, input ImportLedgerEntriesInput) (*ImportLedgerEntriesOutput, error) {
	if len(input.Entries) == 0 {
		return nil, domainerror.ErrEmptyImportBatch
	}

	entries := make([]*entity.LedgerEntry, 0, len(input.Entries))
	for _, e := range input.Entries {
		if e.EntryRef == "" {
			return nil, domainerror.ErrMissingRecordReference
		}
		entries = append(entries, entity.NewLedgerEntry(e.EntryRef, e.PaymentReference, e.InvoiceNumber, e.Amount, e.PostedAt))
	}

	if err := uc.ledgerRepo.SaveBatch(ctx, entries); err != nil {
		return nil, err
	}

	return &ImportLedgerEntriesOutput{Imported: len(entries)}, nil
}
