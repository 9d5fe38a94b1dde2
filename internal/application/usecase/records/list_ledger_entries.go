package records

import (
	"context"

	"github.com/paymatch/backend/internal/application/adapter"
	"github.com/paymatch/backend/internal/domain/entity"
)

// ListLedgerEntriesOutput represents the stored ledger entry collection.
type ListLedgerEntriesOutput struct {
	Entries []*entity.LedgerEntry
}

// ListLedgerEntriesUseCase handles listing imported ledger entries.
type ListLedgerEntriesUseCase struct {
	ledgerRepo adapter.LedgerEntryRepository
}

// NewListLedgerEntriesUseCase creates a new ListLedgerEntriesUseCase instance.
func NewListLedgerEntriesUseCase(ledgerRepo adapter.LedgerEntryRepository) *ListLedgerEntriesUseCase {
	return &ListLedgerEntriesUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute retrieves every stored ledger entry in posting order.
func (uc *ListLedgerEntriesUseCase) Execute(ctx context.Context) (*ListLedgerEntriesOutput, error) {
	entries, err := uc.ledgerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &ListLedgerEntriesOutput{Entries: entries}, nil
}
