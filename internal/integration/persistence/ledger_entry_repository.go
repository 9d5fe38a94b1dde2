package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/paymatch/backend/internal/application/adapter"
	"github.com/paymatch/backend/internal/domain/entity"
	"github.com/paymatch/backend/internal/integration/persistence/model"
)

// ledgerEntryRepository implements the adapter.LedgerEntryRepository interface.
type ledgerEntryRepository struct {
	db *gorm.DB
}

// NewLedgerEntryRepository creates a new ledger entry repository instance.
func NewLedgerEntryRepository(db *gorm.DB) adapter.LedgerEntryRepository {
	return &ledgerEntryRepository{
		db: db,
	}
}

// SaveBatch stores a batch of imported ledger entries.
func (r *ledgerEntryRepository) SaveBatch(ctx context.Context, entries []*entity.LedgerEntry) error {
	models := make([]*model.LedgerEntryModel, len(entries))
	for i, e := range entries {
		models[i] = model.LedgerEntryFromEntity(e)
	}

	result := r.db.WithContext(ctx).Create(models)
	return result.Error
}

// FindAll retrieves every stored ledger entry ordered by posting date.
func (r *ledgerEntryRepository) FindAll(ctx context.Context) ([]*entity.LedgerEntry, error) {
	var models []model.LedgerEntryModel
	result := r.db.WithContext(ctx).
		Order("posted_at ASC, entry_ref ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.LedgerEntry, len(models))
	for i, m := range models {
		entries[i] = m.ToEntity()
	}
	return entries, nil
}
