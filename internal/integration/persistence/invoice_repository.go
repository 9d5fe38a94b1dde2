package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/paymatch/backend/internal/application/adapter"
	"github.com/paymatch/backend/internal/domain/entity"
	"github.com/paymatch/backend/internal/integration/persistence/model"
)

// invoiceRepository implements the adapter.InvoiceRepository interface.
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository instance.
func NewInvoiceRepository(db *gorm.DB) adapter.InvoiceRepository {
	return &invoiceRepository{
		db: db,
	}
}

// SaveBatch stores a batch of imported invoices.
func (r *invoiceRepository) SaveBatch(ctx context.Context, invoices []*entity.Invoice) error {
	models := make([]*model.InvoiceModel, len(invoices))
	for i, inv := range invoices {
		models[i] = model.InvoiceFromEntity(inv)
	}

	result := r.db.WithContext(ctx).Create(models)
	return result.Error
}

// FindAll retrieves every stored invoice ordered by due date, then number.
func (r *invoiceRepository) FindAll(ctx context.Context) ([]*entity.Invoice, error) {
	var models []model.InvoiceModel
	result := r.db.WithContext(ctx).
		Order("due_date ASC, number ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	invoices := make([]*entity.Invoice, len(models))
	for i, m := range models {
		invoices[i] = m.ToEntity()
	}
	return invoices, nil
}
