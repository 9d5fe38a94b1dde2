// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/paymatch/backend/internal/application/adapter"
	"github.com/paymatch/backend/internal/domain/entity"
	"github.com/paymatch/backend/internal/integration/persistence/model"
)

// paymentRepository implements the adapter.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance.
func NewPaymentRepository(db *gorm.DB) adapter.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// SaveBatch stores a batch of imported payments.
func (r *paymentRepository) SaveBatch(ctx context.Context, payments []*entity.Payment) error {
	models := make([]*model.PaymentModel, len(payments))
	for i, p := range payments {
		models[i] = model.PaymentFromEntity(p)
	}

	result := r.db.WithContext(ctx).Create(models)
	return result.Error
}

// FindAll retrieves every stored payment ordered by date, then reference.
func (r *paymentRepository) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	var models []model.PaymentModel
	result := r.db.WithContext(ctx).
		Order("date ASC, reference ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.Payment, len(models))
	for i, m := range models {
		payments[i] = m.ToEntity()
	}
	return payments, nil
}
