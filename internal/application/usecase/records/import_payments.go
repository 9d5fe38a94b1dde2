// Package records contains record import and listing use cases. Imported
// records supply the reconciliation engine's inputs; the engine itself
// performs no I/O.
package records

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/paymatch/backend/internal/application/adapter"
	"github.com/paymatch/backend/internal/domain/entity"
	domainerror "github.com/paymatch/backend/internal/domain/error"
)

// PaymentInput represents one payment record to import.
type PaymentInput struct {
	Reference string
	PayerName string
	Amount    decimal.Decimal
	Date      time.Time
	Memo      string
}

// ImportPaymentsInput represents a batch of payments to import.
type ImportPaymentsInput struct {
	Payments []PaymentInput
}

// ImportPaymentsOutput reports how many payments were stored.
type ImportPaymentsOutput struct {
	Imported int
}

// ImportPaymentsUseCase handles importing payment batches.
type ImportPaymentsUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewImportPaymentsUseCase creates a new ImportPaymentsUseCase instance.
func NewImportPaymentsUseCase(paymentRepo adapter.PaymentRepository) *ImportPaymentsUseCase {
	return &ImportPaymentsUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute stores a batch of imported payments. Batches must be non-empty and
// every record needs a reference; malformed amounts or dates are accepted
// here and excluded later by the engine, which surfaces them as issues.
func (uc *ImportPaymentsUseCase) Execute(ctx context.Context, input ImportPaymentsInput) (*ImportPaymentsOutput, error) {
	if len(input.Payments) == 0 {
		return nil, domainerror.ErrEmptyImportBatch
	}

	payments := make([]*entity.Payment, 0, len(input.Payments))
	for _, p := range input.Payments {
		if p.Reference == "" {
			return nil, domainerror.ErrMissingRecordReference
		}
		payments = append(payments, entity.NewPayment(p.Reference, p.PayerName, p.Amount, p.Date, p.Memo))
	}

	if err := uc.paymentRepo.SaveBatch(ctx, payments); err != nil {
		return nil, err
	}

	return &ImportPaymentsOutput{Imported: len(payments)}, nil
}
