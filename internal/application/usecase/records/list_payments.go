package records

import (
	"context"

	"github.com/paymatch/backend/internal/application/adapter"
	"github.com/paymatch/backend/internal/domain/entity"
)

// ListPaymentsOutput represents the stored payment collection.
type ListPaymentsOutput struct {
	Payments []*entity.Payment
}

// ListPaymentsUseCase handles listing imported payments.
type ListPaymentsUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewListPaymentsUseCase creates a new ListPaymentsUseCase instance.
func NewListPaymentsUseCase(paymentRepo adapter.PaymentRepository) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute retrieves every stored payment in date order.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context) (*ListPaymentsOutput, error) {
	payments, err := uc.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &ListPaymentsOutput{Payments: payments}, nil
}
