package records

import (
	"context"

	"github.com/paymatch/backend/internal/application/adapter"
	"github.com/paymatch/backend/internal/domain/entity"
)

// ListInvoicesOutput represents the stored invoice collection.
type ListInvoicesOutput struct {
	Invoices []*entity.Invoice
}

// ListInvoicesUseCase handles listing imported invoices.
type ListInvoicesUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewListInvoicesUseCase creates a new ListInvoicesUseCase instance.
func NewListInvoicesUseCase(invoiceRepo adapter.InvoiceRepository) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{
		invoiceRepo: invoiceRepo,
	}
}

// Execute retrieves every stored invoice in due-date order.
func (uc *ListInvoicesUseCase) Execute(ctx context.Context) (*ListInvoicesOutput, error) {
	invoices, err := uc.invoiceRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &ListInvoicesOutput{Invoices: invoices}, nil
}
