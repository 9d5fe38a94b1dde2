package records

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/paymatch/backend/internal/application/adapter"
	"github.com/paymatch/backend/internal/domain/entity"
	domainerror "github.com/paymatch/backend/internal/domain/error"
)

// InvoiceInput represents one invoice record to import.
type InvoiceInput struct {
	Number        string
	CustomerName  string
	Amount        decimal.Decimal
	DueDate       time.Time
	ReferenceCode string
}

// ImportInvoicesInput represents a batch of invoices to import.
type ImportInvoicesInput struct {
	Invoices []InvoiceInput
}

// ImportInvoicesOutput reports how many invoices were stored.
type ImportInvoicesOutput struct {
	Imported int
}

// ImportInvoicesUseCase handles importing invoice batches.
type ImportInvoicesUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewImportInvoicesUseCase creates a new ImportInvoicesUseCase instance.
func NewImportInvoicesUseCase(invoiceRepo adapter.InvoiceRepository) *ImportInvoicesUseCase {
	return &ImportInvoicesUseCase{
		invoiceRepo: invoiceRepo,
	}
}

// Execute stores a batch of imported invoices.
func (uc *ImportInvoicesUseCase) Execute(ctx context.Context, input ImportInvoicesInput) (*ImportInvoicesOutput, error) {
	if len(input.Invoices) == 0 {
		return nil, domainerror.ErrEmptyImportBatch
	}

	invoices := make([]*entity.Invoice, 0, len(input.Invoices))
	for _, inv := range input.Invoices {
		if inv.Number == "" {
			return nil, domainerror.ErrMissingRecordReference
		}
		invoices = append(invoices, entity.NewInvoice(inv.Number, inv.CustomerName, inv.Amount, inv.DueDate, inv.ReferenceCode))
	}

	if err := uc.invoiceRepo.SaveBatch(ctx, invoices); err != nil {
		return nil, err
	}

	return &ImportInvoicesOutput{Imported: len(invoices)}, nil
}
