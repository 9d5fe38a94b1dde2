package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/paymatch/backend/internal/application/usecase/records"
	"github.com/paymatch/backend/internal/domain/entity"
)

// PaymentImportDTO represents one payment row in an import request.
// Row fields are validated by the import use case rather than the
// binding layer so that malformed rows surface domain error codes and
// unparseable values flow to the engine as malformed records.
type PaymentImportDTO struct {
	Reference string `json:"reference"`
	PayerName string `json:"payer_name"`
	Amount    string `json:"amount"`
	Date      string `json:"date"`
	Memo      string `json:"memo"`
}

// ImportPaymentsRequest represents the request body for POST /payments/import.
type ImportPaymentsRequest struct {
	Payments []PaymentImportDTO `json:"payments"`
}

// InvoiceImportDTO represents one invoice row in an import request.
type InvoiceImportDTO struct {
	Number        string `json:"number"`
	CustomerName  string `json:"customer_name"`
	Amount        string `json:"amount"`
	DueDate       string `json:"due_date"`
	ReferenceCode string `json:"reference_code"`
}

// ImportInvoicesRequest represents the request body for POST /invoices/import.
type ImportInvoicesRequest struct {
	Invoices []InvoiceImportDTO `json:"invoices"`
}

// LedgerEntryImportDTO represents one ledger entry row in an import request.
type LedgerEntryImportDTO struct {
	EntryRef         string `json:"entry_ref"`
	PaymentReference string `json:"payment_reference"`
	InvoiceNumber    string `json:"invoice_number"`
	Amount           string `json:"amount"`
	PostedAt         string `json:"posted_at"`
}

// ImportLedgerEntriesRequest represents the request body for POST /ledger-entries/import.
type ImportLedgerEntriesRequest struct {
	Entries []LedgerEntryImportDTO `json:"entries"`
}

// ImportResponse reports how many records an import stored.
type ImportResponse struct {
	Imported int `json:"imported"`
}

// PaymentDTO represents a stored payment.
type PaymentDTO struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
	PayerName string `json:"payer_name"`
	Amount    string `json:"amount"`
	Date      string `json:"date"`
	Memo      string `json:"memo,omitempty"`
}

// ListPaymentsResponse represents the response for GET /payments.
type ListPaymentsResponse struct {
	Payments []PaymentDTO `json:"payments"`
	Total    int          `json:"total"`
}

// InvoiceDTO represents a stored invoice.
type InvoiceDTO struct {
	ID            string `json:"id"`
	Number        string `json:"number"`
	CustomerName  string `json:"customer_name"`
	Amount        string `json:"amount"`
	DueDate       string `json:"due_date"`
	ReferenceCode string `json:"reference_code,omitempty"`
}

// ListInvoicesResponse represents the response for GET /invoices.
type ListInvoicesResponse struct {
	Invoices []InvoiceDTO `json:"invoices"`
	Total    int          `json:"total"`
}

// LedgerEntryDTO represents a stored ledger entry.
type LedgerEntryDTO struct {
	ID               string `json:"id"`
	EntryRef         string `json:"entry_ref"`
	PaymentReference string `json:"payment_reference,omitempty"`
	InvoiceNumber    string `json:"invoice_number,omitempty"`
	Amount           string `json:"amount"`
	PostedAt         string `json:"posted_at"`
}

// ListLedgerEntriesResponse represents the response for GET /ledger-entries.
type ListLedgerEntriesResponse struct {
	Entries []LedgerEntryDTO `json:"entries"`
	Total   int              `json:"total"`
}

// ToPaymentInputs parses an import request into use case inputs. Rows with
// unparseable amounts or dates are imported with zero values; the engine
// excludes such records from matching and reports them as issues.
func (r ImportPaymentsRequest) ToPaymentInputs() []records.PaymentInput {
	inputs := make([]records.PaymentInput, len(r.Payments))
	for i, p := range r.Payments {
		amount, _ := decimal.NewFromString(p.Amount)
		date, _ := time.Parse(time.DateOnly, p.Date)
		inputs[i] = records.PaymentInput{
			Reference: p.Reference,
			PayerName: p.PayerName,
			Amount:    amount,
			Date:      date,
			Memo:      p.Memo,
		}
	}
	return inputs
}

// ToInvoiceInputs parses an import request into use case inputs.
func (r ImportInvoicesRequest) ToInvoiceInputs() []records.InvoiceInput {
	inputs := make([]records.InvoiceInput, len(r.Invoices))
	for i, inv := range r.Invoices {
		amount, _ := decimal.NewFromString(inv.Amount)
		dueDate, _ := time.Parse(time.DateOnly, inv.DueDate)
		inputs[i] = records.InvoiceInput{
			Number:        inv.Number,
			CustomerName:  inv.CustomerName,
			Amount:        amount,
			DueDate:       dueDate,
			ReferenceCode: inv.ReferenceCode,
		}
	}
	return inputs
}

// ToLedgerEntryInputs parses an import request into use case inputs.
func (r ImportLedgerEntriesRequest) ToLedgerEntryInputs() []records.LedgerEntryInput {
	inputs := make([]records.LedgerEntryInput, len(r.Entries))
	for i, e := range r.Entries {
		amount, _ := decimal.NewFromString(e.Amount)
		postedAt, _ := time.Parse(time.DateOnly, e.PostedAt)
		inputs[i] = records.LedgerEntryInput{
			EntryRef:         e.EntryRef,
			PaymentReference: e.PaymentReference,
			InvoiceNumber:    e.InvoiceNumber,
			Amount:           amount,
			PostedAt:         postedAt,
		}
	}
	return inputs
}

// PaymentToDTO converts a payment entity to its DTO.
func PaymentToDTO(p *entity.Payment) PaymentDTO {
	return PaymentDTO{
		ID:        p.ID.String(),
		Reference: p.Reference,
		PayerName: p.PayerName,
		Amount:    p.Amount.String(),
		Date:      p.Date.Format(time.DateOnly),
		Memo:      p.Memo,
	}
}

// LedgerEntryToDTO converts a ledger entry entity to its DTO.
func LedgerEntryToDTO(e *entity.LedgerEntry) LedgerEntryDTO {
	return LedgerEntryDTO{
		ID:               e.ID.String(),
		EntryRef:         e.EntryRef,
		PaymentReference: e.PaymentReference,
		InvoiceNumber:    e.InvoiceNumber,
		Amount:           e.Amount.String(),
		PostedAt:         e.PostedAt.Format(time.DateOnly),
	}
}

// InvoiceToDTO converts an invoice entity to its DTO.
func InvoiceToDTO(inv *entity.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:            inv.ID.String(),
		Number:        inv.Number,
		CustomerName:  inv.CustomerName,
		Amount:        inv.Amount.String(),
		DueDate:       inv.DueDate.Format(time.DateOnly),
		ReferenceCode: inv.ReferenceCode,
	}
}
