package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paymatch/backend/internal/application/usecase/records"
	domainerror "github.com/paymatch/backend/internal/domain/error"
	"github.com/paymatch/backend/internal/integration/entrypoint/dto"
)

// RecordsController handles payment, invoice and ledger entry import and
// listing endpoints.
type RecordsController struct {
	importPaymentsUseCase      *records.ImportPaymentsUseCase
	importInvoicesUseCase      *records.ImportInvoicesUseCase
	importLedgerEntriesUseCase *records.ImportLedgerEntriesUseCase
	listPaymentsUseCase        *records.ListPaymentsUseCase
	listInvoicesUseCase        *records.ListInvoicesUseCase
	listLedgerEntriesUseCase   *records.ListLedgerEntriesUseCase
}

// NewRecordsController creates a new records controller instance.
func NewRecordsController(
	importPaymentsUseCase *records.ImportPaymentsUseCase,
	importInvoicesUseCase *records.ImportInvoicesUseCase,
	importLedgerEntriesUseCase *records.ImportLedgerEntriesUseCase,
	listPaymentsUseCase *records.ListPaymentsUseCase,
	listInvoicesUseCase *records.ListInvoicesUseCase,
	listLedgerEntriesUseCase *records.ListLedgerEntriesUseCase,
) *RecordsController {
	return &RecordsController{
		importPaymentsUseCase:      importPaymentsUseCase,
		importInvoicesUseCase:      importInvoicesUseCase,
		importLedgerEntriesUseCase: importLedgerEntriesUseCase,
		listPaymentsUseCase:        listPaymentsUseCase,
		listInvoicesUseCase:        listInvoicesUseCase,
		listLedgerEntriesUseCase:   listLedgerEntriesUseCase,
	}
}

// ImportPayments handles POST /payments/import requests.
func (c *RecordsController) ImportPayments(ctx *gin.Context) {
	var req dto.ImportPaymentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	output, err := c.importPaymentsUseCase.Execute(ctx.Request.Context(), records.ImportPaymentsInput{
		Payments: req.ToPaymentInputs(),
	})
	if err != nil {
		respondImportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ImportResponse{Imported: output.Imported})
}

// ImportInvoices handles POST /invoices/import requests.
func (c *RecordsController) ImportInvoices(ctx *gin.Context) {
	var req dto.ImportInvoicesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	output, err := c.importInvoicesUseCase.Execute(ctx.Request.Context(), records.ImportInvoicesInput{
		Invoices: req.ToInvoiceInputs(),
	})
	if err != nil {
		respondImportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ImportResponse{Imported: output.Imported})
}

// ImportLedgerEntries handles POST /ledger-entries/import requests.
func (c *RecordsController) ImportLedgerEntries(ctx *gin.Context) {
	var req dto.ImportLedgerEntriesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	output, err := c.importLedgerEntriesUseCase.Execute(ctx.Request.Context(), records.ImportLedgerEntriesInput{
		Entries: req.ToLedgerEntryInputs(),
	})
	if err != nil {
		respondImportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ImportResponse{Imported: output.Imported})
}

// ListPayments handles GET /payments requests.
func (c *RecordsController) ListPayments(ctx *gin.Context) {
	output, err := c.listPaymentsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to list payments",
		})
		return
	}

	payments := make([]dto.PaymentDTO, len(output.Payments))
	for i, p := range output.Payments {
		payments[i] = dto.PaymentToDTO(p)
	}

	ctx.JSON(http.StatusOK, dto.ListPaymentsResponse{
		Payments: payments,
		Total:    len(payments),
	})
}

// ListInvoices handles GET /invoices requests.
func (c *RecordsController) ListInvoices(ctx *gin.Context) {
	output, err := c.listInvoicesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to list invoices",
		})
		return
	}

	invoices := make([]dto.InvoiceDTO, len(output.Invoices))
	for i, inv := range output.Invoices {
		invoices[i] = dto.InvoiceToDTO(inv)
	}

	ctx.JSON(http.StatusOK, dto.ListInvoicesResponse{
		Invoices: invoices,
		Total:    len(invoices),
	})
}

// ListLedgerEntries handles GET /ledger-entries requests.
func (c *RecordsController) ListLedgerEntries(ctx *gin.Context) {
	output, err := c.listLedgerEntriesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to list ledger entries",
		})
		return
	}

	entries := make([]dto.LedgerEntryDTO, len(output.Entries))
	for i, e := range output.Entries {
		entries[i] = dto.LedgerEntryToDTO(e)
	}

	ctx.JSON(http.StatusOK, dto.ListLedgerEntriesResponse{
		Entries: entries,
		Total:   len(entries),
	})
}

func respondImportError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrEmptyImportBatch):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Import batch must contain at least one record",
			Code:  string(domainerror.ErrCodeEmptyImportBatch),
		})
	case errors.Is(err, domainerror.ErrMissingRecordReference):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Every imported record needs a reference",
			Code:  string(domainerror.ErrCodeMissingRecordReference),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to import records",
		})
	}
}
