package error

import "errors"

// Reconciliation and record import domain errors.
var (
	// ErrNoReconciliationRun is returned when results are requested before any pass has run.
	ErrNoReconciliationRun = errors.New("no reconciliation run available")

	// ErrEmptyImportBatch is returned when an import request carries no records.
	ErrEmptyImportBatch = errors.New("import batch cannot be empty")

	// ErrMissingRecordReference is returned when an imported record has no reference.
	ErrMissingRecordReference = errors.New("record reference is required")

	// ErrRateLimited is returned when too many reconciliation runs are triggered.
	ErrRateLimited = errors.New("too many requests")
)

// ReconciliationErrorCode defines error codes for reconciliation errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type ReconciliationErrorCode string

const (
	// Run errors (01XXXX)
	ErrCodeNoReconciliationRun ReconciliationErrorCode = "REC-010001"
	ErrCodeRateLimited         ReconciliationErrorCode = "REC-010002"

	// Import errors (02XXXX)
	ErrCodeEmptyImportBatch        ReconciliationErrorCode = "REC-020001"
	ErrCodeMissingRecordReference  ReconciliationErrorCode = "REC-020002"
)
