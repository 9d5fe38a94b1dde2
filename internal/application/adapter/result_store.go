package adapter

import (
	"context"

	"github.com/paymatch/backend/internal/domain/valueobject"
)

// ResultStore caches the latest reconciliation run so a pass is computed
// once and viewed many times. Results are replaced wholesale on every run.
type ResultStore interface {
	// SaveRun stores the full result sequence of a reconciliation pass.
	SaveRun(ctx context.Context, results []valueobject.ReconciliationResult) error

	// LatestRun retrieves the result sequence of the most recent pass.
	// Returns domainerror.ErrNoReconciliationRun when no pass has run yet.
	LatestRun(ctx context.Context) ([]valueobject.ReconciliationResult, error)
}
