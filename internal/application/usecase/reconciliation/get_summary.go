package reconciliation

import (
	"context"

	"github.com/paymatch/backend/internal/application/adapter"
	"github.com/paymatch/backend/internal/domain/valueobject"
)

// GetSummaryOutput represents the aggregate summary of the latest run.
type GetSummaryOutput struct {
	Summary valueobject.ReconciliationSummary
}

// GetSummaryUseCase serves the aggregate summary of the cached latest run.
type GetSummaryUseCase struct {
	resultStore adapter.ResultStore
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(resultStore adapter.ResultStore) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		resultStore: resultStore,
	}
}

// Execute retrieves the latest run and reduces it to its summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	results, err := uc.resultStore.LatestRun(ctx)
	if err != nil {
		return nil, err
	}

	return &GetSummaryOutput{
		Summary: Summarize(results),
	}, nil
}
