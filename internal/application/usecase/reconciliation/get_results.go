package reconciliation

import (
	"context"

	"github.com/paymatch/backend/internal/application/adapter"
	"github.com/paymatch/backend/internal/domain/valueobject"
)

// GetResultsInput represents the input for fetching filtered results.
type GetResultsInput struct {
	Filter valueobject.ResultFilter
}

// GetResultsOutput represents the filtered view over the latest run.
type GetResultsOutput struct {
	Results []valueobject.ReconciliationResult
	Total   int // Count of results matching the filter
}

// GetResultsUseCase serves filtered views over the cached latest run.
type GetResultsUseCase struct {
	resultStore adapter.ResultStore
}

// NewGetResultsUseCase creates a new GetResultsUseCase instance.
func NewGetResultsUseCase(resultStore adapter.ResultStore) *GetResultsUseCase {
	return &GetResultsUseCase{
		resultStore: resultStore,
	}
}

// Execute retrieves the latest run and applies the filter.
func (uc *GetResultsUseCase) Execute(ctx context.Context, input GetResultsInput) (*GetResultsOutput, error) {
	results, err := uc.resultStore.LatestRun(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterResults(results, input.Filter)

	return &GetResultsOutput{
		Results: filtered,
		Total:   len(filtered),
	}, nil
}
