// Package cache implements Redis-backed stores for the integration layer.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/paymatch/backend/internal/application/adapter"
	domainerror "github.com/paymatch/backend/internal/domain/error"
	"github.com/paymatch/backend/internal/domain/valueobject"
)

// latestRunKey holds the full result sequence of the most recent
// reconciliation pass. Each pass replaces it wholesale.
const latestRunKey = "reconciliation:latest_run"

// resultStore implements the adapter.ResultStore interface on Redis.
type resultStore struct {
	client *redis.Client
}

// NewResultStore creates a new Redis-backed result store.
func NewResultStore(client *redis.Client) adapter.ResultStore {
	return &resultStore{
		client: client,
	}
}

// SaveRun stores the full result sequence of a reconciliation pass.
func (s *resultStore) SaveRun(ctx context.Context, results []valueobject.ReconciliationResult) error {
	payload, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to encode reconciliation results: %w", err)
	}

	if err := s.client.Set(ctx, latestRunKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to store reconciliation results: %w", err)
	}
	return nil
}

// LatestRun retrieves the result sequence of the most recent pass.
func (s *resultStore) LatestRun(ctx context.Context) ([]valueobject.ReconciliationResult, error) {
	payload, err := s.client.Get(ctx, latestRunKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrNoReconciliationRun
		}
		return nil, fmt.Errorf("failed to load reconciliation results: %w", err)
	}

	var results []valueobject.ReconciliationResult
	if err := json.Unmarshal(payload, &results); err != nil {
		return nil, fmt.Errorf("failed to decode reconciliation results: %w", err)
	}
	return results, nil
}
