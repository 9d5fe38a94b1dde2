package adapter

import (
	"context"

	"github.com/paymatch/backend/internal/domain/valueobject"
)

// RuleSetRepository defines persistence operations for the reconciliation
// rule configuration. The editing surface persists a single active rule set.
type RuleSetRepository interface {
	// Get retrieves the active rule configuration. Returns
	// domainerror.ErrRuleSetNotFound when none has been persisted yet.
	Get(ctx context.Context) (valueobject.ReconciliationRules, error)

	// Save persists the active rule configuration, replacing any previous one.
	// Callers validate before saving; Save never persists an invalid set.
	Save(ctx context.Context, rules valueobject.ReconciliationRules) error
}
