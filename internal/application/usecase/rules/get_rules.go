// Package rules contains rule configuration use cases.
package rules

import (
	"context"
	"errors"

	"github.com/paymatch/backend/internal/application/adapter"
	domainerror "github.com/paymatch/backend/internal/domain/error"
	"github.com/paymatch/backend/internal/domain/valueobject"
)

// GetRulesOutput represents the active rule configuration.
type GetRulesOutput struct {
	Rules valueobject.ReconciliationRules
	// IsDefault reports whether the shipped defaults are in effect because
	// no configuration has been persisted yet.
	IsDefault bool
}

// GetRulesUseCase handles fetching the active rule configuration.
type GetRulesUseCase struct {
	ruleSetRepo adapter.RuleSetRepository
}

// NewGetRulesUseCase creates a new GetRulesUseCase instance.
func NewGetRulesUseCase(ruleSetRepo adapter.RuleSetRepository) *GetRulesUseCase {
	return &GetRulesUseCase{
		ruleSetRepo: ruleSetRepo,
	}
}

// Execute retrieves the persisted rule configuration, falling back to the
// shipped defaults when none exists.
func (uc *GetRulesUseCase) Execute(ctx context.Context) (*GetRulesOutput, error) {
	rules, err := uc.ruleSetRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, domainerror.ErrRuleSetNotFound) {
			return &GetRulesOutput{
				Rules:     valueobject.DefaultReconciliationRules(),
				IsDefault: true,
			}, nil
		}
		return nil, err
	}

	return &GetRulesOutput{Rules: rules}, nil
}
