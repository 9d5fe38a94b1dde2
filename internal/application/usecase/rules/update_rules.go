package rules

import (
	"context"

	"github.com/paymatch/backend/internal/application/adapter"
	"github.com/paymatch/backend/internal/domain/valueobject"
)

// UpdateRulesInput represents the input for replacing the rule configuration.
type UpdateRulesInput struct {
	Rules valueobject.ReconciliationRules
}

// UpdateRulesOutput represents the persisted rule configuration.
type UpdateRulesOutput struct {
	Rules valueobject.ReconciliationRules
}

// UpdateRulesUseCase handles validating and persisting the rule
// configuration. Invalid sets are rejected and never persisted.
type UpdateRulesUseCase struct {
	ruleSetRepo adapter.RuleSetRepository
}

// NewUpdateRulesUseCase creates a new UpdateRulesUseCase instance.
func NewUpdateRulesUseCase(ruleSetRepo adapter.RuleSetRepository) *UpdateRulesUseCase {
	return &UpdateRulesUseCase{
		ruleSetRepo: ruleSetRepo,
	}
}

// Execute validates the configuration and replaces the persisted one.
func (uc *UpdateRulesUseCase) Execute(ctx context.Context, input UpdateRulesInput) (*UpdateRulesOutput, error) {
	if err := input.Rules.Validate(); err != nil {
		return nil, err
	}

	if err := uc.ruleSetRepo.Save(ctx, input.Rules); err != nil {
		return nil, err
	}

	return &UpdateRulesOutput{Rules: input.Rules}, nil
}
