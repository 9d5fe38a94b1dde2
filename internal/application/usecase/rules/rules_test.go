package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/paymatch/backend/internal/domain/error"
	"github.com/paymatch/backend/internal/domain/valueobject"
)

type fakeRuleSetRepo struct {
	rules *valueobject.ReconciliationRules
}

func (f *fakeRuleSetRepo) Get(_ context.Context) (valueobject.ReconciliationRules, error) {
	if f.rules == nil {
		return valueobject.ReconciliationRules{}, domainerror.ErrRuleSetNotFound
	}
	return *f.rules, nil
}

func (f *fakeRuleSetRepo) Save(_ context.Context, rules valueobject.ReconciliationRules) error {
	f.rules = &rules
	return nil
}

func TestGetRulesUseCase_Execute(t *testing.T) {
	t.Run("returns defaults when nothing is persisted", func(t *testing.T) {
		uc := NewGetRulesUseCase(&fakeRuleSetRepo{})

		output, err := uc.Execute(context.Background())
		require.NoError(t, err)

		assert.True(t, output.IsDefault)
		assert.Equal(t, valueobject.DefaultReconciliationRules(), output.Rules)
	})

	t.Run("returns the persisted configuration", func(t *testing.T) {
		persisted := valueobject.DefaultReconciliationRules()
		persisted.Thresholds.MinConfidenceScore = 85
		uc := NewGetRulesUseCase(&fakeRuleSetRepo{rules: &persisted})

		output, err := uc.Execute(context.Background())
		require.NoError(t, err)

		assert.False(t, output.IsDefault)
		assert.Equal(t, 85, output.Rules.Thresholds.MinConfidenceScore)
	})
}

func TestUpdateRulesUseCase_Execute(t *testing.T) {
	t.Run("validates before persisting", func(t *testing.T) {
		repo := &fakeRuleSetRepo{}
		uc := NewUpdateRulesUseCase(repo)

		bad := valueobject.DefaultReconciliationRules()
		bad.Weights.Date = 20 // sum becomes 110

		_, err := uc.Execute(context.Background(), UpdateRulesInput{Rules: bad})
		require.Error(t, err)

		assert.ErrorIs(t, err, domainerror.ErrWeightSumInvalid)
		assert.Nil(t, repo.rules, "an invalid set must never be persisted")
	})

	t.Run("persists a valid configuration", func(t *testing.T) {
		repo := &fakeRuleSetRepo{}
		uc := NewUpdateRulesUseCase(repo)

		updated := valueobject.DefaultReconciliationRules()
		updated.Enabled.DuplicateDetection = false
		updated.Thresholds.DateDifferenceDays = 14

		output, err := uc.Execute(context.Background(), UpdateRulesInput{Rules: updated})
		require.NoError(t, err)

		assert.Equal(t, updated, output.Rules)
		require.NotNil(t, repo.rules)
		assert.Equal(t, 14, repo.rules.Thresholds.DateDifferenceDays)
		assert.False(t, repo.rules.Enabled.DuplicateDetection)
	})

	t.Run("round-trips through get", func(t *testing.T) {
		repo := &fakeRuleSetRepo{}
		update := NewUpdateRulesUseCase(repo)
		get := NewGetRulesUseCase(repo)

		rules := valueobject.DefaultReconciliationRules()
		rules.Weights = valueobject.Weights{Reference: 25, Amount: 25, Name: 25, Date: 25}

		_, err := update.Execute(context.Background(), UpdateRulesInput{Rules: rules})
		require.NoError(t, err)

		output, err := get.Execute(context.Background())
		require.NoError(t, err)
		assert.False(t, output.IsDefault)
		assert.Equal(t, rules.Weights, output.Rules.Weights)
	})
}
