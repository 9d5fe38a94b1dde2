package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/paymatch/backend/internal/application/adapter"
	domainerror "github.com/paymatch/backend/internal/domain/error"
	"github.com/paymatch/backend/internal/domain/valueobject"
	"github.com/paymatch/backend/internal/integration/persistence/model"
)

// ruleSetRepository implements the adapter.RuleSetRepository interface.
type ruleSetRepository struct {
	db *gorm.DB
}

// NewRuleSetRepository creates a new rule set repository instance.
func NewRuleSetRepository(db *gorm.DB) adapter.RuleSetRepository {
	return &ruleSetRepository{
		db: db,
	}
}

// Get retrieves the active rule configuration.
func (r *ruleSetRepository) Get(ctx context.Context) (valueobject.ReconciliationRules, error) {
	var ruleSetModel model.RuleSetModel
	result := r.db.WithContext(ctx).First(&ruleSetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return valueobject.ReconciliationRules{}, domainerror.ErrRuleSetNotFound
		}
		return valueobject.ReconciliationRules{}, result.Error
	}
	return ruleSetModel.ToValueObject(), nil
}

// Save persists the active rule configuration, replacing any previous one.
func (r *ruleSetRepository) Save(ctx context.Context, rules valueobject.ReconciliationRules) error {
	ruleSetModel := model.RuleSetFromValueObject(rules)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(ruleSetModel)
	return result.Error
}
