package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/paymatch/backend/internal/domain/valueobject"
)

// activeRuleSetID is the primary key of the single active rule row. The
// editing surface maintains one configuration; history is out of scope.
const activeRuleSetID = 1

// RuleSetModel represents the rule_sets table in the database.
type RuleSetModel struct {
	ID int `gorm:"primaryKey"`

	ExactReferenceMatch    bool `gorm:"not null"`
	FuzzyCustomerMatch     bool `gorm:"not null"`
	AmountTolerance        bool `gorm:"not null"`
	DuplicateDetection     bool `gorm:"not null"`
	PartialPaymentMatching bool `gorm:"not null"`
	DateProximity          bool `gorm:"not null"`

	MinConfidenceScore       int             `gorm:"not null"`
	NameMatchSensitivity     int             `gorm:"not null"`
	AmountTolerancePercent   decimal.Decimal `gorm:"type:decimal(4,2);not null"`
	DateDifferenceDays       int             `gorm:"not null"`
	PartialPaymentMinPercent int             `gorm:"not null"`

	WeightReference int `gorm:"not null"`
	WeightAmount    int `gorm:"not null"`
	WeightName      int `gorm:"not null"`
	WeightDate      int `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the RuleSetModel.
func (RuleSetModel) TableName() string {
	return "rule_sets"
}

// ToValueObject converts a RuleSetModel to the ReconciliationRules value object.
func (m *RuleSetModel) ToValueObject() valueobject.ReconciliationRules {
	return valueobject.ReconciliationRules{
		Enabled: valueobject.EnabledRules{
			ExactReferenceMatch:    m.ExactReferenceMatch,
			FuzzyCustomerMatch:     m.FuzzyCustomerMatch,
			AmountTolerance:        m.AmountTolerance,
			DuplicateDetection:     m.DuplicateDetection,
			PartialPaymentMatching: m.PartialPaymentMatching,
			DateProximity:          m.DateProximity,
		},
		Thresholds: valueobject.Thresholds{
			MinConfidenceScore:       m.MinConfidenceScore,
			NameMatchSensitivity:     m.NameMatchSensitivity,
			AmountTolerancePercent:   m.AmountTolerancePercent,
			DateDifferenceDays:       m.DateDifferenceDays,
			PartialPaymentMinPercent: m.PartialPaymentMinPercent,
		},
		Weights: valueobject.Weights{
			Reference: m.WeightReference,
			Amount:    m.WeightAmount,
			Name:      m.WeightName,
			Date:      m.WeightDate,
		},
	}
}

// RuleSetFromValueObject creates the active RuleSetModel row from the
// ReconciliationRules value object.
func RuleSetFromValueObject(rules valueobject.ReconciliationRules) *RuleSetModel {
	return &RuleSetModel{
		ID:                       activeRuleSetID,
		ExactReferenceMatch:      rules.Enabled.ExactReferenceMatch,
		FuzzyCustomerMatch:       rules.Enabled.FuzzyCustomerMatch,
		AmountTolerance:          rules.Enabled.AmountTolerance,
		DuplicateDetection:       rules.Enabled.DuplicateDetection,
		PartialPaymentMatching:   rules.Enabled.PartialPaymentMatching,
		DateProximity:            rules.Enabled.DateProximity,
		MinConfidenceScore:       rules.Thresholds.MinConfidenceScore,
		NameMatchSensitivity:     rules.Thresholds.NameMatchSensitivity,
		AmountTolerancePercent:   rules.Thresholds.AmountTolerancePercent,
		DateDifferenceDays:       rules.Thresholds.DateDifferenceDays,
		PartialPaymentMinPercent: rules.Thresholds.PartialPaymentMinPercent,
		WeightReference:          rules.Weights.Reference,
		WeightAmount:             rules.Weights.Amount,
		WeightName:               rules.Weights.Name,
		WeightDate:               rules.Weights.Date,
	}
}
