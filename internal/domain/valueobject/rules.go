// Package valueobject contains domain value objects for the PayMatch system.
package valueobject

import (
	"github.com/shopspring/decimal"

	domainerror "github.com/paymatch/backend/internal/domain/error"
)

// EnabledRules holds one switch per matching technique. A disabled rule
// contributes zero score and is excluded from gating.
type EnabledRules struct {
	ExactReferenceMatch    bool
	FuzzyCustomerMatch     bool
	AmountTolerance        bool
	DuplicateDetection     bool
	PartialPaymentMatching bool
	DateProximity          bool
}

// Thresholds holds the numeric knobs of the matcher.
type Thresholds struct {
	// MinConfidenceScore is the minimum combined confidence [0,100] required
	// to accept any match.
	MinConfidenceScore int
	// NameMatchSensitivity [0,100] controls fuzzy-match strictness; higher
	// sensitivity raises the similarity bar needed to reach a given score.
	NameMatchSensitivity int
	// AmountTolerancePercent is the accepted amount difference as a
	// percentage [0,5].
	AmountTolerancePercent decimal.Decimal
	// DateDifferenceDays is the day window [0,30] within which dates are
	// considered proximate.
	DateDifferenceDays int
	// PartialPaymentMinPercent [0,100] is the minimum share of the invoice
	// amount a payment must cover to count as a partial payment.
	PartialPaymentMinPercent int
}

// Weights holds the non-negative integer weights of the four sub-scores.
// A valid weight set sums to exactly 100.
type Weights struct {
	Reference int
	Amount    int
	Name      int
	Date      int
}

// Sum returns the total of the four weights.
func (w Weights) Sum() int {
	return w.Reference + w.Amount + w.Name + w.Date
}

// ReconciliationRules is the validated configuration bundle consumed
// read-only by the matcher.
type ReconciliationRules struct {
	Enabled    EnabledRules
	Thresholds Thresholds
	Weights    Weights
}

// DefaultReconciliationRules returns the shipped default configuration.
func DefaultReconciliationRules() ReconciliationRules {
	return ReconciliationRules{
		Enabled: EnabledRules{
			ExactReferenceMatch:    true,
			FuzzyCustomerMatch:     true,
			AmountTolerance:        true,
			DuplicateDetection:     true,
			PartialPaymentMatching: true,
			DateProximity:          true,
		},
		Thresholds: Thresholds{
			MinConfidenceScore:       70,
			NameMatchSensitivity:     60,
			AmountTolerancePercent:   decimal.NewFromFloat(0.5),
			DateDifferenceDays:       7,
			PartialPaymentMinPercent: 25,
		},
		Weights: Weights{
			Reference: 40,
			Amount:    30,
			Name:      20,
			Date:      10,
		},
	}
}

// Validate checks thresholds against their documented ranges and the weight
// sum invariant. Invalid configurations must be rejected before a pass; the
// engine never silently clamps or guesses intent.
func (r ReconciliationRules) Validate() error {
	if r.Weights.Reference < 0 || r.Weights.Amount < 0 || r.Weights.Name < 0 || r.Weights.Date < 0 {
		return domainerror.NewRulesError(
			domainerror.ErrCodeNegativeWeight,
			"scoring weights must be non-negative",
			domainerror.ErrNegativeWeight,
		)
	}
	if r.Weights.Sum() != 100 {
		return domainerror.NewRulesError(
			domainerror.ErrCodeWeightSumInvalid,
			"scoring weights must sum to exactly 100",
			domainerror.ErrWeightSumInvalid,
		)
	}
	if r.Thresholds.MinConfidenceScore < 0 || r.Thresholds.MinConfidenceScore > 100 {
		return domainerror.NewRulesError(
			domainerror.ErrCodeMinConfidenceOutOfRange,
			"minimum confidence score must be between 0 and 100",
			domainerror.ErrThresholdOutOfRange,
		)
	}
	if r.Thresholds.NameMatchSensitivity < 0 || r.Thresholds.NameMatchSensitivity > 100 {
		return domainerror.NewRulesError(
			domainerror.ErrCodeNameSensitivityOutOfRange,
			"name match sensitivity must be between 0 and 100",
			domainerror.ErrThresholdOutOfRange,
		)
	}
	if r.Thresholds.AmountTolerancePercent.IsNegative() ||
		r.Thresholds.AmountTolerancePercent.GreaterThan(decimal.NewFromInt(5)) {
		return domainerror.NewRulesError(
			domainerror.ErrCodeAmountToleranceOutOfRange,
			"amount tolerance must be between 0 and 5 percent",
			domainerror.ErrThresholdOutOfRange,
		)
	}
	if r.Thresholds.DateDifferenceDays < 0 || r.Thresholds.DateDifferenceDays > 30 {
		return domainerror.NewRulesError(
			domainerror.ErrCodeDateThresholdOutOfRange,
			"date difference threshold must be between 0 and 30 days",
			domainerror.ErrThresholdOutOfRange,
		)
	}
	if r.Thresholds.PartialPaymentMinPercent < 0 || r.Thresholds.PartialPaymentMinPercent > 100 {
		return domainerror.NewRulesError(
			domainerror.ErrCodePartialMinOutOfRange,
			"partial payment minimum percentage must be between 0 and 100",
			domainerror.ErrThresholdOutOfRange,
		)
	}
	return nil
}
