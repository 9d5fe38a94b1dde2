package dto

import (
	"github.com/shopspring/decimal"

	"github.com/paymatch/backend/internal/domain/valueobject"
)

// EnabledRulesDTO carries the per-technique switches.
type EnabledRulesDTO struct {
	ExactReferenceMatch    bool `json:"exact_reference_match"`
	FuzzyCustomerMatch     bool `json:"fuzzy_customer_match"`
	AmountTolerance        bool `json:"amount_tolerance"`
	DuplicateDetection     bool `json:"duplicate_detection"`
	PartialPaymentMatching bool `json:"partial_payment_matching"`
	DateProximity          bool `json:"date_proximity"`
}

// ThresholdsDTO carries the numeric knobs of the matcher.
type ThresholdsDTO struct {
	MinConfidenceScore       int    `json:"min_confidence_score"`
	NameMatchSensitivity     int    `json:"name_match_sensitivity"`
	AmountTolerancePercent   string `json:"amount_tolerance_percent"`
	DateDifferenceDays       int    `json:"date_difference_days"`
	PartialPaymentMinPercent int    `json:"partial_payment_min_percent"`
}

// WeightsDTO carries the four sub-score weights.
type WeightsDTO struct {
	Reference int `json:"reference"`
	Amount    int `json:"amount"`
	Name      int `json:"name"`
	Date      int `json:"date"`
}

// RulesDTO represents a full rule configuration.
type RulesDTO struct {
	Enabled    EnabledRulesDTO `json:"enabled_rules"`
	Thresholds ThresholdsDTO   `json:"thresholds"`
	Weights    WeightsDTO      `json:"weights"`
}

// GetRulesResponse represents the response for GET /rules.
type GetRulesResponse struct {
	Rules     RulesDTO `json:"rules"`
	IsDefault bool     `json:"is_default"`
}

// UpdateRulesRequest represents the request body for PUT /rules.
type UpdateRulesRequest struct {
	Rules RulesDTO `json:"rules" binding:"required"`
}

// ToValueObject converts a RulesDTO to the domain value object. An
// unparseable amount tolerance surfaces as an error.
func (d RulesDTO) ToValueObject() (valueobject.ReconciliationRules, error) {
	tolerance, err := decimal.NewFromString(d.Thresholds.AmountTolerancePercent)
	if err != nil {
		return valueobject.ReconciliationRules{}, err
	}

	return valueobject.ReconciliationRules{
		Enabled: valueobject.EnabledRules{
			ExactReferenceMatch:    d.Enabled.ExactReferenceMatch,
			FuzzyCustomerMatch:     d.Enabled.FuzzyCustomerMatch,
			AmountTolerance:        d.Enabled.AmountTolerance,
			DuplicateDetection:     d.Enabled.DuplicateDetection,
			PartialPaymentMatching: d.Enabled.PartialPaymentMatching,
			DateProximity:          d.Enabled.DateProximity,
		},
		Thresholds: valueobject.Thresholds{
			MinConfidenceScore:       d.Thresholds.MinConfidenceScore,
			NameMatchSensitivity:     d.Thresholds.NameMatchSensitivity,
			AmountTolerancePercent:   tolerance,
			DateDifferenceDays:       d.Thresholds.DateDifferenceDays,
			PartialPaymentMinPercent: d.Thresholds.PartialPaymentMinPercent,
		},
		Weights: valueobject.Weights{
			Reference: d.Weights.Reference,
			Amount:    d.Weights.Amount,
			Name:      d.Weights.Name,
			Date:      d.Weights.Date,
		},
	}, nil
}

// RulesToDTO converts the domain value object to a RulesDTO.
func RulesToDTO(rules valueobject.ReconciliationRules) RulesDTO {
	return RulesDTO{
		Enabled: EnabledRulesDTO{
			ExactReferenceMatch:    rules.Enabled.ExactReferenceMatch,
			FuzzyCustomerMatch:     rules.Enabled.FuzzyCustomerMatch,
			AmountTolerance:        rules.Enabled.AmountTolerance,
			DuplicateDetection:     rules.Enabled.DuplicateDetection,
			PartialPaymentMatching: rules.Enabled.PartialPaymentMatching,
			DateProximity:          rules.Enabled.DateProximity,
		},
		Thresholds: ThresholdsDTO{
			MinConfidenceScore:       rules.Thresholds.MinConfidenceScore,
			NameMatchSensitivity:     rules.Thresholds.NameMatchSensitivity,
			AmountTolerancePercent:   rules.Thresholds.AmountTolerancePercent.String(),
			DateDifferenceDays:       rules.Thresholds.DateDifferenceDays,
			PartialPaymentMinPercent: rules.Thresholds.PartialPaymentMinPercent,
		},
		Weights: WeightsDTO{
			Reference: rules.Weights.Reference,
			Amount:    rules.Weights.Amount,
			Name:      rules.Weights.Name,
			Date:      rules.Weights.Date,
		},
	}
}
