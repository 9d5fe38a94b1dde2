// Package error defines domain-specific errors for the PayMatch application.
package error

import "errors"

// Rule configuration domain errors.
var (
	// ErrWeightSumInvalid is returned when scoring weights do not sum to 100.
	ErrWeightSumInvalid = errors.New("scoring weights must sum to exactly 100")

	// ErrNegativeWeight is returned when any scoring weight is negative.
	ErrNegativeWeight = errors.New("scoring weights must be non-negative")

	// ErrThresholdOutOfRange is returned when a threshold is outside its documented range.
	ErrThresholdOutOfRange = errors.New("threshold out of range")

	// ErrRuleSetNotFound is returned when no rule configuration has been persisted.
	ErrRuleSetNotFound = errors.New("rule configuration not found")
)

// RulesErrorCode defines error codes for rule configuration errors.
// Format: RUL-XXYYYY where XX is category and YYYY is specific error.
type RulesErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeWeightSumInvalid          RulesErrorCode = "RUL-010001"
	ErrCodeNegativeWeight            RulesErrorCode = "RUL-010002"
	ErrCodeMinConfidenceOutOfRange   RulesErrorCode = "RUL-010003"
	ErrCodeNameSensitivityOutOfRange RulesErrorCode = "RUL-010004"
	ErrCodeAmountToleranceOutOfRange RulesErrorCode = "RUL-010005"
	ErrCodeDateThresholdOutOfRange   RulesErrorCode = "RUL-010006"
	ErrCodePartialMinOutOfRange      RulesErrorCode = "RUL-010007"

	// Persistence errors (02XXXX)
	ErrCodeRuleSetNotFound RulesErrorCode = "RUL-020001"
)

// RulesError represents a rule configuration error with code and message.
type RulesError struct {
	Code    RulesErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RulesError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RulesError) Unwrap() error {
	return e.Err
}

// NewRulesError creates a new RulesError with the given code and message.
func NewRulesError(code RulesErrorCode, message string, err error) *RulesError {
	return &RulesError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
