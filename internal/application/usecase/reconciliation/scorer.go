package reconciliation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/paymatch/backend/internal/domain/entity"
	"github.com/paymatch/backend/internal/domain/valueobject"
)

// Scorer computes the four independent sub-scores for a (payment, invoice)
// pair and combines them into one confidence score using the configured
// weights. Disabled rules contribute zero and are masked out of the weight
// vector before combination, so disabling a rule never caps achievable
// confidence below 100.
type Scorer struct {
	rules      valueobject.ReconciliationRules
	similarity Similarity
}

// NewScorer creates a scorer for a validated rule configuration.
func NewScorer(rules valueobject.ReconciliationRules, similarity Similarity) *Scorer {
	return &Scorer{
		rules:      rules,
		similarity: similarity,
	}
}

// ScorePair produces the sub-score breakdown and combined confidence for a
// payment against an invoice. invoiceDue is the invoice's remaining-due
// amount within the current pass.
func (s *Scorer) ScorePair(payment *entity.Payment, invoice *entity.Invoice, invoiceDue decimal.Decimal) (valueobject.ScoreBreakdown, float64) {
	breakdown := valueobject.ScoreBreakdown{
		Reference: s.referenceScore(payment, invoice),
		Amount:    s.amountScore(payment.Amount, invoiceDue),
		Name:      s.nameScore(payment.PayerName, invoice.CustomerName),
		Date:      s.dateScore(payment.Date, invoice.DueDate),
	}
	return breakdown, s.Combine(breakdown)
}

// ScorePaymentPair applies the same sub-score machinery payment-to-payment
// for duplicate detection. The reference sub-score is binary on the two
// payment references being equal.
func (s *Scorer) ScorePaymentPair(a, b *entity.Payment) (valueobject.ScoreBreakdown, float64) {
	refScore := 0.0
	if s.rules.Enabled.ExactReferenceMatch && normalizeText(a.Reference) == normalizeText(b.Reference) {
		refScore = 100
	}

	breakdown := valueobject.ScoreBreakdown{
		Reference: refScore,
		Amount:    s.amountScore(a.Amount, b.Amount),
		Name:      s.nameScore(a.PayerName, b.PayerName),
		Date:      s.dateScore(a.Date, b.Date),
	}
	return breakdown, s.Combine(breakdown)
}

// Combine produces the weighted confidence score of a breakdown, restricted
// to enabled rules with the remaining weights re-normalized.
func (s *Scorer) Combine(b valueobject.ScoreBreakdown) float64 {
	return s.combine(b, true)
}

// CombineNonAmount combines the breakdown with the amount sub-score masked
// out regardless of enablement. Partial-payment gating uses this: a smaller
// payment must still look right on reference, name, and date.
func (s *Scorer) CombineNonAmount(b valueobject.ScoreBreakdown) float64 {
	return s.combine(b, false)
}

func (s *Scorer) combine(b valueobject.ScoreBreakdown, includeAmount bool) float64 {
	weighted := 0.0
	denominator := 0

	if s.rules.Enabled.ExactReferenceMatch {
		weighted += float64(s.rules.Weights.Reference) * b.Reference
		denominator += s.rules.Weights.Reference
	}
	if s.rules.Enabled.AmountTolerance && includeAmount {
		weighted += float64(s.rules.Weights.Amount) * b.Amount
		denominator += s.rules.Weights.Amount
	}
	if s.rules.Enabled.FuzzyCustomerMatch {
		weighted += float64(s.rules.Weights.Name) * b.Name
		denominator += s.rules.Weights.Name
	}
	if s.rules.Enabled.DateProximity {
		weighted += float64(s.rules.Weights.Date) * b.Date
		denominator += s.rules.Weights.Date
	}

	if denominator == 0 {
		return 0
	}
	return clampScore(weighted / float64(denominator))
}

// referenceScore is binary, not graded: 100 on a case-insensitive,
// whitespace-normalized match of the payment reference against the invoice
// number or its alternate reference code, else 0.
func (s *Scorer) referenceScore(payment *entity.Payment, invoice *entity.Invoice) float64 {
	if !s.rules.Enabled.ExactReferenceMatch {
		return 0
	}

	ref := normalizeText(payment.Reference)
	if ref == "" {
		return 0
	}
	if ref == normalizeText(invoice.Number) {
		return 100
	}
	if invoice.ReferenceCode != "" && ref == normalizeText(invoice.ReferenceCode) {
		return 100
	}
	return 0
}

// amountScore decays linearly from 100 at equal amounts to 0 at the
// configured tolerance percentage.
func (s *Scorer) amountScore(paymentAmount, invoiceAmount decimal.Decimal) float64 {
	if !s.rules.Enabled.AmountTolerance {
		return 0
	}
	if invoiceAmount.IsZero() {
		return 0
	}

	diffPercent := paymentAmount.Sub(invoiceAmount).Abs().
		Div(invoiceAmount.Abs()).
		Mul(decimal.NewFromInt(100))

	tolerance := s.rules.Thresholds.AmountTolerancePercent
	if tolerance.IsZero() {
		if diffPercent.IsZero() {
			return 100
		}
		return 0
	}

	if diffPercent.GreaterThanOrEqual(tolerance) {
		return 0
	}

	ratio, _ := diffPercent.Div(tolerance).Float64()
	return clampScore(100 * (1 - ratio))
}

// nameScore rescales raw similarity above the sensitivity bar: at
// sensitivity 0 the score equals raw similarity, at higher sensitivities
// similarity below the bar scores 0 and the band above it stretches to
// [0,100].
func (s *Scorer) nameScore(payerName, customerName string) float64 {
	if !s.rules.Enabled.FuzzyCustomerMatch {
		return 0
	}

	similarityPercent := s.similarity.Score(payerName, customerName) * 100
	sensitivity := float64(s.rules.Thresholds.NameMatchSensitivity)

	if sensitivity >= 100 {
		if similarityPercent >= 100 {
			return 100
		}
		return 0
	}

	if similarityPercent <= sensitivity {
		return 0
	}
	return clampScore((similarityPercent - sensitivity) / (100 - sensitivity) * 100)
}

// dateScore decays linearly from 100 at the same day to 0 at the configured
// day threshold.
func (s *Scorer) dateScore(paymentDate, dueDate time.Time) float64 {
	if !s.rules.Enabled.DateProximity {
		return 0
	}

	days := dayDifference(paymentDate, dueDate)
	threshold := s.rules.Thresholds.DateDifferenceDays

	if threshold == 0 {
		if days == 0 {
			return 100
		}
		return 0
	}

	if days >= threshold {
		return 0
	}
	return clampScore(100 * (1 - float64(days)/float64(threshold)))
}

// WithinAmountTolerance reports whether two amounts differ by no more than
// the configured tolerance percentage of the reference amount.
func (s *Scorer) WithinAmountTolerance(amount, reference decimal.Decimal) bool {
	if amount.Equal(reference) {
		return true
	}
	if reference.IsZero() {
		return false
	}

	diffPercent := amount.Sub(reference).Abs().
		Div(reference.Abs()).
		Mul(decimal.NewFromInt(100))
	return diffPercent.LessThanOrEqual(s.rules.Thresholds.AmountTolerancePercent)
}

// NamesSimilar reports whether two names clear the configured sensitivity
// bar. Duplicate detection reuses this payment-to-payment.
func (s *Scorer) NamesSimilar(a, b string) bool {
	return s.similarity.Score(a, b)*100 >= float64(s.rules.Thresholds.NameMatchSensitivity)
}

// dayDifference returns the absolute whole-day difference between two dates,
// ignoring time-of-day components.
func dayDifference(a, b time.Time) int {
	dayA := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	dayB := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)

	diff := dayA.Sub(dayB)
	if diff < 0 {
		diff = -diff
	}
	return int(diff.Hours() / 24)
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
