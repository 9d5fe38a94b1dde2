package reconciliation

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/paymatch/backend/internal/domain/entity"
	"github.com/paymatch/backend/internal/domain/valueobject"
)

// confidenceEpsilon is the float tolerance under which two candidate
// confidences are considered tied.
const confidenceEpsilon = 1e-9

// Engine runs one synchronous reconciliation pass: payments, invoices, and
// ledger entries in, one ReconciliationResult per payment out. An Engine is
// stateless across passes; the mutable candidate pool lives inside a single
// Reconcile call, so concurrent passes on separate engines are safe.
type Engine struct {
	rules  valueobject.ReconciliationRules
	scorer *Scorer
}

// NewEngine creates an engine for the given rule configuration, rejecting
// invalid configurations up front. A nil similarity falls back to the
// Levenshtein implementation.
func NewEngine(rules valueobject.ReconciliationRules, similarity Similarity) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if similarity == nil {
		similarity = LevenshteinSimilarity{}
	}

	return &Engine{
		rules:  rules,
		scorer: NewScorer(rules, similarity),
	}, nil
}

// candidate is one invoice in the pass-scoped pool with its remaining-due
// amount. An invoice leaves the pool once fully consumed.
type candidate struct {
	invoice   *entity.Invoice
	remaining decimal.Decimal
	open      bool
}

// scoredCandidate pairs a pool candidate with its scores against the
// payment currently being resolved.
type scoredCandidate struct {
	candidate  *candidate
	breakdown  valueobject.ScoreBreakdown
	confidence float64
	nonAmount  float64
}

// resolvedPayment tracks an already-resolved payment for duplicate checks
// later in the same pass.
type resolvedPayment struct {
	payment *entity.Payment
	result  *valueobject.ReconciliationResult
}

// Reconcile resolves every payment against the invoice pool and returns one
// result per payment, ordered by payment date then reference. The inputs are
// borrowed and never mutated; the returned results are owned by the caller.
func (e *Engine) Reconcile(
	payments []*entity.Payment,
	invoices []*entity.Invoice,
	entries []*entity.LedgerEntry,
) []valueobject.ReconciliationResult {
	ordered := orderPayments(payments)
	pool, malformedInvoices := buildPool(invoices)
	ledgerByRef := indexLedgerEntries(entries)

	results := make([]valueobject.ReconciliationResult, 0, len(ordered))
	var resolved []resolvedPayment

	for _, payment := range ordered {
		result := e.resolvePayment(payment, pool, malformedInvoices, resolved)

		if entry, ok := ledgerByRef[normalizeText(payment.Reference)]; ok {
			result.Issues = append(result.Issues,
				fmt.Sprintf("corroborated by ledger entry %s", entry.EntryRef))
		}

		results = append(results, result)
		if payment.IsWellFormed() {
			resolved = append(resolved, resolvedPayment{
				payment: payment,
				result:  &results[len(results)-1],
			})
		}
	}

	return results
}

// resolvePayment walks the disposition state machine for one payment.
func (e *Engine) resolvePayment(
	payment *entity.Payment,
	pool []*candidate,
	malformedInvoices []*entity.Invoice,
	resolved []resolvedPayment,
) valueobject.ReconciliationResult {
	result := valueobject.ReconciliationResult{
		PaymentReference: payment.Reference,
		PayerName:        payment.PayerName,
		PaymentAmount:    payment.Amount,
		PaymentDate:      payment.Date,
	}

	if !payment.IsWellFormed() {
		result.Disposition = valueobject.DispositionUnmatched
		result.Issues = append(result.Issues,
			"payment excluded from matching: missing or malformed fields")
		return result
	}

	// Duplicate classification takes precedence over Matched/PartialMatch
	// for the later-dated payment; the earlier one keeps its disposition.
	if original := e.findDuplicate(payment, resolved); original != nil {
		breakdown, confidence := e.scorer.ScorePaymentPair(payment, original.payment)
		result.Disposition = valueobject.DispositionDuplicate
		result.Breakdown = breakdown
		result.Confidence = confidence
		if original.result.Disposition.IsAccounted() {
			result.MatchedInvoices = append([]string(nil), original.result.MatchedInvoices...)
		}
		result.Issues = append(result.Issues,
			fmt.Sprintf("possible duplicate of payment %s", original.payment.Reference))
		return result
	}

	scored := e.scoreCandidates(payment, pool)
	top := topCandidates(scored, float64(e.rules.Thresholds.MinConfidenceScore))

	if len(top) >= 2 {
		result.Disposition = valueobject.DispositionAmbiguous
		result.Confidence = top[0].confidence
		result.Breakdown = top[0].breakdown
		for _, sc := range top {
			result.MatchedInvoices = append(result.MatchedInvoices, sc.candidate.invoice.Number)
		}
		result.Issues = append(result.Issues,
			fmt.Sprintf("%d invoices tie at confidence %.1f; manual review required",
				len(top), top[0].confidence))
		return result
	}

	if len(top) == 1 {
		best := top[0]
		if e.scorer.WithinAmountTolerance(payment.Amount, best.candidate.remaining) {
			e.consumeFullMatch(payment, best, &result)
			return result
		}
		// Amount beyond tolerance: the best candidate may still accept the
		// payment as a partial contribution.
	}

	if partial := e.bestPartialCandidate(payment, scored); partial != nil {
		e.consumePartialMatch(payment, partial, &result)
		return result
	}

	result.Disposition = valueobject.DispositionUnmatched
	if len(top) == 1 {
		result.Breakdown = top[0].breakdown
		result.Confidence = top[0].confidence
		result.Issues = append(result.Issues,
			fmt.Sprintf("amount differs from invoice %s by %s%% (beyond tolerance)",
				top[0].candidate.invoice.Number,
				amountDifferencePercent(payment.Amount, top[0].candidate.remaining)))
	} else {
		result.Issues = append(result.Issues,
			"no invoice candidate cleared the minimum confidence score")
	}

	for _, inv := range malformedInvoices {
		if normalizeText(payment.Reference) == normalizeText(inv.Number) {
			result.Issues = append(result.Issues,
				fmt.Sprintf("invoice %s excluded from matching: missing or malformed fields", inv.Number))
		}
	}

	return result
}

// scoreCandidates scores the payment against every open invoice in the pool.
// Pool order is deterministic (due date, then number), so candidate ties are
// listed and broken reproducibly.
func (e *Engine) scoreCandidates(payment *entity.Payment, pool []*candidate) []scoredCandidate {
	scored := make([]scoredCandidate, 0, len(pool))
	for _, c := range pool {
		if !c.open {
			continue
		}
		breakdown, confidence := e.scorer.ScorePair(payment, c.invoice, c.remaining)
		scored = append(scored, scoredCandidate{
			candidate:  c,
			breakdown:  breakdown,
			confidence: confidence,
			nonAmount:  e.scorer.CombineNonAmount(breakdown),
		})
	}
	return scored
}

// topCandidates returns every candidate tied at the highest confidence at or
// above the minimum score. An empty slice means no candidate cleared it.
func topCandidates(scored []scoredCandidate, minConfidence float64) []scoredCandidate {
	var top []scoredCandidate
	best := -1.0

	for _, sc := range scored {
		if sc.confidence < minConfidence {
			continue
		}
		switch {
		case sc.confidence > best+confidenceEpsilon:
			best = sc.confidence
			top = top[:0]
			top = append(top, sc)
		case math.Abs(sc.confidence-best) <= confidenceEpsilon:
			top = append(top, sc)
		}
	}

	return top
}

// consumeFullMatch records a Matched disposition and removes the invoice
// from the candidate pool. One invoice satisfies at most one full match.
func (e *Engine) consumeFullMatch(payment *entity.Payment, best scoredCandidate, result *valueobject.ReconciliationResult) {
	result.Disposition = valueobject.DispositionMatched
	result.Confidence = best.confidence
	result.Breakdown = best.breakdown
	result.MatchedInvoices = []string{best.candidate.invoice.Number}

	if !payment.Amount.Equal(best.candidate.remaining) {
		result.Issues = append(result.Issues,
			fmt.Sprintf("amount differs by %s%%",
				amountDifferencePercent(payment.Amount, best.candidate.remaining)))
	}

	best.candidate.remaining = best.candidate.remaining.Sub(payment.Amount)
	best.candidate.open = false
}

// bestPartialCandidate picks the open candidate that can accept the payment
// as a partial contribution, preferring the highest non-amount confidence.
// Pool order breaks ties (earliest due date, then lowest number).
func (e *Engine) bestPartialCandidate(payment *entity.Payment, scored []scoredCandidate) *scoredCandidate {
	if !e.rules.Enabled.PartialPaymentMatching {
		return nil
	}

	minConfidence := float64(e.rules.Thresholds.MinConfidenceScore)
	minPercent := decimal.NewFromInt(int64(e.rules.Thresholds.PartialPaymentMinPercent))

	var best *scoredCandidate
	for i := range scored {
		sc := &scored[i]
		if sc.nonAmount < minConfidence {
			continue
		}
		if !payment.Amount.LessThan(sc.candidate.remaining) {
			continue
		}
		if e.scorer.WithinAmountTolerance(payment.Amount, sc.candidate.remaining) {
			continue // within tolerance is a full match, not a partial one
		}
		// The minimum-percentage gate runs against the invoice's original
		// amount, not its remaining due.
		floor := sc.candidate.invoice.Amount.Mul(minPercent).Div(decimal.NewFromInt(100))
		if payment.Amount.LessThan(floor) {
			continue
		}
		if best == nil || sc.nonAmount > best.nonAmount+confidenceEpsilon {
			best = sc
		}
	}

	return best
}

// consumePartialMatch records a PartialMatch disposition and decrements the
// invoice's remaining-due amount. The invoice leaves the pool only once its
// remaining due falls within amount tolerance of zero.
func (e *Engine) consumePartialMatch(payment *entity.Payment, sc *scoredCandidate, result *valueobject.ReconciliationResult) {
	invoice := sc.candidate.invoice

	sc.candidate.remaining = sc.candidate.remaining.Sub(payment.Amount)

	toleranceOfZero := invoice.Amount.
		Mul(e.rules.Thresholds.AmountTolerancePercent).
		Div(decimal.NewFromInt(100))
	if sc.candidate.remaining.Abs().LessThanOrEqual(toleranceOfZero) {
		sc.candidate.open = false
	}

	coverage := payment.Amount.
		Div(invoice.Amount).
		Mul(decimal.NewFromInt(100)).
		Round(1)

	result.Disposition = valueobject.DispositionPartialMatch
	result.Confidence = sc.nonAmount
	result.Breakdown = sc.breakdown
	result.MatchedInvoices = []string{invoice.Number}
	result.Issues = append(result.Issues,
		fmt.Sprintf("partial payment covers %s%% of invoice %s; remaining due %s",
			coverage, invoice.Number, sc.candidate.remaining))
}

// orderPayments returns payments in deterministic processing order:
// ascending date, then reference. Pool-consumption effects are reproducible
// only under a fixed order.
func orderPayments(payments []*entity.Payment) []*entity.Payment {
	ordered := make([]*entity.Payment, len(payments))
	copy(ordered, payments)

	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.Before(ordered[j].Date)
		}
		return ordered[i].Reference < ordered[j].Reference
	})

	return ordered
}

// buildPool creates the pass-scoped candidate pool, ordered by due date then
// invoice number. Malformed invoices are excluded and reported separately.
func buildPool(invoices []*entity.Invoice) ([]*candidate, []*entity.Invoice) {
	wellFormed := make([]*entity.Invoice, 0, len(invoices))
	var malformed []*entity.Invoice

	for _, inv := range invoices {
		if inv.IsWellFormed() {
			wellFormed = append(wellFormed, inv)
		} else {
			malformed = append(malformed, inv)
		}
	}

	sort.SliceStable(wellFormed, func(i, j int) bool {
		if !wellFormed[i].DueDate.Equal(wellFormed[j].DueDate) {
			return wellFormed[i].DueDate.Before(wellFormed[j].DueDate)
		}
		return wellFormed[i].Number < wellFormed[j].Number
	})

	pool := make([]*candidate, len(wellFormed))
	for i, inv := range wellFormed {
		pool[i] = &candidate{
			invoice:   inv,
			remaining: inv.Amount,
			open:      true,
		}
	}

	return pool, malformed
}

// indexLedgerEntries indexes entries by the payment reference they
// corroborate. The lowest entry ref wins when several reference one payment.
func indexLedgerEntries(entries []*entity.LedgerEntry) map[string]*entity.LedgerEntry {
	index := make(map[string]*entity.LedgerEntry, len(entries))
	for _, entry := range entries {
		key := normalizeText(entry.PaymentReference)
		if key == "" {
			continue
		}
		if existing, ok := index[key]; !ok || entry.EntryRef < existing.EntryRef {
			index[key] = entry
		}
	}
	return index
}

// amountDifferencePercent formats the absolute percentage difference between
// a payment amount and an invoice amount.
func amountDifferencePercent(payment, invoice decimal.Decimal) string {
	if invoice.IsZero() {
		return "100"
	}
	return payment.Sub(invoice).Abs().
		Div(invoice.Abs()).
		Mul(decimal.NewFromInt(100)).
		Round(1).
		String()
}
