package reconciliation

import "github.com/paymatch/backend/internal/domain/valueobject"

// Summarize reduces a result sequence to its reporting aggregates. It is a
// pure function: safe to call repeatedly on the same input, and an empty
// sequence yields zeroed aggregates. Every result lands in exactly one
// disposition bucket, so the per-disposition totals partition the input.
func Summarize(results []valueobject.ReconciliationResult) valueobject.ReconciliationSummary {
	summary := valueobject.EmptyReconciliationSummary()
	if len(results) == 0 {
		return summary
	}

	confidenceTotal := 0.0

	for _, r := range results {
		summary.TotalPayments++
		confidenceTotal += r.Confidence

		totals := summary.ByDisposition[r.Disposition]
		totals.Count++
		totals.Amount = totals.Amount.Add(r.PaymentAmount)
		summary.ByDisposition[r.Disposition] = totals

		if r.Disposition.IsAccounted() {
			summary.MatchedAmount = summary.MatchedAmount.Add(r.PaymentAmount)
		} else {
			summary.UnmatchedAmount = summary.UnmatchedAmount.Add(r.PaymentAmount)
		}

		payer := summary.ByPayer[r.PayerName]
		payer.Payments++
		payer.Amount = payer.Amount.Add(r.PaymentAmount)
		if r.Disposition.IsAccounted() {
			payer.Matched++
		}
		summary.ByPayer[r.PayerName] = payer
	}

	summary.AverageConfidence = confidenceTotal / float64(len(results))

	return summary
}
