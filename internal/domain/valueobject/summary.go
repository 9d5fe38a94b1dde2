package valueobject

import "github.com/shopspring/decimal"

// DispositionTotals holds the count and amount total for one disposition.
type DispositionTotals struct {
	Count  int
	Amount decimal.Decimal
}

// PayerTotals holds the per-payer reporting breakdown.
type PayerTotals struct {
	Payments int
	Amount   decimal.Decimal
	Matched  int
}

// ReconciliationSummary is a pure reduction of a result sequence: counts and
// amount totals per disposition plus grouped breakdowns for reporting. It
// holds no state of its own.
type ReconciliationSummary struct {
	TotalPayments     int
	ByDisposition     map[Disposition]DispositionTotals
	ByPayer           map[string]PayerTotals
	MatchedAmount     decimal.Decimal
	UnmatchedAmount   decimal.Decimal
	AverageConfidence float64
}

// EmptyReconciliationSummary returns zeroed aggregates, the valid summary of
// an empty result sequence.
func EmptyReconciliationSummary() ReconciliationSummary {
	byDisposition := make(map[Disposition]DispositionTotals, len(Dispositions()))
	for _, d := range Dispositions() {
		byDisposition[d] = DispositionTotals{Amount: decimal.Zero}
	}

	return ReconciliationSummary{
		ByDisposition:   byDisposition,
		ByPayer:         make(map[string]PayerTotals),
		MatchedAmount:   decimal.Zero,
		UnmatchedAmount: decimal.Zero,
	}
}
