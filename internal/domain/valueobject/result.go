package valueobject

import (
	"time"

	"github.com/shopspring/decimal"
)

// Disposition is the final classification assigned to a payment by the
// resolver. All dispositions are terminal; results are recomputed wholesale
// on any rule or data change, never patched incrementally.
type Disposition string

const (
	DispositionMatched      Disposition = "matched"
	DispositionPartialMatch Disposition = "partial_match"
	DispositionDuplicate    Disposition = "duplicate"
	DispositionAmbiguous    Disposition = "ambiguous"
	DispositionUnmatched    Disposition = "unmatched"
)

// Dispositions lists every disposition in reporting order.
func Dispositions() []Disposition {
	return []Disposition{
		DispositionMatched,
		DispositionPartialMatch,
		DispositionDuplicate,
		DispositionAmbiguous,
		DispositionUnmatched,
	}
}

// IsAccounted reports whether the disposition contributes to the matched
// amount totals.
func (d Disposition) IsAccounted() bool {
	return d == DispositionMatched || d == DispositionPartialMatch
}

// ScoreBreakdown holds the four independent sub-scores, each in [0,100],
// that produced a confidence score.
type ScoreBreakdown struct {
	Reference float64
	Amount    float64
	Name      float64
	Date      float64
}

// ReconciliationResult is the disposition of exactly one payment. Created
// once per reconciliation pass and never mutated afterward.
type ReconciliationResult struct {
	PaymentReference string
	PayerName        string
	PaymentAmount    decimal.Decimal
	PaymentDate      time.Time
	// MatchedInvoices holds zero, one, or many invoice numbers. Ambiguous
	// results list every tied candidate; duplicates list the invoice of the
	// payment they shadow, if any.
	MatchedInvoices []string
	Disposition     Disposition
	Confidence      float64
	Breakdown       ScoreBreakdown
	Issues          []string
}
