package reconciliation

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/paymatch/backend/internal/domain/valueobject"
)

func summaryResult(ref, payer string, amount float64, disposition valueobject.Disposition, confidence float64) valueobject.ReconciliationResult {
	return valueobject.ReconciliationResult{
		PaymentReference: ref,
		PayerName:        payer,
		PaymentAmount:    decimal.NewFromFloat(amount),
		PaymentDate:      testDate(10),
		Disposition:      disposition,
		Confidence:       confidence,
	}
}

func TestSummarize(t *testing.T) {
	t.Run("empty input yields zeroed aggregates", func(t *testing.T) {
		summary := Summarize(nil)

		if summary.TotalPayments != 0 {
			t.Errorf("expected 0 total payments, got %d", summary.TotalPayments)
		}
		if !summary.MatchedAmount.IsZero() || !summary.UnmatchedAmount.IsZero() {
			t.Errorf("expected zero amounts, got %s / %s", summary.MatchedAmount, summary.UnmatchedAmount)
		}
		if summary.AverageConfidence != 0 {
			t.Errorf("expected 0 average confidence, got %v", summary.AverageConfidence)
		}
		// Every disposition bucket exists even when empty.
		for _, d := range valueobject.Dispositions() {
			if _, ok := summary.ByDisposition[d]; !ok {
				t.Errorf("expected bucket for %s", d)
			}
		}
	})

	t.Run("totals partition the input by disposition", func(t *testing.T) {
		results := []valueobject.ReconciliationResult{
			summaryResult("P-1", "ACME Corp", 1000, valueobject.DispositionMatched, 100),
			summaryResult("P-2", "ACME Corp", 250, valueobject.DispositionPartialMatch, 90),
			summaryResult("P-3", "Globex Inc", 240, valueobject.DispositionUnmatched, 0),
			summaryResult("P-4", "ACME Corp", 1000, valueobject.DispositionDuplicate, 98),
		}

		summary := Summarize(results)

		if summary.TotalPayments != 4 {
			t.Errorf("expected 4 total payments, got %d", summary.TotalPayments)
		}

		counts := 0
		for _, totals := range summary.ByDisposition {
			counts += totals.Count
		}
		if counts != 4 {
			t.Errorf("expected disposition counts to sum to 4, got %d", counts)
		}

		if got := summary.ByDisposition[valueobject.DispositionMatched]; got.Count != 1 || !got.Amount.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("unexpected matched totals: %+v", got)
		}
		if got := summary.ByDisposition[valueobject.DispositionPartialMatch]; got.Count != 1 || !got.Amount.Equal(decimal.NewFromInt(250)) {
			t.Errorf("unexpected partial totals: %+v", got)
		}

		// Matched and partial payments are accounted for; the rest are not.
		if !summary.MatchedAmount.Equal(decimal.NewFromInt(1250)) {
			t.Errorf("expected matched amount 1250, got %s", summary.MatchedAmount)
		}
		if !summary.UnmatchedAmount.Equal(decimal.NewFromInt(1240)) {
			t.Errorf("expected unmatched amount 1240, got %s", summary.UnmatchedAmount)
		}

		wantAvg := (100.0 + 90 + 0 + 98) / 4
		if math.Abs(summary.AverageConfidence-wantAvg) > 1e-9 {
			t.Errorf("expected average confidence %v, got %v", wantAvg, summary.AverageConfidence)
		}
	})

	t.Run("per-payer breakdown groups payments", func(t *testing.T) {
		results := []valueobject.ReconciliationResult{
			summaryResult("P-1", "ACME Corp", 1000, valueobject.DispositionMatched, 100),
			summaryResult("P-2", "ACME Corp", 250, valueobject.DispositionUnmatched, 0),
			summaryResult("P-3", "Globex Inc", 500, valueobject.DispositionPartialMatch, 85),
		}

		summary := Summarize(results)

		acme := summary.ByPayer["ACME Corp"]
		if acme.Payments != 2 || acme.Matched != 1 || !acme.Amount.Equal(decimal.NewFromInt(1250)) {
			t.Errorf("unexpected ACME totals: %+v", acme)
		}

		globex := summary.ByPayer["Globex Inc"]
		if globex.Payments != 1 || globex.Matched != 1 || !globex.Amount.Equal(decimal.NewFromInt(500)) {
			t.Errorf("unexpected Globex totals: %+v", globex)
		}
	})

	t.Run("summarizing twice gives identical aggregates", func(t *testing.T) {
		results := []valueobject.ReconciliationResult{
			summaryResult("P-1", "ACME Corp", 1000, valueobject.DispositionMatched, 100),
			summaryResult("P-2", "Globex Inc", 240, valueobject.DispositionUnmatched, 0),
		}

		first := Summarize(results)
		second := Summarize(results)

		if first.TotalPayments != second.TotalPayments ||
			!first.MatchedAmount.Equal(second.MatchedAmount) ||
			!first.UnmatchedAmount.Equal(second.UnmatchedAmount) ||
			first.AverageConfidence != second.AverageConfidence {
			t.Error("expected identical summaries from repeated calls")
		}
	})
}
