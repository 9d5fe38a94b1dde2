package reconciliation

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/paymatch/backend/internal/domain/valueobject"
)

func filterFixture() []valueobject.ReconciliationResult {
	return []valueobject.ReconciliationResult{
		{
			PaymentReference: "INV-1001",
			PayerName:        "ACME Corp",
			PaymentAmount:    decimal.NewFromInt(1000),
			PaymentDate:      testDate(10),
			MatchedInvoices:  []string{"INV-1001"},
			Disposition:      valueobject.DispositionMatched,
		},
		{
			PaymentReference: "PAY-77",
			PayerName:        "Globex Inc",
			PaymentAmount:    decimal.NewFromInt(250),
			PaymentDate:      testDate(15),
			MatchedInvoices:  []string{"INV-2002"},
			Disposition:      valueobject.DispositionPartialMatch,
		},
		{
			PaymentReference: "PAY-78",
			PayerName:        "Initech LLC",
			PaymentAmount:    decimal.NewFromInt(42),
			PaymentDate:      testDate(20),
			Disposition:      valueobject.DispositionUnmatched,
		},
	}
}

func TestFilterResults(t *testing.T) {
	results := filterFixture()

	t.Run("empty filter returns the input unchanged", func(t *testing.T) {
		got := FilterResults(results, valueobject.ResultFilter{})
		if len(got) != len(results) {
			t.Fatalf("expected %d results, got %d", len(results), len(got))
		}
		for i := range results {
			if got[i].PaymentReference != results[i].PaymentReference {
				t.Errorf("result %d reordered: %s", i, got[i].PaymentReference)
			}
		}
	})

	t.Run("disposition filter", func(t *testing.T) {
		got := FilterResults(results, valueobject.ResultFilter{
			Dispositions: []valueobject.Disposition{
				valueobject.DispositionMatched,
				valueobject.DispositionPartialMatch,
			},
		})
		if len(got) != 2 {
			t.Fatalf("expected 2 results, got %d", len(got))
		}
	})

	t.Run("date range is inclusive", func(t *testing.T) {
		from := testDate(15)
		to := testDate(20)
		got := FilterResults(results, valueobject.ResultFilter{DateFrom: &from, DateTo: &to})
		if len(got) != 2 {
			t.Fatalf("expected 2 results, got %d", len(got))
		}
		if got[0].PaymentReference != "PAY-77" || got[1].PaymentReference != "PAY-78" {
			t.Errorf("unexpected results: %v, %v", got[0].PaymentReference, got[1].PaymentReference)
		}
	})

	t.Run("amount range", func(t *testing.T) {
		min := decimal.NewFromInt(100)
		max := decimal.NewFromInt(500)
		got := FilterResults(results, valueobject.ResultFilter{AmountMin: &min, AmountMax: &max})
		if len(got) != 1 || got[0].PaymentReference != "PAY-77" {
			t.Fatalf("expected only PAY-77, got %v", got)
		}
	})

	t.Run("search matches matched invoice numbers case-insensitively", func(t *testing.T) {
		got := FilterResults(results, valueobject.ResultFilter{Search: "inv-2002"})
		if len(got) != 1 || got[0].PaymentReference != "PAY-77" {
			t.Fatalf("expected only PAY-77, got %v", got)
		}
	})

	t.Run("search matches payer name", func(t *testing.T) {
		got := FilterResults(results, valueobject.ResultFilter{Search: "initech"})
		if len(got) != 1 || got[0].PaymentReference != "PAY-78" {
			t.Fatalf("expected only PAY-78, got %v", got)
		}
	})

	t.Run("criteria combine with AND", func(t *testing.T) {
		from := testDate(12)
		got := FilterResults(results, valueobject.ResultFilter{
			Dispositions: []valueobject.Disposition{valueobject.DispositionPartialMatch},
			DateFrom:     &from,
			Search:       "globex",
		})
		if len(got) != 1 || got[0].PaymentReference != "PAY-77" {
			t.Fatalf("expected only PAY-77, got %v", got)
		}

		// Same filter with a non-matching term yields nothing.
		got = FilterResults(results, valueobject.ResultFilter{
			Dispositions: []valueobject.Disposition{valueobject.DispositionPartialMatch},
			DateFrom:     &from,
			Search:       "acme",
		})
		if len(got) != 0 {
			t.Fatalf("expected no results, got %d", len(got))
		}
	})

	t.Run("input is not mutated", func(t *testing.T) {
		min := decimal.NewFromInt(500)
		FilterResults(results, valueobject.ResultFilter{AmountMin: &min})
		if len(results) != 3 {
			t.Fatalf("input length changed to %d", len(results))
		}
	})
}
