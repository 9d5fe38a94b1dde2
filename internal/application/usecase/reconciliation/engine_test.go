package reconciliation

import (
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/paymatch/backend/internal/domain/entity"
	"github.com/paymatch/backend/internal/domain/valueobject"
)

func newTestEngine(t *testing.T, rules valueobject.ReconciliationRules) *Engine {
	t.Helper()
	engine, err := NewEngine(rules, LevenshteinSimilarity{})
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}
	return engine
}

func payment(ref, payer string, amount float64, day int) *entity.Payment {
	return entity.NewPayment(ref, payer, decimal.NewFromFloat(amount), testDate(day), "")
}

func invoice(number, customer string, amount float64, dueDay int) *entity.Invoice {
	return entity.NewInvoice(number, customer, decimal.NewFromFloat(amount), testDate(dueDay), "")
}

func hasIssue(result valueobject.ReconciliationResult, fragment string) bool {
	for _, issue := range result.Issues {
		if strings.Contains(issue, fragment) {
			return true
		}
	}
	return false
}

func TestEngine_NewEngine(t *testing.T) {
	t.Run("invalid rules are rejected", func(t *testing.T) {
		rules := valueobject.DefaultReconciliationRules()
		rules.Weights.Reference = 99

		if _, err := NewEngine(rules, LevenshteinSimilarity{}); err == nil {
			t.Error("expected an error for invalid rules")
		}
	})

	t.Run("nil similarity falls back to Levenshtein", func(t *testing.T) {
		engine, err := NewEngine(valueobject.DefaultReconciliationRules(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if engine == nil {
			t.Fatal("expected an engine")
		}
	})
}

func TestEngine_FullMatch(t *testing.T) {
	engine := newTestEngine(t, valueobject.DefaultReconciliationRules())

	results := engine.Reconcile(
		[]*entity.Payment{payment("INV-1001", "ACME Corp", 1000, 10)},
		[]*entity.Invoice{invoice("INV-1001", "ACME Corp", 1000, 10)},
		nil,
	)

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	r := results[0]
	if r.Disposition != valueobject.DispositionMatched {
		t.Errorf("expected Matched, got %s", r.Disposition)
	}
	if math.Abs(r.Confidence-100) > 1e-9 {
		t.Errorf("expected confidence 100, got %v", r.Confidence)
	}
	if len(r.MatchedInvoices) != 1 || r.MatchedInvoices[0] != "INV-1001" {
		t.Errorf("expected matched invoice INV-1001, got %v", r.MatchedInvoices)
	}
	if len(r.Issues) != 0 {
		t.Errorf("expected no issues on an exact match, got %v", r.Issues)
	}
}

func TestEngine_FullMatchWithinTolerance(t *testing.T) {
	engine := newTestEngine(t, valueobject.DefaultReconciliationRules())

	// 1003 differs from 1000 by 0.3%, inside the 0.5% tolerance.
	results := engine.Reconcile(
		[]*entity.Payment{payment("INV-1001", "ACME Corp", 1003, 10)},
		[]*entity.Invoice{invoice("INV-1001", "ACME Corp", 1000, 10)},
		nil,
	)

	r := results[0]
	if r.Disposition != valueobject.DispositionMatched {
		t.Fatalf("expected Matched, got %s", r.Disposition)
	}
	if r.Confidence >= 100 {
		t.Errorf("expected confidence below 100 for an inexact amount, got %v", r.Confidence)
	}
	if !hasIssue(r, "amount differs by 0.3%") {
		t.Errorf("expected an amount-difference issue, got %v", r.Issues)
	}
}

func TestEngine_InvoiceConsumedByFullMatch(t *testing.T) {
	engine := newTestEngine(t, valueobject.DefaultReconciliationRules())

	results := engine.Reconcile(
		[]*entity.Payment{
			payment("INV-1001", "ACME Corp", 1000, 10),
			payment("ACME REMIT", "ACME Corp", 500, 11),
		},
		[]*entity.Invoice{invoice("INV-1001", "ACME Corp", 1000, 10)},
		nil,
	)

	if results[0].Disposition != valueobject.DispositionMatched {
		t.Errorf("expected first payment Matched, got %s", results[0].Disposition)
	}
	// The invoice left the pool, so the second payment has no candidates.
	if results[1].Disposition != valueobject.DispositionUnmatched {
		t.Errorf("expected second payment Unmatched, got %s", results[1].Disposition)
	}
	if !hasIssue(results[1], "no invoice candidate cleared the minimum confidence score") {
		t.Errorf("expected a no-candidate issue, got %v", results[1].Issues)
	}
}

func TestEngine_PartialPayment(t *testing.T) {
	t.Run("payment covering the minimum percentage is a partial match", func(t *testing.T) {
		engine := newTestEngine(t, valueobject.DefaultReconciliationRules())

		// 250 is exactly 25% of 1000, the default minimum.
		results := engine.Reconcile(
			[]*entity.Payment{payment("INV-1001", "ACME Corp", 250, 10)},
			[]*entity.Invoice{invoice("INV-1001", "ACME Corp", 1000, 10)},
			nil,
		)

		r := results[0]
		if r.Disposition != valueobject.DispositionPartialMatch {
			t.Fatalf("expected PartialMatch, got %s", r.Disposition)
		}
		// Partial-match confidence masks the amount sub-score; reference,
		// name, and date are all perfect here.
		if math.Abs(r.Confidence-100) > 1e-9 {
			t.Errorf("expected non-amount confidence 100, got %v", r.Confidence)
		}
		if !hasIssue(r, "partial payment covers 25% of invoice INV-1001; remaining due 750") {
			t.Errorf("expected a coverage issue, got %v", r.Issues)
		}
	})

	t.Run("payment below the minimum percentage stays unmatched", func(t *testing.T) {
		engine := newTestEngine(t, valueobject.DefaultReconciliationRules())

		results := engine.Reconcile(
			[]*entity.Payment{payment("INV-1001", "ACME Corp", 240, 10)},
			[]*entity.Invoice{invoice("INV-1001", "ACME Corp", 1000, 10)},
			nil,
		)

		r := results[0]
		if r.Disposition != valueobject.DispositionUnmatched {
			t.Fatalf("expected Unmatched, got %s", r.Disposition)
		}
		if !hasIssue(r, "amount differs from invoice INV-1001 by 76% (beyond tolerance)") {
			t.Errorf("expected an amount-difference issue, got %v", r.Issues)
		}
	})

	t.Run("disabled partial matching leaves smaller payments unmatched", func(t *testing.T) {
		rules := valueobject.DefaultReconciliationRules()
		rules.Enabled.PartialPaymentMatching = false
		engine := newTestEngine(t, rules)

		results := engine.Reconcile(
			[]*entity.Payment{payment("INV-1001", "ACME Corp", 250, 10)},
			[]*entity.Invoice{invoice("INV-1001", "ACME Corp", 1000, 10)},
			nil,
		)

		if results[0].Disposition != valueobject.DispositionUnmatched {
			t.Errorf("expected Unmatched, got %s", results[0].Disposition)
		}
	})

	t.Run("remaining due shrinks across sequential partials", func(t *testing.T) {
		engine := newTestEngine(t, valueobject.DefaultReconciliationRules())

		results := engine.Reconcile(
			[]*entity.Payment{
				payment("INV-1001", "ACME Corp", 250, 10),
				payment("INV-1001", "ACME Corp", 750, 11),
			},
			[]*entity.Invoice{invoice("INV-1001", "ACME Corp", 1000, 10)},
			nil,
		)

		if results[0].Disposition != valueobject.DispositionPartialMatch {
			t.Errorf("expected first payment PartialMatch, got %s", results[0].Disposition)
		}
		// The second payment equals the remaining due exactly, so it
		// completes the invoice as a full match.
		if results[1].Disposition != valueobject.DispositionMatched {
			t.Errorf("expected second payment Matched, got %s", results[1].Disposition)
		}
	})
}

func TestEngine_DuplicateDetection(t *testing.T) {
	t.Run("later-dated near-identical payment is flagged", func(t *testing.T) {
		engine := newTestEngine(t, valueobject.DefaultReconciliationRules())

		results := engine.Reconcile(
			[]*entity.Payment{
				payment("INV-1001", "ACME Corp", 1000, 10),
				payment("INV-1001", "ACME Corp", 1000, 11),
			},
			[]*entity.Invoice{invoice("INV-1001", "ACME Corp", 1000, 10)},
			nil,
		)

		// The earlier payment keeps its disposition.
		if results[0].Disposition != valueobject.DispositionMatched {
			t.Errorf("expected first payment Matched, got %s", results[0].Disposition)
		}

		dup := results[1]
		if dup.Disposition != valueobject.DispositionDuplicate {
			t.Fatalf("expected Duplicate, got %s", dup.Disposition)
		}
		if len(dup.MatchedInvoices) != 1 || dup.MatchedInvoices[0] != "INV-1001" {
			t.Errorf("expected the original's invoice to carry over, got %v", dup.MatchedInvoices)
		}
		if !hasIssue(dup, "possible duplicate of payment INV-1001") {
			t.Errorf("expected a duplicate issue, got %v", dup.Issues)
		}
	})

	t.Run("duplicate of an unmatched payment carries no invoices", func(t *testing.T) {
		engine := newTestEngine(t, valueobject.DefaultReconciliationRules())

		results := engine.Reconcile(
			[]*entity.Payment{
				payment("UNKNOWN-REF", "ACME Corp", 1000, 10),
				payment("UNKNOWN-REF", "ACME Corp", 1000, 11),
			},
			nil,
			nil,
		)

		if results[0].Disposition != valueobject.DispositionUnmatched {
			t.Errorf("expected first payment Unmatched, got %s", results[0].Disposition)
		}
		if results[1].Disposition != valueobject.DispositionDuplicate {
			t.Errorf("expected second payment Duplicate, got %s", results[1].Disposition)
		}
		if len(results[1].MatchedInvoices) != 0 {
			t.Errorf("expected no invoices on the duplicate, got %v", results[1].MatchedInvoices)
		}
	})

	t.Run("date outside the window breaks the duplicate pairing", func(t *testing.T) {
		engine := newTestEngine(t, valueobject.DefaultReconciliationRules())

		results := engine.Reconcile(
			[]*entity.Payment{
				payment("INV-1001", "ACME Corp", 1000, 1),
				payment("INV-1001", "ACME Corp", 1000, 20),
			},
			[]*entity.Invoice{invoice("INV-1001", "ACME Corp", 1000, 1)},
			nil,
		)

		if results[1].Disposition == valueobject.DispositionDuplicate {
			t.Errorf("expected no duplicate across a 19-day gap, got %s", results[1].Disposition)
		}
	})

	t.Run("disabled duplicate detection never flags", func(t *testing.T) {
		rules := valueobject.DefaultReconciliationRules()
		rules.Enabled.DuplicateDetection = false
		engine := newTestEngine(t, rules)

		results := engine.Reconcile(
			[]*entity.Payment{
				payment("INV-1001", "ACME Corp", 1000, 10),
				payment("INV-1001", "ACME Corp", 1000, 11),
			},
			[]*entity.Invoice{invoice("INV-1001", "ACME Corp", 1000, 10)},
			nil,
		)

		for _, r := range results {
			if r.Disposition == valueobject.DispositionDuplicate {
				t.Errorf("expected no duplicates with detection disabled, got %s for %s",
					r.Disposition, r.PaymentReference)
			}
		}
	})
}

func TestEngine_AmbiguousTie(t *testing.T) {
	engine := newTestEngine(t, valueobject.DefaultReconciliationRules())

	// Both invoices quote the same alternate reference code, so the payment
	// scores identically against each.
	invoiceA := entity.NewInvoice("INV-2001", "ACME Corp", decimal.NewFromInt(1000), testDate(10), "PO-777")
	invoiceB := entity.NewInvoice("INV-2002", "ACME Corp", decimal.NewFromInt(1000), testDate(10), "PO-777")

	results := engine.Reconcile(
		[]*entity.Payment{payment("PO-777", "ACME Corp", 1000, 10)},
		[]*entity.Invoice{invoiceB, invoiceA},
		nil,
	)

	r := results[0]
	if r.Disposition != valueobject.DispositionAmbiguous {
		t.Fatalf("expected Ambiguous, got %s", r.Disposition)
	}
	// Tied candidates are listed in pool order: same due date, so by number.
	if len(r.MatchedInvoices) != 2 || r.MatchedInvoices[0] != "INV-2001" || r.MatchedInvoices[1] != "INV-2002" {
		t.Errorf("expected [INV-2001 INV-2002], got %v", r.MatchedInvoices)
	}
	if !hasIssue(r, "manual review required") {
		t.Errorf("expected a manual-review issue, got %v", r.Issues)
	}
}

func TestEngine_MalformedRecords(t *testing.T) {
	t.Run("malformed payment is excluded with an issue", func(t *testing.T) {
		engine := newTestEngine(t, valueobject.DefaultReconciliationRules())

		bad := entity.NewPayment("PAY-1", "ACME Corp", decimal.Zero, testDate(10), "")
		results := engine.Reconcile(
			[]*entity.Payment{bad},
			[]*entity.Invoice{invoice("PAY-1", "ACME Corp", 1000, 10)},
			nil,
		)

		r := results[0]
		if r.Disposition != valueobject.DispositionUnmatched {
			t.Errorf("expected Unmatched, got %s", r.Disposition)
		}
		if !hasIssue(r, "payment excluded from matching") {
			t.Errorf("expected an exclusion issue, got %v", r.Issues)
		}
	})

	t.Run("malformed invoice is excluded and reported on the payment", func(t *testing.T) {
		engine := newTestEngine(t, valueobject.DefaultReconciliationRules())

		badInvoice := entity.NewInvoice("INV-BAD", "ACME Corp", decimal.Zero, testDate(10), "")
		results := engine.Reconcile(
			[]*entity.Payment{payment("INV-BAD", "ACME Corp", 1000, 10)},
			[]*entity.Invoice{badInvoice},
			nil,
		)

		r := results[0]
		if r.Disposition != valueobject.DispositionUnmatched {
			t.Errorf("expected Unmatched, got %s", r.Disposition)
		}
		if !hasIssue(r, "invoice INV-BAD excluded from matching") {
			t.Errorf("expected a malformed-invoice issue, got %v", r.Issues)
		}
	})
}

func TestEngine_LedgerCorroboration(t *testing.T) {
	engine := newTestEngine(t, valueobject.DefaultReconciliationRules())

	entry := entity.NewLedgerEntry("GL-55201", "INV-1001", "INV-1001", decimal.NewFromInt(1000), testDate(10))
	results := engine.Reconcile(
		[]*entity.Payment{payment("INV-1001", "ACME Corp", 1000, 10)},
		[]*entity.Invoice{invoice("INV-1001", "ACME Corp", 1000, 10)},
		[]*entity.LedgerEntry{entry},
	)

	r := results[0]
	// Ledger entries corroborate, they never change the disposition.
	if r.Disposition != valueobject.DispositionMatched {
		t.Errorf("expected Matched, got %s", r.Disposition)
	}
	if !hasIssue(r, "corroborated by ledger entry GL-55201") {
		t.Errorf("expected a corroboration issue, got %v", r.Issues)
	}
}

func TestEngine_Determinism(t *testing.T) {
	engine := newTestEngine(t, valueobject.DefaultReconciliationRules())

	payments := []*entity.Payment{
		payment("INV-1001", "ACME Corp", 1000, 10),
		payment("INV-1002", "Globex Inc", 500, 11),
		payment("INV-1003", "Initech LLC", 250, 12),
	}
	invoices := []*entity.Invoice{
		invoice("INV-1001", "ACME Corp", 1000, 10),
		invoice("INV-1002", "Globex Inc", 500, 11),
		invoice("INV-1003", "Initech LLC", 1000, 12),
	}

	first := engine.Reconcile(payments, invoices, nil)

	reversedPayments := []*entity.Payment{payments[2], payments[1], payments[0]}
	reversedInvoices := []*entity.Invoice{invoices[2], invoices[1], invoices[0]}
	second := engine.Reconcile(reversedPayments, reversedInvoices, nil)

	if len(first) != len(second) {
		t.Fatalf("expected equal result counts, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].PaymentReference != second[i].PaymentReference {
			t.Errorf("result %d ordering differs: %s vs %s",
				i, first[i].PaymentReference, second[i].PaymentReference)
		}
		if first[i].Disposition != second[i].Disposition {
			t.Errorf("result %d disposition differs: %s vs %s",
				i, first[i].Disposition, second[i].Disposition)
		}
		if math.Abs(first[i].Confidence-second[i].Confidence) > 1e-9 {
			t.Errorf("result %d confidence differs: %v vs %v",
				i, first[i].Confidence, second[i].Confidence)
		}
	}
}

func TestEngine_ConfidenceBounds(t *testing.T) {
	engine := newTestEngine(t, valueobject.DefaultReconciliationRules())

	payments := []*entity.Payment{
		payment("INV-1001", "ACME Corp", 1000, 10),
		payment("INV-1001", "acme corp", 1000, 11),
		payment("NO-SUCH-REF", "Globex Inc", 42, 1),
		payment("INV-1002", "Initech", 250, 15),
		entity.NewPayment("", "Hooli", decimal.NewFromInt(10), testDate(5), ""),
	}
	invoices := []*entity.Invoice{
		invoice("INV-1001", "ACME Corp", 1000, 10),
		invoice("INV-1002", "Initech LLC", 1000, 14),
	}

	results := engine.Reconcile(payments, invoices, nil)

	if len(results) != len(payments) {
		t.Fatalf("expected one result per payment, got %d", len(results))
	}
	for _, r := range results {
		if r.Confidence < 0 || r.Confidence > 100 {
			t.Errorf("confidence out of bounds for %s: %v", r.PaymentReference, r.Confidence)
		}
		if r.Disposition == "" {
			t.Errorf("missing disposition for %s", r.PaymentReference)
		}
	}
}

func TestEngine_ResultOrdering(t *testing.T) {
	engine := newTestEngine(t, valueobject.DefaultReconciliationRules())

	results := engine.Reconcile(
		[]*entity.Payment{
			payment("B-REF", "ACME Corp", 100, 12),
			payment("A-REF", "ACME Corp", 100, 12),
			payment("Z-REF", "ACME Corp", 100, 5),
		},
		nil,
		nil,
	)

	got := []string{results[0].PaymentReference, results[1].PaymentReference, results[2].PaymentReference}
	want := []string{"Z-REF", "A-REF", "B-REF"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestEngine_InputsNotMutated(t *testing.T) {
	engine := newTestEngine(t, valueobject.DefaultReconciliationRules())

	inv := invoice("INV-1001", "ACME Corp", 1000, 10)
	original := inv.Amount

	engine.Reconcile(
		[]*entity.Payment{payment("INV-1001", "ACME Corp", 250, 10)},
		[]*entity.Invoice{inv},
		nil,
	)

	if !inv.Amount.Equal(original) {
		t.Errorf("invoice amount mutated: %s -> %s", original, inv.Amount)
	}
}
