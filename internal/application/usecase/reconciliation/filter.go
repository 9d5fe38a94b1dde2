package reconciliation

import (
	"strings"

	"github.com/paymatch/backend/internal/domain/valueobject"
)

// FilterResults returns the subsequence of results matching every set field
// of the filter (logical AND). Unset fields impose no constraint; an empty
// filter returns the input unchanged. The input is never mutated or
// reordered.
func FilterResults(results []valueobject.ReconciliationResult, filter valueobject.ResultFilter) []valueobject.ReconciliationResult {
	if filter.IsEmpty() {
		return results
	}

	filtered := make([]valueobject.ReconciliationResult, 0, len(results))
	for _, r := range results {
		if matchesFilter(r, filter) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func matchesFilter(r valueobject.ReconciliationResult, f valueobject.ResultFilter) bool {
	if len(f.Dispositions) > 0 && !containsDisposition(f.Dispositions, r.Disposition) {
		return false
	}
	if f.DateFrom != nil && r.PaymentDate.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && r.PaymentDate.After(*f.DateTo) {
		return false
	}
	if f.AmountMin != nil && r.PaymentAmount.LessThan(*f.AmountMin) {
		return false
	}
	if f.AmountMax != nil && r.PaymentAmount.GreaterThan(*f.AmountMax) {
		return false
	}
	if f.Search != "" && !matchesSearch(r, f.Search) {
		return false
	}
	return true
}

func containsDisposition(set []valueobject.Disposition, d valueobject.Disposition) bool {
	for _, s := range set {
		if s == d {
			return true
		}
	}
	return false
}

// matchesSearch checks the free-text term case-insensitively against the
// payment reference, payer name, and every matched invoice number.
func matchesSearch(r valueobject.ReconciliationResult, term string) bool {
	needle := strings.ToLower(term)

	if strings.Contains(strings.ToLower(r.PaymentReference), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(r.PayerName), needle) {
		return true
	}
	for _, invoice := range r.MatchedInvoices {
		if strings.Contains(strings.ToLower(invoice), needle) {
			return true
		}
	}
	return false
}
