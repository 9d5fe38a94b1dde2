package reconciliation

import "github.com/paymatch/backend/internal/domain/entity"

// findDuplicate flags a payment as a likely re-submission of a payment
// already resolved in this pass: same amount within tolerance, same payer
// name within the sensitivity bar, and a date inside the configured day
// window. Payments are processed in date order, so the flagged payment is
// always the later-dated of the pair and the earlier one keeps its original
// disposition.
func (e *Engine) findDuplicate(payment *entity.Payment, resolved []resolvedPayment) *resolvedPayment {
	if !e.rules.Enabled.DuplicateDetection {
		return nil
	}

	for i := range resolved {
		earlier := &resolved[i]
		if !e.scorer.WithinAmountTolerance(payment.Amount, earlier.payment.Amount) {
			continue
		}
		if !e.scorer.NamesSimilar(payment.PayerName, earlier.payment.PayerName) {
			continue
		}
		if dayDifference(payment.Date, earlier.payment.Date) > e.rules.Thresholds.DateDifferenceDays {
			continue
		}
		return earlier
	}

	return nil
}
