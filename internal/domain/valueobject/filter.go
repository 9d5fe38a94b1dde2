package valueobject

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResultFilter is a display-side filter over a result
// sequence. Unset fields impose no constraint; set fields combine with
// logical AND.
type ResultFilter struct {
	Dispositions []Disposition
	DateFrom     *time.Time
	DateTo       *time.Time
	AmountMin    *decimal.Decimal
	AmountMax    *decimal.Decimal
	// Search is a free-text term matched case-insensitively against the
	// payment reference, payer name, and matched invoice numbers.
	Search string
}

// IsEmpty reports whether the filter imposes no constraint at all.
func (f ResultFilter) IsEmpty() bool {
	return len(f.Dispositions) == 0 &&
		f.DateFrom == nil && f.DateTo == nil &&
		f.AmountMin == nil && f.AmountMax == nil &&
		f.Search == ""
}
