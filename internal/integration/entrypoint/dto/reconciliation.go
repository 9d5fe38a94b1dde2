package dto

import (
	"time"

	"github.com/paymatch/backend/internal/domain/valueobject"
)

// ScoreBreakdownDTO carries the four sub-scores behind a confidence score.
type ScoreBreakdownDTO struct {
	Reference float64 `json:"reference"`
	Amount    float64 `json:"amount"`
	Name      float64 `json:"name"`
	Date      float64 `json:"date"`
}

// ResultDTO represents the disposition of one payment.
type ResultDTO struct {
	PaymentReference string            `json:"payment_reference"`
	PayerName        string            `json:"payer_name"`
	PaymentAmount    string            `json:"payment_amount"`
	PaymentDate      string            `json:"payment_date"`
	MatchedInvoices  []string          `json:"matched_invoices,omitempty"`
	Disposition      string            `json:"disposition"`
	Confidence       float64           `json:"confidence"`
	Breakdown        ScoreBreakdownDTO `json:"breakdown"`
	Issues           []string          `json:"issues,omitempty"`
}

// DispositionTotalsDTO carries count and amount for one disposition bucket.
type DispositionTotalsDTO struct {
	Count  int    `json:"count"`
	Amount string `json:"amount"`
}

// PayerTotalsDTO carries the per-payer reporting breakdown.
type PayerTotalsDTO struct {
	Payments int    `json:"payments"`
	Amount   string `json:"amount"`
	Matched  int    `json:"matched"`
}

// SummaryDTO represents the aggregate summary of a run.
type SummaryDTO struct {
	TotalPayments     int                             `json:"total_payments"`
	ByDisposition     map[string]DispositionTotalsDTO `json:"by_disposition"`
	ByPayer           map[string]PayerTotalsDTO       `json:"by_payer"`
	MatchedAmount     string                          `json:"matched_amount"`
	UnmatchedAmount   string                          `json:"unmatched_amount"`
	AverageConfidence float64                         `json:"average_confidence"`
}

// RunReconciliationRequest represents the request body for POST
// /reconciliation/run. The rules override is optional.
type RunReconciliationRequest struct {
	Rules *RulesDTO `json:"rules,omitempty"`
}

// RunReconciliationResponse represents the response for POST /reconciliation/run.
type RunReconciliationResponse struct {
	Results []ResultDTO `json:"results"`
	Summary SummaryDTO  `json:"summary"`
}

// GetResultsResponse represents the response for GET /reconciliation/results.
type GetResultsResponse struct {
	Results []ResultDTO `json:"results"`
	Total   int         `json:"total"`
}

// GetSummaryResponse represents the response for GET /reconciliation/summary.
type GetSummaryResponse struct {
	Summary SummaryDTO `json:"summary"`
}

// ResultToDTO converts a domain result to its DTO.
func ResultToDTO(r valueobject.ReconciliationResult) ResultDTO {
	return ResultDTO{
		PaymentReference: r.PaymentReference,
		PayerName:        r.PayerName,
		PaymentAmount:    r.PaymentAmount.String(),
		PaymentDate:      r.PaymentDate.Format(time.DateOnly),
		MatchedInvoices:  r.MatchedInvoices,
		Disposition:      string(r.Disposition),
		Confidence:       r.Confidence,
		Breakdown: ScoreBreakdownDTO{
			Reference: r.Breakdown.Reference,
			Amount:    r.Breakdown.Amount,
			Name:      r.Breakdown.Name,
			Date:      r.Breakdown.Date,
		},
		Issues: r.Issues,
	}
}

// ResultsToDTO converts a result sequence to DTOs, preserving order.
func ResultsToDTO(results []valueobject.ReconciliationResult) []ResultDTO {
	dtos := make([]ResultDTO, len(results))
	for i, r := range results {
		dtos[i] = ResultToDTO(r)
	}
	return dtos
}

// SummaryToDTO converts a domain summary to its DTO.
func SummaryToDTO(s valueobject.ReconciliationSummary) SummaryDTO {
	byDisposition := make(map[string]DispositionTotalsDTO, len(s.ByDisposition))
	for disposition, totals := range s.ByDisposition {
		byDisposition[string(disposition)] = DispositionTotalsDTO{
			Count:  totals.Count,
			Amount: totals.Amount.String(),
		}
	}

	byPayer := make(map[string]PayerTotalsDTO, len(s.ByPayer))
	for payer, totals := range s.ByPayer {
		byPayer[payer] = PayerTotalsDTO{
			Payments: totals.Payments,
			Amount:   totals.Amount.String(),
			Matched:  totals.Matched,
		}
	}

	return SummaryDTO{
		TotalPayments:     s.TotalPayments,
		ByDisposition:     byDisposition,
		ByPayer:           byPayer,
		MatchedAmount:     s.MatchedAmount.String(),
		UnmatchedAmount:   s.UnmatchedAmount.String(),
		AverageConfidence: s.AverageConfidence,
	}
}
