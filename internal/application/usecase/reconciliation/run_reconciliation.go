package reconciliation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/paymatch/backend/internal/application/adapter"
	domainerror "github.com/paymatch/backend/internal/domain/error"
	"github.com/paymatch/backend/internal/domain/valueobject"
)

// RunReconciliationInput represents the input for running a pass. A nil
// RulesOverride uses the persisted rule configuration.
type RunReconciliationInput struct {
	RulesOverride *valueobject.ReconciliationRules
}

// RunReconciliationOutput represents the result of one reconciliation pass.
type RunReconciliationOutput struct {
	Results []valueobject.ReconciliationResult
	Summary valueobject.ReconciliationSummary
}

// RunReconciliationUseCase loads the record collections and rule
// configuration, runs one engine pass, and caches the results for the
// summary and filter surfaces.
type RunReconciliationUseCase struct {
	paymentRepo adapter.PaymentRepository
	invoiceRepo adapter.InvoiceRepository
	ledgerRepo  adapter.LedgerEntryRepository
	ruleSetRepo adapter.RuleSetRepository
	resultStore adapter.ResultStore
	similarity  Similarity
}

// NewRunReconciliationUseCase creates a new RunReconciliationUseCase instance.
func NewRunReconciliationUseCase(
	paymentRepo adapter.PaymentRepository,
	invoiceRepo adapter.InvoiceRepository,
	ledgerRepo adapter.LedgerEntryRepository,
	ruleSetRepo adapter.RuleSetRepository,
	resultStore adapter.ResultStore,
	similarity Similarity,
) *RunReconciliationUseCase {
	return &RunReconciliationUseCase{
		paymentRepo: paymentRepo,
		invoiceRepo: invoiceRepo,
		ledgerRepo:  ledgerRepo,
		ruleSetRepo: ruleSetRepo,
		resultStore: resultStore,
		similarity:  similarity,
	}
}

// Execute runs one reconciliation pass. Invalid rule configurations are
// rejected before any record is loaded.
func (uc *RunReconciliationUseCase) Execute(ctx context.Context, input RunReconciliationInput) (*RunReconciliationOutput, error) {
	rules, err := uc.resolveRules(ctx, input)
	if err != nil {
		return nil, err
	}

	engine, err := NewEngine(rules, uc.similarity)
	if err != nil {
		return nil, err
	}

	payments, err := uc.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoiceRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := uc.ledgerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	results := engine.Reconcile(payments, invoices, entries)

	if err := uc.resultStore.SaveRun(ctx, results); err != nil {
		return nil, err
	}

	slog.Info("Reconciliation pass completed",
		"payments", len(payments),
		"invoices", len(invoices),
		"ledger_entries", len(entries),
	)

	return &RunReconciliationOutput{
		Results: results,
		Summary: Summarize(results),
	}, nil
}

// resolveRules picks the override, the persisted configuration, or the
// shipped defaults, in that order.
func (uc *RunReconciliationUseCase) resolveRules(ctx context.Context, input RunReconciliationInput) (valueobject.ReconciliationRules, error) {
	if input.RulesOverride != nil {
		return *input.RulesOverride, nil
	}

	rules, err := uc.ruleSetRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, domainerror.ErrRuleSetNotFound) {
			return valueobject.DefaultReconciliationRules(), nil
		}
		return valueobject.ReconciliationRules{}, err
	}
	return rules, nil
}
