// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/paymatch/backend/config"
	"github.com/paymatch/backend/internal/application/usecase/reconciliation"
	"github.com/paymatch/backend/internal/application/usecase/records"
	"github.com/paymatch/backend/internal/application/usecase/rules"
	"github.com/paymatch/backend/internal/infra/server/router"
	"github.com/paymatch/backend/internal/integration/cache"
	"github.com/paymatch/backend/internal/integration/entrypoint/controller"
	"github.com/paymatch/backend/internal/integration/entrypoint/middleware"
	"github.com/paymatch/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	paymentRepo := persistence.NewPaymentRepository(db)
	invoiceRepo := persistence.NewInvoiceRepository(db)
	ledgerRepo := persistence.NewLedgerEntryRepository(db)
	ruleSetRepo := persistence.NewRuleSetRepository(db)
	resultStore := cache.NewResultStore(redisClient)

	// Create reconciliation use cases
	runUseCase := reconciliation.NewRunReconciliationUseCase(
		paymentRepo,
		invoiceRepo,
		ledgerRepo,
		ruleSetRepo,
		resultStore,
		reconciliation.LevenshteinSimilarity{},
	)
	getResultsUseCase := reconciliation.NewGetResultsUseCase(resultStore)
	getSummaryUseCase := reconciliation.NewGetSummaryUseCase(resultStore)

	// Create rule configuration use cases
	getRulesUseCase := rules.NewGetRulesUseCase(ruleSetRepo)
	updateRulesUseCase := rules.NewUpdateRulesUseCase(ruleSetRepo)

	// Create record use cases
	importPaymentsUseCase := records.NewImportPaymentsUseCase(paymentRepo)
	importInvoicesUseCase := records.NewImportInvoicesUseCase(invoiceRepo)
	importLedgerEntriesUseCase := records.NewImportLedgerEntriesUseCase(ledgerRepo)
	listPaymentsUseCase := records.NewListPaymentsUseCase(paymentRepo)
	listInvoicesUseCase := records.NewListInvoicesUseCase(invoiceRepo)
	listLedgerEntriesUseCase := records.NewListLedgerEntriesUseCase(ledgerRepo)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	reconciliationController := controller.NewReconciliationController(
		runUseCase,
		getResultsUseCase,
		getSummaryUseCase,
	)

	rulesController := controller.NewRulesController(
		getRulesUseCase,
		updateRulesUseCase,
	)

	recordsController := controller.NewRecordsController(
		importPaymentsUseCase,
		importInvoicesUseCase,
		importLedgerEntriesUseCase,
		listPaymentsUseCase,
		listInvoicesUseCase,
		listLedgerEntriesUseCase,
	)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var runRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		runRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		runRateLimiter = middleware.NewRateLimiterWithConfig(cfg.Engine.RunMaxPerMinute, 1*time.Minute)
	}

	// Create router
	r := router.NewRouter(
		healthController,
		reconciliationController,
		rulesController,
		recordsController,
		runRateLimiter,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}
}
