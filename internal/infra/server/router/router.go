// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/paymatch/backend/internal/integration/entrypoint/controller"
	"github.com/paymatch/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	reconciliationController *controller.ReconciliationController
	rulesController          *controller.RulesController
	recordsController        *controller.RecordsController
	runRateLimiter           *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	reconciliationController *controller.ReconciliationController,
	rulesController *controller.RulesController,
	recordsController *controller.RecordsController,
	runRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:         healthController,
		reconciliationController: reconciliationController,
		rulesController:          rulesController,
		recordsController:        recordsController,
		runRateLimiter:           runRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Reconciliation routes
		if r.reconciliationController != nil {
			reconciliation := v1.Group("/reconciliation")
			{
				if r.runRateLimiter != nil {
					reconciliation.POST("/run", r.runRateLimiter.Middleware(), r.reconciliationController.Run)
				} else {
					reconciliation.POST("/run", r.reconciliationController.Run)
				}
				reconciliation.GET("/results", r.reconciliationController.GetResults)
				reconciliation.GET("/summary", r.reconciliationController.GetSummary)
			}
		}

		// Rule configuration routes
		if r.rulesController != nil {
			rules := v1.Group("/rules")
			{
				rules.GET("", r.rulesController.Get)
				rules.PUT("", r.rulesController.Update)
			}
		}

		// Record import and listing routes
		if r.recordsController != nil {
			payments := v1.Group("/payments")
			{
				payments.GET("", r.recordsController.ListPayments)
				payments.POST("/import", r.recordsController.ImportPayments)
			}

			invoices := v1.Group("/invoices")
			{
				invoices.GET("", r.recordsController.ListInvoices)
				invoices.POST("/import", r.recordsController.ImportInvoices)
			}

			ledgerEntries := v1.Group("/ledger-entries")
			{
				ledgerEntries.GET("", r.recordsController.ListLedgerEntries)
				ledgerEntries.POST("/import", r.recordsController.ImportLedgerEntries)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
