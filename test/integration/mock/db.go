// Package mock provides in-memory stand-ins for the external services
// the API depends on during integration tests.
package mock

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/paymatch/backend/internal/integration/persistence/model"
)

// NewDb opens a fresh in-memory SQLite database and migrates the full
// schema. Each scenario gets its own database so state never leaks
// between scenarios.
func NewDb() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}

	err = db.AutoMigrate(
		&model.PaymentModel{},
		&model.InvoiceModel{},
		&model.LedgerEntryModel{},
		&model.RuleSetModel{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
