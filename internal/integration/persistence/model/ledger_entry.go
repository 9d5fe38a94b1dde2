package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paymatch/backend/internal/domain/entity"
)

// LedgerEntryModel represents the ledger_entries table in the database.
type LedgerEntryModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EntryRef         string          `gorm:"type:varchar(100);not null;index"`
	PaymentReference string          `gorm:"type:varchar(100);index"`
	InvoiceNumber    string          `gorm:"type:varchar(100);index"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PostedAt         time.Time       `gorm:"type:date;not null;index"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
}

// TableName returns the table name for the LedgerEntryModel.
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}

// ToEntity converts a LedgerEntryModel to a domain LedgerEntry entity.
func (m *LedgerEntryModel) ToEntity() *entity.LedgerEntry {
	return &entity.LedgerEntry{
		ID:               m.ID,
		EntryRef:         m.EntryRef,
		PaymentReference: m.PaymentReference,
		InvoiceNumber:    m.InvoiceNumber,
		Amount:           m.Amount,
		PostedAt:         m.PostedAt,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// LedgerEntryFromEntity creates a LedgerEntryModel from a domain LedgerEntry entity.
func LedgerEntryFromEntity(entry *entity.LedgerEntry) *LedgerEntryModel {
	return &LedgerEntryModel{
		ID:               entry.ID,
		EntryRef:         entry.EntryRef,
		PaymentReference: entry.PaymentReference,
		InvoiceNumber:    entry.InvoiceNumber,
		Amount:           entry.Amount,
		PostedAt:         entry.PostedAt,
		CreatedAt:        entry.CreatedAt,
		UpdatedAt:        entry.UpdatedAt,
	}
}
