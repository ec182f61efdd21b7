package persistence

import (
	"context"
	"fmt"

	"github.com/storefront/backend/internal/domain/trade"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID loads an invoice with its line entries and transactions
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id int64) (*trade.Invoice, error) {
	byID := func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }
	row, err := firstByID[models.InvoiceModel](ctx,
		r.db.Preload("LineEntries", byID).Preload("Transactions", byID), "invoice", id)
	if err != nil {
		return nil, err
	}
	return row.ToDomain(), nil
}

// Create inserts the invoice and its children in one transaction,
// then copies generated IDs back onto the aggregate
func (r *GormInvoiceRepository) Create(ctx context.Context, invoice *trade.Invoice) error {
	model := models.InvoiceModelFromDomain(invoice)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(model).Error
	})
	if err != nil {
		return fmt.Errorf("create invoice: %w", err)
	}

	invoice.ID = model.ID
	for i := range invoice.LineEntries {
		invoice.LineEntries[i].ID = model.LineEntries[i].ID
		invoice.LineEntries[i].InvoiceID = model.ID
	}
	for i := range invoice.Transactions {
		invoice.Transactions[i].ID = model.Transactions[i].ID
		invoice.Transactions[i].InvoiceID = model.ID
	}
	return nil
}

// Ensure GormInvoiceRepository implements InvoiceRepository interface
var _ trade.InvoiceRepository = (*GormInvoiceRepository)(nil)
