package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/report"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// qualifyingInvoice restricts "inv" to shipped invoices with at least one
// successful transaction. The EXISTS keeps an invoice paid several times from
// multiplying its line entries.
const qualifyingInvoice = `inv.status = ? AND EXISTS (
	SELECT 1 FROM transactions t WHERE t.invoice_id = inv.id AND t.result = ?
)`

// revenueSnapshot is the transaction mode for multi-statement revenue reads
var revenueSnapshot = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

// GormRevenueRepository implements RevenueRepository using GORM
type GormRevenueRepository struct {
	db *gorm.DB
}

// NewGormRevenueRepository creates a new GormRevenueRepository
func NewGormRevenueRepository(db *gorm.DB) *GormRevenueRepository {
	return &GormRevenueRepository{db: db}
}

type revenueResult struct {
	Revenue decimal.Decimal
}

// MerchantRevenue sums the merchant's qualifying line entries.
// The existence check and the sum read the same snapshot.
func (r *GormRevenueRepository) MerchantRevenue(ctx context.Context, merchantID int64) (*report.MerchantRevenue, error) {
	var result revenueResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := NewGormMerchantRepository(tx).ExistsByID(ctx, merchantID)
		if err != nil {
			return err
		}
		if !exists {
			return shared.NewNotFoundError("merchant", merchantID)
		}

		return tx.Table("invoice_items ii").
			Select("COALESCE(SUM(ii.quantity * ii.unit_price), 0) AS revenue").
			Joins("JOIN invoices inv ON inv.id = ii.invoice_id").
			Where("inv.merchant_id = ?", merchantID).
			Where(qualifyingInvoice, trade.InvoiceStatusShipped, trade.TransactionResultSuccess).
			Scan(&result).Error
	}, revenueSnapshot)
	if err != nil {
		return nil, err
	}

	return &report.MerchantRevenue{MerchantID: merchantID, Revenue: result.Revenue}, nil
}

// TopItemsByRevenue ranks every item by qualifying revenue, highest first
func (r *GormRevenueRepository) TopItemsByRevenue(ctx context.Context, limit int) ([]report.ItemRevenue, error) {
	type itemRevenueRow struct {
		ID          int64
		Name        string
		Description string
		UnitPrice   decimal.Decimal
		MerchantID  int64
		CreatedAt   time.Time
		UpdatedAt   time.Time
		Revenue     decimal.Decimal
	}

	perItem := r.db.Table("invoice_items ii").
		Select("ii.item_id, SUM(ii.quantity * ii.unit_price) AS revenue").
		Joins("JOIN invoices inv ON inv.id = ii.invoice_id").
		Where(qualifyingInvoice, trade.InvoiceStatusShipped, trade.TransactionResultSuccess).
		Group("ii.item_id")

	var rows []itemRevenueRow
	err := r.db.WithContext(ctx).
		Table("items it").
		Select(`it.id, it.name, it.description, it.unit_price, it.merchant_id,
			it.created_at, it.updated_at, COALESCE(rev.revenue, 0) AS revenue`).
		Joins("LEFT JOIN (?) rev ON rev.item_id = it.id", perItem).
		Order("revenue DESC").
		Order("it.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	ranking := make([]report.ItemRevenue, len(rows))
	for i, row := range rows {
		item := catalog.Item{
			Name:        row.Name,
			Description: row.Description,
			UnitPrice:   row.UnitPrice,
			MerchantID:  row.MerchantID,
		}
		item.ID = row.ID
		item.CreatedAt = row.CreatedAt
		item.UpdatedAt = row.UpdatedAt
		ranking[i] = report.ItemRevenue{Item: item, Revenue: row.Revenue}
	}
	return ranking, nil
}

// RevenueBetween sums qualifying revenue for invoices created in [from, until)
func (r *GormRevenueRepository) RevenueBetween(ctx context.Context, from, until time.Time) (decimal.Decimal, error) {
	var result revenueResult
	err := r.db.WithContext(ctx).
		Table("invoice_items ii").
		Select("COALESCE(SUM(ii.quantity * ii.unit_price), 0) AS revenue").
		Joins("JOIN invoices inv ON inv.id = ii.invoice_id").
		Where("inv.created_at >= ? AND inv.created_at < ?", from.UTC(), until.UTC()).
		Where(qualifyingInvoice, trade.InvoiceStatusShipped, trade.TransactionResultSuccess).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Revenue, nil
}

// Ensure GormRevenueRepository implements RevenueRepository interface
var _ report.RevenueRepository = (*GormRevenueRepository)(nil)
