package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/partner"
	"github.com/storefront/backend/internal/domain/trade"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// every pooled connection to :memory: would otherwise get its own empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

// fixtures builds catalog and invoice rows through the real repositories
type fixtures struct {
	t         *testing.T
	ctx       context.Context
	merchants *GormMerchantRepository
	items     *GormItemRepository
	customers *GormCustomerRepository
	invoices  *GormInvoiceRepository
}

func newFixtures(t *testing.T, db *gorm.DB) *fixtures {
	return &fixtures{
		t:         t,
		ctx:       context.Background(),
		merchants: NewGormMerchantRepository(db),
		items:     NewGormItemRepository(db),
		customers: NewGormCustomerRepository(db),
		invoices:  NewGormInvoiceRepository(db),
	}
}

func (f *fixtures) merchant(name string) *catalog.Merchant {
	f.t.Helper()
	m, err := catalog.NewMerchant(name)
	require.NoError(f.t, err)
	require.NoError(f.t, f.merchants.Create(f.ctx, m))
	return m
}

func (f *fixtures) item(merchantID int64, name, price string) *catalog.Item {
	f.t.Helper()
	p := decimal.RequireFromString(price)
	it, err := catalog.NewItem(catalog.ItemAttributes{
		Name:        name,
		Description: name + " description",
		UnitPrice:   &p,
		MerchantID:  merchantID,
	})
	require.NoError(f.t, err)
	require.NoError(f.t, f.items.Create(f.ctx, it))
	return it
}

func (f *fixtures) customer() *partner.Customer {
	f.t.Helper()
	c, err := partner.NewCustomer("Joey", "Ondricka")
	require.NoError(f.t, err)
	require.NoError(f.t, f.customers.Create(f.ctx, c))
	return c
}

type lineSpec struct {
	item  *catalog.Item
	qty   int
	price string
}

// invoice stores an invoice created at the given instant with the given lines and payment results
func (f *fixtures) invoice(
	customerID, merchantID int64,
	status trade.InvoiceStatus,
	createdAt time.Time,
	lines []lineSpec,
	results ...trade.TransactionResult,
) *trade.Invoice {
	f.t.Helper()
	inv, err := trade.NewInvoice(customerID, merchantID, status)
	require.NoError(f.t, err)
	inv.CreatedAt = createdAt
	inv.UpdatedAt = createdAt
	for _, l := range lines {
		require.NoError(f.t, inv.AddLineEntry(l.item.ID, l.qty, decimal.RequireFromString(l.price)))
	}
	for _, r := range results {
		inv.RecordTransaction("4654405418249632", r)
	}
	require.NoError(f.t, f.invoices.Create(f.ctx, inv))
	return inv
}

func day(year int, month time.Month, d, hour, minute, sec int) time.Time {
	return time.Date(year, month, d, hour, minute, sec, 0, time.UTC)
}
