package main

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/partner"
	"github.com/storefront/backend/internal/domain/trade"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Counts sizes one seeding run
type Counts struct {
	Merchants        int
	ItemsPerMerchant int
	Customers        int
	Invoices         int
	MaxLineEntries   int
}

// Summary reports what a run inserted
type Summary struct {
	Merchants    int
	Items        int
	Customers    int
	Invoices     int
	LineEntries  int
	Transactions int
}

var invoiceStatuses = []string{
	string(trade.InvoiceStatusShipped),
	string(trade.InvoiceStatusShipped),
	string(trade.InvoiceStatusPackaged),
	string(trade.InvoiceStatusPending),
}

// Seeder fills an empty database with plausible catalog and invoice data
type Seeder struct {
	db     *gorm.DB
	faker  *gofakeit.Faker
	now    time.Time
	logger *zap.Logger
}

// NewSeeder creates a Seeder; the same seed always produces the same rows
func NewSeeder(db *gorm.DB, seed uint64, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		faker:  gofakeit.New(seed),
		now:    time.Now().UTC(),
		logger: logger,
	}
}

// Run inserts everything in one transaction
func (s *Seeder) Run(ctx context.Context, counts Counts) (Summary, error) {
	var summary Summary
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		summary = Summary{}
		return s.seed(ctx, tx, counts, &summary)
	})
	return summary, err
}

func (s *Seeder) seed(ctx context.Context, tx *gorm.DB, counts Counts, summary *Summary) error {
	merchantRepo := persistence.NewGormMerchantRepository(tx)
	itemRepo := persistence.NewGormItemRepository(tx)
	customerRepo := persistence.NewGormCustomerRepository(tx)
	invoiceRepo := persistence.NewGormInvoiceRepository(tx)

	itemsByMerchant := make(map[int64][]*catalog.Item, counts.Merchants)
	merchantIDs := make([]int64, 0, counts.Merchants)
	for range counts.Merchants {
		merchant, err := catalog.NewMerchant(s.faker.Company())
		if err != nil {
			return err
		}
		if err := merchantRepo.Create(ctx, merchant); err != nil {
			return err
		}
		merchantIDs = append(merchantIDs, merchant.ID)
		summary.Merchants++

		for range counts.ItemsPerMerchant {
			price := decimal.NewFromFloat(s.faker.Price(1, 1000)).Round(2)
			item, err := catalog.NewItem(catalog.ItemAttributes{
				Name:        s.faker.ProductName(),
				Description: s.faker.ProductDescription(),
				UnitPrice:   &price,
				MerchantID:  merchant.ID,
			})
			if err != nil {
				return err
			}
			if err := itemRepo.Create(ctx, item); err != nil {
				return err
			}
			itemsByMerchant[merchant.ID] = append(itemsByMerchant[merchant.ID], item)
			summary.Items++
		}
	}

	customerIDs := make([]int64, 0, counts.Customers)
	for range counts.Customers {
		customer, err := partner.NewCustomer(s.faker.FirstName(), s.faker.LastName())
		if err != nil {
			return err
		}
		if err := customerRepo.Create(ctx, customer); err != nil {
			return err
		}
		customerIDs = append(customerIDs, customer.ID)
		summary.Customers++
	}

	if len(merchantIDs) == 0 || len(customerIDs) == 0 || counts.ItemsPerMerchant == 0 {
		if counts.Invoices > 0 {
			s.logger.Warn("Skipping invoices: merchants, items and customers are all required")
		}
		return nil
	}

	maxLines := max(counts.MaxLineEntries, 1)
	for range counts.Invoices {
		merchantID := merchantIDs[s.faker.IntN(len(merchantIDs))]
		customerID := customerIDs[s.faker.IntN(len(customerIDs))]
		status := trade.InvoiceStatus(s.faker.RandomString(invoiceStatuses))

		invoice, err := trade.NewInvoice(customerID, merchantID, status)
		if err != nil {
			return err
		}
		invoice.CreatedAt = s.faker.DateRange(s.now.AddDate(-1, 0, 0), s.now)
		invoice.UpdatedAt = invoice.CreatedAt

		stock := itemsByMerchant[merchantID]
		for range s.faker.IntRange(1, maxLines) {
			item := stock[s.faker.IntN(len(stock))]
			if err := invoice.AddLineEntry(item.ID, s.faker.IntRange(1, 10), item.UnitPrice); err != nil {
				return err
			}
		}
		for range s.faker.IntRange(1, 3) {
			result := trade.TransactionResultSuccess
			if s.faker.Float64() < 0.25 {
				result = trade.TransactionResultFailure
			}
			invoice.RecordTransaction(s.faker.CreditCardNumber(nil), result)
		}

		if err := invoiceRepo.Create(ctx, invoice); err != nil {
			return fmt.Errorf("invoice for merchant %d: %w", merchantID, err)
		}
		summary.Invoices++
		summary.LineEntries += len(invoice.LineEntries)
		summary.Transactions += len(invoice.Transactions)
	}
	return nil
}
