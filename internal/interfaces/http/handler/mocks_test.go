package handler

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/report"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockItemRepository implements catalog.ItemRepository for testing
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindByID(ctx context.Context, id int64) (*catalog.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindAll(ctx context.Context, page shared.Page) ([]catalog.Item, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindByMerchant(ctx context.Context, merchantID int64) ([]catalog.Item, error) {
	args := m.Called(ctx, merchantID)
	return args.Get(0).([]catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindByNameContaining(ctx context.Context, query string) ([]catalog.Item, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice *decimal.Decimal) ([]catalog.Item, error) {
	args := m.Called(ctx, minPrice, maxPrice)
	return args.Get(0).([]catalog.Item), args.Error(1)
}

func (m *MockItemRepository) HasLineEntries(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockItemRepository) Create(ctx context.Context, item *catalog.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, item *catalog.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockMerchantRepository implements catalog.MerchantRepository for testing
type MockMerchantRepository struct {
	mock.Mock
}

func (m *MockMerchantRepository) FindByID(ctx context.Context, id int64) (*catalog.Merchant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) FindAll(ctx context.Context, page shared.Page) ([]catalog.Merchant, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]catalog.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) FindByNameContaining(ctx context.Context, query string) ([]catalog.Merchant, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]catalog.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMerchantRepository) Create(ctx context.Context, merchant *catalog.Merchant) error {
	return m.Called(ctx, merchant).Error(0)
}

// MockRevenueRepository implements report.RevenueRepository for testing
type MockRevenueRepository struct {
	mock.Mock
}

func (m *MockRevenueRepository) MerchantRevenue(ctx context.Context, merchantID int64) (*report.MerchantRevenue, error) {
	args := m.Called(ctx, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.MerchantRevenue), args.Error(1)
}

func (m *MockRevenueRepository) TopItemsByRevenue(ctx context.Context, limit int) ([]report.ItemRevenue, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]report.ItemRevenue), args.Error(1)
}

func (m *MockRevenueRepository) RevenueBetween(ctx context.Context, from, until time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, until)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockPinger implements Pinger for testing
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
