package catalog

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockItemRepository is a mock implementation of ItemRepository
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindByMerchant(ctx context.Context, merchantID int64) ([]catalog.Item, error) {
	args := m.Called(ctx, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindByNameContaining(ctx context.Context, query string) ([]catalog.Item, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice *decimal.Decimal) ([]catalog.Item, error) {
	args := m.Called(ctx, minPrice, maxPrice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Item), args.Error(1)
}

func (m *MockItemRepository) HasLineEntries(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockItemRepository) Create(ctx context.Context, item *catalog.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, item *catalog.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMerchantRepository is a mock implementation of MerchantRepository
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) FindByNameContaining(ctx context.Context, query string) ([]catalog.Merchant, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMerchantRepository) Create(ctx context.Context, merchant *catalog.Merchant) error {
	args := m.Called(ctx, merchant)
	return args.Error(0)
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}
