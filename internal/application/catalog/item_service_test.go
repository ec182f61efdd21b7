package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type itemServiceFixture struct {
	service   *ItemService
	items     *MockItemRepository
	merchants *MockMerchantRepository
	publisher *MockEventPublisher
	logs      *observer.ObservedLogs
}

func newItemServiceFixture() *itemServiceFixture {
	items := new(MockItemRepository)
	merchants := new(MockMerchantRepository)
	publisher := new(MockEventPublisher)
	core, logs := observer.New(zap.WarnLevel)
	scope := NewNoOpTransactionScope(items, merchants)
	return &itemServiceFixture{
		service:   NewItemService(scope, items, publisher, zap.New(core)),
		items:     items,
		merchants: merchants,
		publisher: publisher,
		logs:      logs,
	}
}

func newTestItem(id int64, name, price string, merchantID int64) *catalog.Item {
	p := decimal.RequireFromString(price)
	item, err := catalog.NewItem(catalog.ItemAttributes{
		Name:        name,
		Description: name + " description",
		UnitPrice:   &p,
		MerchantID:  merchantID,
	})
	if err != nil {
		panic(err)
	}
	item.ID = id
	return item
}

func priceOf(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strOf(s string) *string { return &s }

func eventTypes(events []shared.DomainEvent) []string {
	types := make([]string, len(events))
	for i, e := range events {
		types[i] = e.EventType()
	}
	return types
}

func TestItemService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the item and publishes item.created", func(t *testing.T) {
		f := newItemServiceFixture()
		f.merchants.On("ExistsByID", ctx, int64(3)).Return(true, nil)
		f.items.On("Create", ctx, mock.AnythingOfType("*catalog.Item")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*catalog.Item).ID = 42
			}).
			Return(nil)
		f.publisher.On("Publish", ctx, mock.MatchedBy(func(events []shared.DomainEvent) bool {
			return assert.ObjectsAreEqual([]string{catalog.EventTypeItemCreated}, eventTypes(events)) &&
				events[0].AggregateID() == 42
		})).Return(nil)

		got, err := f.service.Create(ctx, CreateItemInput{
			Name:        "  Widget ",
			Description: "A widget",
			UnitPrice:   priceOf("10.50"),
			MerchantID:  3,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(42), got.ID)
		assert.Equal(t, "Widget", got.Name)
		assert.Equal(t, "10.5", got.UnitPrice.String())
		f.items.AssertExpectations(t)
		f.publisher.AssertExpectations(t)
	})

	t.Run("enumerates every failing field", func(t *testing.T) {
		f := newItemServiceFixture()

		_, err := f.service.Create(ctx, CreateItemInput{
			Description: "A widget",
			UnitPrice:   priceOf("0"),
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrValidation))
		assert.Equal(t, "Validation failed: Name can't be blank, Unit price must be greater than 0, Merchant must exist", err.Error())
		f.items.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("rejects prices the store cannot represent", func(t *testing.T) {
		cases := map[string]string{
			"0.001":       "Validation failed: Unit price must have at most 2 decimal places",
			"12345678901": "Validation failed: Unit price must be less than 10000000000",
		}
		for price, want := range cases {
			f := newItemServiceFixture()
			f.merchants.On("ExistsByID", ctx, int64(3)).Return(true, nil)

			_, err := f.service.Create(ctx, CreateItemInput{
				Name:        "Widget",
				Description: "A widget",
				UnitPrice:   priceOf(price),
				MerchantID:  3,
			})

			require.Error(t, err, price)
			assert.True(t, errors.Is(err, shared.ErrValidation))
			assert.Equal(t, want, err.Error())
			f.items.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		}
	})

	t.Run("rejects an unknown merchant", func(t *testing.T) {
		f := newItemServiceFixture()
		f.merchants.On("ExistsByID", ctx, int64(99)).Return(false, nil)

		_, err := f.service.Create(ctx, CreateItemInput{
			Name:        "Widget",
			Description: "A widget",
			UnitPrice:   priceOf("1.00"),
			MerchantID:  99,
		})

		assert.True(t, errors.Is(err, shared.ErrValidation))
		assert.Equal(t, "Validation failed: Merchant must exist", err.Error())
		f.items.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("logs publish failures without failing", func(t *testing.T) {
		f := newItemServiceFixture()
		f.merchants.On("ExistsByID", ctx, int64(3)).Return(true, nil)
		f.items.On("Create", ctx, mock.Anything).Return(nil)
		f.publisher.On("Publish", ctx, mock.Anything).Return(errors.New("broker down"))

		got, err := f.service.Create(ctx, CreateItemInput{
			Name:        "Widget",
			Description: "A widget",
			UnitPrice:   priceOf("1.00"),
			MerchantID:  3,
		})

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, 1, f.logs.FilterMessage("failed to publish item events").Len())
	})
}

func TestItemService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("applies a partial update", func(t *testing.T) {
		f := newItemServiceFixture()
		f.items.On("FindByID", ctx, int64(7)).Return(newTestItem(7, "Widget", "5.00", 3), nil)
		f.items.On("Update", ctx, mock.AnythingOfType("*catalog.Item")).Return(nil)
		f.publisher.On("Publish", ctx, mock.MatchedBy(func(events []shared.DomainEvent) bool {
			return assert.ObjectsAreEqual([]string{catalog.EventTypeItemUpdated}, eventTypes(events))
		})).Return(nil)

		got, err := f.service.Update(ctx, 7, UpdateItemInput{UnitPrice: priceOf("6.25")})

		require.NoError(t, err)
		assert.Equal(t, "Widget", got.Name)
		assert.Equal(t, "6.25", got.UnitPrice.StringFixed(2))
		f.merchants.AssertNotCalled(t, "ExistsByID", mock.Anything, mock.Anything)
		f.publisher.AssertExpectations(t)
	})

	t.Run("returns not found for a missing item", func(t *testing.T) {
		f := newItemServiceFixture()
		f.items.On("FindByID", ctx, int64(8)).Return(nil, shared.NewNotFoundError("item", int64(8)))

		_, err := f.service.Update(ctx, 8, UpdateItemInput{Name: strOf("x")})

		assert.True(t, errors.Is(err, shared.ErrNotFound))
		assert.Equal(t, "Couldn't find Item with 'id'=8", err.Error())
	})

	t.Run("validates the merged fields", func(t *testing.T) {
		f := newItemServiceFixture()
		f.items.On("FindByID", ctx, int64(7)).Return(newTestItem(7, "Widget", "5.00", 3), nil)
		f.merchants.On("ExistsByID", ctx, int64(4)).Return(false, nil)

		_, err := f.service.Update(ctx, 7, UpdateItemInput{
			Description: strOf("  "),
			MerchantID:  func() *int64 { v := int64(4); return &v }(),
		})

		assert.True(t, errors.Is(err, shared.ErrValidation))
		assert.Equal(t, "Validation failed: Description can't be blank, Merchant must exist", err.Error())
		f.items.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestItemService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an unreferenced item", func(t *testing.T) {
		f := newItemServiceFixture()
		f.items.On("FindByID", ctx, int64(7)).Return(newTestItem(7, "Widget", "5.00", 3), nil)
		f.items.On("HasLineEntries", ctx, int64(7)).Return(false, nil)
		f.items.On("Delete", ctx, int64(7)).Return(nil)
		f.publisher.On("Publish", ctx, mock.MatchedBy(func(events []shared.DomainEvent) bool {
			return assert.ObjectsAreEqual([]string{catalog.EventTypeItemDeleted}, eventTypes(events))
		})).Return(nil)

		require.NoError(t, f.service.Delete(ctx, 7))
		f.items.AssertExpectations(t)
		f.publisher.AssertExpectations(t)
	})

	t.Run("refuses to delete an item on an invoice", func(t *testing.T) {
		f := newItemServiceFixture()
		f.items.On("FindByID", ctx, int64(7)).Return(newTestItem(7, "Widget", "5.00", 3), nil)
		f.items.On("HasLineEntries", ctx, int64(7)).Return(true, nil)

		err := f.service.Delete(ctx, 7)

		assert.True(t, errors.Is(err, shared.ErrInvalidState))
		f.items.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("returns not found for a missing item", func(t *testing.T) {
		f := newItemServiceFixture()
		f.items.On("FindByID", ctx, int64(9)).Return(nil, shared.NewNotFoundError("item", int64(9)))

		err := f.service.Delete(ctx, 9)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})
}

func TestItemService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("name search orders by lowercased name descending", func(t *testing.T) {
		f := newItemServiceFixture()
		f.items.On("FindByNameContaining", ctx, "star").Return([]catalog.Item{
			*newTestItem(1, "Book on North Star", "1.00", 1),
			*newTestItem(2, "book on south star", "1.00", 1),
		}, nil)

		got, err := f.service.Search(ctx, catalog.NameFilter{Query: "star"})

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "book on south star", got[0].Name)
		assert.Equal(t, "Book on North Star", got[1].Name)
	})

	t.Run("price search passes both bounds", func(t *testing.T) {
		f := newItemServiceFixture()
		lo, hi := priceOf("1.00"), priceOf("9.00")
		f.items.On("FindByPriceRange", ctx, lo, hi).Return([]catalog.Item{*newTestItem(1, "Mid", "5.00", 1)}, nil)

		got, err := f.service.Search(ctx, catalog.PriceFilter{Min: lo, Max: hi})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Mid", got[0].Name)
	})

	t.Run("returns an empty list when nothing matches", func(t *testing.T) {
		f := newItemServiceFixture()
		f.items.On("FindByNameContaining", ctx, "nebula").Return([]catalog.Item{}, nil)

		got, err := f.service.Search(ctx, catalog.NameFilter{Query: "nebula"})

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestItemService_List(t *testing.T) {
	ctx := context.Background()
	f := newItemServiceFixture()
	page := shared.ResolvePage(nil, nil)
	f.items.On("FindAll", ctx, page).Return([]catalog.Item{*newTestItem(1, "Widget", "1.00", 1)}, nil)

	got, err := f.service.List(ctx, page)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}
