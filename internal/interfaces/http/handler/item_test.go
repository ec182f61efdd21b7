package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestItemHandler_List(t *testing.T) {
	t.Run("defaults to the first page of 20", func(t *testing.T) {
		s := newTestServer()
		s.items.On("FindAll", mock.Anything, shared.Page{Number: 1, PerPage: 20}).
			Return(items(newItem(1, "Widget", "1.50", 1), newItem(2, "Gadget", "2", 1)), nil)

		w := s.do(http.MethodGet, "/api/v1/items", "")

		assert.Equal(t, http.StatusOK, w.Code)
		doc := decodeList(t, w)
		require.Len(t, doc.Data, 2)
		assert.Equal(t, "1", *doc.Data[0].ID)
		assert.Equal(t, "item", doc.Data[0].Type)
		assert.Equal(t, 1.5, doc.Data[0].Attributes["unit_price"])
		assert.Equal(t, float64(1), doc.Data[0].Attributes["merchant_id"])
	})

	t.Run("honours page and per_page", func(t *testing.T) {
		s := newTestServer()
		s.items.On("FindAll", mock.Anything, shared.Page{Number: 2, PerPage: 10}).Return([]catalog.Item{}, nil)

		w := s.do(http.MethodGet, "/api/v1/items?page=2&per_page=10", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":[]}`, w.Body.String())
		s.items.AssertExpectations(t)
	})

	t.Run("falls back on junk values", func(t *testing.T) {
		s := newTestServer()
		s.items.On("FindAll", mock.Anything, shared.Page{Number: 1, PerPage: 20}).Return([]catalog.Item{}, nil)

		w := s.do(http.MethodGet, "/api/v1/items?page=abc&per_page=-4", "")

		assert.Equal(t, http.StatusOK, w.Code)
		s.items.AssertExpectations(t)
	})

	t.Run("hides unexpected errors", func(t *testing.T) {
		s := newTestServer()
		s.items.On("FindAll", mock.Anything, mock.Anything).Return([]catalog.Item{}, errors.New("pq: connection reset"))

		w := s.do(http.MethodGet, "/api/v1/items", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"message":"Internal server error"}`, w.Body.String())
	})
}

func TestItemHandler_Get(t *testing.T) {
	s := newTestServer()
	s.items.On("FindByID", mock.Anything, int64(4)).Return(newItem(4, "Item Nemo Facere", "42.91", 1), nil)
	s.items.On("FindByID", mock.Anything, int64(5)).Return(nil, shared.NewNotFoundError("item", int64(5)))

	t.Run("renders the item document", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/v1/items/4", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":{"id":"4","type":"item","attributes":{
			"name":"Item Nemo Facere",
			"description":"Item Nemo Facere description",
			"unit_price":42.91,
			"merchant_id":1}}}`, w.Body.String())
	})

	t.Run("404 for a missing item", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/v1/items/5", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Couldn't find Item with 'id'=5"}`, w.Body.String())
	})

	t.Run("404 for a non-numeric id", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/v1/items/string_id", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Couldn't find Item")
	})
}

func TestItemHandler_Create(t *testing.T) {
	t.Run("creates an item", func(t *testing.T) {
		s := newTestServer()
		s.merchants.On("ExistsByID", mock.Anything, int64(3)).Return(true, nil)
		s.items.On("Create", mock.Anything, mock.AnythingOfType("*catalog.Item")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*catalog.Item).ID = 12
			}).
			Return(nil)

		w := s.do(http.MethodPost, "/api/v1/items",
			`{"name":"Shiny Itemy Item","description":"It does a lot of things real good","unit_price":"451.06","merchant_id":3}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"data":{"id":"12","type":"item","attributes":{
			"name":"Shiny Itemy Item",
			"description":"It does a lot of things real good",
			"unit_price":451.06,
			"merchant_id":3}}}`, w.Body.String())
	})

	t.Run("enumerates every missing field", func(t *testing.T) {
		s := newTestServer()

		w := s.do(http.MethodPost, "/api/v1/items", "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"message":"Validation failed: Name can't be blank, Description can't be blank, Unit price can't be blank, Merchant must exist"}`,
			w.Body.String())
		s.items.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects a non-numeric price", func(t *testing.T) {
		s := newTestServer()

		w := s.do(http.MethodPost, "/api/v1/items",
			`{"name":"Thing","description":"Stuff","unit_price":"cheap","merchant_id":3}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Validation failed: Unit price is not a number")
	})

	t.Run("rejects an unknown merchant", func(t *testing.T) {
		s := newTestServer()
		s.merchants.On("ExistsByID", mock.Anything, int64(999)).Return(false, nil)

		w := s.do(http.MethodPost, "/api/v1/items",
			`{"name":"Thing","description":"Stuff","unit_price":1.5,"merchant_id":999}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"message":"Validation failed: Merchant must exist"}`, w.Body.String())
	})

	t.Run("rejects a price below one cent", func(t *testing.T) {
		s := newTestServer()
		s.merchants.On("ExistsByID", mock.Anything, int64(3)).Return(true, nil)

		w := s.do(http.MethodPost, "/api/v1/items",
			`{"name":"Thing","description":"Stuff","unit_price":0.001,"merchant_id":3}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"message":"Validation failed: Unit price must have at most 2 decimal places"}`, w.Body.String())
		s.items.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		s := newTestServer()

		w := s.do(http.MethodPost, "/api/v1/items", `{"name":`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestItemHandler_Update(t *testing.T) {
	t.Run("applies a partial update", func(t *testing.T) {
		s := newTestServer()
		s.items.On("FindByID", mock.Anything, int64(7)).Return(newItem(7, "Widget", "5.00", 3), nil)
		s.items.On("Update", mock.Anything, mock.MatchedBy(func(item *catalog.Item) bool {
			return item.UnitPrice.Equal(decimal.RequireFromString("6.25")) && item.Name == "Widget"
		})).Return(nil)

		w := s.do(http.MethodPatch, "/api/v1/items/7", `{"unit_price":6.25}`)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Contains(t, w.Body.String(), `"unit_price":6.25`)
		s.items.AssertExpectations(t)
	})

	t.Run("moves the item to another merchant", func(t *testing.T) {
		s := newTestServer()
		s.items.On("FindByID", mock.Anything, int64(7)).Return(newItem(7, "Widget", "5.00", 3), nil)
		s.merchants.On("ExistsByID", mock.Anything, int64(4)).Return(true, nil)
		s.items.On("Update", mock.Anything, mock.Anything).Return(nil)

		w := s.do(http.MethodPatch, "/api/v1/items/7", `{"merchant_id":4,"name":"Renamed"}`)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Contains(t, w.Body.String(), `"merchant_id":4`)
		assert.Contains(t, w.Body.String(), `"name":"Renamed"`)
	})

	t.Run("rejects an unknown merchant", func(t *testing.T) {
		s := newTestServer()
		s.items.On("FindByID", mock.Anything, int64(7)).Return(newItem(7, "Widget", "5.00", 3), nil)
		s.merchants.On("ExistsByID", mock.Anything, int64(99999)).Return(false, nil)

		w := s.do(http.MethodPatch, "/api/v1/items/7", `{"merchant_id":99999}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Merchant must exist")
		s.items.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("rejects a string price", func(t *testing.T) {
		s := newTestServer()

		w := s.do(http.MethodPatch, "/api/v1/items/7", `{"unit_price":"one hundred"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Unit price is not a number")
	})

	t.Run("404 for a non-numeric id", func(t *testing.T) {
		s := newTestServer()

		w := s.do(http.MethodPatch, "/api/v1/items/string_id", `{"name":"x"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Couldn't find Item")
	})
}

func TestItemHandler_Delete(t *testing.T) {
	t.Run("204 with no body", func(t *testing.T) {
		s := newTestServer()
		s.items.On("FindByID", mock.Anything, int64(7)).Return(newItem(7, "Widget", "5.00", 3), nil)
		s.items.On("HasLineEntries", mock.Anything, int64(7)).Return(false, nil)
		s.items.On("Delete", mock.Anything, int64(7)).Return(nil)

		w := s.do(http.MethodDelete, "/api/v1/items/7", "")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("422 when invoiced", func(t *testing.T) {
		s := newTestServer()
		s.items.On("FindByID", mock.Anything, int64(7)).Return(newItem(7, "Widget", "5.00", 3), nil)
		s.items.On("HasLineEntries", mock.Anything, int64(7)).Return(true, nil)

		w := s.do(http.MethodDelete, "/api/v1/items/7", "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"message":"Cannot delete an item that appears on invoices"}`, w.Body.String())
	})

	t.Run("404 when missing", func(t *testing.T) {
		s := newTestServer()
		s.items.On("FindByID", mock.Anything, int64(8)).Return(nil, shared.NewNotFoundError("item", int64(8)))

		w := s.do(http.MethodDelete, "/api/v1/items/8", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestItemHandler_FindAll(t *testing.T) {
	t.Run("name search comes back in descending name order", func(t *testing.T) {
		s := newTestServer()
		s.items.On("FindByNameContaining", mock.Anything, "star").Return(items(
			newItem(1, "Book on North Star", "1", 1),
			newItem(2, "Movie about Stars", "1", 1),
			newItem(3, "book on south star", "1", 1),
		), nil)

		w := s.do(http.MethodGet, "/api/v1/items/find_all?name=star", "")

		assert.Equal(t, http.StatusOK, w.Code)
		doc := decodeList(t, w)
		require.Len(t, doc.Data, 3)
		assert.Equal(t, "Movie about Stars", doc.Data[0].Attributes["name"])
		assert.Equal(t, "book on south star", doc.Data[1].Attributes["name"])
		assert.Equal(t, "Book on North Star", doc.Data[2].Attributes["name"])
	})

	t.Run("price search with one bound", func(t *testing.T) {
		s := newTestServer()
		s.items.On("FindByPriceRange", mock.Anything,
			mock.MatchedBy(func(d *decimal.Decimal) bool { return d != nil && d.Equal(decimal.NewFromInt(50)) }),
			(*decimal.Decimal)(nil),
		).Return(items(newItem(1, "Pricey", "75", 1)), nil)

		w := s.do(http.MethodGet, "/api/v1/items/find_all?min_price=50", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeList(t, w).Data, 1)
	})

	tests := []struct {
		name  string
		query string
	}{
		{"no parameters", ""},
		{"name and price", "?name=ring&min_price=5"},
		{"blank name", "?name="},
		{"bad price", "?max_price=lots"},
		{"negative price", "?min_price=-1"},
	}
	for _, tt := range tests {
		t.Run("400 for "+tt.name, func(t *testing.T) {
			s := newTestServer()

			w := s.do(http.MethodGet, "/api/v1/items/find_all"+tt.query, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"message"`)
		})
	}
}
