package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	reportapp "github.com/storefront/backend/internal/application/report"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

type testServer struct {
	engine    *gin.Engine
	items     *MockItemRepository
	merchants *MockMerchantRepository
	revenue   *MockRevenueRepository
	db        *MockPinger
}

func newTestServer() *testServer {
	s := &testServer{
		engine:    gin.New(),
		items:     new(MockItemRepository),
		merchants: new(MockMerchantRepository),
		revenue:   new(MockRevenueRepository),
		db:        new(MockPinger),
	}

	scope := catalogapp.NewNoOpTransactionScope(s.items, s.merchants)
	items := NewItemHandler(catalogapp.NewItemService(scope, s.items, nil, nil))
	merchants := NewMerchantHandler(catalogapp.NewMerchantService(s.merchants, s.items))
	revenue := NewRevenueHandler(reportapp.NewRevenueService(s.revenue, nil))

	api := s.engine.Group("/api/v1")
	api.GET("/items", items.List)
	api.GET("/items/find_all", items.FindAll)
	api.GET("/items/:id", items.Get)
	api.POST("/items", items.Create)
	api.PATCH("/items/:id", items.Update)
	api.DELETE("/items/:id", items.Delete)
	api.GET("/merchants", merchants.List)
	api.GET("/merchants/find", merchants.Find)
	api.GET("/merchants/:id", merchants.Get)
	api.GET("/merchants/:id/items", merchants.Items)
	api.GET("/revenue", revenue.Range)
	api.GET("/revenue/items", revenue.TopItems)
	api.GET("/revenue/merchants/:id", revenue.Merchant)
	s.engine.GET("/health", NewHealthHandler(s.db).Check)
	return s
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func newItem(id int64, name, price string, merchantID int64) *catalog.Item {
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

func newMerchant(id int64, name string) *catalog.Merchant {
	m, err := catalog.NewMerchant(name)
	if err != nil {
		panic(err)
	}
	m.ID = id
	return m
}

func items(all ...*catalog.Item) []catalog.Item {
	out := make([]catalog.Item, len(all))
	for i, it := range all {
		out[i] = *it
	}
	return out
}

type listDocument struct {
	Data []struct {
		ID         *string        `json:"id"`
		Type       string         `json:"type"`
		Attributes map[string]any `json:"attributes"`
	} `json:"data"`
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) listDocument {
	t.Helper()
	var doc listDocument
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	return doc
}
