package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	appcatalog "github.com/storefront/backend/internal/application/catalog"
	appreport "github.com/storefront/backend/internal/application/report"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{"NOT_FOUND", http.StatusNotFound},
		{"BAD_REQUEST", http.StatusBadRequest},
		{"VALIDATION_FAILED", http.StatusUnprocessableEntity},
		{"INVALID_INPUT", http.StatusUnprocessableEntity},
		{"INVALID_STATE", http.StatusUnprocessableEntity},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestFromError(t *testing.T) {
	status, body := FromError(fmt.Errorf("load: %w", shared.NewNotFoundError("item", int64(7))))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Couldn't find Item with 'id'=7", body.Message)

	status, body = FromError(errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, MessageInternal, body.Message)
}

func render(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestItemResource(t *testing.T) {
	doc := Single(ItemResource(appcatalog.ItemResponse{
		ID:          4,
		Name:        "Item Nemo Facere",
		Description: "Sunt eum id eius magni consequuntur delectus verita",
		UnitPrice:   decimal.RequireFromString("42.91"),
		MerchantID:  1,
	}))

	assert.JSONEq(t, `{"data":{"id":"4","type":"item","attributes":{
		"name":"Item Nemo Facere",
		"description":"Sunt eum id eius magni consequuntur delectus verita",
		"unit_price":42.91,
		"merchant_id":1}}}`, render(t, doc))
}

func TestList(t *testing.T) {
	assert.JSONEq(t, `{"data":[]}`, render(t, List(nil)))
	assert.JSONEq(t, `{"data":[{"id":"2","type":"merchant","attributes":{"name":"Klein, Rempel and Jones"}}]}`,
		render(t, List(MerchantResources([]appcatalog.MerchantResponse{{ID: 2, Name: "Klein, Rempel and Jones"}}))))
}

func TestEmpty(t *testing.T) {
	assert.JSONEq(t, `{"data":{}}`, render(t, Empty()))
}

func TestRevenueResources(t *testing.T) {
	merchant := Single(MerchantRevenueResource(appreport.MerchantRevenueResponse{
		MerchantID: 3,
		Revenue:    decimal.RequireFromString("50"),
	}))
	assert.JSONEq(t, `{"data":{"id":"3","type":"merchant_revenue","attributes":{"revenue":50.00}}}`, render(t, merchant))
	assert.Contains(t, render(t, merchant), `"revenue":50.00`)

	ranged := Single(RangeRevenueResource(appreport.RangeRevenueResponse{Revenue: decimal.RequireFromString("30.5")}))
	assert.JSONEq(t, `{"data":{"id":null,"type":"revenue","attributes":{"revenue":30.5}}}`, render(t, ranged))

	ranking := List(ItemRevenueResources([]appreport.ItemRevenueResponse{{
		ItemResponse: appcatalog.ItemResponse{ID: 9, Name: "Widget", Description: "d", UnitPrice: decimal.RequireFromString("2"), MerchantID: 1},
		Revenue:      decimal.RequireFromString("10"),
	}}))
	assert.JSONEq(t, `{"data":[{"id":"9","type":"item_revenue","attributes":{
		"name":"Widget","description":"d","unit_price":2,"merchant_id":1,"revenue":10}}]}`, render(t, ranking))
}
