package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestFilterCriteria_Matches(t *testing.T) {
	flat := Listing{ID: 1, Title: "flat", Price: 45000, Type: PropertyApartment, Operation: OperationSale,
		Location: "Бишкек, Центр", Rooms: 3, Area: 85}

	tbl := []struct {
		name     string
		criteria FilterCriteria
		want     bool
	}{
		{name: "empty", criteria: FilterCriteria{}, want: true},
		{name: "price in range", criteria: FilterCriteria{PriceMin: ptr(40000.0), PriceMax: ptr(50000.0)}, want: true},
		{name: "price min inclusive", criteria: FilterCriteria{PriceMin: ptr(45000.0)}, want: true},
		{name: "price max inclusive", criteria: FilterCriteria{PriceMax: ptr(45000.0)}, want: true},
		{name: "price below min", criteria: FilterCriteria{PriceMin: ptr(45000.01)}, want: false},
		{name: "price above max", criteria: FilterCriteria{PriceMax: ptr(44999.0)}, want: false},
		{name: "type match", criteria: FilterCriteria{Type: PropertyApartment}, want: true},
		{name: "type mismatch", criteria: FilterCriteria{Type: PropertyCottage}, want: false},
		{name: "operation match", criteria: FilterCriteria{Operation: OperationSale}, want: true},
		{name: "operation mismatch", criteria: FilterCriteria{Operation: OperationRent}, want: false},
		{name: "rooms exact", criteria: FilterCriteria{Rooms: ptr(3)}, want: true},
		{name: "rooms mismatch", criteria: FilterCriteria{Rooms: ptr(2)}, want: false},
		{name: "location substring", criteria: FilterCriteria{Location: "центр"}, want: true},
		{name: "location mismatch", criteria: FilterCriteria{Location: "Ош"}, want: false},
		{name: "all match", criteria: FilterCriteria{PriceMax: ptr(50000.0), Type: PropertyApartment,
			Operation: OperationSale, Rooms: ptr(3), Location: "Бишкек"}, want: true},
		{name: "one of many fails", criteria: FilterCriteria{PriceMax: ptr(50000.0), Type: PropertyApartment,
			Operation: OperationRent}, want: false},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criteria.Matches(flat))
		})
	}
}

func TestFilterCriteria_IsEmpty(t *testing.T) {
	assert.True(t, FilterCriteria{}.IsEmpty())
	assert.False(t, FilterCriteria{Location: "x"}.IsEmpty())
	assert.False(t, FilterCriteria{Rooms: ptr(1)}.IsEmpty())
	assert.False(t, FilterCriteria{PriceMin: ptr(0.0)}.IsEmpty())
}

func TestSubmitResult_Success(t *testing.T) {
	assert.True(t, SubmitResult{Delivered: true, Response: map[string]any{"success": true}}.Success())
	assert.False(t, SubmitResult{Delivered: true, Response: map[string]any{"success": false}}.Success())
	assert.False(t, SubmitResult{Delivered: true, Response: map[string]any{"success": "yes"}}.Success())
	assert.False(t, SubmitResult{Delivered: true, Response: []any{true}}.Success())
	assert.False(t, SubmitResult{Delivered: false, Stored: true}.Success())
}
