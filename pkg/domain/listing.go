package domain

import "strings"

// PropertyType represents the kind of real-estate object
type PropertyType string

// known property types, the CRM may return others
const (
	PropertyApartment  PropertyType = "apartment"
	PropertyCottage    PropertyType = "cottage"
	PropertyHouse      PropertyType = "house"
	PropertyLand       PropertyType = "land"
	PropertyCommercial PropertyType = "commercial"
)

// Operation represents the deal type of a listing
type Operation string

const (
	OperationSale Operation = "sale"
	OperationRent Operation = "rent"
)

// Listing represents a single real-estate property record
type Listing struct {
	ID        int64        `json:"id"`
	Title     string       `json:"title"`
	Price     float64      `json:"price"`
	Type      PropertyType `json:"type"`
	Operation Operation    `json:"operation"`
	Location  string       `json:"location"`
	Rooms     int          `json:"rooms"`
	Area      float64      `json:"area"`
	Image     string       `json:"image"`
	Featured  bool         `json:"featured"`
}

// FilterCriteria represents optional constraints narrowing a listing search.
// Nil pointers and empty strings mean the dimension is not constrained.
type FilterCriteria struct {
	PriceMin  *float64     `json:"priceMin,omitempty"`
	PriceMax  *float64     `json:"priceMax,omitempty"`
	Type      PropertyType `json:"type,omitempty"`
	Operation Operation    `json:"operation,omitempty"`
	Rooms     *int         `json:"rooms,omitempty"`
	Location  string       `json:"location,omitempty"`
}

// IsEmpty reports whether no criterion is set
func (c FilterCriteria) IsEmpty() bool {
	return c.PriceMin == nil && c.PriceMax == nil && c.Type == "" && c.Operation == "" &&
		c.Rooms == nil && c.Location == ""
}

// Matches checks if the listing satisfies every specified criterion.
// Price bounds are inclusive, type, operation and rooms are exact,
// location is a case-insensitive substring.
func (c FilterCriteria) Matches(l Listing) bool {
	if c.PriceMin != nil && l.Price < *c.PriceMin {
		return false
	}
	if c.PriceMax != nil && l.Price > *c.PriceMax {
		return false
	}
	if c.Type != "" && l.Type != c.Type {
		return false
	}
	if c.Operation != "" && l.Operation != c.Operation {
		return false
	}
	if c.Rooms != nil && l.Rooms != *c.Rooms {
		return false
	}
	if c.Location != "" && !strings.Contains(strings.ToLower(l.Location), strings.ToLower(c.Location)) {
		return false
	}
	return true
}
