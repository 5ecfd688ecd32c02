package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SortOrder is one of the storefront's named sort tokens. Anything
// unrecognized falls back to newest-first.
type SortOrder string

const (
	SortNewest    SortOrder = "newest"
	SortOldest    SortOrder = "oldest"
	SortPriceLow  SortOrder = "price_low"
	SortPriceHigh SortOrder = "price_high"
	SortNameAsc   SortOrder = "name_asc"
	SortNameDesc  SortOrder = "name_desc"
)

// ParseSortOrder maps a request token to a sort order, defaulting to
// newest for empty or unknown input.
func ParseSortOrder(raw string) SortOrder {
	switch SortOrder(raw) {
	case SortOldest, SortPriceLow, SortPriceHigh, SortNameAsc, SortNameDesc:
		return SortOrder(raw)
	default:
		return SortNewest
	}
}

// ProductFilter captures a catalog search. Nil pointers mean "no
// constraint": an absent field must add no predicate at all, which is
// different from filtering on the zero value.
type ProductFilter struct {
	Search     string
	CategoryID *uuid.UUID
	Status     *ProductStatus
	Featured   *bool
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Sort       SortOrder
	Page       int
	Limit      int
}
