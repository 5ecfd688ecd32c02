package persistence

import (
	"strings"

	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/catalog"
)

// orderClauses maps each sort token to its SQL ordering. Unknown
// tokens never reach this map; ParseSortOrder collapses them to
// newest.
var orderClauses = map[catalog.SortOrder]string{
	catalog.SortNewest:    "created_at DESC",
	catalog.SortOldest:    "created_at ASC",
	catalog.SortPriceLow:  "price ASC",
	catalog.SortPriceHigh: "price DESC",
	catalog.SortNameAsc:   "title ASC",
	catalog.SortNameDesc:  "title DESC",
}

// OrderClause resolves a sort token to its SQL ordering, defaulting to
// newest-first.
func OrderClause(sort catalog.SortOrder) string {
	if clause, ok := orderClauses[sort]; ok {
		return clause
	}
	return orderClauses[catalog.SortNewest]
}

// applyProductFilter adds exactly the predicates the filter carries.
// Absent fields contribute nothing: a nil Status filters by no status
// at all, which is not the same as filtering by the empty string.
func applyProductFilter(query *gorm.DB, filter catalog.ProductFilter) *gorm.DB {
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(tags) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	return query
}

// paginate applies offset/limit for 1-based page numbers.
func paginate(query *gorm.DB, page, limit int) *gorm.DB {
	if page < 1 {
		page = 1
	}
	if limit > 0 {
		query = query.Offset((page - 1) * limit).Limit(limit)
	}
	return query
}
