package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

func seedProduct(t *testing.T, db *gorm.DB, title string, price int64, status catalog.ProductStatus, featured bool, createdAt time.Time) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(title, "A perfectly adequate description", decimal.NewFromInt(price), []string{"https://img.test/p.jpg"})
	require.NoError(t, err)
	require.NoError(t, p.SetStatus(status))
	p.SetFeatured(featured)
	p.Tags = catalog.StringList{"Wood", "office"}
	p.CreatedAt = createdAt
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestProductRepositoryFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	seeded := seedProduct(t, db, "Walnut Desk", 499, catalog.ProductStatusActive, false, time.Now())

	found, err := repo.FindByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Walnut Desk", found.Title)
	assert.Equal(t, catalog.StringList{"Wood", "office"}, found.Tags)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.True(t, shared.IsKind(err, shared.KindNotFound))
	assert.Equal(t, "Product not found", err.Error())
}

func TestProductRepositoryFindByTitle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	seeded := seedProduct(t, db, "Walnut Desk", 499, catalog.ProductStatusActive, false, time.Now())

	found, err := repo.FindByTitle(ctx, "Walnut Desk")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, found.ID)

	_, err = repo.FindByTitle(ctx, "Steel Chair")
	assert.True(t, shared.IsKind(err, shared.KindNotFound))
}

func TestProductRepositoryDuplicateTitleConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	seedProduct(t, db, "Walnut Desk", 499, catalog.ProductStatusActive, false, time.Now())

	dup, err := catalog.NewProduct("Walnut Desk", "A perfectly adequate description",
		decimal.NewFromInt(450), []string{"https://img.test/p.jpg"})
	require.NoError(t, err)

	err = repo.Save(ctx, dup)
	assert.True(t, shared.IsKind(err, shared.KindConflict))
}

func TestProductRepositoryTextSearch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	now := time.Now()
	seedProduct(t, db, "Walnut Desk", 499, catalog.ProductStatusActive, false, now)
	seedProduct(t, db, "Steel Chair", 199, catalog.ProductStatusActive, false, now)

	// case-insensitive title match
	results, total, err := repo.FindAll(ctx, catalog.ProductFilter{Search: "wAlNuT", Page: 1, Limit: 12})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, results, 1)
	assert.Equal(t, "Walnut Desk", results[0].Title)

	// tag match
	_, total, err = repo.FindAll(ctx, catalog.ProductFilter{Search: "office", Page: 1, Limit: 12})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestProductRepositoryAbsentFiltersAddNoPredicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	now := time.Now()
	seedProduct(t, db, "Draft Desk", 100, catalog.ProductStatusDraft, false, now)
	seedProduct(t, db, "Active Desk", 200, catalog.ProductStatusActive, true, now)
	seedProduct(t, db, "Archived Desk", 300, catalog.ProductStatusArchived, false, now)

	// no status filter: all three, including non-featured and drafts
	_, total, err := repo.FindAll(ctx, catalog.ProductFilter{Page: 1, Limit: 12})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	// explicit status filter narrows to exactly that status
	active := catalog.ProductStatusActive
	results, total, err := repo.FindAll(ctx, catalog.ProductFilter{Status: &active, Page: 1, Limit: 12})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Active Desk", results[0].Title)

	// featured=false is a real predicate, not an absent one
	notFeatured := false
	_, total, err = repo.FindAll(ctx, catalog.ProductFilter{Featured: &notFeatured, Page: 1, Limit: 12})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestProductRepositoryPriceBounds(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	now := time.Now()
	seedProduct(t, db, "Cheap", 50, catalog.ProductStatusActive, false, now)
	seedProduct(t, db, "Mid", 150, catalog.ProductStatusActive, false, now)
	seedProduct(t, db, "Expensive", 500, catalog.ProductStatusActive, false, now)

	min := decimal.NewFromInt(100)
	_, total, err := repo.FindAll(ctx, catalog.ProductFilter{MinPrice: &min, Page: 1, Limit: 12})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	max := decimal.NewFromInt(200)
	results, total, err := repo.FindAll(ctx, catalog.ProductFilter{MinPrice: &min, MaxPrice: &max, Page: 1, Limit: 12})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Mid", results[0].Title)
}

func TestProductRepositorySortOrders(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	seedProduct(t, db, "Bravo", 300, catalog.ProductStatusActive, false, base)
	seedProduct(t, db, "Alpha", 100, catalog.ProductStatusActive, false, base.Add(time.Minute))
	seedProduct(t, db, "Charlie", 200, catalog.ProductStatusActive, false, base.Add(2*time.Minute))

	titles := func(filter catalog.ProductFilter) []string {
		filter.Page, filter.Limit = 1, 12
		results, _, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		out := make([]string, len(results))
		for i, p := range results {
			out[i] = p.Title
		}
		return out
	}

	assert.Equal(t, []string{"Charlie", "Alpha", "Bravo"}, titles(catalog.ProductFilter{}), "default is newest first")
	assert.Equal(t, []string{"Bravo", "Alpha", "Charlie"}, titles(catalog.ProductFilter{Sort: catalog.SortOldest}))
	assert.Equal(t, []string{"Alpha", "Charlie", "Bravo"}, titles(catalog.ProductFilter{Sort: catalog.SortPriceLow}))
	assert.Equal(t, []string{"Bravo", "Charlie", "Alpha"}, titles(catalog.ProductFilter{Sort: catalog.SortPriceHigh}))
	assert.Equal(t, []string{"Alpha", "Bravo", "Charlie"}, titles(catalog.ProductFilter{Sort: catalog.SortNameAsc}))
	assert.Equal(t, []string{"Charlie", "Bravo", "Alpha"}, titles(catalog.ProductFilter{Sort: catalog.SortNameDesc}))
}

func TestProductRepositoryPaginationTotals(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		seedProduct(t, db, fmt.Sprintf("Desk %d", i), 100+int64(i), catalog.ProductStatusActive, false, base.Add(time.Duration(i)*time.Minute))
	}

	results, total, err := repo.FindAll(ctx, catalog.ProductFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total, "total counts all pages, not the returned slice")
	assert.Len(t, results, 2)

	results, total, err = repo.FindAll(ctx, catalog.ProductFilter{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, results, 1)
}

func TestProductRepositoryDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	seeded := seedProduct(t, db, "Walnut Desk", 499, catalog.ProductStatusActive, false, time.Now())

	require.NoError(t, repo.Delete(ctx, seeded.ID))
	err := repo.Delete(ctx, seeded.ID)
	assert.True(t, shared.IsKind(err, shared.KindNotFound))
}

func TestCategoryRepositoryRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCategoryRepository(db)
	ctx := context.Background()

	c, err := catalog.NewCategory("Desks", "Things to work at")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, c))

	found, err := repo.FindByName(ctx, "Desks")
	require.NoError(t, err)
	assert.Equal(t, c.ID, found.ID)

	// duplicate name violates the unique index
	dup, err := catalog.NewCategory("Desks", "Another one")
	require.NoError(t, err)
	err = repo.Save(ctx, dup)
	assert.True(t, shared.IsKind(err, shared.KindConflict))
}
