package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
)

func newPersistedOrder(t *testing.T, repo *GormOrderRepository, userID uuid.UUID) *order.Order {
	t.Helper()
	items := []order.Item{
		{ProductID: uuid.New(), Title: "Walnut Desk", Quantity: 1, UnitPrice: decimal.NewFromInt(499)},
	}
	o, err := order.NewOrder(userID, items, identity.Address{City: "Dhaka"}, order.PaymentCard)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), o))
	return o
}

func TestOrderRepositoryRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	placed := newPersistedOrder(t, repo, userID)

	found, err := repo.FindByID(ctx, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, placed.OrderNumber, found.OrderNumber)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Walnut Desk", found.Items[0].Title)
	assert.True(t, found.Total.Equal(placed.Total))

	byNumber, err := repo.FindByNumber(ctx, placed.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, placed.ID, byNumber.ID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.True(t, shared.IsKind(err, shared.KindNotFound))
	assert.Equal(t, "Order not found", err.Error())
}

func TestOrderRepositoryStatusUpdatePersists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	placed := newPersistedOrder(t, repo, uuid.New())
	require.NoError(t, placed.UpdateStatus(order.StatusConfirmed))
	require.NoError(t, repo.Save(ctx, placed))

	found, err := repo.FindByID(ctx, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusConfirmed, found.Status)
	assert.Len(t, found.Items, 1, "saving twice must not duplicate items")
}

func TestOrderRepositoryFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	alice, bob := uuid.New(), uuid.New()
	first := newPersistedOrder(t, repo, alice)
	newPersistedOrder(t, repo, alice)
	newPersistedOrder(t, repo, bob)

	_, total, err := repo.FindAll(ctx, order.Filter{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	_, total, err = repo.FindAll(ctx, order.Filter{UserID: &alice, Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	require.NoError(t, first.UpdateStatus(order.StatusConfirmed))
	require.NoError(t, repo.Save(ctx, first))

	confirmed := order.StatusConfirmed
	results, total, err := repo.FindAll(ctx, order.Filter{Status: &confirmed, Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, first.ID, results[0].ID)
}
