package unified

import (
	"context"
	"testing"

	"voltmart/internal/domain/entity"
	"voltmart/internal/domain/seed"
	"voltmart/internal/infra/persistence/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_EmptyBackingYieldsSeeds(t *testing.T) {
	ctx := context.Background()
	store := New(memory.New())

	products, err := store.LoadProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, len(seed.Products()))

	orders, err := store.LoadOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, len(seed.Orders()))
}

func TestStore_StoredRecordShadowsSeed(t *testing.T) {
	ctx := context.Background()
	backing := memory.New()
	store := New(backing)

	// Edit a seed order: the stored copy must replace the seed, not
	// duplicate it.
	seeded := seed.Orders()[0]
	seeded.Status = entity.OrderStatusProcessing
	require.NoError(t, store.UpsertOrder(ctx, seeded))

	orders, err := store.LoadOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, len(seed.Orders()))

	var found *entity.Order
	for i := range orders {
		if orders[i].ID == seeded.ID {
			found = &orders[i]

			break
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, entity.OrderStatusProcessing, found.Status)
}

func TestStore_NewRecordsAppearAlongsideSeeds(t *testing.T) {
	ctx := context.Background()
	store := New(memory.New())

	order := entity.Order{
		ID:           "ORD-9001",
		CustomerName: "Guest Customer",
		Status:       entity.OrderStatusPending,
		Total:        decimal.RequireFromString("63.98"),
		GuestOrder:   true,
	}
	require.NoError(t, store.UpsertOrder(ctx, order))

	orders, err := store.LoadOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, len(seed.Orders())+1)
}

func TestStore_WritesNeverTouchSeeds(t *testing.T) {
	ctx := context.Background()
	backing := memory.New()
	store := New(backing)

	seeded := seed.Orders()[0]
	seeded.Status = entity.OrderStatusCancelled
	require.NoError(t, store.UpsertOrder(ctx, seeded))

	// Only the edited record lands in the backing store.
	stored, err := backing.LoadOrders(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, seeded.ID, stored[0].ID)

	// The in-package seed data stays pristine.
	assert.Equal(t, entity.OrderStatusCompleted, seed.Orders()[0].Status)
}

func TestStore_SessionPassesThrough(t *testing.T) {
	ctx := context.Background()
	store := New(memory.New())

	require.NoError(t, store.SaveSession(ctx, &entity.SupplierSession{SupplierID: "3", Email: "info@constructiontools.com"}))

	session, err := store.LoadSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "3", session.SupplierID)
}
