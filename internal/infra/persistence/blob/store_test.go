package blob

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"voltmart/internal/domain/entity"
	"voltmart/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
)

func newTestStore(t *testing.T) repository.CommerceStore {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, closeBucket, err := New(context.Background(), "mem://", logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeBucket() })

	return store
}

func TestStore_EmptyBucketYieldsEmptyCollections(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	products, err := store.LoadProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	session, err := store.LoadSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestStore_OrdersRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	order := entity.Order{
		ID:           "ORD-4821",
		CustomerName: "John Smith",
		Status:       entity.OrderStatusPending,
		Items: []entity.OrderLineItem{
			{ProductID: "1", Name: "Premium Copper Wire", Quantity: 2, Price: decimal.RequireFromString("24.99")},
		},
		Total: decimal.RequireFromString("63.98"),
	}
	require.NoError(t, store.UpsertOrder(ctx, order))

	orders, err := store.LoadOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-4821", orders[0].ID)
	assert.True(t, orders[0].Total.Equal(decimal.RequireFromString("63.98")))
}

func TestStore_UpsertReplacesExistingRecord(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	order := entity.Order{ID: "ORD-1234", Status: entity.OrderStatusPending}
	require.NoError(t, store.UpsertOrder(ctx, order))

	order.Status = entity.OrderStatusProcessing
	require.NoError(t, store.UpsertOrder(ctx, order))

	orders, err := store.LoadOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, entity.OrderStatusProcessing, orders[0].Status)
}

func TestStore_CorruptDocumentDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	bucket, err := blob.OpenBucket(ctx, "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	require.NoError(t, bucket.WriteAll(ctx, "orders.json", []byte("{not json"), nil))

	store := &store{bucket: bucket, logger: logger}

	orders, err := store.LoadOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestStore_SessionClearDeletesDocument(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.SaveSession(ctx, &entity.SupplierSession{SupplierID: "2", Email: "sales@lightingmasters.com"}))

	session, err := store.LoadSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "2", session.SupplierID)

	require.NoError(t, store.SaveSession(ctx, nil))
	// Clearing twice must stay idempotent.
	require.NoError(t, store.SaveSession(ctx, nil))

	session, err = store.LoadSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}
