package impl

import (
	"context"
	"testing"
	"time"

	"voltmart/internal/domain/entity"
	"voltmart/internal/domain/repository"
	"voltmart/internal/domain/seed"
	"voltmart/internal/domain/service"
	"voltmart/internal/infra/qrcode"
	"voltmart/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	orders    usecase.OrderUsecase
	store     repository.CommerceStore
	backing   repository.CommerceStore
	publisher *capturePublisher
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	store, backing := testStores()
	publisher := &capturePublisher{}

	return &orderFixture{
		orders:    NewOrderService(store, nil, publisher, testLogger()),
		store:     store,
		backing:   backing,
		publisher: publisher,
	}
}

func seedOrder(t *testing.T, fx *orderFixture, id string, status entity.OrderStatus) {
	t.Helper()

	require.NoError(t, fx.backing.UpsertOrder(context.Background(), entity.Order{
		ID:     id,
		Email:  "shopper@example.com",
		Date:   time.Now().UTC(),
		Status: status,
		Total:  decimal.RequireFromString("63.98"),
	}))
}

func TestSetStatus_LegalTransitions(t *testing.T) {
	tests := []struct {
		name string
		from entity.OrderStatus
		to   entity.OrderStatus
	}{
		{"pending to processing", entity.OrderStatusPending, entity.OrderStatusProcessing},
		{"processing to shipped", entity.OrderStatusProcessing, entity.OrderStatusShipped},
		{"shipped to completed", entity.OrderStatusShipped, entity.OrderStatusCompleted},
		{"pending to cancelled", entity.OrderStatusPending, entity.OrderStatusCancelled},
		{"processing to cancelled", entity.OrderStatusProcessing, entity.OrderStatusCancelled},
		{"shipped to cancelled", entity.OrderStatusShipped, entity.OrderStatusCancelled},
		{"completed reopened to processing", entity.OrderStatusCompleted, entity.OrderStatusProcessing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			fx := newOrderFixture(t)
			seedOrder(t, fx, "ORD-7001", tt.from)

			order, err := fx.orders.SetStatus(ctx, "ORD-7001", tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.to, order.Status)
		})
	}
}

func TestSetStatus_IllegalTransitionsRejected(t *testing.T) {
	tests := []struct {
		name string
		from entity.OrderStatus
		to   entity.OrderStatus
	}{
		{"pending cannot skip to shipped", entity.OrderStatusPending, entity.OrderStatusShipped},
		{"pending cannot skip to completed", entity.OrderStatusPending, entity.OrderStatusCompleted},
		{"processing cannot skip to completed", entity.OrderStatusProcessing, entity.OrderStatusCompleted},
		{"shipped cannot regress to pending", entity.OrderStatusShipped, entity.OrderStatusPending},
		{"completed cannot cancel", entity.OrderStatusCompleted, entity.OrderStatusCancelled},
		{"cancelled is terminal", entity.OrderStatusCancelled, entity.OrderStatusPending},
		{"cancelled cannot reopen", entity.OrderStatusCancelled, entity.OrderStatusProcessing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			fx := newOrderFixture(t)
			seedOrder(t, fx, "ORD-7002", tt.from)

			_, err := fx.orders.SetStatus(ctx, "ORD-7002", tt.to)
			require.Error(t, err)

			// Rejections leave the stored status untouched.
			order, err := fx.orders.GetOrder(ctx, "ORD-7002")
			require.NoError(t, err)
			assert.Equal(t, tt.from, order.Status)
		})
	}
}

func TestSetStatus_UnknownStatusRejected(t *testing.T) {
	ctx := context.Background()
	fx := newOrderFixture(t)
	seedOrder(t, fx, "ORD-7003", entity.OrderStatusPending)

	_, err := fx.orders.SetStatus(ctx, "ORD-7003", entity.OrderStatus("archived"))
	assert.Error(t, err)
}

func TestSetStatus_UnknownOrderRejected(t *testing.T) {
	ctx := context.Background()
	fx := newOrderFixture(t)

	_, err := fx.orders.SetStatus(ctx, "ORD-0000", entity.OrderStatusProcessing)
	assert.Error(t, err)

	stored, err := fx.backing.LoadOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestSetStatus_SeedOrderWritesToBackingOnly(t *testing.T) {
	ctx := context.Background()
	fx := newOrderFixture(t)

	// ORD-1237 ships with the demo data in pending state.
	order, err := fx.orders.SetStatus(ctx, "ORD-1237", entity.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, order.Status)

	stored, err := fx.backing.LoadOrders(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "ORD-1237", stored[0].ID)

	// The demo templates themselves stay pristine.
	for _, template := range seed.Orders() {
		if template.ID == "ORD-1237" {
			assert.Equal(t, entity.OrderStatusPending, template.Status)
		}
	}
}

func TestSetStatus_PublishesStatusChangedEvent(t *testing.T) {
	ctx := context.Background()
	fx := newOrderFixture(t)
	seedOrder(t, fx, "ORD-7004", entity.OrderStatusPending)

	_, err := fx.orders.SetStatus(ctx, "ORD-7004", entity.OrderStatusProcessing)
	require.NoError(t, err)

	events := fx.publisher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, service.OrderEventStatusChanged, events[0].Type)
	assert.Equal(t, "processing", events[0].Status)
}

func TestAssignSupplier_IndependentOfStatus(t *testing.T) {
	ctx := context.Background()
	fx := newOrderFixture(t)
	seedOrder(t, fx, "ORD-7005", entity.OrderStatusCancelled)

	supplierID := "1"
	order, err := fx.orders.AssignSupplier(ctx, "ORD-7005", &supplierID)
	require.NoError(t, err)

	require.NotNil(t, order.SupplierID)
	assert.Equal(t, "1", *order.SupplierID)
	// Assignment never changes the status.
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
}

func TestAssignSupplier_UnknownSupplierRejected(t *testing.T) {
	ctx := context.Background()
	fx := newOrderFixture(t)
	seedOrder(t, fx, "ORD-7006", entity.OrderStatusPending)

	supplierID := "no-such-supplier"
	_, err := fx.orders.AssignSupplier(ctx, "ORD-7006", &supplierID)
	assert.Error(t, err)

	order, err := fx.orders.GetOrder(ctx, "ORD-7006")
	require.NoError(t, err)
	assert.Nil(t, order.SupplierID)
}

func TestAssignSupplier_NilUnassigns(t *testing.T) {
	ctx := context.Background()
	fx := newOrderFixture(t)
	seedOrder(t, fx, "ORD-7007", entity.OrderStatusPending)

	supplierID := "2"
	_, err := fx.orders.AssignSupplier(ctx, "ORD-7007", &supplierID)
	require.NoError(t, err)

	order, err := fx.orders.AssignSupplier(ctx, "ORD-7007", nil)
	require.NoError(t, err)
	assert.Nil(t, order.SupplierID)

	assert.Equal(t, "Not assigned", fx.orders.SupplierDisplayName(ctx, order.SupplierID))
}

func TestSupplierDisplayName(t *testing.T) {
	ctx := context.Background()
	fx := newOrderFixture(t)

	known := "1"
	unknown := "no-such-supplier"

	assert.Equal(t, "Not assigned", fx.orders.SupplierDisplayName(ctx, nil))
	assert.Equal(t, "ElectroSupply Co.", fx.orders.SupplierDisplayName(ctx, &known))
	assert.Equal(t, "Unknown supplier", fx.orders.SupplierDisplayName(ctx, &unknown))
}

func TestOrderQR(t *testing.T) {
	ctx := context.Background()
	store, _ := testStores()
	orders := NewOrderService(store, qrcode.NewQRCodeService(128, "M"), nil, testLogger())

	png, err := orders.OrderQR(ctx, "ORD-1234")
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	_, err = orders.OrderQR(ctx, "ORD-0000")
	assert.Error(t, err)
}

func TestListOrders_UnifiedCollection(t *testing.T) {
	ctx := context.Background()
	fx := newOrderFixture(t)
	seedOrder(t, fx, "ORD-7008", entity.OrderStatusPending)

	orders, err := fx.orders.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, len(seed.Orders())+1)
}
