package impl

import (
	"context"
	"testing"

	"voltmart/internal/domain/entity"
	"voltmart/internal/domain/repository"
	"voltmart/internal/domain/seed"
	"voltmart/internal/domain/service"
	"voltmart/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	cart      usecase.CartUsecase
	checkout  usecase.CheckoutUsecase
	store     repository.CommerceStore
	backing   repository.CommerceStore
	publisher *capturePublisher
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	store, backing := testStores()
	cart := NewCartService(testCommerceConfig(), store, testLogger())
	publisher := &capturePublisher{}

	return &checkoutFixture{
		cart:      cart,
		checkout:  NewCheckoutService(cart, store, fakeHasher{}, publisher, testLogger()),
		store:     store,
		backing:   backing,
		publisher: publisher,
	}
}

func validCheckoutInput() *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		Email:      "shopper@example.com",
		FirstName:  "Alex",
		LastName:   "Morgan",
		Address:    "12 Substation Road",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62701",
		Country:    "USA",
		Phone:      "555-0134",
	}
}

func TestCheckout_EmptyCartRejected(t *testing.T) {
	ctx := context.Background()
	fx := newCheckoutFixture(t)

	_, err := fx.checkout.Checkout(ctx, validCheckoutInput())
	assert.Error(t, err)

	// No order reached the backing store.
	stored, err := fx.backing.LoadOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestCheckout_MissingShippingFieldsRejectedBeforeMutation(t *testing.T) {
	ctx := context.Background()
	fx := newCheckoutFixture(t)

	_, err := fx.cart.AddItem(ctx, &usecase.AddItemInput{ProductID: "1", Quantity: 2})
	require.NoError(t, err)

	input := validCheckoutInput()
	input.Address = ""

	_, err = fx.checkout.Checkout(ctx, input)
	assert.Error(t, err)

	// Cart and store both untouched.
	items, err := fx.cart.Items(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	stored, err := fx.backing.LoadOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestCheckout_CreatesPendingOrderWithFrozenTotal(t *testing.T) {
	ctx := context.Background()
	fx := newCheckoutFixture(t)

	// 2 x 24.99 with 10.00 shipping and 8% tax = 63.98.
	_, err := fx.cart.AddItem(ctx, &usecase.AddItemInput{ProductID: "1", Quantity: 2})
	require.NoError(t, err)

	order, err := fx.checkout.Checkout(ctx, validCheckoutInput())
	require.NoError(t, err)

	assert.Regexp(t, `^ORD-\d{4}$`, order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Nil(t, order.SupplierID)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("63.98")), "total %s", order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "1", order.Items[0].ProductID)
	assert.Equal(t, 2, order.Items[0].Quantity)

	// The cart is handed off and cleared.
	items, err := fx.cart.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	// A later catalog price change never touches the placed order.
	catalog := NewCatalogService(fx.store, testLogger())
	_, err = catalog.UpdateProduct(ctx, "1", &usecase.ProductInput{
		Name:     "Premium Copper Wire",
		Price:    "199.99",
		Stock:    150,
		Category: "wires",
	})
	require.NoError(t, err)

	orders := NewOrderService(fx.store, nil, nil, testLogger())
	placed, err := orders.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, placed.Total.Equal(decimal.RequireFromString("63.98")), "total %s", placed.Total)
}

func TestCheckout_GuestOrderWithoutAccount(t *testing.T) {
	ctx := context.Background()
	fx := newCheckoutFixture(t)

	_, err := fx.cart.AddItem(ctx, &usecase.AddItemInput{ProductID: "1", Quantity: 1})
	require.NoError(t, err)

	order, err := fx.checkout.Checkout(ctx, validCheckoutInput())
	require.NoError(t, err)

	assert.True(t, order.GuestOrder)
	assert.Equal(t, "Guest Customer", order.CustomerName)

	// No customer record gets provisioned.
	stored, err := fx.backing.LoadCustomers(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestCheckout_CreateAccountProvisionsCustomer(t *testing.T) {
	ctx := context.Background()
	fx := newCheckoutFixture(t)

	_, err := fx.cart.AddItem(ctx, &usecase.AddItemInput{ProductID: "1", Quantity: 1})
	require.NoError(t, err)

	input := validCheckoutInput()
	input.CreateAccount = true
	input.Password = "electric-sheep"

	order, err := fx.checkout.Checkout(ctx, input)
	require.NoError(t, err)

	assert.False(t, order.GuestOrder)
	assert.Equal(t, "Alex Morgan", order.CustomerName)

	stored, err := fx.backing.LoadCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "shopper@example.com", stored[0].Email)
	assert.Equal(t, "hashed:electric-sheep", stored[0].PasswordHash)
}

func TestCheckout_CreateAccountRequiresPassword(t *testing.T) {
	ctx := context.Background()
	fx := newCheckoutFixture(t)

	_, err := fx.cart.AddItem(ctx, &usecase.AddItemInput{ProductID: "1", Quantity: 1})
	require.NoError(t, err)

	input := validCheckoutInput()
	input.CreateAccount = true

	_, err = fx.checkout.Checkout(ctx, input)
	assert.Error(t, err)
}

func TestCheckout_GeneratesDistinctOrders(t *testing.T) {
	ctx := context.Background()
	fx := newCheckoutFixture(t)

	placeOrder := func() *entity.Order {
		_, err := fx.cart.AddItem(ctx, &usecase.AddItemInput{ProductID: "2", Quantity: 1})
		require.NoError(t, err)

		order, err := fx.checkout.Checkout(ctx, validCheckoutInput())
		require.NoError(t, err)

		return order
	}

	first := placeOrder()
	second := placeOrder()
	assert.NotEqual(t, first.ID, second.ID)

	stored, err := fx.backing.LoadOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestCheckout_PublishesOrderPlacedEvent(t *testing.T) {
	ctx := context.Background()
	fx := newCheckoutFixture(t)

	_, err := fx.cart.AddItem(ctx, &usecase.AddItemInput{ProductID: "1", Quantity: 1})
	require.NoError(t, err)

	order, err := fx.checkout.Checkout(ctx, validCheckoutInput())
	require.NoError(t, err)

	events := fx.publisher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, service.OrderEventPlaced, events[0].Type)
	assert.Equal(t, order.ID, events[0].OrderID)
	assert.False(t, events[0].OccurredAt.IsZero())
}

func TestCheckout_SeedOrdersStayVisibleAlongsideNewOrder(t *testing.T) {
	ctx := context.Background()
	fx := newCheckoutFixture(t)

	_, err := fx.cart.AddItem(ctx, &usecase.AddItemInput{ProductID: "1", Quantity: 1})
	require.NoError(t, err)

	_, err = fx.checkout.Checkout(ctx, validCheckoutInput())
	require.NoError(t, err)

	all, err := fx.store.LoadOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(seed.Orders())+1)
}
