package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"voltmart/internal/domain/entity"
	domainerrors "voltmart/internal/domain/errors"
	"voltmart/internal/domain/repository"
	"voltmart/internal/domain/service"
	"voltmart/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// orderIDAttempts bounds the search for an unused order reference.
const orderIDAttempts = 100

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	cart      usecase.CartUsecase
	store     repository.CommerceStore
	hasher    service.PasswordHasher
	publisher service.EventPublisher
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	cart usecase.CartUsecase,
	store repository.CommerceStore,
	hasher service.PasswordHasher,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		cart:      cart,
		store:     store,
		hasher:    hasher,
		publisher: publisher,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}

// Checkout freezes the cart into a new pending order. All validation
// happens before any store mutation, so a rejected submission leaves
// both the cart and the store untouched.
func (srv *checkoutService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*entity.Order, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	items, err := srv.cart.Items(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	totals, err := srv.cart.Totals(ctx)
	if err != nil {
		return nil, err
	}

	orderID, err := srv.generateOrderID(ctx)
	if err != nil {
		return nil, err
	}

	lineItems := make([]entity.OrderLineItem, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, entity.OrderLineItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	guest := !input.CreateAccount
	customerName := strings.TrimSpace(input.FirstName + " " + input.LastName)
	if guest {
		customerName = "Guest Customer"
	}

	order := entity.Order{
		ID:           orderID,
		CustomerName: customerName,
		Email:        input.Email,
		Date:         time.Now().UTC(),
		Items:        lineItems,
		Status:       entity.OrderStatusPending,
		Total:        totals.Total,
		ShippingAddress: entity.ShippingAddress{
			FirstName:  input.FirstName,
			LastName:   input.LastName,
			Address:    input.Address,
			City:       input.City,
			State:      input.State,
			PostalCode: input.PostalCode,
			Country:    input.Country,
			Phone:      input.Phone,
		},
		SupplierID: nil,
		GuestOrder: guest,
	}

	if err := srv.store.UpsertOrder(ctx, order); err != nil {
		return nil, err
	}

	if input.CreateAccount {
		if err := srv.provisionCustomer(ctx, input); err != nil {
			// The order is already placed; losing the account record is
			// recoverable, so report it without failing the checkout.
			srv.logger.Warn("Failed to provision customer account",
				slog.String("email", input.Email),
				slog.Any("error", err),
			)
		}
	}

	if err := srv.cart.Clear(ctx); err != nil {
		srv.logger.Warn("Failed to clear cart after checkout",
			slog.String("orderID", order.ID),
			slog.Any("error", err),
		)
	}

	srv.publishEvent(ctx, &service.OrderEvent{
		Type:       service.OrderEventPlaced,
		OrderID:    order.ID,
		Status:     order.Status.String(),
		Total:      order.Total.StringFixed(2),
		OccurredAt: time.Now().UTC(),
	})

	srv.logger.Info("Order placed",
		slog.String("orderID", order.ID),
		slog.String("total", order.Total.StringFixed(2)),
		slog.Bool("guest", order.GuestOrder),
	)

	return &order, nil
}

// generateOrderID draws ORD-#### references until one is unused.
func (srv *checkoutService) generateOrderID(ctx context.Context) (string, error) {
	orders, err := srv.store.LoadOrders(ctx)
	if err != nil {
		return "", err
	}

	taken := make(map[string]struct{}, len(orders))
	for i := range orders {
		taken[orders[i].ID] = struct{}{}
	}

	for range orderIDAttempts {
		candidate := fmt.Sprintf("ORD-%04d", rand.IntN(10000))
		if _, ok := taken[candidate]; !ok {
			return candidate, nil
		}
	}

	return "", domainerrors.ErrInternalError.WithDetails("order reference space exhausted")
}

func (srv *checkoutService) provisionCustomer(ctx context.Context, input *usecase.CheckoutInput) error {
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return err
	}

	return srv.store.UpsertCustomer(ctx, entity.Customer{
		ID:           uuid.NewString(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		PasswordHash: hash,
		RegisteredAt: time.Now().UTC(),
		Tags:         []string{"new"},
	})
}

// publishEvent delivers the event best-effort. Order placement must not
// fail because a broker is down.
func (srv *checkoutService) publishEvent(ctx context.Context, event *service.OrderEvent) {
	if srv.publisher == nil {
		return
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish order event",
			slog.String("orderID", event.OrderID),
			slog.String("eventType", event.Type),
			slog.Any("error", err),
		)
	}
}
