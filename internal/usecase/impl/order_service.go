package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"voltmart/internal/domain/entity"
	domainerrors "voltmart/internal/domain/errors"
	"voltmart/internal/domain/repository"
	"voltmart/internal/domain/service"
	"voltmart/internal/usecase"
)

// Supplier display labels used by the admin order table.
const (
	supplierNotAssigned = "Not assigned"
	supplierUnknown     = "Unknown supplier"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	store     repository.CommerceStore
	qr        service.QRCodeService
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	store repository.CommerceStore,
	qr service.QRCodeService,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		store:     store,
		qr:        qr,
		publisher: publisher,
		logger:    logger,
	}
}

// ListOrders returns every order in the unified collection.
func (srv *orderService) ListOrders(ctx context.Context) ([]entity.Order, error) {
	return srv.store.LoadOrders(ctx)
}

// GetOrder looks an order up by its reference.
func (srv *orderService) GetOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	orders, err := srv.store.LoadOrders(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID == orderID {
			return orders[i].Clone(), nil
		}
	}

	return nil, domainerrors.ErrOrderNotFound
}

// SetStatus applies a lifecycle transition. The transition table is
// strict: states cannot be skipped and cancelled is terminal. Rejected
// transitions leave the store untouched.
func (srv *orderService) SetStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrUnknownStatus.WithDetails(fmt.Sprintf("status %q is not recognized", status))
	}

	order, err := srv.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			fmt.Sprintf("cannot move order %s from %s to %s", orderID, order.Status, status))
	}

	order.Status = status
	if err := srv.store.UpsertOrder(ctx, *order); err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, &service.OrderEvent{
		Type:       service.OrderEventStatusChanged,
		OrderID:    order.ID,
		Status:     order.Status.String(),
		Total:      order.Total.StringFixed(2),
		OccurredAt: time.Now().UTC(),
	})

	srv.logger.Info("Order status changed",
		slog.String("orderID", order.ID),
		slog.String("status", order.Status.String()),
	)

	return order, nil
}

// AssignSupplier assigns, reassigns or unassigns a supplier. The
// operation is independent of the order's status and never changes it.
func (srv *orderService) AssignSupplier(ctx context.Context, orderID string, supplierID *string) (*entity.Order, error) {
	order, err := srv.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if supplierID != nil {
		if _, err := srv.findSupplier(ctx, *supplierID); err != nil {
			return nil, err
		}
	}

	order.SupplierID = supplierID
	if err := srv.store.UpsertOrder(ctx, *order); err != nil {
		return nil, err
	}

	event := &service.OrderEvent{
		Type:       service.OrderEventSupplierAssigned,
		OrderID:    order.ID,
		Status:     order.Status.String(),
		Total:      order.Total.StringFixed(2),
		OccurredAt: time.Now().UTC(),
	}
	if supplierID != nil {
		event.SupplierID = *supplierID
	}
	srv.publishEvent(ctx, event)

	return order, nil
}

// SupplierDisplayName resolves a supplier reference to a display label.
// It never fails; lookup problems degrade to the unknown label.
func (srv *orderService) SupplierDisplayName(ctx context.Context, supplierID *string) string {
	if supplierID == nil {
		return supplierNotAssigned
	}

	supplier, err := srv.findSupplier(ctx, *supplierID)
	if err != nil {
		return supplierUnknown
	}

	return supplier.CompanyName
}

// OrderQR renders the confirmation QR code for an existing order.
func (srv *orderService) OrderQR(ctx context.Context, orderID string) ([]byte, error) {
	order, err := srv.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return srv.qr.GenerateOrderQR(order.ID)
}

func (srv *orderService) findSupplier(ctx context.Context, supplierID string) (*entity.Supplier, error) {
	suppliers, err := srv.store.LoadSuppliers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range suppliers {
		if suppliers[i].ID == supplierID {
			return &suppliers[i], nil
		}
	}

	return nil, domainerrors.ErrSupplierNotFound
}

func (srv *orderService) publishEvent(ctx context.Context, event *service.OrderEvent) {
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
