package usecase

import (
	"context"

	"voltmart/internal/domain/entity"
)

// OrderUsecase enforces the order status state machine and supplier
// assignment rules. Reads see the unified collection; writes land in
// the backing store only, so the built-in demo records stay pristine.
type OrderUsecase interface {
	// ListOrders returns every order in the unified collection.
	ListOrders(ctx context.Context) ([]entity.Order, error)

	// GetOrder looks an order up by its reference.
	GetOrder(ctx context.Context, orderID string) (*entity.Order, error)

	// SetStatus applies a status transition. Illegal transitions are
	// rejected without touching the store.
	SetStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error)

	// AssignSupplier assigns, reassigns or (with nil) unassigns a
	// supplier. It never changes the order's status.
	AssignSupplier(ctx context.Context, orderID string, supplierID *string) (*entity.Order, error)

	// SupplierDisplayName resolves a supplier reference to a label for
	// the admin views. It never fails: nil yields "Not assigned" and an
	// unresolvable id yields "Unknown supplier".
	SupplierDisplayName(ctx context.Context, supplierID *string) string

	// OrderQR renders the confirmation QR code for an order.
	OrderQR(ctx context.Context, orderID string) ([]byte, error)
}
