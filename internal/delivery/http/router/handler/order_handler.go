package handler

import (
	"log/slog"
	"net/http"

	"voltmart/internal/delivery/http/middleware"
	"voltmart/internal/delivery/http/response"
	"voltmart/internal/domain/entity"
	domainerrors "voltmart/internal/domain/errors"
	"voltmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	orders usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(orders usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		logger: logger,
	}
}

// ListOrders returns every order in the unified collection.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orders.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// GetOrder returns a single order by reference.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.orders.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// SetStatus applies a lifecycle transition to an order.
func (h *OrderHandler) SetStatus(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	order, err := h.orders.SetStatus(c.Request().Context(), c.Param("id"), entity.OrderStatus(body.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}

// AssignSupplier assigns or (with a null supplierId) unassigns a supplier.
func (h *OrderHandler) AssignSupplier(c echo.Context) error {
	var body struct {
		SupplierID *string `json:"supplierId"`
	}
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supplier assignment input")
	}

	order, err := h.orders.AssignSupplier(c.Request().Context(), c.Param("id"), body.SupplierID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Supplier assignment updated")
}

// SupplierSetStatus moves one of the authenticated supplier's own
// assigned orders forward. Suppliers may not touch unassigned orders,
// orders assigned to someone else, or cancel anything.
func (h *OrderHandler) SupplierSetStatus(c echo.Context) error {
	supplierID, ok := c.Get(middleware.ContextKeySupplierID).(string)
	if !ok || supplierID == "" {
		return response.Unauthorized(c, "UNAUTHORIZED", "Supplier session required")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	ctx := c.Request().Context()

	order, err := h.orders.GetOrder(ctx, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}
	if order.SupplierID == nil || *order.SupplierID != supplierID {
		return errors.WithStack(domainerrors.ErrForbidden.WithDetails("order is not assigned to this supplier"))
	}

	status := entity.OrderStatus(body.Status)
	if status == entity.OrderStatusCancelled {
		return errors.WithStack(domainerrors.ErrForbidden.WithDetails("suppliers cannot cancel orders"))
	}

	updated, err := h.orders.SetStatus(ctx, order.ID, status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Order status updated")
}

// OrderQR streams the confirmation QR code as a PNG image.
func (h *OrderHandler) OrderQR(c echo.Context) error {
	png, err := h.orders.OrderQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
