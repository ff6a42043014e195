package handler

import (
	"log/slog"
	"net/http"

	"voltmart/internal/delivery/http/middleware"
	"voltmart/internal/delivery/http/response"
	"voltmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler holds dependencies for cross-role projection handlers.
type DashboardHandler struct {
	projection usecase.ProjectionUsecase
	logger     *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(projection usecase.ProjectionUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		projection: projection,
		logger:     logger,
	}
}

// DashboardStats returns the admin dashboard aggregates.
func (h *DashboardHandler) DashboardStats(c echo.Context) error {
	stats, err := h.projection.DashboardStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// RecentOrders returns the newest orders, decorated for display.
func (h *DashboardHandler) RecentOrders(c echo.Context) error {
	orders, err := h.projection.RecentOrders(c.Request().Context(), parseLimit(c, "limit"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// CustomerSummaries returns the per-customer aggregates for the admin view.
func (h *DashboardHandler) CustomerSummaries(c echo.Context) error {
	summaries, err := h.projection.CustomerSummaries(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summaries, "")
}

// SupplierQueue returns the orders assigned to the authenticated supplier.
func (h *DashboardHandler) SupplierQueue(c echo.Context) error {
	supplierID, ok := c.Get(middleware.ContextKeySupplierID).(string)
	if !ok || supplierID == "" {
		return response.Unauthorized(c, "UNAUTHORIZED", "Supplier session required")
	}

	orders, err := h.projection.SupplierQueue(c.Request().Context(), supplierID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}
