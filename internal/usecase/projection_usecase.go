package usecase

import (
	"context"

	"voltmart/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ProjectionUsecase computes the read-side shapes each role view needs.
// Every projection is a pure function of the unified collections; no
// derived value is ever persisted.
type ProjectionUsecase interface {
	// CustomerSummaries returns every customer with orderCount and
	// totalSpent recomputed from the order collection.
	CustomerSummaries(ctx context.Context) ([]entity.CustomerSummary, error)

	// RecentOrders returns the most recent orders, newest first, with
	// statuses mapped into the display vocabulary. A non-positive limit
	// falls back to the configured default.
	RecentOrders(ctx context.Context, limit int) ([]OrderView, error)

	// SupplierQueue returns the orders assigned to one supplier.
	SupplierQueue(ctx context.Context, supplierID string) ([]OrderView, error)

	// DashboardStats aggregates the headline numbers for the admin
	// dashboard.
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}

// --- Output DTOs ---

// OrderView is an order decorated for presentation.
type OrderView struct {
	entity.Order

	DisplayStatus entity.DisplayStatus `json:"displayStatus"`
	SupplierName  string               `json:"supplierName"`
}

// DashboardStats holds the admin dashboard headline numbers.
type DashboardStats struct {
	TotalOrders    int             `json:"totalOrders"`
	PendingOrders  int             `json:"pendingOrders"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalCustomers int             `json:"totalCustomers"`
	TotalProducts  int             `json:"totalProducts"`
}
