package impl

import (
	"context"
	"log/slog"
	"sort"

	"voltmart/config"
	"voltmart/internal/domain/entity"
	"voltmart/internal/domain/repository"
	"voltmart/internal/usecase"

	"github.com/shopspring/decimal"
)

const defaultRecentOrdersLimit = 5

// projectionService implements the ProjectionUsecase interface. Every
// method recomputes from the unified collections; nothing is cached.
type projectionService struct {
	store             repository.CommerceStore
	recentOrdersLimit int
	logger            *slog.Logger
}

// NewProjectionService is the constructor for projectionService.
func NewProjectionService(
	cfg *config.Config,
	store repository.CommerceStore,
	logger *slog.Logger,
) usecase.ProjectionUsecase {
	limit := defaultRecentOrdersLimit
	if cfg != nil && cfg.Commerce != nil && cfg.Commerce.RecentOrdersLimit > 0 {
		limit = cfg.Commerce.RecentOrdersLimit
	}

	return &projectionService{
		store:             store,
		recentOrdersLimit: limit,
		logger:            logger,
	}
}

// CustomerSummaries recomputes orderCount and totalSpent for every
// customer by scanning the order collection on email.
func (srv *projectionService) CustomerSummaries(ctx context.Context) ([]entity.CustomerSummary, error) {
	customers, err := srv.store.LoadCustomers(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := srv.store.LoadOrders(ctx)
	if err != nil {
		return nil, err
	}

	type aggregate struct {
		count int
		spent decimal.Decimal
	}
	byEmail := make(map[string]aggregate, len(customers))
	for i := range orders {
		agg := byEmail[orders[i].Email]
		agg.count++
		agg.spent = agg.spent.Add(orders[i].Total)
		byEmail[orders[i].Email] = agg
	}

	summaries := make([]entity.CustomerSummary, 0, len(customers))
	for _, customer := range customers {
		agg := byEmail[customer.Email]
		summaries = append(summaries, entity.CustomerSummary{
			Customer:   customer,
			OrderCount: agg.count,
			TotalSpent: agg.spent,
		})
	}

	return summaries, nil
}

// RecentOrders returns the newest orders first, mapped into the display
// vocabulary and decorated with supplier labels.
func (srv *projectionService) RecentOrders(ctx context.Context, limit int) ([]usecase.OrderView, error) {
	if limit <= 0 {
		limit = srv.recentOrdersLimit
	}

	views, err := srv.orderViews(ctx, nil)
	if err != nil {
		return nil, err
	}

	if len(views) > limit {
		views = views[:limit]
	}

	return views, nil
}

// SupplierQueue returns the orders assigned to one supplier, newest first.
func (srv *projectionService) SupplierQueue(ctx context.Context, supplierID string) ([]usecase.OrderView, error) {
	return srv.orderViews(ctx, func(o *entity.Order) bool {
		return o.SupplierID != nil && *o.SupplierID == supplierID
	})
}

// DashboardStats aggregates the admin dashboard headline numbers.
// Cancelled orders count toward the order total but not toward revenue.
func (srv *projectionService) DashboardStats(ctx context.Context) (*usecase.DashboardStats, error) {
	orders, err := srv.store.LoadOrders(ctx)
	if err != nil {
		return nil, err
	}

	customers, err := srv.store.LoadCustomers(ctx)
	if err != nil {
		return nil, err
	}

	products, err := srv.store.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}

	stats := &usecase.DashboardStats{
		TotalOrders:    len(orders),
		TotalCustomers: len(customers),
		TotalProducts:  len(products),
		TotalRevenue:   decimal.Zero,
	}
	for i := range orders {
		if orders[i].Status == entity.OrderStatusPending {
			stats.PendingOrders++
		}
		if orders[i].Status != entity.OrderStatusCancelled {
			stats.TotalRevenue = stats.TotalRevenue.Add(orders[i].Total)
		}
	}

	return stats, nil
}

// orderViews loads, optionally filters, sorts (newest first) and
// decorates the unified order collection.
func (srv *projectionService) orderViews(ctx context.Context, keep func(*entity.Order) bool) ([]usecase.OrderView, error) {
	orders, err := srv.store.LoadOrders(ctx)
	if err != nil {
		return nil, err
	}

	suppliers, err := srv.store.LoadSuppliers(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(suppliers))
	for i := range suppliers {
		names[suppliers[i].ID] = suppliers[i].CompanyName
	}

	views := make([]usecase.OrderView, 0, len(orders))
	for i := range orders {
		if keep != nil && !keep(&orders[i]) {
			continue
		}

		views = append(views, usecase.OrderView{
			Order:         orders[i],
			DisplayStatus: orders[i].Status.Display(),
			SupplierName:  supplierLabel(orders[i].SupplierID, names),
		})
	}

	sort.SliceStable(views, func(a, b int) bool {
		return views[a].Date.After(views[b].Date)
	})

	return views, nil
}

func supplierLabel(supplierID *string, names map[string]string) string {
	if supplierID == nil {
		return supplierNotAssigned
	}
	if name, ok := names[*supplierID]; ok {
		return name
	}

	return supplierUnknown
}
