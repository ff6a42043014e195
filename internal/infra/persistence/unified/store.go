// Package unified layers the built-in demo seed data over a durable
// commerce store. Reads return the union of stored records and seeds,
// with stored records winning on key collisions. Writes always go to
// the backing store, so the seed data itself is never rewritten.
package unified

import (
	"context"

	"voltmart/internal/domain/entity"
	"voltmart/internal/domain/repository"
	"voltmart/internal/domain/seed"
)

type store struct {
	backing repository.CommerceStore
}

// New wraps backing with the seed overlay.
func New(backing repository.CommerceStore) repository.CommerceStore {
	return &store{backing: backing}
}

// merge returns stored records followed by the seeds whose key no stored
// record claims. Stored records keep their own order so an edited seed
// record surfaces in its stored form exactly once.
func merge[T any](stored, seeds []T, key func(T) string) []T {
	taken := make(map[string]struct{}, len(stored))
	for _, record := range stored {
		taken[key(record)] = struct{}{}
	}

	out := make([]T, 0, len(stored)+len(seeds))
	out = append(out, stored...)
	for _, record := range seeds {
		if _, ok := taken[key(record)]; ok {
			continue
		}
		out = append(out, record)
	}

	return out
}

func (s *store) LoadProducts(ctx context.Context) ([]entity.Product, error) {
	stored, err := s.backing.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}

	return merge(stored, seed.Products(), func(p entity.Product) string { return p.ID }), nil
}

func (s *store) SaveProducts(ctx context.Context, products []entity.Product) error {
	return s.backing.SaveProducts(ctx, products)
}

func (s *store) UpsertProduct(ctx context.Context, product entity.Product) error {
	return s.backing.UpsertProduct(ctx, product)
}

func (s *store) LoadCustomers(ctx context.Context) ([]entity.Customer, error) {
	stored, err := s.backing.LoadCustomers(ctx)
	if err != nil {
		return nil, err
	}

	return merge(stored, seed.Customers(), func(c entity.Customer) string { return c.Email }), nil
}

func (s *store) SaveCustomers(ctx context.Context, customers []entity.Customer) error {
	return s.backing.SaveCustomers(ctx, customers)
}

func (s *store) UpsertCustomer(ctx context.Context, customer entity.Customer) error {
	return s.backing.UpsertCustomer(ctx, customer)
}

func (s *store) LoadSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	stored, err := s.backing.LoadSuppliers(ctx)
	if err != nil {
		return nil, err
	}

	return merge(stored, seed.Suppliers(), func(sp entity.Supplier) string { return sp.ID }), nil
}

func (s *store) SaveSuppliers(ctx context.Context, suppliers []entity.Supplier) error {
	return s.backing.SaveSuppliers(ctx, suppliers)
}

func (s *store) UpsertSupplier(ctx context.Context, supplier entity.Supplier) error {
	return s.backing.UpsertSupplier(ctx, supplier)
}

func (s *store) LoadOrders(ctx context.Context) ([]entity.Order, error) {
	stored, err := s.backing.LoadOrders(ctx)
	if err != nil {
		return nil, err
	}

	return merge(stored, seed.Orders(), func(o entity.Order) string { return o.ID }), nil
}

func (s *store) SaveOrders(ctx context.Context, orders []entity.Order) error {
	return s.backing.SaveOrders(ctx, orders)
}

func (s *store) UpsertOrder(ctx context.Context, order entity.Order) error {
	return s.backing.UpsertOrder(ctx, order)
}

func (s *store) LoadSession(ctx context.Context) (*entity.SupplierSession, error) {
	return s.backing.LoadSession(ctx)
}

func (s *store) SaveSession(ctx context.Context, session *entity.SupplierSession) error {
	return s.backing.SaveSession(ctx, session)
}
