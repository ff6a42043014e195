// Package memory provides a process-local CommerceStore. It backs unit
// tests and the default development configuration where no durable
// storage is wired.
package memory

import (
	"context"
	"sync"

	"voltmart/internal/domain/entity"
	"voltmart/internal/domain/repository"
)

type store struct {
	mu        sync.RWMutex
	products  []entity.Product
	customers []entity.Customer
	suppliers []entity.Supplier
	orders    []entity.Order
	session   *entity.SupplierSession
}

// New creates an empty in-memory commerce store.
func New() repository.CommerceStore {
	return &store{}
}

func (s *store) LoadProducts(_ context.Context) ([]entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]entity.Product(nil), s.products...), nil
}

func (s *store) SaveProducts(_ context.Context, products []entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append([]entity.Product(nil), products...)

	return nil
}

func (s *store) UpsertProduct(_ context.Context, product entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = repository.ReplaceOrAppend(s.products, product, func(p entity.Product) string { return p.ID })

	return nil
}

func (s *store) LoadCustomers(_ context.Context) ([]entity.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]entity.Customer(nil), s.customers...), nil
}

func (s *store) SaveCustomers(_ context.Context, customers []entity.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers = append([]entity.Customer(nil), customers...)

	return nil
}

func (s *store) UpsertCustomer(_ context.Context, customer entity.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers = repository.ReplaceOrAppend(s.customers, customer, func(c entity.Customer) string { return c.Email })

	return nil
}

func (s *store) LoadSuppliers(_ context.Context) ([]entity.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]entity.Supplier(nil), s.suppliers...), nil
}

func (s *store) SaveSuppliers(_ context.Context, suppliers []entity.Supplier) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.suppliers = append([]entity.Supplier(nil), suppliers...)

	return nil
}

func (s *store) UpsertSupplier(_ context.Context, supplier entity.Supplier) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.suppliers = repository.ReplaceOrAppend(s.suppliers, supplier, func(sp entity.Supplier) string { return sp.ID })

	return nil
}

func (s *store) LoadOrders(_ context.Context) ([]entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]entity.Order, 0, len(s.orders))
	for i := range s.orders {
		orders = append(orders, *s.orders[i].Clone())
	}

	return orders, nil
}

func (s *store) SaveOrders(_ context.Context, orders []entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cloned := make([]entity.Order, 0, len(orders))
	for i := range orders {
		cloned = append(cloned, *orders[i].Clone())
	}
	s.orders = cloned

	return nil
}

func (s *store) UpsertOrder(_ context.Context, order entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = repository.ReplaceOrAppend(s.orders, *order.Clone(), func(o entity.Order) string { return o.ID })

	return nil
}

func (s *store) LoadSession(_ context.Context) (*entity.SupplierSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return nil, nil
	}
	session := *s.session

	return &session, nil
}

func (s *store) SaveSession(_ context.Context, session *entity.SupplierSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session == nil {
		s.session = nil

		return nil
	}
	cloned := *session
	s.session = &cloned

	return nil
}
