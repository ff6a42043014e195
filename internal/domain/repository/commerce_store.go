// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"

	"voltmart/internal/domain/entity"
)

// CommerceStore is the single durable persistence boundary of the engine.
// It owns four keyed record collections plus the current supplier session
// record. Save replaces a whole collection; Upsert replaces the record
// sharing the key or appends it.
//
// Guarantees: read-after-write consistency within a single process. A
// malformed persisted payload is recovered as an empty collection, never
// surfaced as an error. Concurrent writers follow last-writer-wins; no
// cross-process merge is attempted.
type CommerceStore interface {
	LoadProducts(ctx context.Context) ([]entity.Product, error)
	SaveProducts(ctx context.Context, products []entity.Product) error
	// UpsertProduct replaces the product with the same ID or appends it.
	UpsertProduct(ctx context.Context, product entity.Product) error

	LoadCustomers(ctx context.Context) ([]entity.Customer, error)
	SaveCustomers(ctx context.Context, customers []entity.Customer) error
	// UpsertCustomer replaces the customer with the same email or appends it.
	UpsertCustomer(ctx context.Context, customer entity.Customer) error

	LoadSuppliers(ctx context.Context) ([]entity.Supplier, error)
	SaveSuppliers(ctx context.Context, suppliers []entity.Supplier) error
	// UpsertSupplier replaces the supplier with the same ID or appends it.
	UpsertSupplier(ctx context.Context, supplier entity.Supplier) error

	LoadOrders(ctx context.Context) ([]entity.Order, error)
	SaveOrders(ctx context.Context, orders []entity.Order) error
	// UpsertOrder replaces the order with the same ID or appends it.
	UpsertOrder(ctx context.Context, order entity.Order) error

	// LoadSession returns the current supplier session, or nil when no
	// supplier is signed in.
	LoadSession(ctx context.Context) (*entity.SupplierSession, error)
	// SaveSession persists the current supplier session; nil clears it.
	SaveSession(ctx context.Context, session *entity.SupplierSession) error
}

// ReplaceOrAppend implements the upsert merge rule shared by every store:
// the first record whose key matches is replaced in place, otherwise the
// record is appended. The input slice is not mutated.
func ReplaceOrAppend[T any](records []T, record T, key func(T) string) []T {
	merged := make([]T, len(records), len(records)+1)
	copy(merged, records)

	target := key(record)
	for i, existing := range merged {
		if key(existing) == target {
			merged[i] = record

			return merged
		}
	}

	return append(merged, record)
}
