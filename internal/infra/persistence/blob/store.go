// Package blob persists commerce collections as JSON documents in a
// gocloud.dev bucket. Each collection lives under its own key, so a
// local fileblob bucket mirrors the on-disk layout of the demo data.
package blob

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"voltmart/internal/domain/constants"
	"voltmart/internal/domain/entity"
	"voltmart/internal/domain/repository"
	"voltmart/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

type store struct {
	bucket *blob.Bucket
	logger *slog.Logger

	// Serializes read-modify-write cycles for upserts. The bucket has no
	// conditional writes, so concurrent upserts would otherwise race.
	mu sync.Mutex
}

// New creates a commerce store backed by the bucket at bucketURL,
// e.g. "file:///var/lib/voltmart" or "mem://".
func New(ctx context.Context, bucketURL string, logger *slog.Logger) (repository.CommerceStore, func() error, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	return &store{bucket: bucket, logger: logger}, bucket.Close, nil
}

func blobKey(collection string) string {
	return collection + ".json"
}

// loadCollection reads one collection document. A missing key or a
// document that fails to decode both yield the zero value, so a fresh
// or damaged bucket degrades to the seed-only view instead of failing.
func loadCollection[T any](ctx context.Context, s *store, collection string) (T, error) {
	var out T

	data, err := s.bucket.ReadAll(ctx, blobKey(collection))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return out, nil
		}

		return out, errors.Wrapf(err, "read collection %s", collection)
	}

	if err := json.Unmarshal(data, &out); err != nil {
		s.logger.Warn("discarding corrupt collection document",
			slog.String("collection", collection),
			slog.Any("error", err))

		var zero T

		return zero, nil
	}

	return out, nil
}

func saveCollection[T any](ctx context.Context, s *store, collection string, records T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return errors.Wrapf(err, "marshal collection %s", collection)
	}

	if err := s.bucket.WriteAll(ctx, blobKey(collection), data, nil); err != nil {
		return errors.Wrapf(err, "write collection %s", collection)
	}

	return nil
}

func upsertRecord[T any](ctx context.Context, s *store, collection string, record T, key func(T) string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := loadCollection[[]T](ctx, s, collection)
	if err != nil {
		return err
	}

	return saveCollection(ctx, s, collection, repository.ReplaceOrAppend(records, record, key))
}

func (s *store) LoadProducts(ctx context.Context) ([]entity.Product, error) {
	return loadCollection[[]entity.Product](ctx, s, constants.CollectionProducts)
}

func (s *store) SaveProducts(ctx context.Context, products []entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return saveCollection(ctx, s, constants.CollectionProducts, products)
}

func (s *store) UpsertProduct(ctx context.Context, product entity.Product) error {
	return upsertRecord(ctx, s, constants.CollectionProducts, product, func(p entity.Product) string { return p.ID })
}

func (s *store) LoadCustomers(ctx context.Context) ([]entity.Customer, error) {
	return loadCollection[[]entity.Customer](ctx, s, constants.CollectionCustomers)
}

func (s *store) SaveCustomers(ctx context.Context, customers []entity.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return saveCollection(ctx, s, constants.CollectionCustomers, customers)
}

func (s *store) UpsertCustomer(ctx context.Context, customer entity.Customer) error {
	return upsertRecord(ctx, s, constants.CollectionCustomers, customer, func(c entity.Customer) string { return c.Email })
}

func (s *store) LoadSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	return loadCollection[[]entity.Supplier](ctx, s, constants.CollectionSuppliers)
}

func (s *store) SaveSuppliers(ctx context.Context, suppliers []entity.Supplier) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return saveCollection(ctx, s, constants.CollectionSuppliers, suppliers)
}

func (s *store) UpsertSupplier(ctx context.Context, supplier entity.Supplier) error {
	return upsertRecord(ctx, s, constants.CollectionSuppliers, supplier, func(sp entity.Supplier) string { return sp.ID })
}

func (s *store) LoadOrders(ctx context.Context) ([]entity.Order, error) {
	return loadCollection[[]entity.Order](ctx, s, constants.CollectionOrders)
}

func (s *store) SaveOrders(ctx context.Context, orders []entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return saveCollection(ctx, s, constants.CollectionOrders, orders)
}

func (s *store) UpsertOrder(ctx context.Context, order entity.Order) error {
	return upsertRecord(ctx, s, constants.CollectionOrders, order, func(o entity.Order) string { return o.ID })
}

func (s *store) LoadSession(ctx context.Context) (*entity.SupplierSession, error) {
	return loadCollection[*entity.SupplierSession](ctx, s, constants.CollectionSession)
}

func (s *store) SaveSession(ctx context.Context, session *entity.SupplierSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session == nil {
		if err := s.bucket.Delete(ctx, blobKey(constants.CollectionSession)); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
			return errors.Wrap(err, "clear session")
		}

		return nil
	}

	return saveCollection(ctx, s, constants.CollectionSession, session)
}
