package gormstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"voltmart/internal/domain/constants"
	"voltmart/internal/domain/entity"
	domainerrors "voltmart/internal/domain/errors"
	"voltmart/internal/domain/repository"
	"voltmart/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionRecordKey is the fixed key of the single supplier session row.
const sessionRecordKey = "current"

// commerceRecord is one stored record of a collection. The payload keeps
// the full JSON document, so every collection shares a single table.
type commerceRecord struct {
	Collection string `gorm:"column:collection;primaryKey"`
	RecordKey  string `gorm:"column:record_key;primaryKey"`
	Payload    []byte `gorm:"column:payload;type:jsonb;not null"`
}

func (commerceRecord) TableName() string {
	return "commerce_records"
}

type store struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewStore creates a PostgreSQL-backed commerce store.
func NewStore(db *gorm.DB, logger *slog.Logger) repository.CommerceStore {
	return &store{db: db, logger: logger}
}

// loadCollection reads every record of one collection. A payload that no
// longer decodes is logged and skipped, never surfaced to the caller.
func loadCollection[T any](ctx context.Context, s *store, collection string) ([]T, error) {
	var records []commerceRecord
	if err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("record_key").
		Find(&records).Error; err != nil {
		return nil, domainerrors.NewStorageExecuteError(err, "failed to load collection "+collection)
	}

	out := make([]T, 0, len(records))
	for _, record := range records {
		var decoded T
		if err := json.Unmarshal(record.Payload, &decoded); err != nil {
			s.logger.Warn("Discarding malformed stored record",
				slog.String("collection", collection),
				slog.String("recordKey", record.RecordKey),
				slog.Any("error", err),
			)

			continue
		}
		out = append(out, decoded)
	}

	return out, nil
}

// saveCollection replaces the whole collection atomically.
func saveCollection[T any](ctx context.Context, db *gorm.DB, collection string, items []T, key func(T) string) error {
	records := make([]commerceRecord, 0, len(items))
	for _, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			return errors.Wrapf(err, "encode record for collection %s", collection)
		}
		records = append(records, commerceRecord{
			Collection: collection,
			RecordKey:  key(item),
			Payload:    payload,
		})
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection = ?", collection).Delete(&commerceRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}

		return tx.Create(&records).Error
	})
	if err != nil {
		return domainerrors.NewStorageExecuteError(err, "failed to replace collection "+collection)
	}

	return nil
}

func upsertRecord[T any](ctx context.Context, db *gorm.DB, collection string, item T, key func(T) string) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return errors.Wrapf(err, "encode record for collection %s", collection)
	}

	record := commerceRecord{
		Collection: collection,
		RecordKey:  key(item),
		Payload:    payload,
	}

	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection"}, {Name: "record_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload"}),
		}).
		Create(&record).Error; err != nil {
		return domainerrors.NewStorageExecuteError(err, "failed to upsert record in "+collection)
	}

	return nil
}

func productKey(p entity.Product) string   { return p.ID }
func customerKey(c entity.Customer) string { return c.Email }
func supplierKey(s entity.Supplier) string { return s.ID }
func orderKey(o entity.Order) string       { return o.ID }

func (s *store) LoadProducts(ctx context.Context) ([]entity.Product, error) {
	return loadCollection[entity.Product](ctx, s, constants.CollectionProducts)
}

func (s *store) SaveProducts(ctx context.Context, products []entity.Product) error {
	return saveCollection(ctx, s.db, constants.CollectionProducts, products, productKey)
}

func (s *store) UpsertProduct(ctx context.Context, product entity.Product) error {
	return upsertRecord(ctx, s.db, constants.CollectionProducts, product, productKey)
}

func (s *store) LoadCustomers(ctx context.Context) ([]entity.Customer, error) {
	return loadCollection[entity.Customer](ctx, s, constants.CollectionCustomers)
}

func (s *store) SaveCustomers(ctx context.Context, customers []entity.Customer) error {
	return saveCollection(ctx, s.db, constants.CollectionCustomers, customers, customerKey)
}

func (s *store) UpsertCustomer(ctx context.Context, customer entity.Customer) error {
	return upsertRecord(ctx, s.db, constants.CollectionCustomers, customer, customerKey)
}

func (s *store) LoadSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	return loadCollection[entity.Supplier](ctx, s, constants.CollectionSuppliers)
}

func (s *store) SaveSuppliers(ctx context.Context, suppliers []entity.Supplier) error {
	return saveCollection(ctx, s.db, constants.CollectionSuppliers, suppliers, supplierKey)
}

func (s *store) UpsertSupplier(ctx context.Context, supplier entity.Supplier) error {
	return upsertRecord(ctx, s.db, constants.CollectionSuppliers, supplier, supplierKey)
}

func (s *store) LoadOrders(ctx context.Context) ([]entity.Order, error) {
	return loadCollection[entity.Order](ctx, s, constants.CollectionOrders)
}

func (s *store) SaveOrders(ctx context.Context, orders []entity.Order) error {
	return saveCollection(ctx, s.db, constants.CollectionOrders, orders, orderKey)
}

func (s *store) UpsertOrder(ctx context.Context, order entity.Order) error {
	return upsertRecord(ctx, s.db, constants.CollectionOrders, order, orderKey)
}

func (s *store) LoadSession(ctx context.Context) (*entity.SupplierSession, error) {
	var record commerceRecord
	err := s.db.WithContext(ctx).
		Where("collection = ? AND record_key = ?", constants.CollectionSession, sessionRecordKey).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewStorageExecuteError(err, "failed to load supplier session")
	}

	var session entity.SupplierSession
	if err := json.Unmarshal(record.Payload, &session); err != nil {
		s.logger.Warn("Discarding malformed supplier session record",
			slog.Any("error", err),
		)

		return nil, nil
	}

	return &session, nil
}

func (s *store) SaveSession(ctx context.Context, session *entity.SupplierSession) error {
	if session == nil {
		if err := s.db.WithContext(ctx).
			Where("collection = ? AND record_key = ?", constants.CollectionSession, sessionRecordKey).
			Delete(&commerceRecord{}).Error; err != nil {
			return domainerrors.NewStorageExecuteError(err, "failed to clear supplier session")
		}

		return nil
	}

	return upsertRecord(ctx, s.db, constants.CollectionSession, *session,
		func(entity.SupplierSession) string { return sessionRecordKey })
}
