package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"voltmart/config"
	"voltmart/internal/domain/repository"
	"voltmart/internal/domain/service"
	"voltmart/internal/infra/persistence/memory"
	"voltmart/internal/infra/persistence/unified"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCommerceConfig() *config.Config {
	return &config.Config{
		Commerce: &config.CommerceConfig{
			ShippingFlatFee:       10.00,
			FreeShippingThreshold: 100.00,
			TaxRate:               0.08,
			RecentOrdersLimit:     5,
		},
	}
}

// testStores returns the unified store plus its backing store, so tests
// can assert what actually got persisted.
func testStores() (repository.CommerceStore, repository.CommerceStore) {
	backing := memory.New()

	return unified.New(backing), backing
}

// newEmptyBacking returns a bare store with no seed overlay, for tests
// that need full control over the visible records.
func newEmptyBacking() repository.CommerceStore {
	return memory.New()
}

// fakeHasher is a transparent PasswordHasher for tests.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// capturePublisher records published events for assertions.
type capturePublisher struct {
	mu     sync.Mutex
	events []*service.OrderEvent
}

func (p *capturePublisher) PublishOrderEvent(_ context.Context, event *service.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return nil
}

func (p *capturePublisher) Close() error {
	return nil
}

func (p *capturePublisher) Events() []*service.OrderEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]*service.OrderEvent(nil), p.events...)
}
