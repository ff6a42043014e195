// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"voltmart/config"
	"voltmart/internal/domain/entity"
	domainerrors "voltmart/internal/domain/errors"
	"voltmart/internal/domain/repository"
	"voltmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pricing rule defaults used when the commerce section is absent.
const (
	defaultShippingFlatFee       = "10.00"
	defaultFreeShippingThreshold = "100.00"
	defaultTaxRate               = "0.08"
)

// pricingRules holds the cart's monetary configuration in decimal form.
type pricingRules struct {
	shippingFlatFee       decimal.Decimal
	freeShippingThreshold decimal.Decimal
	taxRate               decimal.Decimal
}

func newPricingRules(cfg *config.Config) pricingRules {
	rules := pricingRules{
		shippingFlatFee:       decimal.RequireFromString(defaultShippingFlatFee),
		freeShippingThreshold: decimal.RequireFromString(defaultFreeShippingThreshold),
		taxRate:               decimal.RequireFromString(defaultTaxRate),
	}

	if cfg == nil || cfg.Commerce == nil {
		return rules
	}

	rules.shippingFlatFee = decimal.NewFromFloat(cfg.Commerce.ShippingFlatFee)
	rules.freeShippingThreshold = decimal.NewFromFloat(cfg.Commerce.FreeShippingThreshold)
	rules.taxRate = decimal.NewFromFloat(cfg.Commerce.TaxRate)

	return rules
}

// cartService implements the CartUsecase interface. It owns the single
// active cart of the storefront session.
type cartService struct {
	store   repository.CommerceStore
	pricing pricingRules
	logger  *slog.Logger

	mu    sync.Mutex
	items []entity.CartItem
}

// NewCartService is the constructor for cartService.
func NewCartService(
	cfg *config.Config,
	store repository.CommerceStore,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		store:   store,
		pricing: newPricingRules(cfg),
		logger:  logger,
	}
}

// Items returns a copy of the current line items in insertion order.
func (srv *cartService) Items(_ context.Context) ([]entity.CartItem, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return append([]entity.CartItem(nil), srv.items...), nil
}

// AddItem puts a product into the cart, snapshotting its current price.
// Adding an already-present product accumulates onto the existing line.
func (srv *cartService) AddItem(ctx context.Context, input *usecase.AddItemInput) (*entity.CartItem, error) {
	if input == nil || input.Quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	products, err := srv.store.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}

	var product *entity.Product
	for i := range products {
		if products[i].ID == input.ProductID {
			product = &products[i]

			break
		}
	}
	if product == nil {
		return nil, domainerrors.ErrProductNotFound
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	for i := range srv.items {
		if srv.items[i].ProductID == product.ID {
			srv.items[i].Quantity += input.Quantity
			item := srv.items[i]

			srv.logger.Debug("Accumulated cart line",
				slog.String("productID", product.ID),
				slog.Int("quantity", item.Quantity),
			)

			return &item, nil
		}
	}

	item := entity.CartItem{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  input.Quantity,
		ImageURL:  product.ImageURL,
	}
	srv.items = append(srv.items, item)

	srv.logger.Debug("Added cart line",
		slog.String("productID", product.ID),
		slog.Int("quantity", item.Quantity),
	)

	return &item, nil
}

// UpdateQuantity sets a line's quantity. Quantities below one are
// rejected and the prior quantity stays in place.
func (srv *cartService) UpdateQuantity(_ context.Context, itemID string, quantity int) error {
	if quantity < 1 {
		return domainerrors.ErrInvalidQuantity
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	for i := range srv.items {
		if srv.items[i].ID == itemID {
			srv.items[i].Quantity = quantity

			return nil
		}
	}

	return domainerrors.ErrCartItemNotFound
}

// RemoveItem drops a line from the cart.
func (srv *cartService) RemoveItem(_ context.Context, itemID string) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	for i := range srv.items {
		if srv.items[i].ID == itemID {
			srv.items = append(srv.items[:i], srv.items[i+1:]...)

			return nil
		}
	}

	return domainerrors.ErrCartItemNotFound
}

// Totals recomputes the derived monetary values from the current lines.
// Nothing is cached; every read reflects the latest cart contents.
func (srv *cartService) Totals(_ context.Context) (*entity.CartTotals, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.totalsLocked(), nil
}

func (srv *cartService) totalsLocked() *entity.CartTotals {
	subtotal := decimal.Zero
	for i := range srv.items {
		subtotal = subtotal.Add(srv.items[i].LineTotal())
	}

	shipping := decimal.Zero
	if len(srv.items) > 0 && subtotal.LessThanOrEqual(srv.pricing.freeShippingThreshold) {
		shipping = srv.pricing.shippingFlatFee
	}

	tax := subtotal.Mul(srv.pricing.taxRate).Round(2)

	return &entity.CartTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax).Round(2),
	}
}

// Clear empties the cart after a successful checkout.
func (srv *cartService) Clear(_ context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.items = nil

	return nil
}
