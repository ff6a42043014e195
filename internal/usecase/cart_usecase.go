// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"voltmart/internal/domain/entity"
)

// CartUsecase defines the interface for the active shopping cart.
// The cart accumulates line items with price snapshots taken at
// add-time, so later catalog edits never change what the shopper sees.
type CartUsecase interface {
	// Items returns the current line items in insertion order.
	Items(ctx context.Context) ([]entity.CartItem, error)

	// AddItem puts a product into the cart. Adding a product that is
	// already present increments the existing line's quantity.
	AddItem(ctx context.Context, input *AddItemInput) (*entity.CartItem, error)

	// UpdateQuantity sets a line item's quantity. Quantities below one
	// are rejected and leave the line unchanged.
	UpdateQuantity(ctx context.Context, itemID string, quantity int) error

	// RemoveItem drops a line item from the cart.
	RemoveItem(ctx context.Context, itemID string) error

	// Totals recomputes subtotal, shipping, tax and total from the
	// current line items.
	Totals(ctx context.Context) (*entity.CartTotals, error)

	// Clear empties the cart. Called by checkout after the order is placed.
	Clear(ctx context.Context) error
}

// --- Input DTOs ---

// AddItemInput defines the data required to add a product to the cart.
type AddItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}
