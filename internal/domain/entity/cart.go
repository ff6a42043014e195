package entity

import (
	"github.com/shopspring/decimal"
)

// CartItem is one prospective purchase line in a shopping session. The
// unit price is a snapshot captured when the item was added, so the cart
// is insulated from later catalog price changes.
type CartItem struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"` // Snapshot, not the live catalog price.
	Quantity  int             `json:"quantity"`
	ImageURL  string          `json:"imageUrl"`
}

// LineTotal returns price multiplied by quantity for this line.
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartTotals holds the derived monetary values of a cart. They are
// recomputed from the current line items on every read and never cached.
type CartTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}
