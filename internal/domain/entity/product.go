package entity

import (
	"github.com/shopspring/decimal"
)

// Product is a catalog item offered in the storefront. Products are
// created and edited by admin actions; the stock count is informational
// and is not decremented when orders are placed.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`    // Unit price, non-negative.
	Stock       int             `json:"stock"`    // Units on hand, non-negative.
	Category    Category        `json:"category"` // One of the fixed catalog categories.
	ImageURL    string          `json:"imageUrl"`
}
