package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a registered shopper. The email is the unique lookup key;
// duplicate emails across registration and admin-created records are not
// reconciled anywhere in the system.
type Customer struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"` // Unique key for lookups.
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	PasswordHash string    `json:"passwordHash,omitempty"` // Set only for self-registered accounts.
	RegisteredAt time.Time `json:"registeredAt"`
	Tags         []string  `json:"tags,omitempty"`
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}

	return c.FirstName + " " + c.LastName
}

// CustomerSummary decorates a customer with aggregates derived from the
// order collection. The aggregates are never stored; they are recomputed
// from the orders matching the customer's email on every read.
type CustomerSummary struct {
	Customer

	OrderCount int             `json:"orderCount"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
}
