package entity

import "time"

// Supplier is a vendor that fulfils orders. Suppliers are created via
// self-registration or by an admin.
type Supplier struct {
	ID           string     `json:"id"`
	CompanyName  string     `json:"companyName"`
	ContactName  string     `json:"contactName"`
	Email        string     `json:"email"` // Unique key for lookups.
	Phone        string     `json:"phone"`
	Address      string     `json:"address"`
	Categories   []Category `json:"categories"` // Catalog categories the supplier can serve.
	Notes        string     `json:"notes"`
	PasswordHash string     `json:"passwordHash,omitempty"`
	JoinedAt     time.Time  `json:"joinedAt"`
}

// SupplierSession records which supplier is currently signed in to the
// supplier-facing views. A single session record is persisted; it is the
// only session state the engine keeps.
type SupplierSession struct {
	SupplierID string    `json:"supplierId"`
	Email      string    `json:"email"`
	StartedAt  time.Time `json:"startedAt"`
}
