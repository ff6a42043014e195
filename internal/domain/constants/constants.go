// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider identifiers selectable through configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Storage keys of the persisted record collections.
const (
	CollectionProducts  = "products"
	CollectionCustomers = "customers"
	CollectionSuppliers = "suppliers"
	CollectionOrders    = "orders"
	CollectionSession   = "currentSupplier"
)
