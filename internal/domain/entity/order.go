package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending is the initial state of every new order.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusProcessing means the order has been accepted and is being prepared.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusShipped means the order has left the warehouse.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusCompleted means the order has been delivered.
	OrderStatusCompleted OrderStatus = "completed"
	// OrderStatusCancelled is terminal; no transitions lead out of it.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether moving from s to next is a legal
// lifecycle transition. The table is strict: states cannot be skipped,
// cancellation is allowed from any non-terminal state, and a completed
// order may be reopened to processing to correct an erroneous completion.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusProcessing || next == OrderStatusCancelled
	case OrderStatusProcessing:
		return next == OrderStatusShipped || next == OrderStatusCancelled
	case OrderStatusShipped:
		return next == OrderStatusCompleted || next == OrderStatusCancelled
	case OrderStatusCompleted:
		return next == OrderStatusProcessing
	case OrderStatusCancelled:
		return false
	default:
		return false
	}
}

// DisplayStatus is the smaller vocabulary the admin dashboard renders.
type DisplayStatus string

const (
	DisplayStatusPending    DisplayStatus = "pending"
	DisplayStatusProcessing DisplayStatus = "processing"
	DisplayStatusDispatched DisplayStatus = "dispatched"
	DisplayStatusDelivered  DisplayStatus = "delivered"
	// DisplayStatusCancelled keeps cancelled orders visible instead of
	// collapsing them into an undefined bucket.
	DisplayStatusCancelled DisplayStatus = "cancelled"
)

// Display maps the raw status into the dashboard vocabulary.
func (s OrderStatus) Display() DisplayStatus {
	switch s {
	case OrderStatusShipped:
		return DisplayStatusDispatched
	case OrderStatusCompleted:
		return DisplayStatusDelivered
	case OrderStatusCancelled:
		return DisplayStatusCancelled
	case OrderStatusProcessing:
		return DisplayStatusProcessing
	case OrderStatusPending:
		return DisplayStatusPending
	default:
		return DisplayStatusPending
	}
}

// OrderLineItem is a frozen purchase line inside an order. Name and price
// are snapshots taken at checkout; a later catalog change never alters them.
type OrderLineItem struct {
	ProductID string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// ShippingAddress is the delivery address snapshot captured at checkout.
type ShippingAddress struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

// Order is a committed purchase. Line items, total and shipping address
// are immutable once the order exists; only Status and SupplierID may
// change afterwards. The total is computed once at checkout and is the
// authoritative value, never recomputed from the line items.
type Order struct {
	ID              string          `json:"id"` // Format ORD-####.
	CustomerName    string          `json:"customerName"`
	Email           string          `json:"email"`
	Date            time.Time       `json:"date"`
	Items           []OrderLineItem `json:"items"`
	Status          OrderStatus     `json:"status"`
	Total           decimal.Decimal `json:"total"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	SupplierID      *string         `json:"supplierId"` // Nil when no supplier is assigned.
	GuestOrder      bool            `json:"isGuestOrder"`
}

// Clone returns a deep copy so callers can mutate status or assignment
// without aliasing seed templates or another caller's view.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}

	clone := *o
	clone.Items = make([]OrderLineItem, len(o.Items))
	copy(clone.Items, o.Items)
	if o.SupplierID != nil {
		id := *o.SupplierID
		clone.SupplierID = &id
	}

	return &clone
}
