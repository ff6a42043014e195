// Package service defines interfaces for infrastructure-backed domain
// services consumed by the use case layer.
package service

import (
	"context"
	"time"
)

// Order event types published by the commerce engine.
const (
	OrderEventPlaced           = "order_placed"
	OrderEventStatusChanged    = "order_status_changed"
	OrderEventSupplierAssigned = "order_supplier_assigned"
)

// OrderEvent describes a change to an order's lifecycle, published for
// asynchronous consumers (dashboards, fulfilment integrations).
type OrderEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status,omitempty"`
	SupplierID string    `json:"supplier_id,omitempty"`
	Total      string    `json:"total,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing order events to a
// message queue.
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
