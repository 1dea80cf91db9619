package service

import (
	"context"
	"time"
)

// OrderPlacedEventType identifies OrderPlacedEvent on the wire.
const OrderPlacedEventType = "order.placed"

// OrderPlacedEvent is emitted after an order has been committed.
type OrderPlacedEvent struct {
	RequestID  string                `json:"request_id,omitempty"` // For distributed tracing
	OrderID    int64                 `json:"order_id"`
	OwnerID    string                `json:"owner_id"`
	TotalPrice string                `json:"total_price"` // Exact decimal, two fractional digits
	LineItems  []OrderPlacedLineItem `json:"line_items"`
	PlacedAt   time.Time             `json:"placed_at"`
}

// OrderPlacedLineItem is the line item summary carried by OrderPlacedEvent.
type OrderPlacedLineItem struct {
	CatalogEntryID int64  `json:"catalog_entry_id"`
	Quantity       int    `json:"quantity"`
	UnitPrice      string `json:"unit_price"`
}

// EventPublisher defines the interface for publishing order events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced publishes an order placed event for downstream consumers
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
