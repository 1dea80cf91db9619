package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DraftOrderInput is an order as submitted by a client. Every field is
// untrusted: CreatedAt and OwnerID are overwritten, and catalog payloads on line
// items are reduced to their ID before reconciliation.
type DraftOrderInput struct {
	OwnerID         *uuid.UUID           `json:"owner_id,omitempty"`
	CreatedAt       *time.Time           `json:"created_at,omitempty"`
	DeliveryAddress entity.Address       `json:"delivery_address"`
	LineItems       []DraftLineItemInput `json:"line_items"`
}

// DraftLineItemInput is a client line item. Quantity is optional and defaults
// to entity.DefaultQuantity.
type DraftLineItemInput struct {
	CatalogEntryID int64              `json:"catalog_entry_id"`
	Quantity       *int               `json:"quantity,omitempty"`
	CatalogEntry   *DraftCatalogEntry `json:"catalog_entry,omitempty"`
}

// DraftCatalogEntry is a client-embedded copy of a catalog entry. Only its ID is
// ever read, and only when CatalogEntryID is not set.
type DraftCatalogEntry struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name,omitempty"`
	BasePrice decimal.Decimal `json:"base_price"`
}

// OrderUsecase defines the order submission and query use cases
type OrderUsecase interface {
	// SubmitOrder validates, reconciles and persists a draft order for the principal.
	SubmitOrder(ctx context.Context, principalID uuid.UUID, draft *DraftOrderInput) (*entity.Order, error)

	// ListOrders returns the principal's orders, most recent first.
	ListOrders(ctx context.Context, principalID uuid.UUID) ([]*entity.OrderView, error)

	// GetOrder returns one of the principal's orders.
	GetOrder(ctx context.Context, principalID uuid.UUID, orderID int64) (*entity.OrderView, error)
}
