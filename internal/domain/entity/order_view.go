// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderView is the read model returned to clients: the persisted order with its
// line items paired to their catalog entries and the computed totals.
type OrderView struct {
	OrderID             int64           `json:"order_id"`
	OwnerID             uuid.UUID       `json:"owner_id"`
	CreatedAt           time.Time       `json:"created_at"`
	DeliveryAddress     Address         `json:"delivery_address"`
	DeliveryLocation    LatLong         `json:"delivery_location"`
	LineItems           []LineItemView  `json:"line_items"`
	TotalPrice          decimal.Decimal `json:"total_price"`
	FormattedTotalPrice string          `json:"formatted_total_price"`
}

// LineItemView is the display shape of a single line item.
type LineItemView struct {
	ID                     int64           `json:"id"`
	CatalogEntryID         int64           `json:"catalog_entry_id"`
	Quantity               int             `json:"quantity"`
	CatalogEntry           *CatalogEntry   `json:"catalog_entry,omitempty"` // nil if the entry was retired
	UnitPrice              decimal.Decimal `json:"unit_price"`
	ExtendedPrice          decimal.Decimal `json:"extended_price"`
	FormattedExtendedPrice string          `json:"formatted_extended_price"`
}
