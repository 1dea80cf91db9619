// Package entity contains the core business objects of the project.
package entity

import (
	domainerrors "storefront/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// Quantity bounds for a single line item.
const (
	DefaultQuantity = 1
	MinimumQuantity = 1
	MaximumQuantity = 10
)

// LineItem is one (catalog entry, quantity) selection inside an order.
//
// UnitPrice is never taken from the client: it is bound from the catalog during
// reconciliation and persisted with the row, so later catalog price changes do
// not reprice historical orders.
type LineItem struct {
	ID             int64               // Assigned on persistence.
	OrderID        int64               // Owning order, assigned on persistence.
	CatalogEntryID int64               // Non-owning reference to the catalog entry.
	Quantity       int                 // Number of bundles, within [MinimumQuantity, MaximumQuantity].
	UnitPrice      decimal.NullDecimal // Catalog price bound at reconciliation; invalid until then.
	CatalogEntry   *CatalogEntry       // Resolved entry for display; never persisted.
}

// NewLineItem creates an unreconciled line item referencing a catalog entry by ID.
func NewLineItem(catalogEntryID int64, quantity int) *LineItem {
	return &LineItem{
		CatalogEntryID: catalogEntryID,
		Quantity:       quantity,
	}
}

// ValidateQuantity checks the quantity bounds.
func (li *LineItem) ValidateQuantity() error {
	if li.Quantity < MinimumQuantity || li.Quantity > MaximumQuantity {
		return domainerrors.NewInvalidQuantityError(li.CatalogEntryID, li.Quantity, MinimumQuantity, MaximumQuantity)
	}

	return nil
}

// Bind attaches the resolved catalog entry and captures its current price.
func (li *LineItem) Bind(entry *CatalogEntry) {
	li.CatalogEntryID = entry.ID
	li.CatalogEntry = entry
	li.UnitPrice = decimal.NewNullDecimal(entry.BasePrice)
}

// IsReconciled reports whether the item carries a server-bound unit price.
func (li *LineItem) IsReconciled() bool {
	return li.UnitPrice.Valid
}

// ComputeExtendedPrice returns basePrice * quantity for the given entry.
func (li *LineItem) ComputeExtendedPrice(entry *CatalogEntry) decimal.Decimal {
	return entry.BasePrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// ExtendedPrice returns the bound unit price times quantity.
func (li *LineItem) ExtendedPrice() (decimal.Decimal, error) {
	if !li.UnitPrice.Valid {
		return decimal.Zero, ErrOrderNotReconciled
	}

	return li.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(li.Quantity))), nil
}
