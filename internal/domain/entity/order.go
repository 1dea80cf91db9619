// Package entity contains the core business objects of the project.
package entity

import (
	"errors"
	"slices"
	"time"

	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrOrderNotReconciled is returned when prices are requested before the
// line items were bound to catalog entries.
var ErrOrderNotReconciled = errors.New("order line items are not reconciled")

// Order is the aggregate root of the ordering subsystem. It exclusively owns its line items.
type Order struct {
	ID               int64       // Server-assigned identifier.
	OwnerID          uuid.UUID   // Authenticated principal that placed the order.
	CreatedAt        time.Time   // Server time at submission.
	DeliveryAddress  Address     // Address supplied by the customer.
	DeliveryLocation LatLong     // Geographic delivery target.
	LineItems        []*LineItem // Ordered selections.
}

// Validate checks the invariants that do not need the catalog: the order has at
// least one line item and every quantity is within bounds.
func (o *Order) Validate() error {
	if len(o.LineItems) == 0 {
		return domainerrors.ErrEmptyOrder
	}

	for _, item := range o.LineItems {
		if err := item.ValidateQuantity(); err != nil {
			return err
		}
	}

	return nil
}

// CatalogEntryIDs returns the distinct catalog entry IDs referenced by the order,
// in first-seen order.
func (o *Order) CatalogEntryIDs() []int64 {
	ids := make([]int64, 0, len(o.LineItems))
	for _, item := range o.LineItems {
		if !slices.Contains(ids, item.CatalogEntryID) {
			ids = append(ids, item.CatalogEntryID)
		}
	}

	return ids
}

// Reconcile resolves every line item against the catalog snapshot.
// It is all-or-nothing: if any reference is unknown no item is modified.
func (o *Order) Reconcile(catalog CatalogIndex) error {
	resolved := make([]*CatalogEntry, len(o.LineItems))
	for i, item := range o.LineItems {
		entry, ok := catalog.Lookup(item.CatalogEntryID)
		if !ok {
			return domainerrors.NewUnknownCatalogEntryError(item.CatalogEntryID)
		}
		resolved[i] = entry
	}

	for i, item := range o.LineItems {
		item.Bind(resolved[i])
	}

	return nil
}

// IsReconciled reports whether every line item carries a bound price.
func (o *Order) IsReconciled() bool {
	for _, item := range o.LineItems {
		if !item.IsReconciled() {
			return false
		}
	}

	return true
}

// TotalPrice sums the extended price of all line items.
func (o *Order) TotalPrice() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range o.LineItems {
		extended, err := item.ExtendedPrice()
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(extended)
	}

	return total, nil
}

// WithStatus projects the order into its display shape.
func (o *Order) WithStatus() (*OrderView, error) {
	total, err := o.TotalPrice()
	if err != nil {
		return nil, err
	}

	items := make([]LineItemView, 0, len(o.LineItems))
	for _, item := range o.LineItems {
		extended, err := item.ExtendedPrice()
		if err != nil {
			return nil, err
		}

		items = append(items, LineItemView{
			ID:                     item.ID,
			CatalogEntryID:         item.CatalogEntryID,
			Quantity:               item.Quantity,
			CatalogEntry:           item.CatalogEntry,
			UnitPrice:              item.UnitPrice.Decimal,
			ExtendedPrice:          extended,
			FormattedExtendedPrice: FormatPrice(extended),
		})
	}

	return &OrderView{
		OrderID:             o.ID,
		OwnerID:             o.OwnerID,
		CreatedAt:           o.CreatedAt,
		DeliveryAddress:     o.DeliveryAddress,
		DeliveryLocation:    o.DeliveryLocation,
		LineItems:           items,
		TotalPrice:          total,
		FormattedTotalPrice: FormatPrice(total),
	}, nil
}
