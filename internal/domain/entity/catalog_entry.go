// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/shopspring/decimal"
)

// CatalogEntry is a purchasable bundle ("special" or "deal") offered by the storefront.
// Entries are owned by catalog administration; the order subsystem only reads them.
type CatalogEntry struct {
	ID          int64           `json:"id"`          // Server-assigned identifier, immutable once created.
	Name        string          `json:"name"`        // Display name of the bundle.
	Description string          `json:"description"` // Short marketing description.
	BasePrice   decimal.Decimal `json:"base_price"`  // Non-negative unit price.
	ImageRef    string          `json:"image_ref"`   // Relative path or URL of the display image.
}

// FormattedBasePrice renders the base price with exactly two fractional digits.
func (e *CatalogEntry) FormattedBasePrice() string {
	return FormatPrice(e.BasePrice)
}

// CatalogIndex is a snapshot of catalog entries keyed by ID, used to resolve
// line item references during reconciliation.
type CatalogIndex map[int64]*CatalogEntry

// NewCatalogIndex builds an index from a list of entries. Nil entries are skipped.
func NewCatalogIndex(entries []*CatalogEntry) CatalogIndex {
	index := make(CatalogIndex, len(entries))
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		index[entry.ID] = entry
	}

	return index
}

// Lookup returns the entry with the given ID, if present.
func (idx CatalogIndex) Lookup(id int64) (*CatalogEntry, bool) {
	entry, ok := idx[id]

	return entry, ok
}

// FormatPrice renders an amount the way the storefront displays money: "0.00".
func FormatPrice(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
