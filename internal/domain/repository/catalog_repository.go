// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrCatalogEntryNotFound is returned when a catalog entry is not found.
var ErrCatalogEntryNotFound = errors.New("catalog entry not found")

// CatalogRepository defines read access to the authoritative catalog of specials.
// Catalog authoring is out of scope; CreateEntries exists only for the seed bootstrap.
type CatalogRepository interface {
	// ListAll returns every entry ordered by base price, highest first.
	ListAll(ctx context.Context) ([]*entity.CatalogEntry, error)

	// FindByID retrieves a single entry. Returns ErrCatalogEntryNotFound if absent.
	FindByID(ctx context.Context, id int64) (*entity.CatalogEntry, error)

	// FindByIDs retrieves the entries whose IDs are in ids. Unknown IDs are simply absent from the result.
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.CatalogEntry, error)

	// Count returns the number of catalog entries.
	Count(ctx context.Context) (int64, error)

	// CreateEntries inserts entries and assigns their IDs.
	CreateEntries(ctx context.Context, entries []*entity.CatalogEntry) error
}
