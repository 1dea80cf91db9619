package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogUsecase defines the read-only catalog use cases
type CatalogUsecase interface {
	// ListSpecials returns every special, highest base price first
	ListSpecials(ctx context.Context) ([]*entity.CatalogEntry, error)

	// GetSpecial returns a single special by ID
	GetSpecial(ctx context.Context, id int64) (*entity.CatalogEntry, error)
}
