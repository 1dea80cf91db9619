package impl

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(catalogRepo repository.CatalogRepository) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: catalogRepo,
	}
}

// ListSpecials returns all catalog entries, highest base price first
func (s *catalogService) ListSpecials(ctx context.Context) ([]*entity.CatalogEntry, error) {
	entries, err := s.catalogRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog entries: %w", err)
	}

	return entries, nil
}

// GetSpecial returns one catalog entry
func (s *catalogService) GetSpecial(ctx context.Context, id int64) (*entity.CatalogEntry, error) {
	entry, err := s.catalogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCatalogEntryNotFound) {
			return nil, domainerrors.ErrCatalogEntryNotFound
		}

		return nil, fmt.Errorf("failed to find catalog entry: %w", err)
	}

	return entry, nil
}
