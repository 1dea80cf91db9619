package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// ListAll returns every catalog entry, highest base price first.
func (repo *catalogRepository) ListAll(ctx context.Context) ([]*entity.CatalogEntry, error) {
	var entryModels []*model.CatalogEntryModel

	if err := repo.db.WithContext(ctx).
		Order("base_price DESC").
		Order("id ASC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list catalog entries")
	}

	return toCatalogEntryDomains(entryModels), nil
}

// FindByID retrieves a catalog entry by its ID.
func (repo *catalogRepository) FindByID(ctx context.Context, id int64) (*entity.CatalogEntry, error) {
	var entryM model.CatalogEntryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCatalogEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find catalog entry by ID")
	}

	return toCatalogEntryDomain(&entryM), nil
}

// FindByIDs retrieves every catalog entry whose ID is in ids.
func (repo *catalogRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.CatalogEntry, error) {
	if len(ids) == 0 {
		return []*entity.CatalogEntry{}, nil
	}

	var entryModels []*model.CatalogEntryModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find catalog entries by IDs")
	}

	return toCatalogEntryDomains(entryModels), nil
}

// Count returns the number of catalog entries.
func (repo *catalogRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CatalogEntryModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count catalog entries")
	}

	return count, nil
}

// CreateEntries inserts the given entries in a single batch and assigns their IDs.
func (repo *catalogRepository) CreateEntries(ctx context.Context, entries []*entity.CatalogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	entryModels := make([]*model.CatalogEntryModel, 0, len(entries))
	for _, entry := range entries {
		entryModels = append(entryModels, fromCatalogEntryDomain(entry))
	}

	if err := repo.db.WithContext(ctx).Create(&entryModels).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewPersistenceError(err, "catalog entry already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewPersistenceError(err, "missing required catalog entry information")
		}

		return domainerrors.NewPersistenceError(err, "failed to create catalog entries")
	}

	for i, entryM := range entryModels {
		entries[i].ID = entryM.ID
	}

	return nil
}

func toCatalogEntryDomain(data *model.CatalogEntryModel) *entity.CatalogEntry {
	if data == nil {
		return nil
	}

	return &entity.CatalogEntry{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		BasePrice:   data.BasePrice,
		ImageRef:    data.ImageRef,
	}
}

func toCatalogEntryDomains(data []*model.CatalogEntryModel) []*entity.CatalogEntry {
	entries := make([]*entity.CatalogEntry, 0, len(data))
	for _, entryM := range data {
		entries = append(entries, toCatalogEntryDomain(entryM))
	}

	return entries
}

func fromCatalogEntryDomain(data *entity.CatalogEntry) *model.CatalogEntryModel {
	return &model.CatalogEntryModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		BasePrice:   data.BasePrice,
		ImageRef:    data.ImageRef,
	}
}
