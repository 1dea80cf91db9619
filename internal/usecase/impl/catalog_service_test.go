package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	catalogRepo *mockRepo.MockCatalogRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)

	return catalogServiceFixtures{
		service:     NewCatalogService(catalogRepo),
		catalogRepo: catalogRepo,
	}
}

func TestCatalogService_ListSpecials(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	entries := []*entity.CatalogEntry{
		{ID: 2, Name: "The Sampler", BasePrice: decimal.RequireFromString("99.99")},
		{ID: 1, Name: "The Pain Reliever", BasePrice: decimal.RequireFromString("20.00")},
	}
	fx.catalogRepo.EXPECT().ListAll(ctx).Return(entries, nil)

	result, err := fx.service.ListSpecials(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, result)
}

func TestCatalogService_ListSpecials_RepositoryError(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.catalogRepo.EXPECT().ListAll(ctx).Return(nil, errors.New("connection refused"))

	result, err := fx.service.ListSpecials(ctx)
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to list catalog entries")
}

func TestCatalogService_GetSpecial(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	entry := &entity.CatalogEntry{ID: 3, Name: "Sweet Tooth Insulin", BasePrice: decimal.RequireFromString("25.00")}
	fx.catalogRepo.EXPECT().FindByID(ctx, int64(3)).Return(entry, nil)

	result, err := fx.service.GetSpecial(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, entry, result)
}

func TestCatalogService_GetSpecial_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.catalogRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrCatalogEntryNotFound)

	result, err := fx.service.GetSpecial(ctx, 404)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrCatalogEntryNotFound)
}
