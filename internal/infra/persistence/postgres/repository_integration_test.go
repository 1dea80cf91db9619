//go:build integration

package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/migration"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/persistence/seed"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupPostgres(ctx context.Context, t *testing.T) *gorm.DB {
	t.Helper()

	container, err := tcpostgres.Run(ctx,
		"postgres:18-alpine",
		tcpostgres.WithDatabase("storefront"),
		tcpostgres.WithUsername("storefront"),
		tcpostgres.WithPassword("storefront"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, migration.Up(connStr))

	db, err := gorm.Open(gormpostgres.Open(connStr), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return db
}

func newReconciledOrder(t *testing.T, owner uuid.UUID, catalog []*entity.CatalogEntry, quantities map[int64]int) *entity.Order {
	t.Helper()

	order := &entity.Order{
		OwnerID:          owner,
		CreatedAt:        time.Now().UTC().Truncate(time.Microsecond),
		DeliveryAddress:  entity.Address{Name: "Ada", Line1: "1 Main St", City: "London"},
		DeliveryLocation: entity.NewLatLong(51.5001, -0.1239),
	}
	for _, entry := range catalog {
		if qty, ok := quantities[entry.ID]; ok {
			order.LineItems = append(order.LineItems, entity.NewLineItem(entry.ID, qty))
		}
	}
	require.NoError(t, order.Reconcile(entity.NewCatalogIndex(catalog)))

	return order
}

func TestRepositories_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	db := setupPostgres(ctx, t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	catalogRepo := NewCatalogRepository(db)
	orderRepo := NewOrderRepository(db)
	txManager := NewTransactionManager(db)

	seeded, err := seed.Catalog(ctx, catalogRepo, seed.DefaultCatalog(), logger)
	require.NoError(t, err)
	require.True(t, seeded)

	catalog, err := catalogRepo.ListAll(ctx)
	require.NoError(t, err)

	t.Run("seed is idempotent", func(t *testing.T) {
		seeded, err := seed.Catalog(ctx, catalogRepo, seed.DefaultCatalog(), logger)
		require.NoError(t, err)
		assert.False(t, seeded)

		count, err := catalogRepo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(len(seed.DefaultCatalog())), count)
	})

	t.Run("catalog is listed by descending price", func(t *testing.T) {
		require.Len(t, catalog, len(seed.DefaultCatalog()))
		assert.True(t, catalog[0].BasePrice.Equal(decimal.RequireFromString("99.99")))
		for i := 1; i < len(catalog); i++ {
			assert.False(t, catalog[i].BasePrice.GreaterThan(catalog[i-1].BasePrice))
		}
	})

	t.Run("find by ids skips unknown entries", func(t *testing.T) {
		entries, err := catalogRepo.FindByIDs(ctx, []int64{catalog[0].ID, catalog[1].ID, 999999})
		require.NoError(t, err)
		assert.Len(t, entries, 2)

		_, err = catalogRepo.FindByID(ctx, 999999)
		assert.ErrorIs(t, err, repository.ErrCatalogEntryNotFound)
	})

	t.Run("order keeps the price captured at submission", func(t *testing.T) {
		owner := uuid.New()
		entry := catalog[2]
		order := newReconciledOrder(t, owner, catalog, map[int64]int{entry.ID: 3})

		require.NoError(t, orderRepo.Create(ctx, order))
		require.NotZero(t, order.ID)
		require.NotZero(t, order.LineItems[0].ID)

		newPrice := entry.BasePrice.Add(decimal.NewFromInt(10))
		require.NoError(t, db.Model(&model.CatalogEntryModel{}).
			Where("id = ?", entry.ID).
			Update("base_price", newPrice).Error)
		t.Cleanup(func() {
			db.Model(&model.CatalogEntryModel{}).Where("id = ?", entry.ID).Update("base_price", entry.BasePrice)
		})

		stored, err := orderRepo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		require.Len(t, stored.LineItems, 1)

		item := stored.LineItems[0]
		assert.True(t, item.UnitPrice.Decimal.Equal(entry.BasePrice))
		require.NotNil(t, item.CatalogEntry)
		assert.True(t, item.CatalogEntry.BasePrice.Equal(newPrice))

		total, err := stored.TotalPrice()
		require.NoError(t, err)
		assert.True(t, total.Equal(entry.BasePrice.Mul(decimal.NewFromInt(3))))
		assert.Equal(t, owner, stored.OwnerID)
		assert.True(t, stored.CreatedAt.Equal(order.CreatedAt))
		assert.Equal(t, "London", stored.DeliveryAddress.City)
		assert.InDelta(t, 51.5001, stored.DeliveryLocation.Latitude, 1e-9)
	})

	t.Run("orders are listed per owner, newest first", func(t *testing.T) {
		owner := uuid.New()
		older := newReconciledOrder(t, owner, catalog, map[int64]int{catalog[0].ID: 1})
		older.CreatedAt = older.CreatedAt.Add(-time.Hour)
		newer := newReconciledOrder(t, owner, catalog, map[int64]int{catalog[1].ID: 2})
		other := newReconciledOrder(t, uuid.New(), catalog, map[int64]int{catalog[1].ID: 1})

		for _, order := range []*entity.Order{older, newer, other} {
			require.NoError(t, orderRepo.Create(ctx, order))
		}

		orders, err := orderRepo.FindByOwner(ctx, owner)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, newer.ID, orders[0].ID)
		assert.Equal(t, older.ID, orders[1].ID)
	})

	t.Run("unreconciled orders are refused", func(t *testing.T) {
		order := &entity.Order{
			OwnerID:   uuid.New(),
			CreatedAt: time.Now().UTC(),
			LineItems: []*entity.LineItem{entity.NewLineItem(catalog[0].ID, 1)},
		}

		assert.ErrorIs(t, orderRepo.Create(ctx, order), entity.ErrOrderNotReconciled)
	})

	t.Run("catalog is resolved and the order written in one transaction", func(t *testing.T) {
		owner := uuid.New()
		order := &entity.Order{
			OwnerID:          owner,
			CreatedAt:        time.Now().UTC().Truncate(time.Microsecond),
			DeliveryAddress:  entity.Address{Name: "Ada", Line1: "1 Main St", City: "London"},
			DeliveryLocation: entity.NewLatLong(51.5001, -0.1239),
			LineItems:        []*entity.LineItem{entity.NewLineItem(catalog[0].ID, 2)},
		}

		err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			entries, err := repoFactory.CatalogRepo().FindByIDs(ctx, order.CatalogEntryIDs())
			if err != nil {
				return err
			}
			if err := order.Reconcile(entity.NewCatalogIndex(entries)); err != nil {
				return err
			}

			return repoFactory.OrderRepo().Create(ctx, order)
		})
		require.NoError(t, err)

		stored, err := orderRepo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		require.Len(t, stored.LineItems, 1)
		assert.True(t, stored.LineItems[0].UnitPrice.Decimal.Equal(catalog[0].BasePrice))
	})

	t.Run("failed transaction leaves no order behind", func(t *testing.T) {
		owner := uuid.New()
		order := newReconciledOrder(t, owner, catalog, map[int64]int{catalog[0].ID: 1})
		order.LineItems[0].Quantity = entity.MaximumQuantity + 1

		err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return repoFactory.OrderRepo().Create(ctx, order)
		})

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "PERSISTENCE_FAILED", appErr.ErrorCode())
		assert.True(t, isCheckConstraintViolation(err))

		orders, err := orderRepo.FindByOwner(ctx, owner)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("deleting an order cascades to its line items", func(t *testing.T) {
		order := newReconciledOrder(t, uuid.New(), catalog, map[int64]int{catalog[0].ID: 1, catalog[1].ID: 1})
		require.NoError(t, orderRepo.Create(ctx, order))

		require.NoError(t, db.Exec("DELETE FROM orders WHERE id = ?", order.ID).Error)

		var remaining int64
		require.NoError(t, db.Model(&model.LineItemModel{}).Where("order_id = ?", order.ID).Count(&remaining).Error)
		assert.Zero(t, remaining)
	})

	t.Run("referenced catalog entries cannot be deleted", func(t *testing.T) {
		order := newReconciledOrder(t, uuid.New(), catalog, map[int64]int{catalog[3].ID: 1})
		require.NoError(t, orderRepo.Create(ctx, order))

		err := db.Exec("DELETE FROM catalog_entries WHERE id = ?", catalog[3].ID).Error
		require.Error(t, err)
		assert.True(t, isForeignKeyConstraintViolation(err))
	})
}
