package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
	orderRepo   *mockRepo.MockOrderRepository
	catalogRepo *mockRepo.MockCatalogRepository
	publisher   *mockService.MockEventPublisher
	metrics     *mockService.MockOrderMetrics
}

func newTestOrderConfig(submitTimeout time.Duration) *config.Config {
	return &config.Config{
		Order: &config.OrderConfig{
			SubmitTimeout: submitTimeout,
			DefaultDeliveryLocation: config.LocationConfig{
				Latitude:  51.5001,
				Longitude: -0.1239,
			},
		},
	}
}

func createTestOrderServiceWithConfig(t *testing.T, cfg *config.Config) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	metrics := mockService.NewMockOrderMetrics(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewOrderService(txManager, orderRepo, publisher, metrics, logger, cfg)
	require.NoError(t, err)
	svc.(*orderService).now = func() time.Time { return fixedNow }

	return orderServiceFixtures{
		service:     svc,
		txManager:   txManager,
		repoFactory: repoFactory,
		orderRepo:   orderRepo,
		catalogRepo: catalogRepo,
		publisher:   publisher,
		metrics:     metrics,
	}
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	return createTestOrderServiceWithConfig(t, newTestOrderConfig(5*time.Second))
}

// expectTransaction runs the transactional callback against the mocked factory.
// The catalog is always read through the factory; the order repository only
// when reconciliation succeeds.
func (fx orderServiceFixtures) expectTransaction() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})
	fx.repoFactory.EXPECT().CatalogRepo().Return(fx.catalogRepo)
	fx.repoFactory.EXPECT().OrderRepo().Return(fx.orderRepo).Maybe()
}

func testCatalog() []*entity.CatalogEntry {
	return []*entity.CatalogEntry{
		{ID: 1, Name: "The Pain Reliever", BasePrice: decimal.RequireFromString("20.00")},
		{ID: 2, Name: "The Sampler", BasePrice: decimal.RequireFromString("99.99")},
	}
}

func intPtr(v int) *int {
	return &v
}

func TestOrderService_SubmitOrder_ReconcilesAndPersists(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	principalID := uuid.New()

	spoofedOwner := uuid.New()
	spoofedTime := time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	draft := &usecase.DraftOrderInput{
		OwnerID:         &spoofedOwner,
		CreatedAt:       &spoofedTime,
		DeliveryAddress: entity.Address{Name: "Ada", Line1: "1 Main St", City: "London"},
		LineItems: []usecase.DraftLineItemInput{
			{
				CatalogEntryID: 2,
				Quantity:       intPtr(1),
				CatalogEntry:   &usecase.DraftCatalogEntry{ID: 2, BasePrice: decimal.RequireFromString("0.01")},
			},
			{CatalogEntryID: 1, Quantity: intPtr(2)},
		},
	}

	fx.catalogRepo.EXPECT().FindByIDs(mock.Anything, []int64{2, 1}).Return(testCatalog(), nil)
	fx.expectTransaction()
	fx.orderRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Order")).
		RunAndReturn(func(_ context.Context, order *entity.Order) error {
			order.ID = 7

			return nil
		})
	fx.metrics.EXPECT().
		RecordSubmitted(mock.Anything, mock.MatchedBy(func(total decimal.Decimal) bool {
			return total.Equal(decimal.RequireFromString("139.99"))
		}), 2).
		Return()

	var published *service.OrderPlacedEvent
	fx.publisher.EXPECT().
		PublishOrderPlaced(mock.Anything, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Run(func(_ context.Context, event *service.OrderPlacedEvent) { published = event }).
		Return(nil)

	order, err := fx.service.SubmitOrder(ctx, principalID, draft)
	require.NoError(t, err)

	assert.Equal(t, int64(7), order.ID)
	assert.Equal(t, principalID, order.OwnerID)
	assert.Equal(t, fixedNow, order.CreatedAt)
	assert.Equal(t, entity.NewLatLong(51.5001, -0.1239), order.DeliveryLocation)
	assert.Equal(t, "Ada", order.DeliveryAddress.Name)

	require.Len(t, order.LineItems, 2)
	assert.Equal(t, "99.99", entity.FormatPrice(order.LineItems[0].UnitPrice.Decimal))
	assert.Equal(t, "20.00", entity.FormatPrice(order.LineItems[1].UnitPrice.Decimal))

	total, err := order.TotalPrice()
	require.NoError(t, err)
	assert.Equal(t, "139.99", entity.FormatPrice(total))

	require.NotNil(t, published)
	assert.Equal(t, int64(7), published.OrderID)
	assert.Equal(t, principalID.String(), published.OwnerID)
	assert.Equal(t, "139.99", published.TotalPrice)
	assert.Len(t, published.LineItems, 2)
}

func TestOrderService_SubmitOrder_DefaultsQuantityAndUsesEmbeddedID(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	draft := &usecase.DraftOrderInput{
		LineItems: []usecase.DraftLineItemInput{
			{CatalogEntry: &usecase.DraftCatalogEntry{ID: 1, BasePrice: decimal.Zero}},
		},
	}

	fx.catalogRepo.EXPECT().FindByIDs(mock.Anything, []int64{1}).Return(testCatalog()[:1], nil)
	fx.expectTransaction()
	fx.orderRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.metrics.EXPECT().RecordSubmitted(mock.Anything, mock.Anything, 1).Return()
	fx.publisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.Anything).Return(nil)

	order, err := fx.service.SubmitOrder(ctx, uuid.New(), draft)
	require.NoError(t, err)

	require.Len(t, order.LineItems, 1)
	assert.Equal(t, int64(1), order.LineItems[0].CatalogEntryID)
	assert.Equal(t, entity.DefaultQuantity, order.LineItems[0].Quantity)

	total, err := order.TotalPrice()
	require.NoError(t, err)
	assert.Equal(t, "20.00", entity.FormatPrice(total))
}

func TestOrderService_SubmitOrder_UnknownCatalogEntry(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	draft := &usecase.DraftOrderInput{
		LineItems: []usecase.DraftLineItemInput{{CatalogEntryID: 999, Quantity: intPtr(1)}},
	}

	fx.expectTransaction()
	fx.catalogRepo.EXPECT().FindByIDs(mock.Anything, []int64{999}).Return([]*entity.CatalogEntry{}, nil)
	fx.metrics.EXPECT().RecordRejected(mock.Anything, service.RejectReasonUnknownEntry).Return()

	order, err := fx.service.SubmitOrder(ctx, uuid.New(), draft)
	assert.Nil(t, order)

	var unknown *domainerrors.UnknownCatalogEntryError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, int64(999), unknown.CatalogEntryID)
	fx.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_SubmitOrder_InvalidQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
	}{
		{name: "below minimum", quantity: 0},
		{name: "above maximum", quantity: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			draft := &usecase.DraftOrderInput{
				LineItems: []usecase.DraftLineItemInput{{CatalogEntryID: 1, Quantity: intPtr(tt.quantity)}},
			}
			fx.metrics.EXPECT().RecordRejected(mock.Anything, service.RejectReasonInvalidQuantity).Return()

			order, err := fx.service.SubmitOrder(context.Background(), uuid.New(), draft)
			assert.Nil(t, order)

			var invalid *domainerrors.InvalidQuantityError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.quantity, invalid.Quantity)
			fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_SubmitOrder_EmptyOrder(t *testing.T) {
	fx := createTestOrderService(t)

	fx.metrics.EXPECT().RecordRejected(mock.Anything, service.RejectReasonEmptyOrder).Return().Times(2)

	_, err := fx.service.SubmitOrder(context.Background(), uuid.New(), &usecase.DraftOrderInput{})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyOrder)

	_, err = fx.service.SubmitOrder(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyOrder)
}

func TestOrderService_SubmitOrder_PersistenceFailure(t *testing.T) {
	fx := createTestOrderService(t)

	draft := &usecase.DraftOrderInput{
		LineItems: []usecase.DraftLineItemInput{{CatalogEntryID: 1, Quantity: intPtr(3)}},
	}

	fx.catalogRepo.EXPECT().FindByIDs(mock.Anything, []int64{1}).Return(testCatalog(), nil)
	fx.expectTransaction()
	fx.orderRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Order")).
		Return(errors.New("connection reset by peer"))
	fx.metrics.EXPECT().RecordRejected(mock.Anything, service.RejectReasonPersistence).Return()

	order, err := fx.service.SubmitOrder(context.Background(), uuid.New(), draft)
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PERSISTENCE_FAILED", appErr.ErrorCode())
	assert.Equal(t, 500, appErr.HTTPCode())
	fx.publisher.AssertNotCalled(t, "PublishOrderPlaced", mock.Anything, mock.Anything)
}

func TestOrderService_SubmitOrder_CatalogLookupFailure(t *testing.T) {
	fx := createTestOrderService(t)

	draft := &usecase.DraftOrderInput{
		LineItems: []usecase.DraftLineItemInput{{CatalogEntryID: 1, Quantity: intPtr(1)}},
	}

	fx.expectTransaction()
	fx.catalogRepo.EXPECT().
		FindByIDs(mock.Anything, []int64{1}).
		Return(nil, errors.New("relation \"catalog_entries\" does not exist"))
	fx.metrics.EXPECT().RecordRejected(mock.Anything, service.RejectReasonPersistence).Return()

	order, err := fx.service.SubmitOrder(context.Background(), uuid.New(), draft)
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PERSISTENCE_FAILED", appErr.ErrorCode())
	assert.Equal(t, "failed to load catalog entries", appErr.Details())
	fx.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishOrderPlaced", mock.Anything, mock.Anything)
}

func TestOrderService_SubmitOrder_Timeout(t *testing.T) {
	fx := createTestOrderServiceWithConfig(t, newTestOrderConfig(10*time.Millisecond))

	draft := &usecase.DraftOrderInput{
		LineItems: []usecase.DraftLineItemInput{{CatalogEntryID: 1, Quantity: intPtr(1)}},
	}

	fx.expectTransaction()
	fx.catalogRepo.EXPECT().
		FindByIDs(mock.Anything, []int64{1}).
		RunAndReturn(func(ctx context.Context, _ []int64) ([]*entity.CatalogEntry, error) {
			<-ctx.Done()

			return nil, ctx.Err()
		})
	fx.metrics.EXPECT().RecordRejected(mock.Anything, service.RejectReasonTimeout).Return()

	order, err := fx.service.SubmitOrder(context.Background(), uuid.New(), draft)
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SUBMISSION_TIMEOUT", appErr.ErrorCode())
	assert.Equal(t, 503, appErr.HTTPCode())
}

func TestOrderService_SubmitOrder_PublishFailureDoesNotFailSubmission(t *testing.T) {
	fx := createTestOrderService(t)

	draft := &usecase.DraftOrderInput{
		LineItems: []usecase.DraftLineItemInput{{CatalogEntryID: 1, Quantity: intPtr(3)}},
	}

	fx.catalogRepo.EXPECT().FindByIDs(mock.Anything, []int64{1}).Return(testCatalog(), nil)
	fx.expectTransaction()
	fx.orderRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.metrics.EXPECT().RecordSubmitted(mock.Anything, mock.Anything, 1).Return()
	fx.publisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	order, err := fx.service.SubmitOrder(context.Background(), uuid.New(), draft)
	require.NoError(t, err)

	total, err := order.TotalPrice()
	require.NoError(t, err)
	assert.Equal(t, "60.00", entity.FormatPrice(total))
}

func persistedOrder(id int64, ownerID uuid.UUID, createdAt time.Time, unitPrice string, quantity int) *entity.Order {
	entry := &entity.CatalogEntry{ID: 1, Name: "The Pain Reliever", BasePrice: decimal.RequireFromString("20.00")}

	return &entity.Order{
		ID:               id,
		OwnerID:          ownerID,
		CreatedAt:        createdAt,
		DeliveryLocation: entity.NewLatLong(51.5001, -0.1239),
		LineItems: []*entity.LineItem{
			{
				ID:             id * 10,
				OrderID:        id,
				CatalogEntryID: entry.ID,
				Quantity:       quantity,
				UnitPrice:      decimal.NewNullDecimal(decimal.RequireFromString(unitPrice)),
				CatalogEntry:   entry,
			},
		},
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	// Unit price captured at submission differs from the current catalog price.
	fx.orderRepo.EXPECT().FindByID(ctx, int64(5)).Return(persistedOrder(5, ownerID, fixedNow, "15.00", 2), nil)

	view, err := fx.service.GetOrder(ctx, ownerID, 5)
	require.NoError(t, err)

	assert.Equal(t, int64(5), view.OrderID)
	assert.Equal(t, "30.00", view.FormattedTotalPrice)
	require.Len(t, view.LineItems, 1)
	assert.Equal(t, "30.00", view.LineItems[0].FormattedExtendedPrice)
	assert.Equal(t, "20.00", view.LineItems[0].CatalogEntry.FormattedBasePrice())
}

func TestOrderService_GetOrder_NotOwned(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().FindByID(ctx, int64(5)).Return(persistedOrder(5, uuid.New(), fixedNow, "20.00", 1), nil)

	view, err := fx.service.GetOrder(ctx, uuid.New(), 5)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrOrderNotFound)

	view, err := fx.service.GetOrder(ctx, uuid.New(), 404)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	newer := persistedOrder(2, ownerID, fixedNow, "20.00", 1)
	older := persistedOrder(1, ownerID, fixedNow.Add(-time.Hour), "20.00", 3)
	fx.orderRepo.EXPECT().FindByOwner(ctx, ownerID).Return([]*entity.Order{newer, older}, nil)

	views, err := fx.service.ListOrders(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int64(2), views[0].OrderID)
	assert.Equal(t, "20.00", views[0].FormattedTotalPrice)
	assert.Equal(t, int64(1), views[1].OrderID)
	assert.Equal(t, "60.00", views[1].FormattedTotalPrice)
}

func TestOrderService_ListOrders_RepositoryError(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.orderRepo.EXPECT().FindByOwner(ctx, ownerID).Return(nil, errors.New("timeout"))

	views, err := fx.service.ListOrders(ctx, ownerID)
	assert.Nil(t, views)
	assert.ErrorContains(t, err, "failed to find orders by owner")
}

func TestNewOrderService_InvalidDeliveryLocation(t *testing.T) {
	cfg := newTestOrderConfig(time.Second)
	cfg.Order.DefaultDeliveryLocation.Latitude = 123

	svc, err := NewOrderService(nil, nil, nil, nil, slog.Default(), cfg)
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidDeliveryLocation)
}
