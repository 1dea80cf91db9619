package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var orderTracer = otel.Tracer("storefront/usecase/order")

type orderService struct {
	txManager        repository.TransactionManager
	orderRepo        repository.OrderRepository
	publisher        service.EventPublisher
	metrics          service.OrderMetrics
	logger           *slog.Logger
	submitTimeout    time.Duration
	deliveryLocation entity.LatLong
	now              func() time.Time
}

// NewOrderService creates a new order service instance
func NewOrderService(
	txManager repository.TransactionManager,
	orderRepo repository.OrderRepository,
	publisher service.EventPublisher,
	metrics service.OrderMetrics,
	logger *slog.Logger,
	cfg *config.Config,
) (usecase.OrderUsecase, error) {
	location := entity.NewLatLong(
		cfg.Order.DefaultDeliveryLocation.Latitude,
		cfg.Order.DefaultDeliveryLocation.Longitude,
	)
	if !location.IsValid() {
		return nil, domainerrors.ErrInvalidDeliveryLocation
	}

	return &orderService{
		txManager:        txManager,
		orderRepo:        orderRepo,
		publisher:        publisher,
		metrics:          metrics,
		logger:           logger,
		submitTimeout:    cfg.Order.SubmitTimeout,
		deliveryLocation: location,
		now:              time.Now,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SubmitOrder turns a client draft into a persisted order.
// Server-owned fields are overwritten, every catalog reference is resolved
// and priced from the catalog, and the order with its line items is written
// in one transaction. Nothing is written when any step fails.
func (s *orderService) SubmitOrder(ctx context.Context, principalID uuid.UUID, draft *usecase.DraftOrderInput) (*entity.Order, error) {
	ctx, span := orderTracer.Start(ctx, "OrderService.SubmitOrder",
		trace.WithAttributes(attribute.String("order.owner_id", principalID.String())))
	defer span.End()

	order, err := s.submit(ctx, principalID, draft)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	span.SetAttributes(attribute.Int64("order.id", order.ID))

	return order, nil
}

func (s *orderService) submit(ctx context.Context, principalID uuid.UUID, draft *usecase.DraftOrderInput) (*entity.Order, error) {
	submitCtx := ctx
	if s.submitTimeout > 0 {
		var cancel context.CancelFunc
		submitCtx, cancel = context.WithTimeout(ctx, s.submitTimeout)
		defer cancel()
	}

	order := s.newOrder(principalID, draft)

	if err := order.Validate(); err != nil {
		s.reject(ctx, err)

		return nil, err
	}

	// Catalog prices are read in the same transaction that writes the order.
	if err := s.txManager.Execute(submitCtx, func(repoFactory repository.RepositoryFactory) error {
		entries, err := repoFactory.CatalogRepo().FindByIDs(submitCtx, order.CatalogEntryIDs())
		if err != nil {
			return s.submissionFailure(submitCtx, err, "failed to load catalog entries")
		}

		if err := order.Reconcile(entity.NewCatalogIndex(entries)); err != nil {
			return err
		}

		return repoFactory.OrderRepo().Create(submitCtx, order)
	}); err != nil {
		err = s.submissionFailure(submitCtx, err, "failed to persist order")
		s.reject(ctx, err)

		return nil, err
	}

	total, err := order.TotalPrice()
	if err != nil {
		return nil, fmt.Errorf("failed to compute order total: %w", err)
	}

	s.metrics.RecordSubmitted(ctx, total, len(order.LineItems))
	s.log(ctx).Info("Order submitted",
		slog.Int64("order_id", order.ID),
		slog.String("owner_id", principalID.String()),
		slog.Int("line_items", len(order.LineItems)),
		slog.String("total_price", entity.FormatPrice(total)),
	)

	s.publishOrderPlaced(ctx, order, total)

	return order, nil
}

// newOrder builds the aggregate from the draft. Client-supplied owner,
// creation time and catalog payloads are never trusted.
func (s *orderService) newOrder(principalID uuid.UUID, draft *usecase.DraftOrderInput) *entity.Order {
	order := &entity.Order{
		OwnerID:          principalID,
		CreatedAt:        s.now().UTC(),
		DeliveryLocation: s.deliveryLocation,
	}
	if draft == nil {
		return order
	}

	order.DeliveryAddress = draft.DeliveryAddress
	order.LineItems = make([]*entity.LineItem, 0, len(draft.LineItems))
	for _, item := range draft.LineItems {
		catalogEntryID := item.CatalogEntryID
		if catalogEntryID == 0 && item.CatalogEntry != nil {
			catalogEntryID = item.CatalogEntry.ID
		}

		quantity := entity.DefaultQuantity
		if item.Quantity != nil {
			quantity = *item.Quantity
		}

		order.LineItems = append(order.LineItems, entity.NewLineItem(catalogEntryID, quantity))
	}

	return order
}

// submissionFailure maps an infrastructure error to the error returned to the caller.
func (s *orderService) submissionFailure(ctx context.Context, err error, msg string) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domainerrors.ErrSubmissionTimeout.WithDetails(err.Error())
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewPersistenceError(err, msg)
}

func (s *orderService) reject(ctx context.Context, err error) {
	reason := rejectReason(err)
	s.metrics.RecordRejected(ctx, reason)

	level := slog.LevelInfo
	if reason == service.RejectReasonPersistence || reason == service.RejectReasonTimeout {
		level = slog.LevelError
	}

	s.log(ctx).Log(ctx, level, "Order submission rejected",
		slog.String("reason", reason),
		slog.Any("error", err),
	)
}

func rejectReason(err error) string {
	var (
		unknownEntry    *domainerrors.UnknownCatalogEntryError
		invalidQuantity *domainerrors.InvalidQuantityError
		baseErr         *domainerrors.BaseError
	)

	switch {
	case errors.As(err, &unknownEntry):
		return service.RejectReasonUnknownEntry
	case errors.As(err, &invalidQuantity):
		return service.RejectReasonInvalidQuantity
	case errors.Is(err, domainerrors.ErrEmptyOrder):
		return service.RejectReasonEmptyOrder
	case errors.As(err, &baseErr) && baseErr.ErrorCode() == domainerrors.ErrSubmissionTimeout.ErrorCode():
		return service.RejectReasonTimeout
	default:
		return service.RejectReasonPersistence
	}
}

// publishOrderPlaced notifies downstream consumers once the order is committed.
// The order already exists, so a publish failure is logged rather than returned.
func (s *orderService) publishOrderPlaced(ctx context.Context, order *entity.Order, total decimal.Decimal) {
	lineItems := make([]service.OrderPlacedLineItem, 0, len(order.LineItems))
	for _, item := range order.LineItems {
		lineItems = append(lineItems, service.OrderPlacedLineItem{
			CatalogEntryID: item.CatalogEntryID,
			Quantity:       item.Quantity,
			UnitPrice:      entity.FormatPrice(item.UnitPrice.Decimal),
		})
	}

	event := &service.OrderPlacedEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:    order.ID,
		OwnerID:    order.OwnerID.String(),
		TotalPrice: entity.FormatPrice(total),
		LineItems:  lineItems,
		PlacedAt:   order.CreatedAt,
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := s.publisher.PublishOrderPlaced(publishCtx, event); err != nil {
		s.log(ctx).Error("Failed to publish order placed event",
			slog.Int64("order_id", order.ID),
			slog.Any("error", err),
		)
	}
}

// ListOrders returns the principal's orders, most recent first
func (s *orderService) ListOrders(ctx context.Context, principalID uuid.UUID) ([]*entity.OrderView, error) {
	orders, err := s.orderRepo.FindByOwner(ctx, principalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find orders by owner: %w", err)
	}

	views := make([]*entity.OrderView, 0, len(orders))
	for _, order := range orders {
		view, err := order.WithStatus()
		if err != nil {
			return nil, fmt.Errorf("failed to render order %d: %w", order.ID, err)
		}
		views = append(views, view)
	}

	return views, nil
}

// GetOrder returns one order of the principal. Orders owned by someone else
// are reported as not found.
func (s *orderService) GetOrder(ctx context.Context, principalID uuid.UUID, orderID int64) (*entity.OrderView, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, fmt.Errorf("failed to find order by ID: %w", err)
	}

	if order.OwnerID != principalID {
		s.log(ctx).Warn("Order access denied for non-owner",
			slog.Int64("order_id", orderID),
			slog.String("principal_id", principalID.String()),
		)

		return nil, domainerrors.ErrOrderNotFound
	}

	view, err := order.WithStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to render order %d: %w", order.ID, err)
	}

	return view, nil
}
