package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create inserts the order row and then its line items as one batch.
// Only reconciled orders can be stored because unit prices are persisted per line item.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if !order.IsReconciled() {
		return entity.ErrOrderNotReconciled
	}

	orderM := fromOrderDomain(order)

	db := repo.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(orderM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewPersistenceError(err, "missing required order information")
		}

		return domainerrors.NewPersistenceError(err, "failed to create order")
	}

	itemModels := make([]*model.LineItemModel, 0, len(order.LineItems))
	for _, item := range order.LineItems {
		itemM := fromLineItemDomain(item)
		itemM.OrderID = orderM.ID
		itemModels = append(itemModels, itemM)
	}

	if err := db.Omit(clause.Associations).Create(&itemModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewPersistenceError(err, "line item references a missing order or catalog entry")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.NewPersistenceError(err, "line item quantity out of range")
		}

		return domainerrors.NewPersistenceError(err, "failed to create line items")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	for i, itemM := range itemModels {
		order.LineItems[i].ID = itemM.ID
		order.LineItems[i].OrderID = orderM.ID
	}

	return nil
}

// FindByID retrieves an order by its ID with its line items and their catalog entries.
func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.withLineItems(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByOwner retrieves all orders placed by the owner, most recent first.
func (repo *orderRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.withLineItems(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by owner")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

func (repo *orderRepository) withLineItems(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("LineItems.CatalogEntry")
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	items := make([]*entity.LineItem, 0, len(data.LineItems))
	for i := range data.LineItems {
		items = append(items, toLineItemDomain(&data.LineItems[i]))
	}

	return &entity.Order{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
		DeliveryAddress: entity.Address{
			Name:       data.DeliveryName,
			Line1:      data.DeliveryLine1,
			Line2:      data.DeliveryLine2,
			City:       data.DeliveryCity,
			Region:     data.DeliveryRegion,
			PostalCode: data.DeliveryPostal,
		},
		DeliveryLocation: entity.NewLatLong(data.DeliveryLatitude, data.DeliveryLongitude),
		LineItems:        items,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:                data.ID,
		OwnerID:           data.OwnerID,
		CreatedAt:         data.CreatedAt,
		DeliveryName:      data.DeliveryAddress.Name,
		DeliveryLine1:     data.DeliveryAddress.Line1,
		DeliveryLine2:     data.DeliveryAddress.Line2,
		DeliveryCity:      data.DeliveryAddress.City,
		DeliveryRegion:    data.DeliveryAddress.Region,
		DeliveryPostal:    data.DeliveryAddress.PostalCode,
		DeliveryLatitude:  data.DeliveryLocation.Latitude,
		DeliveryLongitude: data.DeliveryLocation.Longitude,
	}
}

func toLineItemDomain(data *model.LineItemModel) *entity.LineItem {
	return &entity.LineItem{
		ID:             data.ID,
		OrderID:        data.OrderID,
		CatalogEntryID: data.CatalogEntryID,
		Quantity:       data.Quantity,
		UnitPrice:      decimal.NewNullDecimal(data.UnitPrice),
		CatalogEntry:   toCatalogEntryDomain(data.CatalogEntry),
	}
}

func fromLineItemDomain(data *entity.LineItem) *model.LineItemModel {
	return &model.LineItemModel{
		ID:             data.ID,
		OrderID:        data.OrderID,
		CatalogEntryID: data.CatalogEntryID,
		Quantity:       data.Quantity,
		UnitPrice:      data.UnitPrice.Decimal,
	}
}
