package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// The delivery address and location are value objects flattened into the row.
type OrderModel struct {
	ID                int64     `gorm:"primaryKey;autoIncrement"`
	OwnerID           uuid.UUID `gorm:"type:uuid;not null;index:idx_orders_owner_created,priority:1"`
	CreatedAt         time.Time `gorm:"not null;index:idx_orders_owner_created,priority:2,sort:desc"`
	DeliveryName      string    `gorm:"type:varchar(255);not null;default:''"`
	DeliveryLine1     string    `gorm:"type:varchar(255);not null;default:''"`
	DeliveryLine2     string    `gorm:"type:varchar(255);not null;default:''"`
	DeliveryCity      string    `gorm:"type:varchar(128);not null;default:''"`
	DeliveryRegion    string    `gorm:"type:varchar(128);not null;default:''"`
	DeliveryPostal    string    `gorm:"column:delivery_postal_code;type:varchar(32);not null;default:''"`
	DeliveryLatitude  float64   `gorm:"type:double precision;not null"`
	DeliveryLongitude float64   `gorm:"type:double precision;not null"`

	LineItems []LineItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// LineItemModel is the GORM-specific struct for the 'line_items' table.
// UnitPrice is the catalog price captured when the order was placed.
type LineItemModel struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	OrderID        int64           `gorm:"not null;index"`
	CatalogEntryID int64           `gorm:"not null;index"`
	Quantity       int             `gorm:"not null;check:chk_line_items_quantity,quantity BETWEEN 1 AND 10"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	CatalogEntry *CatalogEntryModel `gorm:"foreignKey:CatalogEntryID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (LineItemModel) TableName() string {
	return "line_items"
}
