package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogEntryModel is the GORM-specific struct for the 'catalog_entries' table.
type CatalogEntryModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text;not null;default:''"`
	BasePrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ImageRef    string          `gorm:"type:varchar(512);not null;default:''"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CatalogEntryModel) TableName() string {
	return "catalog_entries"
}
