package models

import (
	"time"
)

// WarehouseStock represents warehouse_stocks table (central warehouse holdings)
type WarehouseStock struct {
	WarehouseStockID uint      `gorm:"primaryKey;column:warehouse_stock_id" json:"warehouse_stock_id"`
	BookID           uint      `gorm:"not null;index" json:"book_id"`
	Quantity         int       `gorm:"not null;default:0;check:quantity >= 0" json:"quantity"`
	Location         *string   `gorm:"type:varchar(100)" json:"location,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relationships
	Book Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

// TableName specifies the table name for WarehouseStock
func (WarehouseStock) TableName() string {
	return "warehouse_stocks"
}

// Stock represents stocks table (sellable stock available to the storefront)
type Stock struct {
	StockID   uint      `gorm:"primaryKey;column:stock_id" json:"stock_id"`
	BookID    uint      `gorm:"not null;index" json:"book_id"`
	Quantity  int       `gorm:"not null;default:0;check:quantity >= 0" json:"quantity"`
	Location  *string   `gorm:"type:varchar(100)" json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Book Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

// TableName specifies the table name for Stock
func (Stock) TableName() string {
	return "stocks"
}
