package models

import (
	"time"
)

// ApprovalStatus is the review state of school-side stock records
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// SchoolStock represents school_stocks table (per-school book holdings,
// keyed by the school/book pair)
type SchoolStock struct {
	SchoolStockID uint           `gorm:"primaryKey;column:school_stock_id" json:"school_stock_id"`
	SchoolID      uint           `gorm:"not null;uniqueIndex:idx_school_book" json:"school_id"`
	BookID        uint           `gorm:"not null;uniqueIndex:idx_school_book" json:"book_id"`
	Quantity      int            `gorm:"not null;default:0;check:quantity >= 0" json:"quantity"`
	Status        ApprovalStatus `gorm:"type:varchar(20);not null;default:PENDING" json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`

	// Relationships
	School SchoolProfile `gorm:"foreignKey:SchoolID" json:"school,omitempty"`
	Book   Book          `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

// TableName specifies the table name for SchoolStock
func (SchoolStock) TableName() string {
	return "school_stocks"
}

// SchoolInventory represents school_inventories table (inventory declarations
// submitted by schools awaiting clerk/admin review)
type SchoolInventory struct {
	SchoolInventoryID uint           `gorm:"primaryKey;column:school_inventory_id" json:"school_inventory_id"`
	SchoolID          uint           `gorm:"not null;index" json:"school_id"`
	BookID            uint           `gorm:"not null;index" json:"book_id"`
	Quantity          int            `gorm:"not null;default:0;check:quantity >= 0" json:"quantity"`
	Status            ApprovalStatus `gorm:"type:varchar(20);not null;default:PENDING" json:"status"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`

	// Relationships
	School SchoolProfile `gorm:"foreignKey:SchoolID" json:"school,omitempty"`
	Book   Book          `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

// TableName specifies the table name for SchoolInventory
func (SchoolInventory) TableName() string {
	return "school_inventories"
}
