package models

import (
	"time"
)

// TransactionStatus is the fulfilment state of a school sale
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionCancelled TransactionStatus = "CANCELLED"
)

// SchoolSalesTransaction represents school_sales_transactions table
// (bulk sales made to partner schools)
type SchoolSalesTransaction struct {
	TransactionID   uint              `gorm:"primaryKey;column:transaction_id" json:"transaction_id"`
	SchoolID        uint              `gorm:"not null;index" json:"school_id"`
	TransactionDate time.Time         `gorm:"not null" json:"transaction_date"`
	TotalAmount     float64           `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	Status          TransactionStatus `gorm:"type:varchar(20);not null;default:PENDING" json:"status"`
	PaymentMethod   PaymentMethod     `gorm:"type:varchar(20);not null" json:"payment_method"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`

	// Relationships
	School  SchoolProfile                  `gorm:"foreignKey:SchoolID" json:"school,omitempty"`
	Details []SchoolSalesTransactionDetail `gorm:"foreignKey:TransactionID" json:"details,omitempty"`
}

// TableName specifies the table name for SchoolSalesTransaction
func (SchoolSalesTransaction) TableName() string {
	return "school_sales_transactions"
}

// SchoolSalesTransactionDetail represents school_sales_transaction_details
// table (line items of a school sale)
type SchoolSalesTransactionDetail struct {
	TransactionDetailID uint      `gorm:"primaryKey;column:transaction_detail_id" json:"transaction_detail_id"`
	TransactionID       uint      `gorm:"not null;index" json:"transaction_id"`
	BookID              uint      `gorm:"not null;index" json:"book_id"`
	Quantity            int       `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitPrice           float64   `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	TotalPrice          float64   `gorm:"type:decimal(12,2);not null" json:"total_price"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`

	// Relationships
	Book Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

// TableName specifies the table name for SchoolSalesTransactionDetail
func (SchoolSalesTransactionDetail) TableName() string {
	return "school_sales_transaction_details"
}
