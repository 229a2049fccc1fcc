package models

import (
	"time"
)

// PaymentMethod enumerates how a bill or transaction was settled
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentCard     PaymentMethod = "CARD"
	PaymentTransfer PaymentMethod = "TRANSFER"
)

// BillStatus is the settlement state of a customer bill
type BillStatus string

const (
	BillPending   BillStatus = "PENDING"
	BillPaid      BillStatus = "PAID"
	BillCancelled BillStatus = "CANCELLED"
)

// Bill represents bills table (storefront customer bills)
type Bill struct {
	BillID        uint          `gorm:"primaryKey;column:bill_id" json:"bill_id"`
	CustomerID    uint          `gorm:"not null;index" json:"customer_id"`
	BillDate      time.Time     `gorm:"not null" json:"bill_date"`
	TotalAmount   float64       `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	Status        BillStatus    `gorm:"type:varchar(20);not null;default:PENDING" json:"status"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(20);not null" json:"payment_method"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	// Relationships
	Customer Customer     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Details  []BillDetail `gorm:"foreignKey:BillID" json:"details,omitempty"`
}

// TableName specifies the table name for Bill
func (Bill) TableName() string {
	return "bills"
}

// BillDetail represents bill_details table (bill line items)
type BillDetail struct {
	BillDetailID uint      `gorm:"primaryKey;column:bill_detail_id" json:"bill_detail_id"`
	BillID       uint      `gorm:"not null;index" json:"bill_id"`
	BookID       uint      `gorm:"not null;index" json:"book_id"`
	Quantity     int       `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitPrice    float64   `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	TotalPrice   float64   `gorm:"type:decimal(12,2);not null" json:"total_price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	Book Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

// TableName specifies the table name for BillDetail
func (BillDetail) TableName() string {
	return "bill_details"
}
