package models

import (
	"time"
)

// ReturnStatus is the review state of a returned-book record
type ReturnStatus string

const (
	ReturnPending  ReturnStatus = "PENDING"
	ReturnApproved ReturnStatus = "APPROVED"
	ReturnRejected ReturnStatus = "REJECTED"
)

// ReturnedBook represents returned_books table (books sent back by schools)
type ReturnedBook struct {
	ReturnID     uint         `gorm:"primaryKey;column:return_id" json:"return_id"`
	SchoolID     uint         `gorm:"not null;index" json:"school_id"`
	ApprovedByID *uint        `gorm:"index" json:"approved_by_id,omitempty"`
	ReturnDate   time.Time    `gorm:"not null" json:"return_date"`
	TotalAmount  float64      `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	Status       ReturnStatus `gorm:"type:varchar(20);not null;default:PENDING" json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	// Relationships
	School     SchoolProfile        `gorm:"foreignKey:SchoolID" json:"school,omitempty"`
	ApprovedBy *Account             `gorm:"foreignKey:ApprovedByID" json:"approved_by,omitempty"`
	Details    []ReturnedBookDetail `gorm:"foreignKey:ReturnID" json:"details,omitempty"`
}

// TableName specifies the table name for ReturnedBook
func (ReturnedBook) TableName() string {
	return "returned_books"
}

// ReturnedBookDetail represents returned_book_details table (return line
// items with the stated reason)
type ReturnedBookDetail struct {
	ReturnDetailID uint      `gorm:"primaryKey;column:return_detail_id" json:"return_detail_id"`
	ReturnID       uint      `gorm:"not null;index" json:"return_id"`
	BookID         uint      `gorm:"not null;index" json:"book_id"`
	Quantity       int       `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitPrice      float64   `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	Reason         string    `gorm:"type:varchar(255);not null" json:"reason"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships
	Book Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

// TableName specifies the table name for ReturnedBookDetail
func (ReturnedBookDetail) TableName() string {
	return "returned_book_details"
}
