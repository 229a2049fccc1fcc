package models

import (
	"time"
)

// Customer represents customers table (walk-in storefront buyers)
type Customer struct {
	CustomerID uint      `gorm:"primaryKey;column:customer_id" json:"customer_id"`
	FullName   string    `gorm:"type:varchar(200);not null" json:"full_name"`
	Phone      *string   `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Email      *string   `gorm:"type:varchar(200)" json:"email,omitempty"`
	Address    *string   `gorm:"type:text" json:"address,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for Customer
func (Customer) TableName() string {
	return "customers"
}
