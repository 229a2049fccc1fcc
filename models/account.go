package models

import (
	"time"
)

// Role is the access level of a staff account
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleClerk Role = "CLERK"
)

// Account represents accounts table (staff login accounts)
type Account struct {
	AccountID    uint      `gorm:"primaryKey;column:account_id" json:"account_id"`
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	FullName     string    `gorm:"type:varchar(200);not null" json:"full_name"`
	Role         Role      `gorm:"type:varchar(20);not null" json:"role"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
