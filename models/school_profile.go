package models

import (
	"time"
)

// SchoolProfile represents school_profiles table (registered partner schools)
type SchoolProfile struct {
	SchoolID      uint      `gorm:"primaryKey;column:school_id" json:"school_id"`
	SchoolName    string    `gorm:"type:varchar(200);not null" json:"school_name"`
	ContactPerson *string   `gorm:"type:varchar(200)" json:"contact_person,omitempty"`
	Phone         *string   `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Email         *string   `gorm:"type:varchar(200)" json:"email,omitempty"`
	Address       *string   `gorm:"type:text" json:"address,omitempty"`
	IsApproved    bool      `gorm:"default:false" json:"is_approved"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName specifies the table name for SchoolProfile
func (SchoolProfile) TableName() string {
	return "school_profiles"
}
