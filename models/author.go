package models

import (
	"time"
)

// Author represents authors table
type Author struct {
	AuthorID  uint      `gorm:"primaryKey;column:author_id" json:"author_id"`
	FullName  string    `gorm:"type:varchar(200);not null" json:"full_name"`
	Biography *string   `gorm:"type:text" json:"biography,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Author
func (Author) TableName() string {
	return "authors"
}
