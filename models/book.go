package models

import (
	"time"
)

// Book represents books table (the textbook catalog)
type Book struct {
	BookID      uint      `gorm:"primaryKey;column:book_id" json:"book_id"`
	ISBN        string    `gorm:"type:varchar(20);not null;uniqueIndex" json:"isbn"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Price       float64   `gorm:"type:decimal(12,2);not null;check:price > 0" json:"price"`
	Publisher   string    `gorm:"type:varchar(200);not null" json:"publisher"`
	PublishedAt time.Time `json:"published_at"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for Book
func (Book) TableName() string {
	return "books"
}

// BookAuthor represents book_authors table (book to author join rows)
type BookAuthor struct {
	BookAuthorID uint      `gorm:"primaryKey;column:book_author_id" json:"book_author_id"`
	BookID       uint      `gorm:"not null;uniqueIndex:idx_book_author" json:"book_id"`
	AuthorID     uint      `gorm:"not null;uniqueIndex:idx_book_author" json:"author_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	Book   Book   `gorm:"foreignKey:BookID" json:"book,omitempty"`
	Author Author `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// TableName specifies the table name for BookAuthor
func (BookAuthor) TableName() string {
	return "book_authors"
}

// BookDetail represents book_details table (physical edition data)
type BookDetail struct {
	BookDetailID uint      `gorm:"primaryKey;column:book_detail_id" json:"book_detail_id"`
	BookID       uint      `gorm:"not null;uniqueIndex" json:"book_id"`
	Edition      string    `gorm:"type:varchar(50);not null" json:"edition"`
	Format       string    `gorm:"type:varchar(50);not null" json:"format"`
	PageCount    int       `gorm:"not null;check:page_count > 0" json:"page_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	Book Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

// TableName specifies the table name for BookDetail
func (BookDetail) TableName() string {
	return "book_details"
}
