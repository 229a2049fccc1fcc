package database

import (
	"fmt"
	"log"
	"strings"

	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/models"
	"gorm.io/gorm"
)

// AutoMigrate runs auto migration for all models
func AutoMigrate(db *gorm.DB) error {
	log.Println("Starting GORM AutoMigrate...")

	allModels := models.AllModels()

	// First pass: create all tables without foreign keys
	log.Println("Creating tables...")
	migrator := db.Migrator()

	for _, model := range allModels {
		tableName := ""
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err == nil {
			tableName = stmt.Schema.Table
		}

		if !migrator.HasTable(model) {
			if err := migrator.CreateTable(model); err != nil {
				return fmt.Errorf("failed to create table %s: %w", tableName, err)
			}
			log.Printf("  ✓ Created table: %s", tableName)
		} else {
			log.Printf("  ✓ Table already exists: %s", tableName)
		}
	}

	// Second pass: foreign key constraints
	log.Println("Creating foreign key constraints...")
	if err := CreateForeignKeys(db); err != nil {
		log.Printf("Warning: Some foreign keys could not be created: %v", err)
	}

	// Indexes beyond what the column tags declare
	log.Println("Creating indexes...")
	if err := CreateIndexes(db); err != nil {
		log.Printf("Warning: Some indexes could not be created: %v", err)
	}

	log.Println("GORM AutoMigrate completed successfully")
	return nil
}

// CreateForeignKeys creates all foreign key constraints
func CreateForeignKeys(db *gorm.DB) error {
	foreignKeys := []struct {
		table     string
		name      string
		column    string
		refTable  string
		refColumn string
	}{
		// Catalog relationships
		{"book_authors", "fk_book_authors_book", "book_id", "books", "book_id"},
		{"book_authors", "fk_book_authors_author", "author_id", "authors", "author_id"},
		{"book_details", "fk_book_details_book", "book_id", "books", "book_id"},

		// Stock
		{"warehouse_stocks", "fk_warehouse_stocks_book", "book_id", "books", "book_id"},
		{"stocks", "fk_stocks_book", "book_id", "books", "book_id"},
		{"school_stocks", "fk_school_stocks_school", "school_id", "school_profiles", "school_id"},
		{"school_stocks", "fk_school_stocks_book", "book_id", "books", "book_id"},
		{"school_inventories", "fk_school_inventories_school", "school_id", "school_profiles", "school_id"},
		{"school_inventories", "fk_school_inventories_book", "book_id", "books", "book_id"},

		// Bills
		{"bills", "fk_bills_customer", "customer_id", "customers", "customer_id"},
		{"bill_details", "fk_bill_details_bill", "bill_id", "bills", "bill_id"},
		{"bill_details", "fk_bill_details_book", "book_id", "books", "book_id"},

		// School sales
		{"school_sales_transactions", "fk_sales_transactions_school", "school_id", "school_profiles", "school_id"},
		{"school_sales_transaction_details", "fk_sales_details_transaction", "transaction_id", "school_sales_transactions", "transaction_id"},
		{"school_sales_transaction_details", "fk_sales_details_book", "book_id", "books", "book_id"},

		// Returns
		{"returned_books", "fk_returned_books_school", "school_id", "school_profiles", "school_id"},
		{"returned_books", "fk_returned_books_approver", "approved_by_id", "accounts", "account_id"},
		{"returned_book_details", "fk_return_details_return", "return_id", "returned_books", "return_id"},
		{"returned_book_details", "fk_return_details_book", "book_id", "books", "book_id"},
	}

	for _, fk := range foreignKeys {
		// Check if foreign key already exists
		var count int64
		db.Raw(`
			SELECT COUNT(*) FROM information_schema.table_constraints
			WHERE constraint_type = 'FOREIGN KEY'
			AND table_name = ?
			AND constraint_name = ?
		`, fk.table, fk.name).Scan(&count)

		if count > 0 {
			log.Printf("  ✓ Foreign key already exists: %s", fk.name)
			continue
		}

		query := fmt.Sprintf(
			"ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s(%s)",
			fk.table, fk.name, fk.column, fk.refTable, fk.refColumn,
		)

		if err := db.Exec(query).Error; err != nil {
			if strings.Contains(err.Error(), "already exists") {
				continue
			}
			log.Printf("  ⚠ Failed to create foreign key %s: %v", fk.name, err)
		} else {
			log.Printf("  ✓ Created foreign key: %s", fk.name)
		}
	}

	return nil
}

// CreateIndexes creates performance indexes
func CreateIndexes(db *gorm.DB) error {
	indexes := []struct {
		name  string
		query string
	}{
		{"idx_books_active", "CREATE INDEX IF NOT EXISTS idx_books_active ON books(is_active)"},
		{"idx_bills_date", "CREATE INDEX IF NOT EXISTS idx_bills_date ON bills(bill_date)"},
		{"idx_bills_status", "CREATE INDEX IF NOT EXISTS idx_bills_status ON bills(status)"},
		{"idx_sales_transactions_date", "CREATE INDEX IF NOT EXISTS idx_sales_transactions_date ON school_sales_transactions(transaction_date)"},
		{"idx_returned_books_status", "CREATE INDEX IF NOT EXISTS idx_returned_books_status ON returned_books(status)"},
		{"idx_school_inventories_status", "CREATE INDEX IF NOT EXISTS idx_school_inventories_status ON school_inventories(status)"},
	}

	successCount := 0
	for _, idx := range indexes {
		if err := db.Exec(idx.query).Error; err != nil {
			log.Printf("  ⚠ Failed to create index %s: %v", idx.name, err)
		} else {
			successCount++
		}
	}

	if successCount > 0 {
		log.Printf("Successfully created %d indexes", successCount)
	}

	return nil
}
