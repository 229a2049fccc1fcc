package models

// AllModels returns all model structs for auto-migration
// IMPORTANT: Order matters! Parent tables must be created before child tables
func AllModels() []interface{} {
	return []interface{}{
		// 1. Independent tables (no foreign keys)
		&Account{},
		&SchoolProfile{},
		&Author{},
		&Book{},
		&Customer{},

		// 2. Tables depending on the catalog
		&BookAuthor{},     // depends on: Book, Author
		&BookDetail{},     // depends on: Book
		&WarehouseStock{}, // depends on: Book
		&Stock{},          // depends on: Book

		// 3. School-side inventory
		&SchoolStock{},     // depends on: SchoolProfile, Book
		&SchoolInventory{}, // depends on: SchoolProfile, Book

		// 4. Commerce headers
		&Bill{},                   // depends on: Customer
		&SchoolSalesTransaction{}, // depends on: SchoolProfile
		&ReturnedBook{},           // depends on: SchoolProfile, Account

		// 5. Detail tables
		&BillDetail{},                   // depends on: Bill, Book
		&SchoolSalesTransactionDetail{}, // depends on: SchoolSalesTransaction, Book
		&ReturnedBookDetail{},           // depends on: ReturnedBook, Book
	}
}
