package database

import (
	"testing"

	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with the full schema.
// A single connection keeps every query on the same in-memory instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	return db
}

func rowCount(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestSeedFreshDatabase(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Seed(db))

	// Staff accounts
	var admin models.Account
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, admin.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	var clerk models.Account
	require.NoError(t, db.Where("username = ?", "clerk").First(&clerk).Error)
	assert.Equal(t, models.RoleClerk, clerk.Role)
	assert.EqualValues(t, 2, rowCount(t, db, &models.Account{}))

	// Partner school comes pre-approved
	var school models.SchoolProfile
	require.NoError(t, db.First(&school, "school_id = ?", 1).Error)
	assert.Equal(t, "San Isidro National High School", school.SchoolName)
	assert.True(t, school.IsApproved)

	// Catalog: anchor book plus ten bulk titles
	assert.EqualValues(t, 11, rowCount(t, db, &models.Book{}))

	var anchor models.Book
	require.NoError(t, db.Where("isbn = ?", "978-971-23-8231-4").First(&anchor).Error)
	assert.EqualValues(t, 1, anchor.BookID)
	assert.Equal(t, "General Mathematics for Senior High School", anchor.Title)
	assert.Equal(t, 499.99, anchor.Price)
	assert.True(t, anchor.IsActive)

	var link models.BookAuthor
	require.NoError(t, db.Where("book_id = ? AND author_id = ?", 1, 1).First(&link).Error)

	var detail models.BookDetail
	require.NoError(t, db.Where("book_id = ?", 1).First(&detail).Error)
	assert.Equal(t, "Second Edition", detail.Edition)
	assert.Equal(t, 512, detail.PageCount)

	// Stock on all three ledgers
	var warehouse models.WarehouseStock
	require.NoError(t, db.First(&warehouse, "warehouse_stock_id = ?", 1).Error)
	assert.Equal(t, 500, warehouse.Quantity)
	require.NotNil(t, warehouse.Location)
	assert.Equal(t, "Main Warehouse - Rack A3", *warehouse.Location)

	var stock models.Stock
	require.NoError(t, db.First(&stock, "stock_id = ?", 1).Error)
	assert.Equal(t, 150, stock.Quantity)

	var schoolStock models.SchoolStock
	require.NoError(t, db.Where("school_id = ? AND book_id = ?", 1, 1).First(&schoolStock).Error)
	assert.Equal(t, 120, schoolStock.Quantity)
	assert.Equal(t, models.ApprovalApproved, schoolStock.Status)

	var inventory models.SchoolInventory
	require.NoError(t, db.First(&inventory, "school_inventory_id = ?", 1).Error)
	assert.Equal(t, 80, inventory.Quantity)
	assert.Equal(t, models.ApprovalPending, inventory.Status)

	// Customer bill: two anchor books at 499.99
	var bill models.Bill
	require.NoError(t, db.Preload("Customer").First(&bill, "bill_id = ?", 1).Error)
	assert.Equal(t, 999.98, bill.TotalAmount)
	assert.Equal(t, models.BillPaid, bill.Status)
	assert.Equal(t, models.PaymentCash, bill.PaymentMethod)
	assert.Equal(t, "Maria Clara Santos", bill.Customer.FullName)

	var billDetail models.BillDetail
	require.NoError(t, db.First(&billDetail, "bill_detail_id = ?", 1).Error)
	assert.Equal(t, bill.BillID, billDetail.BillID)
	assert.Equal(t, 2, billDetail.Quantity)
	assert.Equal(t, 499.99, billDetail.UnitPrice)
	assert.Equal(t, 999.98, billDetail.TotalPrice)

	// School sale: one anchor book, completed, paid by transfer
	var txn models.SchoolSalesTransaction
	require.NoError(t, db.First(&txn, "transaction_id = ?", 1).Error)
	assert.Equal(t, 499.99, txn.TotalAmount)
	assert.Equal(t, models.TransactionCompleted, txn.Status)
	assert.Equal(t, models.PaymentTransfer, txn.PaymentMethod)

	var txnDetail models.SchoolSalesTransactionDetail
	require.NoError(t, db.First(&txnDetail, "transaction_detail_id = ?", 1).Error)
	assert.Equal(t, txn.TransactionID, txnDetail.TransactionID)
	assert.Equal(t, 1, txnDetail.Quantity)

	// Approved return, decided by the seeded admin
	var returned models.ReturnedBook
	require.NoError(t, db.First(&returned, "return_id = ?", 1).Error)
	assert.Equal(t, models.ReturnApproved, returned.Status)
	assert.Equal(t, 499.99, returned.TotalAmount)
	require.NotNil(t, returned.ApprovedByID)
	assert.Equal(t, admin.AccountID, *returned.ApprovedByID)

	var returnDetail models.ReturnedBookDetail
	require.NoError(t, db.First(&returnDetail, "return_detail_id = ?", 1).Error)
	assert.Equal(t, returned.ReturnID, returnDetail.ReturnID)
	assert.Equal(t, 1, returnDetail.Quantity)
	assert.Equal(t, 499.99, returnDetail.UnitPrice)
	assert.Equal(t, "Damaged", returnDetail.Reason)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Seed(db))

	var adminBefore models.Account
	require.NoError(t, db.Where("username = ?", "admin").First(&adminBefore).Error)
	hashBefore := adminBefore.PasswordHash

	require.NoError(t, Seed(db))

	assert.EqualValues(t, 2, rowCount(t, db, &models.Account{}))
	assert.EqualValues(t, 1, rowCount(t, db, &models.SchoolProfile{}))
	assert.EqualValues(t, 11, rowCount(t, db, &models.Book{}))
	assert.EqualValues(t, 1, rowCount(t, db, &models.BookAuthor{}))
	assert.EqualValues(t, 1, rowCount(t, db, &models.Bill{}))
	assert.EqualValues(t, 1, rowCount(t, db, &models.BillDetail{}))
	assert.EqualValues(t, 1, rowCount(t, db, &models.SchoolSalesTransaction{}))
	assert.EqualValues(t, 1, rowCount(t, db, &models.ReturnedBook{}))
	assert.EqualValues(t, 1, rowCount(t, db, &models.ReturnedBookDetail{}))

	// Existing rows are left untouched, not rewritten
	var adminAfter models.Account
	require.NoError(t, db.Where("username = ?", "admin").First(&adminAfter).Error)
	assert.Equal(t, adminBefore.AccountID, adminAfter.AccountID)
	assert.Equal(t, hashBefore, adminAfter.PasswordHash)
}

func TestSeedSkipsExistingCatalogBooks(t *testing.T) {
	db := newTestDB(t)

	existing := models.Book{
		ISBN:      "978-971-23-8236-9",
		Title:     "Philosophy of the Human Person (Pilot Print)",
		Price:     250.00,
		Publisher: "Nehemiah Publishing House",
		IsActive:  true,
	}
	require.NoError(t, db.Create(&existing).Error)

	require.NoError(t, Seed(db))

	// The bulk step fills in only the missing titles
	assert.EqualValues(t, 11, rowCount(t, db, &models.Book{}))

	var book models.Book
	require.NoError(t, db.Where("isbn = ?", "978-971-23-8236-9").First(&book).Error)
	assert.Equal(t, "Philosophy of the Human Person (Pilot Print)", book.Title)
	assert.Equal(t, 250.00, book.Price)
}

func TestSeedStopsAtFirstFailure(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.Bill{}))

	err := Seed(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to seed bill")

	// Steps before the failure are committed and stay
	assert.EqualValues(t, 2, rowCount(t, db, &models.Account{}))
	assert.EqualValues(t, 11, rowCount(t, db, &models.Book{}))
	assert.EqualValues(t, 1, rowCount(t, db, &models.Customer{}))

	// Steps after the failure never ran
	assert.EqualValues(t, 0, rowCount(t, db, &models.SchoolSalesTransaction{}))
	assert.EqualValues(t, 0, rowCount(t, db, &models.ReturnedBook{}))

	// Restoring the table lets a re-run finish the sequence
	require.NoError(t, db.Migrator().CreateTable(&models.Bill{}))
	require.NoError(t, Seed(db))
	assert.EqualValues(t, 1, rowCount(t, db, &models.Bill{}))
	assert.EqualValues(t, 1, rowCount(t, db, &models.SchoolSalesTransaction{}))
	assert.EqualValues(t, 1, rowCount(t, db, &models.ReturnedBook{}))
}

func TestSeedWithoutSchemaFails(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = Seed(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to seed accounts")
}

func TestCreateIfAbsent(t *testing.T) {
	db := newTestDB(t)

	customer := models.Customer{CustomerID: 7, FullName: "Test Customer"}
	created, err := createIfAbsent(db, &models.Customer{}, &customer, "customer_id = ?", 7)
	require.NoError(t, err)
	assert.True(t, created)

	duplicate := models.Customer{CustomerID: 7, FullName: "Someone Else"}
	created, err = createIfAbsent(db, &models.Customer{}, &duplicate, "customer_id = ?", 7)
	require.NoError(t, err)
	assert.False(t, created)

	var stored models.Customer
	require.NoError(t, db.First(&stored, "customer_id = ?", 7).Error)
	assert.Equal(t, "Test Customer", stored.FullName)
	assert.EqualValues(t, 1, rowCount(t, db, &models.Customer{}))
}
