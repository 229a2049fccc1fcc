package database

import (
	"fmt"
	"log"
	"time"

	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// seedBcryptCost is the hashing cost for the two bootstrap accounts
const seedBcryptCost = 12

// Fixed ids for the singleton reference rows. Natural keys (username,
// ISBN, school/book pair) are used wherever the row has one.
const (
	seedSchoolID      = 1
	seedAuthorID      = 1
	seedAnchorBookID  = 1
	seedCustomerID    = 1
	seedBillID        = 1
	seedTransactionID = 1
	seedReturnID      = 1
)

// seedDate anchors all transactional sample rows so repeated runs
// produce identical content
var seedDate = time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC)

// Seed populates the reference dataset: staff accounts, one partner
// school, the textbook catalog, stock, and one sample bill, school sale
// and return. Steps run in strict foreign-key order and each step is
// create-if-absent, so re-running converges to the same rows.
//
// Seed is deliberately not wrapped in a transaction: a mid-run failure
// aborts the sequence and leaves already-committed rows in place, and
// the next run picks up where it stopped.
func Seed(db *gorm.DB) error {
	log.Println("Starting reference data seed...")

	adminID, err := seedAccounts(db)
	if err != nil {
		return fmt.Errorf("failed to seed accounts: %w", err)
	}

	if err := seedSchoolProfile(db); err != nil {
		return fmt.Errorf("failed to seed school profile: %w", err)
	}

	if err := seedAuthor(db); err != nil {
		return fmt.Errorf("failed to seed author: %w", err)
	}

	if err := seedAnchorBook(db); err != nil {
		return fmt.Errorf("failed to seed anchor book: %w", err)
	}

	if err := seedCatalogBooks(db); err != nil {
		return fmt.Errorf("failed to seed catalog books: %w", err)
	}

	if err := seedBookAuthor(db); err != nil {
		return fmt.Errorf("failed to seed book author link: %w", err)
	}

	if err := seedBookDetail(db); err != nil {
		return fmt.Errorf("failed to seed book detail: %w", err)
	}

	if err := seedWarehouseStock(db); err != nil {
		return fmt.Errorf("failed to seed warehouse stock: %w", err)
	}

	if err := seedStock(db); err != nil {
		return fmt.Errorf("failed to seed stock: %w", err)
	}

	if err := seedSchoolStock(db); err != nil {
		return fmt.Errorf("failed to seed school stock: %w", err)
	}

	if err := seedSchoolInventory(db); err != nil {
		return fmt.Errorf("failed to seed school inventory: %w", err)
	}

	if err := seedCustomer(db); err != nil {
		return fmt.Errorf("failed to seed customer: %w", err)
	}

	if err := seedBill(db); err != nil {
		return fmt.Errorf("failed to seed bill: %w", err)
	}

	if err := seedSalesTransaction(db); err != nil {
		return fmt.Errorf("failed to seed sales transaction: %w", err)
	}

	if err := seedReturn(db, adminID); err != nil {
		return fmt.Errorf("failed to seed return: %w", err)
	}

	log.Println("✅ Reference data seeded successfully!")
	return nil
}

func seedAccounts(db *gorm.DB) (uint, error) {
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), seedBcryptCost)
	if err != nil {
		return 0, err
	}
	clerkHash, err := bcrypt.GenerateFromPassword([]byte("clerk123"), seedBcryptCost)
	if err != nil {
		return 0, err
	}

	accounts := []models.Account{
		{
			Username:     "admin",
			PasswordHash: string(adminHash),
			FullName:     "System Administrator",
			Role:         models.RoleAdmin,
			IsActive:     true,
		},
		{
			Username:     "clerk",
			PasswordHash: string(clerkHash),
			FullName:     "Distribution Clerk",
			Role:         models.RoleClerk,
			IsActive:     true,
		},
	}

	for i := range accounts {
		if _, err := createIfAbsent(db, &models.Account{}, &accounts[i], "username = ?", accounts[i].Username); err != nil {
			return 0, err
		}
	}
	log.Printf("  ✓ Seeded %d accounts", len(accounts))

	var admin models.Account
	if err := db.Where("username = ?", "admin").First(&admin).Error; err != nil {
		return 0, err
	}
	return admin.AccountID, nil
}

func seedSchoolProfile(db *gorm.DB) error {
	school := models.SchoolProfile{
		SchoolID:      seedSchoolID,
		SchoolName:    "San Isidro National High School",
		ContactPerson: strPtr("Rowena D. Bautista"),
		Phone:         strPtr("+63-2-8844-1201"),
		Email:         strPtr("registrar@sinhs.edu.ph"),
		Address:       strPtr("24 Mabini St., San Isidro, Quezon City"),
		IsApproved:    true,
	}

	created, err := createIfAbsent(db, &models.SchoolProfile{}, &school, "school_id = ?", seedSchoolID)
	if err != nil {
		return err
	}
	if created {
		log.Println("  ✓ Seeded school profile")
	}
	return nil
}

func seedAuthor(db *gorm.DB) error {
	author := models.Author{
		AuthorID: seedAuthorID,
		FullName: "Orlando A. Oronce",
		Biography: strPtr("Mathematics educator and long-time textbook author " +
			"for the secondary-level general mathematics series."),
	}

	created, err := createIfAbsent(db, &models.Author{}, &author, "author_id = ?", seedAuthorID)
	if err != nil {
		return err
	}
	if created {
		log.Println("  ✓ Seeded author")
	}
	return nil
}

func seedAnchorBook(db *gorm.DB) error {
	book := models.Book{
		BookID:      seedAnchorBookID,
		ISBN:        "978-971-23-8231-4",
		Title:       "General Mathematics for Senior High School",
		Price:       499.99,
		Publisher:   "Nehemiah Publishing House",
		PublishedAt: time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC),
		IsActive:    true,
	}

	created, err := createIfAbsent(db, &models.Book{}, &book, "book_id = ?", seedAnchorBookID)
	if err != nil {
		return err
	}
	if created {
		log.Println("  ✓ Seeded anchor book")
	}
	return nil
}

func seedCatalogBooks(db *gorm.DB) error {
	published := func(year int, month time.Month) time.Time {
		return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	}

	books := []models.Book{
		{ISBN: "978-971-23-8232-1", Title: "Earth and Life Science", Price: 459.50, Publisher: "Nehemiah Publishing House", PublishedAt: published(2023, time.January), IsActive: true},
		{ISBN: "978-971-23-8233-8", Title: "Oral Communication in Context", Price: 389.00, Publisher: "Nehemiah Publishing House", PublishedAt: published(2023, time.February), IsActive: true},
		{ISBN: "978-971-23-8234-5", Title: "Komunikasyon at Pananaliksik", Price: 365.75, Publisher: "Nehemiah Publishing House", PublishedAt: published(2023, time.February), IsActive: true},
		{ISBN: "978-971-23-8235-2", Title: "Understanding Culture, Society and Politics", Price: 412.25, Publisher: "Nehemiah Publishing House", PublishedAt: published(2023, time.April), IsActive: true},
		{ISBN: "978-971-23-8236-9", Title: "Introduction to the Philosophy of the Human Person", Price: 398.00, Publisher: "Nehemiah Publishing House", PublishedAt: published(2023, time.May), IsActive: true},
		{ISBN: "978-971-23-8237-6", Title: "Physical Education and Health Volume I", Price: 329.50, Publisher: "Nehemiah Publishing House", PublishedAt: published(2023, time.June), IsActive: true},
		{ISBN: "978-971-23-8238-3", Title: "Statistics and Probability", Price: 475.00, Publisher: "Nehemiah Publishing House", PublishedAt: published(2023, time.July), IsActive: true},
		{ISBN: "978-971-23-8239-0", Title: "Reading and Writing Skills", Price: 355.25, Publisher: "Nehemiah Publishing House", PublishedAt: published(2023, time.August), IsActive: true},
		{ISBN: "978-971-23-8240-6", Title: "21st Century Literature from the Philippines and the World", Price: 420.00, Publisher: "Nehemiah Publishing House", PublishedAt: published(2023, time.September), IsActive: true},
		{ISBN: "978-971-23-8241-3", Title: "Empowerment Technologies", Price: 445.50, Publisher: "Nehemiah Publishing House", PublishedAt: published(2023, time.October), IsActive: true},
	}

	var missing []models.Book
	for _, book := range books {
		var count int64
		if err := db.Model(&models.Book{}).Where("isbn = ?", book.ISBN).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			missing = append(missing, book)
		}
	}

	if len(missing) > 0 {
		if err := db.Create(&missing).Error; err != nil {
			return err
		}
	}
	log.Printf("  ✓ Seeded %d catalog books (%d already present)", len(missing), len(books)-len(missing))
	return nil
}

func seedBookAuthor(db *gorm.DB) error {
	link := models.BookAuthor{
		BookID:   seedAnchorBookID,
		AuthorID: seedAuthorID,
	}

	created, err := createIfAbsent(db, &models.BookAuthor{}, &link,
		"book_id = ? AND author_id = ?", seedAnchorBookID, seedAuthorID)
	if err != nil {
		return err
	}
	if created {
		log.Println("  ✓ Seeded book-author link")
	}
	return nil
}

func seedBookDetail(db *gorm.DB) error {
	detail := models.BookDetail{
		BookDetailID: 1,
		BookID:       seedAnchorBookID,
		Edition:      "Second Edition",
		Format:       "Paperback",
		PageCount:    512,
	}

	created, err := createIfAbsent(db, &models.BookDetail{}, &detail, "book_detail_id = ?", detail.BookDetailID)
	if err != nil {
		return err
	}
	if created {
		log.Println("  ✓ Seeded book detail")
	}
	return nil
}

func seedWarehouseStock(db *gorm.DB) error {
	stock := models.WarehouseStock{
		WarehouseStockID: 1,
		BookID:           seedAnchorBookID,
		Quantity:         500,
		Location:         strPtr("Main Warehouse - Rack A3"),
	}

	created, err := createIfAbsent(db, &models.WarehouseStock{}, &stock, "warehouse_stock_id = ?", stock.WarehouseStockID)
	if err != nil {
		return err
	}
	if created {
		log.Println("  ✓ Seeded warehouse stock")
	}
	return nil
}

func seedStock(db *gorm.DB) error {
	stock := models.Stock{
		StockID:  1,
		BookID:   seedAnchorBookID,
		Quantity: 150,
		Location: strPtr("Storefront"),
	}

	created, err := createIfAbsent(db, &models.Stock{}, &stock, "stock_id = ?", stock.StockID)
	if err != nil {
		return err
	}
	if created {
		log.Println("  ✓ Seeded stock")
	}
	return nil
}

func seedSchoolStock(db *gorm.DB) error {
	stock := models.SchoolStock{
		SchoolID: seedSchoolID,
		BookID:   seedAnchorBookID,
		Quantity: 120,
		Status:   models.ApprovalApproved,
	}

	created, err := createIfAbsent(db, &models.SchoolStock{}, &stock,
		"school_id = ? AND book_id = ?", seedSchoolID, seedAnchorBookID)
	if err != nil {
		return err
	}
	if created {
		log.Println("  ✓ Seeded school stock")
	}
	return nil
}

func seedSchoolInventory(db *gorm.DB) error {
	inventory := models.SchoolInventory{
		SchoolInventoryID: 1,
		SchoolID:          seedSchoolID,
		BookID:            seedAnchorBookID,
		Quantity:          80,
		Status:            models.ApprovalPending,
	}

	created, err := createIfAbsent(db, &models.SchoolInventory{}, &inventory,
		"school_inventory_id = ?", inventory.SchoolInventoryID)
	if err != nil {
		return err
	}
	if created {
		log.Println("  ✓ Seeded school inventory")
	}
	return nil
}

func seedCustomer(db *gorm.DB) error {
	customer := models.Customer{
		CustomerID: seedCustomerID,
		FullName:   "Maria Clara Santos",
		Phone:      strPtr("+63-917-555-0134"),
		Email:      strPtr("mc.santos@example.com"),
		Address:    strPtr("88 Katipunan Ave., Quezon City"),
	}

	created, err := createIfAbsent(db, &models.Customer{}, &customer, "customer_id = ?", seedCustomerID)
	if err != nil {
		return err
	}
	if created {
		log.Println("  ✓ Seeded customer")
	}
	return nil
}

func seedBill(db *gorm.DB) error {
	bill := models.Bill{
		BillID:        seedBillID,
		CustomerID:    seedCustomerID,
		BillDate:      seedDate,
		TotalAmount:   999.98,
		Status:        models.BillPaid,
		PaymentMethod: models.PaymentCash,
	}

	created, err := createIfAbsent(db, &models.Bill{}, &bill, "bill_id = ?", seedBillID)
	if err != nil {
		return err
	}

	detail := models.BillDetail{
		BillDetailID: 1,
		BillID:       seedBillID,
		BookID:       seedAnchorBookID,
		Quantity:     2,
		UnitPrice:    499.99,
		TotalPrice:   999.98,
	}
	if _, err := createIfAbsent(db, &models.BillDetail{}, &detail, "bill_detail_id = ?", detail.BillDetailID); err != nil {
		return err
	}

	if created {
		log.Println("  ✓ Seeded bill with 1 line item")
	}
	return nil
}

func seedSalesTransaction(db *gorm.DB) error {
	transaction := models.SchoolSalesTransaction{
		TransactionID:   seedTransactionID,
		SchoolID:        seedSchoolID,
		TransactionDate: seedDate,
		TotalAmount:     499.99,
		Status:          models.TransactionCompleted,
		PaymentMethod:   models.PaymentTransfer,
	}

	created, err := createIfAbsent(db, &models.SchoolSalesTransaction{}, &transaction,
		"transaction_id = ?", seedTransactionID)
	if err != nil {
		return err
	}

	detail := models.SchoolSalesTransactionDetail{
		TransactionDetailID: 1,
		TransactionID:       seedTransactionID,
		BookID:              seedAnchorBookID,
		Quantity:            1,
		UnitPrice:           499.99,
		TotalPrice:          499.99,
	}
	if _, err := createIfAbsent(db, &models.SchoolSalesTransactionDetail{}, &detail,
		"transaction_detail_id = ?", detail.TransactionDetailID); err != nil {
		return err
	}

	if created {
		log.Println("  ✓ Seeded school sales transaction with 1 line item")
	}
	return nil
}

func seedReturn(db *gorm.DB, adminID uint) error {
	returned := models.ReturnedBook{
		ReturnID:     seedReturnID,
		SchoolID:     seedSchoolID,
		ApprovedByID: uintPtr(adminID),
		ReturnDate:   seedDate.AddDate(0, 0, 14),
		TotalAmount:  499.99,
		Status:       models.ReturnApproved,
	}

	created, err := createIfAbsent(db, &models.ReturnedBook{}, &returned, "return_id = ?", seedReturnID)
	if err != nil {
		return err
	}

	detail := models.ReturnedBookDetail{
		ReturnDetailID: 1,
		ReturnID:       seedReturnID,
		BookID:         seedAnchorBookID,
		Quantity:       1,
		UnitPrice:      499.99,
		Reason:         "Damaged",
	}
	if _, err := createIfAbsent(db, &models.ReturnedBookDetail{}, &detail,
		"return_detail_id = ?", detail.ReturnDetailID); err != nil {
		return err
	}

	if created {
		log.Println("  ✓ Seeded returned book record with 1 line item")
	}
	return nil
}
