package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/database"
	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/models"
	"gorm.io/gorm"
)

// SalesList returns school sales transactions with their schools
func SalesList(c *fiber.Ctx) error {
	db := database.GetDB()

	query := db.Model(&models.SchoolSalesTransaction{}).Preload("School")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if schoolID := c.Query("school_id"); schoolID != "" {
		query = query.Where("school_id = ?", schoolID)
	}

	var transactions []models.SchoolSalesTransaction
	if err := query.Order("transaction_date DESC").Find(&transactions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load sales transactions",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    transactions,
	})
}

// SalesView returns one school sale with its line items
func SalesView(c *fiber.Ctx) error {
	db := database.GetDB()

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid transaction ID",
		})
	}

	var transaction models.SchoolSalesTransaction
	if err := db.Preload("School").Preload("Details").Preload("Details.Book").
		First(&transaction, "transaction_id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Transaction not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    transaction,
	})
}

// SalesCreate records a bulk sale to an approved school. Line totals are
// computed from the current catalog price.
func SalesCreate(c *fiber.Ctx) error {
	db := database.GetDB()

	var input struct {
		SchoolID      uint                 `json:"school_id"`
		PaymentMethod models.PaymentMethod `json:"payment_method"`
		Lines         []billLineInput      `json:"lines"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	if len(input.Lines) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "At least one line item is required",
		})
	}

	var school models.SchoolProfile
	if err := db.First(&school, "school_id = ?", input.SchoolID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "School not found",
		})
	}
	if !school.IsApproved {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "School registration is not approved",
		})
	}

	if input.PaymentMethod == "" {
		input.PaymentMethod = models.PaymentTransfer
	}

	var details []models.SchoolSalesTransactionDetail
	var total float64
	for _, line := range input.Lines {
		if line.Quantity <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Line quantity must be positive",
			})
		}

		var book models.Book
		if err := db.First(&book, "book_id = ? AND is_active = ?", line.BookID, true).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Book not found or inactive",
			})
		}

		lineTotal := book.Price * float64(line.Quantity)
		details = append(details, models.SchoolSalesTransactionDetail{
			BookID:     book.BookID,
			Quantity:   line.Quantity,
			UnitPrice:  book.Price,
			TotalPrice: lineTotal,
		})
		total += lineTotal
	}

	transaction := models.SchoolSalesTransaction{
		SchoolID:        school.SchoolID,
		TransactionDate: time.Now(),
		TotalAmount:     total,
		Status:          models.TransactionCompleted,
		PaymentMethod:   input.PaymentMethod,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transaction).Error; err != nil {
			return err
		}
		for i := range details {
			details[i].TransactionID = transaction.TransactionID
		}
		return tx.Create(&details).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create sales transaction",
		})
	}

	transaction.Details = details
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    transaction,
	})
}
