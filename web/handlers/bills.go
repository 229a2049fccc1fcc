package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/database"
	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/models"
	"gorm.io/gorm"
)

// billLineInput is one requested line item on a new bill or sale
type billLineInput struct {
	BookID   uint `json:"book_id"`
	Quantity int  `json:"quantity"`
}

// BillList returns customer bills with their customers
func BillList(c *fiber.Ctx) error {
	db := database.GetDB()

	query := db.Model(&models.Bill{}).Preload("Customer")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bills []models.Bill
	if err := query.Order("bill_date DESC").Find(&bills).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load bills",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    bills,
	})
}

// BillView returns one bill with its line items
func BillView(c *fiber.Ctx) error {
	db := database.GetDB()

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid bill ID",
		})
	}

	var bill models.Bill
	if err := db.Preload("Customer").Preload("Details").Preload("Details.Book").
		First(&bill, "bill_id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Bill not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    bill,
	})
}

// BillCreate records a customer bill. Line totals and the bill total are
// computed from the current catalog price, never trusted from the caller.
func BillCreate(c *fiber.Ctx) error {
	db := database.GetDB()

	var input struct {
		CustomerID    uint                 `json:"customer_id"`
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

	var customer models.Customer
	if err := db.First(&customer, "customer_id = ?", input.CustomerID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Customer not found",
		})
	}

	if input.PaymentMethod == "" {
		input.PaymentMethod = models.PaymentCash
	}

	var details []models.BillDetail
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
		details = append(details, models.BillDetail{
			BookID:     book.BookID,
			Quantity:   line.Quantity,
			UnitPrice:  book.Price,
			TotalPrice: lineTotal,
		})
		total += lineTotal
	}

	bill := models.Bill{
		CustomerID:    customer.CustomerID,
		BillDate:      time.Now(),
		TotalAmount:   total,
		Status:        models.BillPaid,
		PaymentMethod: input.PaymentMethod,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&bill).Error; err != nil {
			return err
		}
		for i := range details {
			details[i].BillID = bill.BillID
		}
		return tx.Create(&details).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create bill",
		})
	}

	bill.Details = details
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    bill,
	})
}

// CustomerList returns storefront customers
func CustomerList(c *fiber.Ctx) error {
	db := database.GetDB()

	var customers []models.Customer
	if err := db.Order("customer_id").Find(&customers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load customers",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    customers,
	})
}
