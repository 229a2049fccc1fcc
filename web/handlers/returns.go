package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/database"
	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/models"
	"gorm.io/gorm"
)

// ReturnList returns school book returns with their schools
func ReturnList(c *fiber.Ctx) error {
	db := database.GetDB()

	query := db.Model(&models.ReturnedBook{}).Preload("School")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var returns []models.ReturnedBook
	if err := query.Order("return_date DESC").Find(&returns).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load returns",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    returns,
	})
}

// ReturnView returns one return record with its line items and approver
func ReturnView(c *fiber.Ctx) error {
	db := database.GetDB()

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid return ID",
		})
	}

	var returned models.ReturnedBook
	if err := db.Preload("School").Preload("ApprovedBy").
		Preload("Details").Preload("Details.Book").
		First(&returned, "return_id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Return not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    returned,
	})
}

// ReturnCreate records books sent back by a school, pending approval
func ReturnCreate(c *fiber.Ctx) error {
	db := database.GetDB()

	var input struct {
		SchoolID uint `json:"school_id"`
		Lines    []struct {
			BookID   uint   `json:"book_id"`
			Quantity int    `json:"quantity"`
			Reason   string `json:"reason"`
		} `json:"lines"`
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

	var details []models.ReturnedBookDetail
	var total float64
	for _, line := range input.Lines {
		if line.Quantity <= 0 || line.Reason == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Each line needs a positive quantity and a reason",
			})
		}

		var book models.Book
		if err := db.First(&book, "book_id = ?", line.BookID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Book not found",
			})
		}

		details = append(details, models.ReturnedBookDetail{
			BookID:    book.BookID,
			Quantity:  line.Quantity,
			UnitPrice: book.Price,
			Reason:    line.Reason,
		})
		total += book.Price * float64(line.Quantity)
	}

	returned := models.ReturnedBook{
		SchoolID:    school.SchoolID,
		ReturnDate:  time.Now(),
		TotalAmount: total,
		Status:      models.ReturnPending,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&returned).Error; err != nil {
			return err
		}
		for i := range details {
			details[i].ReturnID = returned.ReturnID
		}
		return tx.Create(&details).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create return",
		})
	}

	returned.Details = details
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    returned,
	})
}

// ReturnApprove approves or rejects a pending return, recording the
// admin account that decided it
func ReturnApprove(c *fiber.Ctx) error {
	db := database.GetDB()

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid return ID",
		})
	}

	var input struct {
		Approve bool `json:"approve"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	var returned models.ReturnedBook
	if err := db.First(&returned, "return_id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Return not found",
		})
	}

	if returned.Status != models.ReturnPending {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Return has already been decided",
		})
	}

	status := models.ReturnRejected
	if input.Approve {
		status = models.ReturnApproved
	}

	// The authenticated caller becomes the approver of record
	var approverID *uint
	if raw, ok := c.Locals("account_id").(float64); ok {
		id := uint(raw)
		approverID = &id
	}

	if err := db.Model(&returned).Updates(map[string]interface{}{
		"status":         status,
		"approved_by_id": approverID,
	}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update return status",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Return status updated",
		"status":  status,
	})
}
