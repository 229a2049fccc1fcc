package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/database"
	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/models"
)

// WarehouseStockList returns central warehouse holdings with their books
func WarehouseStockList(c *fiber.Ctx) error {
	db := database.GetDB()

	var stocks []models.WarehouseStock
	if err := db.Preload("Book").Order("warehouse_stock_id").Find(&stocks).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load warehouse stock",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stocks,
	})
}

// WarehouseStockAdjust sets the quantity of one warehouse stock row
func WarehouseStockAdjust(c *fiber.Ctx) error {
	db := database.GetDB()

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid stock ID",
		})
	}

	var input struct {
		Quantity *int `json:"quantity"`
	}
	if err := c.BodyParser(&input); err != nil || input.Quantity == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Quantity is required",
		})
	}
	if *input.Quantity < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Quantity cannot be negative",
		})
	}

	result := db.Model(&models.WarehouseStock{}).
		Where("warehouse_stock_id = ?", id).
		Update("quantity", *input.Quantity)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to adjust stock",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Stock record not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Stock adjusted",
	})
}

// SchoolInventoryList returns school inventory declarations. Pass
// ?status=PENDING to drive the approval screen.
func SchoolInventoryList(c *fiber.Ctx) error {
	db := database.GetDB()

	query := db.Model(&models.SchoolInventory{}).Preload("School").Preload("Book")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var inventories []models.SchoolInventory
	if err := query.Order("school_inventory_id").Find(&inventories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load school inventories",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    inventories,
	})
}

// SchoolInventoryApprove approves or rejects a school inventory
// declaration. Approval also upserts the school's stock row.
func SchoolInventoryApprove(c *fiber.Ctx) error {
	db := database.GetDB()

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid inventory ID",
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

	var inventory models.SchoolInventory
	if err := db.First(&inventory, "school_inventory_id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Inventory record not found",
		})
	}

	status := models.ApprovalRejected
	if input.Approve {
		status = models.ApprovalApproved
	}

	if err := db.Model(&inventory).Update("status", status).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update inventory status",
		})
	}

	// Approved declarations become the school's stock of that title
	if input.Approve {
		var stock models.SchoolStock
		err := db.Where("school_id = ? AND book_id = ?", inventory.SchoolID, inventory.BookID).
			First(&stock).Error
		if err != nil {
			stock = models.SchoolStock{
				SchoolID: inventory.SchoolID,
				BookID:   inventory.BookID,
				Quantity: inventory.Quantity,
				Status:   models.ApprovalApproved,
			}
			if err := db.Create(&stock).Error; err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"success": false,
					"message": "Failed to record school stock",
				})
			}
		} else {
			if err := db.Model(&stock).Updates(map[string]interface{}{
				"quantity": inventory.Quantity,
				"status":   models.ApprovalApproved,
			}).Error; err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"success": false,
					"message": "Failed to record school stock",
				})
			}
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Inventory status updated",
		"status":  status,
	})
}

// SchoolStockList returns per-school approved holdings
func SchoolStockList(c *fiber.Ctx) error {
	db := database.GetDB()

	query := db.Model(&models.SchoolStock{}).Preload("School").Preload("Book")
	if schoolID := c.Query("school_id"); schoolID != "" {
		query = query.Where("school_id = ?", schoolID)
	}

	var stocks []models.SchoolStock
	if err := query.Order("school_stock_id").Find(&stocks).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load school stock",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stocks,
	})
}
