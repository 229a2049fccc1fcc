package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/database"
	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/models"
)

// SchoolList returns registered schools. Pass ?pending=1 for the
// registration approval screen (unapproved schools only).
func SchoolList(c *fiber.Ctx) error {
	db := database.GetDB()

	query := db.Model(&models.SchoolProfile{})
	if c.Query("pending") != "" {
		query = query.Where("is_approved = ?", false)
	}

	var schools []models.SchoolProfile
	if err := query.Order("school_id").Find(&schools).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load schools",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    schools,
	})
}

// SchoolCreate registers a school profile; it stays unapproved until an
// administrator signs off
func SchoolCreate(c *fiber.Ctx) error {
	db := database.GetDB()

	var school models.SchoolProfile
	if err := c.BodyParser(&school); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	if school.SchoolName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "School name is required",
		})
	}

	school.SchoolID = 0
	school.IsApproved = false
	if err := db.Create(&school).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to register school",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    school,
	})
}

// SchoolApprove marks a school registration as approved
func SchoolApprove(c *fiber.Ctx) error {
	db := database.GetDB()

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid school ID",
		})
	}

	result := db.Model(&models.SchoolProfile{}).Where("school_id = ?", id).Update("is_approved", true)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to approve school",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "School not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "School registration approved",
	})
}
