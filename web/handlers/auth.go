package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/database"
	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/models"
	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/web/middleware"
	"golang.org/x/crypto/bcrypt"
)

// Login authenticates a staff account and issues a bearer token
func Login(c *fiber.Ctx) error {
	db := database.GetDB()

	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	var account models.Account
	if err := db.Where("username = ? AND is_active = ?", input.Username, true).First(&account).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid username or password",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid username or password",
		})
	}

	token, err := middleware.GenerateToken(account.AccountID, account.Username, string(account.Role))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to issue token",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"account": fiber.Map{
			"account_id": account.AccountID,
			"username":   account.Username,
			"full_name":  account.FullName,
			"role":       account.Role,
		},
	})
}

// AccountList returns all staff accounts (admin only)
func AccountList(c *fiber.Ctx) error {
	db := database.GetDB()

	var accounts []models.Account
	if err := db.Order("account_id").Find(&accounts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load accounts",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    accounts,
	})
}
