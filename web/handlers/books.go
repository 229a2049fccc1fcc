package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/database"
	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/models"
)

// BookList returns the textbook catalog, newest first. Pass
// ?include_inactive=1 to include deactivated titles.
func BookList(c *fiber.Ctx) error {
	db := database.GetDB()

	query := db.Model(&models.Book{})
	if c.Query("include_inactive") == "" {
		query = query.Where("is_active = ?", true)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("title LIKE ? OR isbn LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var books []models.Book
	if err := query.Order("book_id DESC").Find(&books).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load books",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    books,
	})
}

// BookView returns one book with its edition detail and authors
func BookView(c *fiber.Ctx) error {
	db := database.GetDB()

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid book ID",
		})
	}

	var book models.Book
	if err := db.First(&book, "book_id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Book not found",
		})
	}

	var detail models.BookDetail
	db.Where("book_id = ?", book.BookID).First(&detail)

	var authors []models.Author
	db.Joins("JOIN book_authors ON book_authors.author_id = authors.author_id").
		Where("book_authors.book_id = ?", book.BookID).
		Find(&authors)

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"book":    book,
			"detail":  detail,
			"authors": authors,
		},
	})
}

// BookCreate registers a new catalog title
func BookCreate(c *fiber.Ctx) error {
	db := database.GetDB()

	var book models.Book
	if err := c.BodyParser(&book); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	if book.ISBN == "" || book.Title == "" || book.Price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "ISBN, title and a positive price are required",
		})
	}

	var count int64
	db.Model(&models.Book{}).Where("isbn = ?", book.ISBN).Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "A book with this ISBN already exists",
		})
	}

	book.IsActive = true
	if err := db.Create(&book).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create book",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    book,
	})
}

// BookUpdate edits catalog fields of an existing title
func BookUpdate(c *fiber.Ctx) error {
	db := database.GetDB()

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid book ID",
		})
	}

	var book models.Book
	if err := db.First(&book, "book_id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Book not found",
		})
	}

	var input struct {
		Title     *string  `json:"title"`
		Price     *float64 `json:"price"`
		Publisher *string  `json:"publisher"`
		IsActive  *bool    `json:"is_active"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Price must be positive",
			})
		}
		updates["price"] = *input.Price
	}
	if input.Publisher != nil {
		updates["publisher"] = *input.Publisher
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) > 0 {
		if err := db.Model(&book).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Failed to update book",
			})
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    book,
	})
}

// BookDeactivate retires a title from the active catalog. Rows are kept
// because stock and sales history reference them.
func BookDeactivate(c *fiber.Ctx) error {
	db := database.GetDB()

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid book ID",
		})
	}

	result := db.Model(&models.Book{}).Where("book_id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to deactivate book",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Book not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Book deactivated",
	})
}

// AuthorList returns all catalog authors
func AuthorList(c *fiber.Ctx) error {
	db := database.GetDB()

	var authors []models.Author
	if err := db.Order("full_name").Find(&authors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load authors",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    authors,
	})
}
