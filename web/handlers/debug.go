package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/database"
)

// GetSQLTrace returns the recent SQL statements, newest first
func GetSQLTrace(c *fiber.Ctx) error {
	traces := database.SQLTracer.Snapshot()
	return c.JSON(fiber.Map{
		"success": true,
		"total":   len(traces),
		"data":    traces,
	})
}

// ClearSQLTrace discards all recorded SQL statements
func ClearSQLTrace(c *fiber.Ctx) error {
	database.SQLTracer.Reset()
	return c.JSON(fiber.Map{
		"success": true,
		"message": "SQL trace cleared",
	})
}
