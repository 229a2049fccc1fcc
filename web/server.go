package web

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/models"
	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/web/handlers"
	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/web/middleware"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server
func NewServer() *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("ERROR [%s %s]: %v", c.Method(), c.Path(), err)

			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))

	setupRoutes(app)

	return &Server{app: app}
}

// App exposes the underlying Fiber app, mainly for tests
func (s *Server) App() *fiber.App {
	return s.app
}

// Start starts the server
func (s *Server) Start(port string) error {
	log.Printf("Server starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "status": "ok"})
	})

	// Authentication
	api.Post("/auth/login", handlers.Login)

	// Debug endpoint for SQL traces
	api.Get("/debug/sql", handlers.GetSQLTrace)
	api.Delete("/debug/sql", handlers.ClearSQLTrace)

	// Everything below requires a signed-in staff account
	auth := api.Group("", middleware.Protected())
	admin := middleware.RequireRole(string(models.RoleAdmin))

	// Staff accounts
	auth.Get("/accounts", admin, handlers.AccountList)

	// Catalog
	auth.Get("/books", handlers.BookList)
	auth.Post("/books", handlers.BookCreate)
	auth.Get("/books/:id", handlers.BookView)
	auth.Put("/books/:id", handlers.BookUpdate)
	auth.Delete("/books/:id", admin, handlers.BookDeactivate)
	auth.Get("/authors", handlers.AuthorList)

	// School registration approval
	auth.Get("/schools", handlers.SchoolList)
	auth.Post("/schools", handlers.SchoolCreate)
	auth.Put("/schools/:id/approve", admin, handlers.SchoolApprove)

	// Inventory
	inventory := auth.Group("/inventory")
	inventory.Get("/warehouse", handlers.WarehouseStockList)
	inventory.Put("/warehouse/:id", handlers.WarehouseStockAdjust)
	inventory.Get("/schools", handlers.SchoolInventoryList)
	inventory.Put("/schools/:id/approve", admin, handlers.SchoolInventoryApprove)
	inventory.Get("/school-stocks", handlers.SchoolStockList)

	// Customers and bills
	auth.Get("/customers", handlers.CustomerList)
	auth.Get("/bills", handlers.BillList)
	auth.Post("/bills", handlers.BillCreate)
	auth.Get("/bills/:id", handlers.BillView)

	// School sales
	auth.Get("/sales", handlers.SalesList)
	auth.Post("/sales", handlers.SalesCreate)
	auth.Get("/sales/:id", handlers.SalesView)

	// Returns
	auth.Get("/returns", handlers.ReturnList)
	auth.Post("/returns", handlers.ReturnCreate)
	auth.Get("/returns/:id", handlers.ReturnView)
	auth.Put("/returns/:id/approve", admin, handlers.ReturnApprove)
}
