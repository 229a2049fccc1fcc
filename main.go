package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/config"
	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/database"
	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/web"
	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/web/middleware"
)

func main() {
	// Command line flags
	var (
		migrate = flag.Bool("migrate", false, "Run database migration on startup")
		seed    = flag.Bool("seed", false, "Seed database with reference data")
		help    = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	middleware.SetJWTSecret(cfg.Auth.JWTSecret)

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	if err := database.CheckConnection(database.DB); err != nil {
		log.Fatalf("Database connection check failed: %v", err)
	}

	// Run migration if requested
	if *migrate {
		log.Println("Running database migration...")
		if err := database.AutoMigrate(database.DB); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		log.Println("Migration completed successfully")
	}

	// Seed reference data if requested
	if *seed {
		log.Println("Seeding database with reference data...")
		if err := database.Seed(database.DB); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Start the API server
	server := web.NewServer()

	// Close the database connection on shutdown signals
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down...")
		if err := database.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
		os.Exit(0)
	}()

	if err := server.Start(cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func showHelp() {
	log.Println("Textbook Distribution Management API")
	log.Println("Usage: go run main.go [flags]")
	log.Println("  -migrate  Run database migration on startup")
	log.Println("  -seed     Seed database with reference data")
	log.Println("  -help     Show this help message")
}
