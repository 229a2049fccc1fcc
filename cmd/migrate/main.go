package main

import (
	"fmt"
	"log"
	"os"

	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/config"
	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/database"
)

func main() {
	if err := run(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
	fmt.Println("✨ Migration completed successfully!")
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := database.Initialize(&cfg.Database); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.CheckConnection(database.DB); err != nil {
		return fmt.Errorf("database connection check failed: %w", err)
	}

	return database.AutoMigrate(database.DB)
}
