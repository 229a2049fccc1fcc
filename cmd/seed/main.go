package main

import (
	"fmt"
	"log"
	"os"

	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/config"
	"github.com/itsmenoahpoli/nehemiah-publishing-management-system-sub001/database"
)

// One-shot reference data seeder. No flags: the dataset is fixed and
// every step is idempotent, so the tool can simply be re-run.
func main() {
	if err := run(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
	fmt.Println("✨ Seeding completed successfully!")
}

// run loads config, connects, seeds, and releases the connection on
// every exit path
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	fmt.Printf("📊 Database: %s@%s:%s/%s\n", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if err := database.Initialize(&cfg.Database); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.CheckConnection(database.DB); err != nil {
		return fmt.Errorf("database connection check failed: %w", err)
	}

	return database.Seed(database.DB)
}
