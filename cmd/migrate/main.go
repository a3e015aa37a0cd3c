// Command migrate applies the database schema for the backend.
package main

import (
	"fmt"
	"log"

	"joinme/internal/config"
	"joinme/internal/database"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	// Connect only automigrates outside production; this command makes the
	// schema apply explicit everywhere.
	if err := db.AutoMigrate(database.Models()...); err != nil {
		return fmt.Errorf("automigration failed: %w", err)
	}

	log.Println("schema applied")
	return nil
}
