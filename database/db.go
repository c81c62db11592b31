package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/MicheleCazzola/ezelectronics-sub001/models"
)

// Connect opens the SQLite database at path and migrates the schema.
func Connect(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Review{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate failed: %w", err)
	}
	return db, nil
}
