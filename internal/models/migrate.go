package models

import (
	"fmt"

	"github.com/mwalsh-dev/statduel/pkg/database"
)

// Migrate creates or updates all tables.
func Migrate(db *database.DB) error {
	if err := db.AutoMigrate(
		&Player{},
		&Game{},
		&User{},
		&Guess{},
	); err != nil {
		return fmt.Errorf("failed to migrate models: %w", err)
	}
	return nil
}
