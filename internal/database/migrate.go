package database

import (
	"gorm.io/gorm"

	"github.com/leoskitchen/backend/internal/models"
)

// Migrate creates or updates the schema for every model the service owns.
// The same list drives the in-memory SQLite databases used in tests.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.Comment{},
		&models.RecipeLike{},
		&models.RecipeSave{},
		&models.RecipeFavorite{},
	)
}
