package database

import (
	"gorm.io/gorm"

	"github.com/fridgechef/backend/internal/models"
)

// RunMigrations creates or updates the schema for every model.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Account{},
		&models.Ingredient{},
		&models.Recipe{},
	)
}
