package migrations

import (
	"gorm.io/gorm"

	"redress/internal/infrastructure/persistence/models"
)

// Migrate creates or updates the three application tables. Order matters:
// users first so the complaint and comment foreign keys can be created.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.ComplaintModel{},
		&models.CommentModel{},
	)
}
