package database

import (
	"anchors_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate applies the schema. uuid_generate_v4 defaults on primary keys
// require the uuid-ossp extension.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Job{},
		&models.PendingRegistration{},
	)
}
