package repository

import "gorm.io/gorm"

// Migrate creates or updates the schema for every repository model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&roomModel{},
		&bookingModel{},
	)
}
