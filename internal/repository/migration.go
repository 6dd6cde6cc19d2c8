package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates every table and index used by the repositories.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&profileModel{},
		&serviceModel{},
		&bookingModel{},
		&messageModel{},
		&uploadModel{},
	)
}
