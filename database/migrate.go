// Package database owns schema migration.
package database

import (
	"gorm.io/gorm"

	"careconnect_backend/internal/logger"
	"careconnect_backend/internal/models"
)

// Migrate brings the schema up to date and repairs legacy rows.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.BloodDonationRequest{},
		&models.BloodDonationResponse{},
		&models.AssistiveDeviceListing{},
		&models.AssistiveDeviceRequest{},
		&models.AssistiveDeviceResponse{},
		&models.DeviceReview{},
		&models.CaregiverListing{},
		&models.CaregiverRequest{},
		&models.CaregiverResponse{},
		&models.CaregiverReview{},
		&models.Notification{},
		&models.NotificationPreference{},
		&models.Share{},
	); err != nil {
		return err
	}

	return backfillUpdatedAt(db)
}

// backfillUpdatedAt fixes rows imported before updated_at was enforced.
// Running it at migration time keeps the read path free of repair logic.
func backfillUpdatedAt(db *gorm.DB) error {
	tables := []string{
		"users",
		"blood_donation_requests",
		"blood_donation_responses",
		"assistive_device_listings",
		"assistive_device_requests",
		"assistive_device_responses",
		"device_reviews",
		"caregiver_listings",
		"caregiver_requests",
		"caregiver_responses",
		"caregiver_reviews",
		"notifications",
		"notification_preferences",
		"shares",
	}

	for _, table := range tables {
		result := db.Table(table).
			Where("updated_at IS NULL").
			Updates(map[string]interface{}{"updated_at": gorm.Expr("created_at")})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			logger.Info("backfilled updated_at", "table", table, "rows", result.RowsAffected)
		}
	}
	return nil
}
