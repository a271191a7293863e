package database

import (
	"fmt"

	"gorm.io/gorm"

	"rent_notification_engine/internal/domain/notification"
	"rent_notification_engine/internal/domain/payment"
	"rent_notification_engine/internal/domain/property"
	"rent_notification_engine/internal/domain/tenant"
)

// Migrate creates or updates every table this service reads or writes, including
// the unique dedup index on notifications.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&property.Owner{},
		&property.Apartment{},
		&tenant.Tenant{},
		&payment.Payment{},
		&notification.Notification{},
		&notification.Run{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
