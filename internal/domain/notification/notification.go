// internal/domain/notification/notification.go
package notification

import (
	"database/sql"
	"time"

	"rent_notification_engine/internal/domain/calendar"
)

// Notification is a persisted message to an owner. Only ReadAt changes after creation.
type Notification struct {
	ID          int64          `gorm:"primaryKey"`
	RecipientID int64          `gorm:"not null;index;uniqueIndex:idx_notifications_dedup,priority:1"`
	Type        Type           `gorm:"size:64;not null;uniqueIndex:idx_notifications_dedup,priority:2"`
	Title       string         `gorm:"size:255;not null"`
	Message     string         `gorm:"type:text;not null"`
	DedupDay    sql.NullString `gorm:"size:10;uniqueIndex:idx_notifications_dedup,priority:3"` // YYYY-MM-DD
	DedupKey    sql.NullString `gorm:"size:255;uniqueIndex:idx_notifications_dedup,priority:4"`
	CreatedAt   time.Time      `gorm:"not null"`
	ReadAt      sql.NullTime
}

// IsRead reports whether the recipient has opened the notification.
func (n *Notification) IsRead() bool { return n.ReadAt.Valid }

// DedupKey identifies "the same condition for the same entity on the same day".
type DedupKey struct {
	RecipientID   int64
	Type          Type
	Day           time.Time
	Discriminator string
}

// DayString is the calendar day in its stored text form.
func (k DedupKey) DayString() string {
	return calendar.Format(k.Day)
}

// Apply stamps the key's structured columns onto n.
func (k DedupKey) Apply(n *Notification) {
	n.RecipientID = k.RecipientID
	n.Type = k.Type
	n.DedupDay = sql.NullString{String: k.DayString(), Valid: true}
	n.DedupKey = sql.NullString{String: k.Discriminator, Valid: true}
}
