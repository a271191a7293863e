// internal/domain/notification/run.go
package notification

import (
	"database/sql"
	"time"
)

// Run records one invocation of the daily checks.
// Corresponds to the 'check_runs' table.
type Run struct {
	ID               int64     `gorm:"primaryKey"`
	RunID            string    `gorm:"size:36;uniqueIndex;not null"`
	RunDate          time.Time `gorm:"type:date;index;not null"`
	Trigger          string    `gorm:"size:32;not null"` // cron, cli, telegram
	Status           RunStatus `gorm:"size:16;not null"`
	OverduePayments  int
	LeaseExpirations int
	Error            sql.NullString `gorm:"type:text"`
	StartedAt        time.Time      `gorm:"not null"`
	FinishedAt       sql.NullTime
}

// TableName keeps the table name independent of the Go type.
func (Run) TableName() string { return "check_runs" }
