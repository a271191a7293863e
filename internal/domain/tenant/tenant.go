package tenant

import (
	"database/sql"
	"strings"
	"time"

	"rent_notification_engine/internal/domain/property"
)

// LeaseStatus is the state of the lease embedded in a tenant record.
type LeaseStatus string

const (
	LeaseStatusActive   LeaseStatus = "active"
	LeaseStatusInactive LeaseStatus = "inactive"
)

// Tenant represents a renter together with the lease they hold.
type Tenant struct {
	ID           int64               `gorm:"primaryKey"`
	OwnerID      *int64              `gorm:"index"`
	Owner        *property.Owner     `gorm:"foreignKey:OwnerID"`
	ApartmentID  *int64              `gorm:"index"`
	Apartment    *property.Apartment `gorm:"foreignKey:ApartmentID"`
	FirstName    string              `gorm:"size:255;not null"`
	LastName     sql.NullString      `gorm:"size:255"`
	Status       LeaseStatus         `gorm:"size:16;not null;default:active;index:idx_tenants_lease_end,priority:1"`
	LeaseEndDate sql.NullTime        `gorm:"type:date;index:idx_tenants_lease_end,priority:2"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and (optional) last name.
func (t *Tenant) FullName() string {
	if t.LastName.Valid && strings.TrimSpace(t.LastName.String) != "" {
		return t.FirstName + " " + t.LastName.String
	}
	return t.FirstName
}

// IsExpirationCandidate reports whether the lease can trigger an expiration warning:
// only active leases with a known end date qualify.
func (t *Tenant) IsExpirationCandidate() bool {
	return t.Status == LeaseStatusActive && t.LeaseEndDate.Valid
}
