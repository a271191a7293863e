// internal/domain/payment/payment.go
package payment

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"rent_notification_engine/internal/domain/calendar"
	"rent_notification_engine/internal/domain/property"
	"rent_notification_engine/internal/domain/tenant"
)

// Status is the effective state of a rent charge.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

// Payment is a scheduled rent charge. StoredStatus caches DeriveStatus and is only
// ever rewritten through reconciliation.
type Payment struct {
	ID           int64               `gorm:"primaryKey"`
	TenantID     *int64              `gorm:"index"`
	Tenant       *tenant.Tenant      `gorm:"foreignKey:TenantID"`
	ApartmentID  *int64              `gorm:"index"`
	Apartment    *property.Apartment `gorm:"foreignKey:ApartmentID"`
	Amount       decimal.Decimal     `gorm:"type:decimal(12,2);not null"`
	DueDate      time.Time           `gorm:"type:date;not null;index"`
	PaymentDate  sql.NullTime        `gorm:"type:date"`
	StoredStatus Status              `gorm:"column:status;size:16;not null;default:pending;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DeriveStatus computes the effective status of p on the given day.
// A payment due exactly today is still pending; overdue needs the due date to be
// strictly before today at day granularity.
func DeriveStatus(p *Payment, today time.Time) Status {
	if p.PaymentDate.Valid {
		return StatusPaid
	}
	if calendar.Normalize(p.DueDate).Before(calendar.Normalize(today)) {
		return StatusOverdue
	}
	return StatusPending
}

// NeedsReconcile reports whether the cached status differs from the derived one.
// A stored paid status is never demoted.
func NeedsReconcile(p *Payment, today time.Time) (Status, bool) {
	if p.StoredStatus == StatusPaid {
		return StatusPaid, false
	}
	derived := DeriveStatus(p, today)
	return derived, derived != p.StoredStatus
}

// ResponsibleOwner resolves who should hear about this payment: the tenant's owner,
// falling back to the apartment's owner. Returns nil when neither is known.
func (p *Payment) ResponsibleOwner() *property.Owner {
	if p.Tenant != nil && p.Tenant.Owner != nil {
		return p.Tenant.Owner
	}
	if p.Apartment != nil && p.Apartment.Owner != nil {
		return p.Apartment.Owner
	}
	return nil
}
