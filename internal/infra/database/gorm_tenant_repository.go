package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"rent_notification_engine/internal/domain/calendar"
	"rent_notification_engine/internal/domain/tenant"
)

type GormTenantRepository struct {
	base
}

func NewGormTenantRepository(db *gorm.DB, queryTimeout time.Duration) *GormTenantRepository {
	return &GormTenantRepository{base: newBase(db, queryTimeout)}
}

func (r *GormTenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	if t.Status == "" {
		t.Status = tenant.LeaseStatusActive
	}
	if t.LeaseEndDate.Valid {
		t.LeaseEndDate.Time = calendar.Normalize(t.LeaseEndDate.Time)
	}
	if err := db.Create(t).Error; err != nil {
		return fmt.Errorf("error creating tenant: %w", err)
	}
	return nil
}

func (r *GormTenantRepository) GetByID(ctx context.Context, id int64) (*tenant.Tenant, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	t := &tenant.Tenant{}
	err := db.Preload("Owner").Preload("Apartment").First(t, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("error getting tenant by ID: %w", err)
	}
	return t, nil
}

func (r *GormTenantRepository) ListActiveLeasesEndingOn(ctx context.Context, day time.Time) ([]*tenant.Tenant, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	// Half-open range on the single day keeps the match exact regardless of how the
	// driver stores the time-of-day part.
	start := calendar.Normalize(day)
	end := start.AddDate(0, 0, 1)

	tenants := make([]*tenant.Tenant, 0)
	err := db.Preload("Owner").Preload("Apartment").
		Where("status = ? AND lease_end_date IS NOT NULL AND lease_end_date >= ? AND lease_end_date < ?",
			tenant.LeaseStatusActive, start, end).
		Order("id").
		Find(&tenants).Error
	if err != nil {
		return nil, fmt.Errorf("error listing leases ending on %s: %w", calendar.Format(start), err)
	}
	return tenants, nil
}
