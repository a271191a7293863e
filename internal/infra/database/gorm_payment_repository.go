package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"rent_notification_engine/internal/domain/calendar"
	"rent_notification_engine/internal/domain/payment"
)

type GormPaymentRepository struct {
	base
}

func NewGormPaymentRepository(db *gorm.DB, queryTimeout time.Duration) *GormPaymentRepository {
	return &GormPaymentRepository{base: newBase(db, queryTimeout)}
}

// withRelations eagerly resolves tenant, apartment and both owner paths.
func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Tenant").Preload("Tenant.Owner").Preload("Apartment").Preload("Apartment.Owner")
}

func (r *GormPaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	p.DueDate = calendar.Normalize(p.DueDate)
	if p.PaymentDate.Valid {
		p.PaymentDate.Time = calendar.Normalize(p.PaymentDate.Time)
	}
	if p.StoredStatus == "" {
		p.StoredStatus = payment.StatusPending
	}
	if err := db.Create(p).Error; err != nil {
		return fmt.Errorf("error creating payment: %w", err)
	}
	return nil
}

func (r *GormPaymentRepository) GetByID(ctx context.Context, id int64) (*payment.Payment, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	p := &payment.Payment{}
	err := withRelations(db).First(p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("error getting payment by ID: %w", err)
	}
	return p, nil
}

func (r *GormPaymentRepository) ListByTenant(ctx context.Context, tenantID int64) ([]*payment.Payment, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	payments := make([]*payment.Payment, 0)
	err := withRelations(db).Where("tenant_id = ?", tenantID).Order("due_date, id").Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("error listing payments for tenant %d: %w", tenantID, err)
	}
	return payments, nil
}

func (r *GormPaymentRepository) ListUnsettled(ctx context.Context) ([]*payment.Payment, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	payments := make([]*payment.Payment, 0)
	err := db.Where("status <> ?", payment.StatusPaid).Order("id").Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("error listing unsettled payments: %w", err)
	}
	return payments, nil
}

func (r *GormPaymentRepository) ListOverdue(ctx context.Context, today time.Time) ([]*payment.Payment, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	payments := make([]*payment.Payment, 0)
	err := withRelations(db).
		Where("status <> ? AND payment_date IS NULL AND due_date < ?", payment.StatusPaid, calendar.Normalize(today)).
		Order("due_date, id").
		Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("error listing overdue payments: %w", err)
	}
	return payments, nil
}

func (r *GormPaymentRepository) UpdateStoredStatus(ctx context.Context, id int64, status payment.Status) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	// UpdateColumn skips hooks and leaves updated_at alone.
	res := db.Model(&payment.Payment{}).
		Where("id = ? AND status <> ?", id, payment.StatusPaid).
		UpdateColumn("status", status)
	if res.Error != nil {
		return fmt.Errorf("error updating status for payment %d: %w", id, res.Error)
	}
	return nil
}
