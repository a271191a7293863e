package app

import (
	"context"
	"fmt"
	"time"

	"rent_notification_engine/internal/domain/calendar"
	"rent_notification_engine/internal/domain/payment"
)

// PaymentService is the read path for payments: every record is reconciled before it is returned.
type PaymentService struct {
	paymentRepo payment.Repository
	reconciler  *StatusReconciler
	location    *time.Location
}

func NewPaymentService(pr payment.Repository, reconciler *StatusReconciler, loc *time.Location) *PaymentService {
	return &PaymentService{paymentRepo: pr, reconciler: reconciler, location: loc}
}

func (s *PaymentService) Get(ctx context.Context, id int64, now time.Time) (*payment.Payment, error) {
	p, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.reconciler.Reconcile(ctx, p, calendar.Day(now, s.location)); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PaymentService) ListForTenant(ctx context.Context, tenantID int64, now time.Time) ([]*payment.Payment, error) {
	payments, err := s.paymentRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for tenant %d: %w", tenantID, err)
	}
	today := calendar.Day(now, s.location)
	for _, p := range payments {
		if _, err := s.reconciler.Reconcile(ctx, p, today); err != nil {
			return nil, err
		}
	}
	return payments, nil
}
