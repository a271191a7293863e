package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"rent_notification_engine/internal/domain/payment"
)

// StatusReconciler brings stored payment statuses in line with payment.DeriveStatus.
// Writes touch the status column only, so no hooks or audit fields fire.
type StatusReconciler struct {
	paymentRepo payment.Repository
	logger      *logrus.Entry
}

func NewStatusReconciler(pr payment.Repository, logger *logrus.Entry) *StatusReconciler {
	return &StatusReconciler{paymentRepo: pr, logger: logger}
}

// ReconcileAll fixes every stale unsettled payment and returns how many rows changed.
func (r *StatusReconciler) ReconcileAll(ctx context.Context, today time.Time) (int, error) {
	payments, err := r.paymentRepo.ListUnsettled(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list unsettled payments: %w", err)
	}

	updated := 0
	for _, p := range payments {
		changed, err := r.Reconcile(ctx, p, today)
		if err != nil {
			return updated, err
		}
		if changed {
			updated++
		}
	}
	if updated > 0 {
		r.logger.WithField("updated", updated).Info("Reconciled stale payment statuses")
	}
	return updated, nil
}

// Reconcile updates a single payment in place and persists it if its cached status was stale.
func (r *StatusReconciler) Reconcile(ctx context.Context, p *payment.Payment, today time.Time) (bool, error) {
	derived, stale := payment.NeedsReconcile(p, today)
	if !stale {
		return false, nil
	}
	if err := r.paymentRepo.UpdateStoredStatus(ctx, p.ID, derived); err != nil {
		return false, fmt.Errorf("failed to reconcile payment %d: %w", p.ID, err)
	}
	r.logger.WithFields(logrus.Fields{
		"payment_id": p.ID,
		"from":       p.StoredStatus,
		"to":         derived,
	}).Debug("Payment status reconciled")
	p.StoredStatus = derived
	return true, nil
}
