package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"rent_notification_engine/internal/domain/calendar"
	"rent_notification_engine/internal/domain/notification"
	"rent_notification_engine/internal/domain/payment"
)

// OverdueDiscriminator identifies one overdue payment in dedup keys and messages.
func OverdueDiscriminator(p *payment.Payment) string {
	return fmt.Sprintf("Payment #%d - %s", p.ID, p.Tenant.FullName())
}

func (s *CheckServiceImpl) RunOverdueCheck(ctx context.Context, now time.Time) (int, error) {
	today := s.today(now)
	log := s.logger.WithFields(logrus.Fields{"check": notification.TypeOverduePayment, "today": calendar.Format(today)})
	log.Info("Starting overdue payment check")

	// The overdue query filters on the derived condition itself, so a failed
	// reconciliation does not hide candidates from this scan.
	if _, err := s.reconciler.ReconcileAll(ctx, today); err != nil {
		log.WithError(err).Warn("Payment status reconciliation failed, continuing with scan")
	}

	payments, err := s.paymentRepo.ListOverdue(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("failed to list overdue payments: %w", err)
	}
	log.Infof("Found %d overdue payments", len(payments))

	count := 0
	for _, p := range payments {
		plog := log.WithField("payment_id", p.ID)

		if p.Tenant == nil || p.Apartment == nil {
			plog.Debug("Payment missing tenant or apartment, skipping")
			continue
		}
		owner := p.ResponsibleOwner()
		if owner == nil {
			plog.Debug("Payment has no resolvable owner, skipping")
			continue
		}
		if payment.DeriveStatus(p, today) != payment.StatusOverdue {
			continue
		}

		disc := OverdueDiscriminator(p)
		daysOverdue := calendar.DaysBetween(p.DueDate, today)
		title := fmt.Sprintf("Overdue Payment - %s", p.Tenant.FullName())
		message := fmt.Sprintf("%s: rent of %s for %s%s was due on %s and is %d day(s) overdue.",
			disc,
			FormatAmount(p.Amount, owner.Currency, s.defaultCurrency),
			p.Apartment.Name,
			unitSuffix(p.Apartment.UnitNumber),
			p.DueDate.Format(displayDateLayout),
			daysOverdue,
		)

		key := notification.DedupKey{
			RecipientID:   owner.ID,
			Type:          notification.TypeOverduePayment,
			Day:           today,
			Discriminator: disc,
		}
		created, err := s.notify(ctx, key, title, message, plog.WithField("owner_id", owner.ID))
		if err != nil {
			return count, err
		}
		if created {
			count++
		}
	}

	log.WithField("created", count).Info("Overdue payment check finished")
	return count, nil
}
