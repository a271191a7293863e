package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"rent_notification_engine/internal/domain/calendar"
	"rent_notification_engine/internal/domain/notification"
	"rent_notification_engine/internal/domain/tenant"
)

// LeaseDiscriminator identifies one lease in dedup keys and messages.
func LeaseDiscriminator(t *tenant.Tenant) string {
	return fmt.Sprintf("Lease #%d - %s", t.ID, t.FullName())
}

// RunLeaseExpirationCheck only matches leases ending exactly on today+threshold; a lease
// first seen inside a window is not warned about retroactively.
func (s *CheckServiceImpl) RunLeaseExpirationCheck(ctx context.Context, now time.Time) (int, error) {
	today := s.today(now)
	log := s.logger.WithFields(logrus.Fields{"check": notification.TypeLeaseExpiration, "today": calendar.Format(today)})
	log.Info("Starting lease expiration check")

	count := 0
	for _, threshold := range notification.LeaseWarningThresholds {
		target := calendar.AddDays(today, threshold)
		tlog := log.WithFields(logrus.Fields{"threshold_days": threshold, "target": calendar.Format(target)})

		tenants, err := s.tenantRepo.ListActiveLeasesEndingOn(ctx, target)
		if err != nil {
			return count, fmt.Errorf("failed to list leases for %d-day threshold: %w", threshold, err)
		}

		for _, t := range tenants {
			llog := tlog.WithField("tenant_id", t.ID)
			if !t.IsExpirationCandidate() {
				continue
			}
			if t.Owner == nil || t.Apartment == nil {
				llog.Debug("Lease missing owner or apartment, skipping")
				continue
			}

			disc := LeaseDiscriminator(t)
			title := fmt.Sprintf("Lease Expiring in %d Days - %s", threshold, t.FullName())
			message := fmt.Sprintf("%s: the lease for %s%s ends on %s.",
				disc,
				t.Apartment.Name,
				unitSuffix(t.Apartment.UnitNumber),
				t.LeaseEndDate.Time.Format(displayDateLayout),
			)

			key := notification.DedupKey{
				RecipientID:   t.Owner.ID,
				Type:          notification.TypeLeaseExpiration,
				Day:           today,
				Discriminator: disc,
			}
			created, err := s.notify(ctx, key, title, message, llog.WithField("owner_id", t.Owner.ID))
			if err != nil {
				return count, err
			}
			if created {
				count++
			}
		}
	}

	log.WithField("created", count).Info("Lease expiration check finished")
	return count, nil
}
