// internal/app/check_service.go
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"rent_notification_engine/internal/domain/calendar"
	"rent_notification_engine/internal/domain/notification"
	"rent_notification_engine/internal/domain/payment"
	"rent_notification_engine/internal/domain/tenant"
	idb "rent_notification_engine/internal/infra/database"
)

// CheckService defines the overdue/expiration scans and the orchestrator around them.
type CheckService interface {
	// RunOverdueCheck notifies owners about unpaid payments past their due date.
	RunOverdueCheck(ctx context.Context, now time.Time) (int, error)
	// RunLeaseExpirationCheck notifies owners about leases ending exactly 30, 60 or 90 days out.
	RunLeaseExpirationCheck(ctx context.Context, now time.Time) (int, error)
	// RunAllChecks runs both scans, isolating a failure in one from the other.
	RunAllChecks(ctx context.Context, now time.Time) (CheckResult, error)
}

// CheckResult carries the per-scan counts surfaced to the trigger.
type CheckResult struct {
	OverduePayments  int   `json:"overdue_payments"`
	LeaseExpirations int   `json:"lease_expirations"`
	OverdueErr       error `json:"-"`
	LeaseErr         error `json:"-"`
}

// Partial reports whether exactly one scan failed.
func (r CheckResult) Partial() bool {
	return (r.OverdueErr == nil) != (r.LeaseErr == nil)
}

// CheckServiceImpl implements the CheckService interface.
type CheckServiceImpl struct {
	paymentRepo     payment.Repository
	tenantRepo      tenant.Repository
	notifRepo       notification.Repository
	reconciler      *StatusReconciler
	dedup           *DedupOracle
	logger          *logrus.Entry
	location        *time.Location
	defaultCurrency string
}

func NewCheckServiceImpl(
	pr payment.Repository,
	tr tenant.Repository,
	nr notification.Repository,
	logger *logrus.Entry,
	loc *time.Location, // day boundary for "today" and dedup
	defaultCurrency string,
) *CheckServiceImpl {
	if loc == nil {
		loc = time.Local
	}
	return &CheckServiceImpl{
		paymentRepo:     pr,
		tenantRepo:      tr,
		notifRepo:       nr,
		reconciler:      NewStatusReconciler(pr, logger),
		dedup:           NewDedupOracle(nr),
		logger:          logger,
		location:        loc,
		defaultCurrency: defaultCurrency,
	}
}

// RunAllChecks runs the overdue scan, then the lease scan. A failure in one is logged and
// reported in the result; only when both fail is an error returned.
func (s *CheckServiceImpl) RunAllChecks(ctx context.Context, now time.Time) (CheckResult, error) {
	var res CheckResult

	res.OverduePayments, res.OverdueErr = s.RunOverdueCheck(ctx, now)
	if res.OverdueErr != nil {
		s.logger.WithError(res.OverdueErr).WithField("created", res.OverduePayments).Error("Overdue payment check failed")
	}

	res.LeaseExpirations, res.LeaseErr = s.RunLeaseExpirationCheck(ctx, now)
	if res.LeaseErr != nil {
		s.logger.WithError(res.LeaseErr).WithField("created", res.LeaseExpirations).Error("Lease expiration check failed")
	}

	if res.OverdueErr != nil && res.LeaseErr != nil {
		return res, fmt.Errorf("all checks failed: %w", errors.Join(res.OverdueErr, res.LeaseErr))
	}
	return res, nil
}

// notify creates n under key unless an equivalent notification already exists.
// Dedup-check failures skip the candidate; only a failed insert is returned as an error.
func (s *CheckServiceImpl) notify(ctx context.Context, key notification.DedupKey, title, message string, log *logrus.Entry) (bool, error) {
	exists, err := s.dedup.AlreadyNotified(ctx, key)
	if err != nil {
		log.WithError(err).Error("Dedup check failed, skipping candidate")
		return false, nil
	}
	if exists {
		log.Debug("Already notified today, skipping")
		return false, nil
	}

	n := &notification.Notification{Title: title, Message: message}
	key.Apply(n)
	if err := s.notifRepo.Create(ctx, n); err != nil {
		if errors.Is(err, idb.ErrDuplicateNotification) {
			log.Info("Notification created concurrently by another writer, skipping")
			return false, nil
		}
		return false, fmt.Errorf("failed to create %s notification for owner %d: %w", key.Type, key.RecipientID, err)
	}
	log.WithField("notification_id", n.ID).Info("Notification created")
	return true, nil
}

func (s *CheckServiceImpl) today(now time.Time) time.Time {
	return calendar.Day(now, s.location)
}

func unitSuffix(unit string) string {
	if unit == "" {
		return ""
	}
	return fmt.Sprintf(" (Unit %s)", unit)
}

const displayDateLayout = "Jan 02, 2006"
