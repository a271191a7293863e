package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rent_notification_engine/internal/domain/notification"
	"rent_notification_engine/internal/domain/payment"
	idb "rent_notification_engine/internal/infra/database"
)

// Custom application-level errors for admin service
var ErrAdminNotAuthorized = fmt.Errorf("performing user is not authorized as an admin")
var ErrNoRunsYet = fmt.Errorf("no check runs recorded yet")

// AdminService backs the operator commands: manual runs, last-run status and payment lookups.
type AdminService struct {
	job             *CheckJob
	payments        *PaymentService
	adminTelegramID int64
	now             func() time.Time
}

func NewAdminService(job *CheckJob, payments *PaymentService, adminID int64) *AdminService {
	return &AdminService{
		job:             job,
		payments:        payments,
		adminTelegramID: adminID,
		now:             time.Now,
	}
}

func (s *AdminService) authorize(performingAdminID int64) error {
	if performingAdminID != s.adminTelegramID {
		return ErrAdminNotAuthorized
	}
	return nil
}

// RunChecks triggers a guarded check run on behalf of the admin.
func (s *AdminService) RunChecks(ctx context.Context, performingAdminID int64) (CheckResult, error) {
	if err := s.authorize(performingAdminID); err != nil {
		return CheckResult{}, err
	}
	return s.job.Run(ctx, TriggerTelegram)
}

// LastRun returns the latest recorded check run.
func (s *AdminService) LastRun(ctx context.Context, performingAdminID int64) (*notification.Run, error) {
	if err := s.authorize(performingAdminID); err != nil {
		return nil, err
	}
	run, err := s.job.LastRun(ctx)
	if err != nil {
		if errors.Is(err, idb.ErrRunNotFound) {
			return nil, ErrNoRunsYet
		}
		return nil, fmt.Errorf("failed to load last run: %w", err)
	}
	return run, nil
}

// PaymentStatus looks up a payment through the reconciling read path.
func (s *AdminService) PaymentStatus(ctx context.Context, performingAdminID, paymentID int64) (*payment.Payment, error) {
	if err := s.authorize(performingAdminID); err != nil {
		return nil, err
	}
	return s.payments.Get(ctx, paymentID, s.now())
}
