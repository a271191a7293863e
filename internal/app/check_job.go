package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"rent_notification_engine/internal/domain/calendar"
	"rent_notification_engine/internal/domain/notification"
	"rent_notification_engine/internal/infra/lock"
)

// ErrRunSkipped means another run held the lock; the invocation was dropped, not queued.
var ErrRunSkipped = fmt.Errorf("check run skipped: another run is in progress")

const releaseTimeout = 5 * time.Second

// Trigger names recorded on each run.
const (
	TriggerCron     = "cron"
	TriggerCLI      = "cli"
	TriggerTelegram = "telegram"
)

// JobOptions tunes CheckJob.
type JobOptions struct {
	LockKey    string
	LockTTL    time.Duration
	RunTimeout time.Duration
	Location   *time.Location
	Now        func() time.Time
}

// CheckJob is the single entry point every trigger goes through: it holds the
// non-overlap lock for the run, records a check_runs row, and calls RunAllChecks.
type CheckJob struct {
	service   CheckService
	notifRepo notification.Repository
	locker    lock.Locker
	logger    *logrus.Entry
	opts      JobOptions
}

func NewCheckJob(svc CheckService, nr notification.Repository, locker lock.Locker, logger *logrus.Entry, opts JobOptions) *CheckJob {
	if opts.LockKey == "" {
		opts.LockKey = "rentwatch:checks"
	}
	if opts.LockTTL <= 0 {
		opts.LockTTL = 30 * time.Minute
	}
	if opts.RunTimeout <= 0 {
		opts.RunTimeout = 10 * time.Minute
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &CheckJob{service: svc, notifRepo: nr, locker: locker, logger: logger, opts: opts}
}

// Run executes one guarded check run.
func (j *CheckJob) Run(ctx context.Context, trigger string) (CheckResult, error) {
	runID := uuid.NewString()
	log := j.logger.WithFields(logrus.Fields{"run_id": runID, "trigger": trigger})

	release, err := j.locker.Acquire(ctx, j.opts.LockKey, j.opts.LockTTL)
	if err != nil {
		if errors.Is(err, lock.ErrLockHeld) {
			log.Warn("Another check run holds the lock, skipping")
			return CheckResult{}, ErrRunSkipped
		}
		return CheckResult{}, fmt.Errorf("failed to acquire run lock: %w", err)
	}
	defer func() {
		relCtx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()
		if err := release(relCtx); err != nil {
			log.WithError(err).Error("Failed to release run lock")
		}
	}()

	runCtx, cancel := context.WithTimeout(ctx, j.opts.RunTimeout)
	defer cancel()

	now := j.opts.Now()
	run := &notification.Run{
		RunID:     runID,
		RunDate:   calendar.Day(now, j.opts.Location),
		Trigger:   trigger,
		Status:    notification.RunStatusRunning,
		StartedAt: now,
	}
	recorded := true
	if err := j.notifRepo.CreateRun(runCtx, run); err != nil {
		// The audit row is best effort; the checks themselves still run.
		log.WithError(err).Warn("Failed to record check run start")
		recorded = false
	}

	log.Info("Check run started")
	res, runErr := j.service.RunAllChecks(runCtx, now)

	switch {
	case runErr != nil:
		run.Status = notification.RunStatusFailed
		run.Error = sql.NullString{String: runErr.Error(), Valid: true}
	case res.Partial():
		run.Status = notification.RunStatusPartial
		run.Error = sql.NullString{String: errors.Join(res.OverdueErr, res.LeaseErr).Error(), Valid: true}
	default:
		run.Status = notification.RunStatusSucceeded
	}
	run.OverduePayments = res.OverduePayments
	run.LeaseExpirations = res.LeaseExpirations
	run.FinishedAt = sql.NullTime{Time: j.opts.Now(), Valid: true}

	if recorded {
		finCtx, finCancel := context.WithTimeout(context.Background(), releaseTimeout)
		if err := j.notifRepo.FinishRun(finCtx, run); err != nil {
			log.WithError(err).Warn("Failed to record check run result")
		}
		finCancel()
	}

	log.WithFields(logrus.Fields{
		"status":            run.Status,
		"overdue_payments":  res.OverduePayments,
		"lease_expirations": res.LeaseExpirations,
	}).Info("Check run finished")
	return res, runErr
}

// LastRun returns the most recent recorded run.
func (j *CheckJob) LastRun(ctx context.Context) (*notification.Run, error) {
	return j.notifRepo.GetLatestRun(ctx)
}
