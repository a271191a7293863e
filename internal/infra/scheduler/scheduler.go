package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"rent_notification_engine/internal/app"
)

// Job is what the scheduler triggers; app.CheckJob satisfies it.
type Job interface {
	Run(ctx context.Context, trigger string) (app.CheckResult, error)
}

// RunReporter receives the outcome of every scheduled run (e.g. an admin chat).
type RunReporter interface {
	ReportRun(res app.CheckResult, runErr error)
}

type CheckScheduler struct {
	cronEngine          *cron.Cron
	job                 Job
	reporter            RunReporter
	logger              *logrus.Entry
	cronSpecDailyChecks string
	entryID             cron.EntryID
}

func NewCheckScheduler(
	job Job,
	reporter RunReporter, // may be nil
	logger *logrus.Entry,
	cronSpecDailyChecks string, // e.g., "0 9 * * *" (9:00 AM daily)
	loc *time.Location,
) *CheckScheduler {
	if loc == nil {
		loc = time.Local
	}
	cronLogger := cron.PrintfLogger(logger)
	return &CheckScheduler{
		cronEngine: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cronLogger),
			// In-process overlap guard; the job's lock covers other processes.
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		job:                 job,
		reporter:            reporter,
		logger:              logger,
		cronSpecDailyChecks: cronSpecDailyChecks,
	}
}

// Start registers the daily job and starts the cron engine.
func (s *CheckScheduler) Start() error {
	s.logger.Info("Starting check scheduler...")

	id, err := s.cronEngine.AddFunc(s.cronSpecDailyChecks, func() {
		s.logger.Info("Cron job triggered for daily checks.")
		s.executeChecks(context.Background())
	})
	if err != nil {
		return err
	}
	s.entryID = id

	s.cronEngine.Start()
	s.logger.WithField("next_run", s.NextRun()).Info("Check scheduler started.")
	return nil
}

// NextRun returns when the daily job fires next (zero before Start).
func (s *CheckScheduler) NextRun() time.Time {
	return s.cronEngine.Entry(s.entryID).Next
}

// executeChecks runs one job invocation and reports its outcome.
func (s *CheckScheduler) executeChecks(ctx context.Context) {
	res, err := s.job.Run(ctx, app.TriggerCron)
	switch {
	case errors.Is(err, app.ErrRunSkipped):
		s.logger.Warn("Scheduled check run skipped, previous run still holds the lock.")
	case err != nil:
		s.logger.WithError(err).Error("Scheduled check run failed.")
	default:
		s.logger.WithFields(logrus.Fields{
			"overdue_payments":  res.OverduePayments,
			"lease_expirations": res.LeaseExpirations,
		}).Info("Scheduled check run completed.")
	}
	if s.reporter != nil {
		s.reporter.ReportRun(res, err)
	}
}

func (s *CheckScheduler) Stop() {
	s.logger.Info("Stopping check scheduler...")
	ctx := s.cronEngine.Stop() // Stops the scheduler from adding new jobs, waits for running jobs.
	<-ctx.Done()
	s.logger.Info("Check scheduler gracefully stopped.")
}
