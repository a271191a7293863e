package main

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"rent_notification_engine/internal/app"
	"rent_notification_engine/internal/infra/config"
	idb "rent_notification_engine/internal/infra/database"
	"rent_notification_engine/internal/infra/lock"
	"rent_notification_engine/internal/infra/logger"
)

// deps is the wired object graph shared by every command.
type deps struct {
	cfg         *config.AppConfig
	db          *gorm.DB
	redisClient *redis.Client
	job         *app.CheckJob
	payments    *app.PaymentService
}

func (d *deps) Close() {
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.db != nil {
		if err := idb.Close(d.db); err != nil {
			logger.Log.WithError(err).Warn("Failed to close database")
		}
	}
}

func loadConfig() (*config.AppConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load application configuration: %w", err)
	}
	logger.Init(cfg)
	logger.Log.WithFields(logrus.Fields{
		"environment": cfg.Environment,
		"driver":      cfg.DatabaseDriver,
		"timezone":    cfg.Location.String(),
	}).Info("Configuration loaded")
	return cfg, nil
}

func openDatabase(cfg *config.AppConfig) (*gorm.DB, error) {
	db, err := idb.Open(cfg, logger.Log)
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	logger.Log.Info("Database connection established successfully.")
	return db, nil
}

// build wires repositories, services, the lock and the check job.
func build(ctx context.Context, cfg *config.AppConfig) (*deps, error) {
	db, err := openDatabase(cfg)
	if err != nil {
		return nil, err
	}
	d := &deps{cfg: cfg, db: db}

	paymentRepo := idb.NewGormPaymentRepository(db, cfg.QueryTimeout)
	tenantRepo := idb.NewGormTenantRepository(db, cfg.QueryTimeout)
	notifRepo := idb.NewGormNotificationRepository(db, cfg.QueryTimeout)

	var locker lock.Locker
	if cfg.RedisAddr != "" {
		client, err := lock.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			d.Close()
			return nil, err
		}
		d.redisClient = client
		locker = lock.NewRedisLocker(client)
		logger.Log.WithField("redis_addr", cfg.RedisAddr).Info("Using Redis run lock.")
	} else {
		locker = lock.NewLocalLocker()
		logger.Log.Info("REDIS_ADDR not set, using in-process run lock.")
	}

	checkService := app.NewCheckServiceImpl(
		paymentRepo,
		tenantRepo,
		notifRepo,
		logger.Component("checks"),
		cfg.Location,
		cfg.DefaultCurrency,
	)
	d.job = app.NewCheckJob(checkService, notifRepo, locker, logger.Component("check_job"), app.JobOptions{
		LockKey:    cfg.LockKey,
		LockTTL:    cfg.LockTTL,
		RunTimeout: cfg.RunTimeout,
		Location:   cfg.Location,
	})
	d.payments = app.NewPaymentService(
		paymentRepo,
		app.NewStatusReconciler(paymentRepo, logger.Component("reconciler")),
		cfg.Location,
	)
	return d, nil
}
