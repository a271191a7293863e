package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/telebot.v3"

	"rent_notification_engine/internal/app"
	"rent_notification_engine/internal/infra/logger"
	"rent_notification_engine/internal/infra/scheduler"
	"rent_notification_engine/internal/infra/telegram"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the daily check scheduler (and the admin bot when configured)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			d, err := build(ctx, cfg)
			if err != nil {
				return err
			}
			defer d.Close()

			var bot *telebot.Bot
			var reporter scheduler.RunReporter
			if cfg.TelegramToken != "" {
				bot, err = telebot.NewBot(telebot.Settings{
					Token:  cfg.TelegramToken,
					Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
					OnError: func(err error, c telebot.Context) {
						logger.Log.WithError(err).Error("telebot error")
					},
				})
				if err != nil {
					return fmt.Errorf("could not create Telegram bot: %w", err)
				}
				botLogger := logger.Component("telegram")
				adminService := app.NewAdminService(d.job, d.payments, cfg.AdminTelegramID)
				telegram.RegisterBotCommands(bot, cfg.AdminTelegramID, botLogger)
				telegram.RegisterAdminHandlers(ctx, bot, adminService, cfg.AdminTelegramID, botLogger)
				reporter = telegram.NewAdminReporter(telegram.NewTelebotAdapter(bot), cfg.AdminTelegramID, botLogger)
				logger.Log.Info("Admin command handlers registered.")
			}

			checkScheduler := scheduler.NewCheckScheduler(d.job, reporter, logger.Component("scheduler"), cfg.CronSpecDailyChecks, cfg.Location)
			if err := checkScheduler.Start(); err != nil {
				return fmt.Errorf("could not schedule daily checks: %w", err)
			}

			if bot != nil {
				go bot.Start()
			}

			// Graceful shutdown
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			logger.Log.Info("Shutting down...")
			if bot != nil {
				bot.Stop()
			}
			checkScheduler.Stop()
			logger.Log.Info("Shut down gracefully.")
			return nil
		},
	}
}
