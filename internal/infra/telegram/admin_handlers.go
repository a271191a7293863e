package telegram

import (
	"context"
	"errors"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"rent_notification_engine/internal/app"
	idb "rent_notification_engine/internal/infra/database"
)

const msgUnauthorized = "Error: you are not allowed to run this command."

// RegisterAdminHandlers registers handlers for admin commands.
func RegisterAdminHandlers(ctx context.Context, b *telebot.Bot, adminService *app.AdminService, adminTelegramID int64, baseLogger *logrus.Entry) {
	b.Handle("/run_checks", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler":   "/run_checks",
			"sender_id": c.Sender().ID,
		})
		handlerLogger.Info("Command received")

		if c.Sender().ID != adminTelegramID {
			handlerLogger.Warn("Unauthorized access attempt")
			return c.Send(msgUnauthorized)
		}

		res, err := adminService.RunChecks(ctx, c.Sender().ID)
		if err != nil && !errors.Is(err, app.ErrRunSkipped) {
			handlerLogger.WithError(err).Error("Manual check run failed")
		}
		return c.Send(FormatRunResult(res, err))
	})

	b.Handle("/last_run", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler":   "/last_run",
			"sender_id": c.Sender().ID,
		})
		handlerLogger.Info("Command received")

		run, err := adminService.LastRun(ctx, c.Sender().ID)
		if err != nil {
			switch {
			case errors.Is(err, app.ErrAdminNotAuthorized):
				handlerLogger.Warn("Unauthorized access attempt")
				return c.Send(msgUnauthorized)
			case errors.Is(err, app.ErrNoRunsYet):
				return c.Send("No check runs recorded yet.")
			default:
				handlerLogger.WithError(err).Error("Failed to load last run")
				return c.Send("Could not load the last run, see logs.")
			}
		}
		return c.Send(FormatRun(run))
	})

	b.Handle("/payment", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler":   "/payment",
			"sender_id": c.Sender().ID,
		})
		handlerLogger.Info("Command received")

		args := c.Args()
		if len(args) != 1 {
			return c.Send("Usage: /payment <PaymentID>")
		}
		paymentID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return c.Send("Error: payment ID must be a number.")
		}

		p, err := adminService.PaymentStatus(ctx, c.Sender().ID, paymentID)
		if err != nil {
			switch {
			case errors.Is(err, app.ErrAdminNotAuthorized):
				handlerLogger.Warn("Unauthorized access attempt")
				return c.Send(msgUnauthorized)
			case errors.Is(err, idb.ErrPaymentNotFound):
				return c.Send("Payment not found.")
			default:
				handlerLogger.WithError(err).Error("Failed to load payment")
				return c.Send("Could not load the payment, see logs.")
			}
		}
		return c.Send(FormatPayment(p))
	})
}
