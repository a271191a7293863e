// internal/infra/telegram/client.go
package telegram

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"rent_notification_engine/internal/app"
	domainTelegram "rent_notification_engine/internal/domain/telegram"
)

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// SendMessage sends a text message to the specified recipient.
func (tba *TelebotAdapter) SendMessage(recipientChatID int64, text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}

	recipient := &telebot.User{ID: recipientChatID}
	_, err := tba.bot.Send(recipient, text, options)
	return err
}

// AdminReporter posts scheduled run summaries to the admin chat.
type AdminReporter struct {
	client      domainTelegram.Client
	adminChatID int64
	logger      *logrus.Entry
}

func NewAdminReporter(client domainTelegram.Client, adminChatID int64, logger *logrus.Entry) *AdminReporter {
	return &AdminReporter{client: client, adminChatID: adminChatID, logger: logger}
}

// ReportRun sends the outcome of a run. Delivery errors are logged, never returned.
func (r *AdminReporter) ReportRun(res app.CheckResult, runErr error) {
	if err := r.client.SendMessage(r.adminChatID, FormatRunResult(res, runErr), nil); err != nil {
		r.logger.WithError(err).WithField("admin_chat_id", r.adminChatID).Error("Failed to send run report to admin")
	}
}
