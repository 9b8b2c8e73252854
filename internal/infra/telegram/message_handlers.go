// internal/infra/telegram/message_handlers.go
package telegram

import (
	"context"

	"reminder_planner_bot/internal/app"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// RegisterMessageHandlers routes inbound updates into the reminder
// service. No dedicated /start handler is registered on purpose: the
// command travels through OnText so the service stays the single
// classification state machine for every text message.
//
// Update-batch acknowledgment is the poller's responsibility; a handler
// error lands in the bot's global OnError hook and never stops the poll
// loop or affects other updates.
func RegisterMessageHandlers(
	ctx context.Context,
	b *telebot.Bot,
	reminderService *app.ReminderService,
	baseLogger *logrus.Entry,
) {
	msgLogger := baseLogger.WithField("handler_group", "messages")

	b.Handle(telebot.OnText, func(c telebot.Context) error {
		chatID := c.Chat().ID
		msgLogger.WithField("chat_id", chatID).Debug("Text message received")
		return reminderService.ProcessIncomingMessage(ctx, chatID, c.Text())
	})

	// Media and service updates carry no text body: the absent-text path.
	b.Handle(telebot.OnMedia, func(c telebot.Context) error {
		chatID := c.Chat().ID
		msgLogger.WithField("chat_id", chatID).Debug("Non-text message received")
		return reminderService.ProcessIncomingMessage(ctx, chatID, "")
	})
}
