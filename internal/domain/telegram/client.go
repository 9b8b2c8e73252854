package telegram

import "gopkg.in/telebot.v3"

// Client is the outbound reply channel: it sends plain text back to a
// chat. Delivery is fire-and-forget from the caller's perspective; a
// returned error is logged by the caller, never retried here.
type Client interface {
	SendMessage(chatID int64, text string, options *telebot.SendOptions) error
}
