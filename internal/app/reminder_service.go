// internal/app/reminder_service.go
package app

import (
	"context"
	"fmt"

	"reminder_planner_bot/internal/domain/reminder"
	domainTelegram "reminder_planner_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// Fixed user-facing replies. On a successfully accepted reminder nothing
// is sent back at all; the silence is intentional, existing behavior.
const (
	replyGreeting = "Вас приветствует Бот-планировщик!\n" +
		"Для создания новой задачи направьте запрос в формате:\n" +
		"01.01.2022 20:00 Сделать домашнюю работу"
	replyWrongFormat = "Текст задачи не по формату:\n" +
		"01.01.2022 20:00 Сделать домашнюю работу"
	replyInvalidDateTime = "Неверный временной формат. Введите информацию по формату:\n" +
		"01.01.2022 20:00"
	replyEnterText = "Введите текст"
)

const startCommand = "/start"

// ReminderService classifies incoming chat messages and turns well-formed
// reminder requests into persisted notification tasks. Every rejection
// path answers the user with a guidance reply; none of them is a fault.
type ReminderService struct {
	taskRepo       reminder.Repository
	telegramClient domainTelegram.Client
	logger         *logrus.Entry
}

func NewReminderService(
	tr reminder.Repository,
	tc domainTelegram.Client,
	logger *logrus.Entry,
) *ReminderService {
	return &ReminderService{
		taskRepo:       tr,
		telegramClient: tc,
		logger:         logger,
	}
}

// ProcessIncomingMessage handles one inbound message. An empty text means
// the update carried no text body at all (media, sticker, etc.).
// A returned error is always a collaborator failure (send or store), never
// a user-input problem; the caller logs it and moves on to the next update.
func (s *ReminderService) ProcessIncomingMessage(ctx context.Context, chatID int64, text string) error {
	logCtx := s.logger.WithField("chat_id", chatID)
	logCtx.Debug("Processing incoming message")

	if text == "" {
		return s.reply(logCtx, chatID, replyEnterText)
	}

	if text == startCommand {
		return s.reply(logCtx, chatID, replyGreeting)
	}

	request, ok := reminder.MatchTaskRequest(text)
	if !ok {
		return s.reply(logCtx, chatID, replyWrongFormat)
	}

	notifyAt, err := reminder.ParseNotifyAt(request.RawNotifyAt)
	if err != nil {
		// Lexically well-formed but not a real calendar date/time.
		return s.reply(logCtx, chatID, replyInvalidDateTime)
	}

	task, err := reminder.NewTask(chatID, request.Body, notifyAt)
	if err != nil {
		logCtx.WithError(err).Warn("Grammar match produced an unusable task request")
		return s.reply(logCtx, chatID, replyWrongFormat)
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logCtx.WithError(err).Error("Failed to persist notification task")
		return fmt.Errorf("failed to persist notification task for chat %d: %w", chatID, err)
	}

	logCtx.WithFields(logrus.Fields{
		"task_id":   task.ID,
		"notify_at": task.NotifyAt.Format(reminder.NotifyAtLayout),
	}).Info("Notification task created")
	return nil // Silent acceptance: no confirmation reply.
}

func (s *ReminderService) reply(logCtx *logrus.Entry, chatID int64, text string) error {
	if err := s.telegramClient.SendMessage(chatID, text, nil); err != nil {
		logCtx.WithError(err).Error("Failed to send guidance reply")
		return fmt.Errorf("failed to send reply to chat %d: %w", chatID, err)
	}
	return nil
}
