// internal/app/dispatch_service.go
package app

import (
	"context"
	"fmt"
	"time"

	"reminder_planner_bot/internal/domain/reminder"
	domainTelegram "reminder_planner_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// DispatchService finds due notification tasks and delivers them.
type DispatchService interface {
	// DispatchDueTasks delivers every pending task whose scheduled time
	// has arrived, at most once each.
	DispatchDueTasks(ctx context.Context) error
}

// DispatchServiceImpl implements the DispatchService interface.
type DispatchServiceImpl struct {
	taskRepo       reminder.Repository
	telegramClient domainTelegram.Client
	logger         *logrus.Entry
}

func NewDispatchServiceImpl(
	tr reminder.Repository,
	tc domainTelegram.Client,
	logger *logrus.Entry,
) *DispatchServiceImpl {
	return &DispatchServiceImpl{
		taskRepo:       tr,
		telegramClient: tc,
		logger:         logger,
	}
}

// DispatchDueTasks claims each due task before sending it. The claim is a
// compare-and-swap on the PENDING status, so a task observed by two
// overlapping runs is still sent only once. A send failure after the claim
// is logged and dropped; the task stays DELIVERED (see DESIGN.md).
func (s *DispatchServiceImpl) DispatchDueTasks(ctx context.Context) error {
	now := time.Now()
	dueTasks, err := s.taskRepo.ListDuePending(ctx, now)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list due pending tasks")
		return fmt.Errorf("failed to list due pending tasks: %w", err)
	}
	if len(dueTasks) == 0 {
		s.logger.Debug("No due tasks to dispatch")
		return nil
	}
	s.logger.WithField("due_count", len(dueTasks)).Info("Dispatching due tasks")

	for _, task := range dueTasks {
		logCtx := s.logger.WithFields(logrus.Fields{
			"task_id": task.ID,
			"chat_id": task.ChatID,
		})

		claimed, err := s.taskRepo.MarkDelivered(ctx, task.ID)
		if err != nil {
			logCtx.WithError(err).Error("Failed to claim task for delivery")
			continue
		}
		if !claimed {
			logCtx.Info("Task already claimed by another dispatch run. Skipping.")
			continue
		}

		if err := s.telegramClient.SendMessage(task.ChatID, task.Message, nil); err != nil {
			logCtx.WithError(err).Error("Failed to send scheduled notification")
			continue
		}
		logCtx.Info("Scheduled notification delivered")
	}
	return nil
}
