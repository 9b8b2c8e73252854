// internal/domain/reminder/task.go
package reminder

import (
	"fmt"
	"time"
)

var ErrEmptyMessage = fmt.Errorf("task message must not be empty")

// Task is a persisted request to deliver a text message to a chat at a
// specific future time. Corresponds to the 'notification_tasks' table.
// ChatID, Message and NotifyAt are immutable after creation.
type Task struct {
	ID        int64
	ChatID    int64
	Message   string
	NotifyAt  time.Time // naive local time, minute precision
	Status    Status
	CreatedAt time.Time
}

// NewTask builds a pending task from an already validated request triple.
// ID and CreatedAt are assigned by the repository on Create.
func NewTask(chatID int64, message string, notifyAt time.Time) (*Task, error) {
	if message == "" {
		return nil, ErrEmptyMessage
	}
	return &Task{
		ChatID:   chatID,
		Message:  message,
		NotifyAt: notifyAt,
		Status:   StatusPending,
	}, nil
}
