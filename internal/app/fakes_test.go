package app

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"reminder_planner_bot/internal/domain/reminder"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l.WithField("test", true)
}

// fakeTaskRepo is an in-memory reminder.Repository with the same
// compare-and-swap claim semantics as the Postgres implementation.
type fakeTaskRepo struct {
	mu        sync.Mutex
	nextID    int64
	tasks     []*reminder.Task
	createErr error
	listErr   error
	markErr   error
}

func (f *fakeTaskRepo) Create(_ context.Context, task *reminder.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	task.ID = f.nextID
	task.CreatedAt = time.Now()
	stored := *task
	f.tasks = append(f.tasks, &stored)
	return nil
}

func (f *fakeTaskRepo) ListDuePending(_ context.Context, now time.Time) ([]*reminder.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	due := make([]*reminder.Task, 0)
	for _, t := range f.tasks {
		if t.Status == reminder.StatusPending && !t.NotifyAt.After(now) {
			copied := *t
			due = append(due, &copied)
		}
	}
	return due, nil
}

func (f *fakeTaskRepo) MarkDelivered(_ context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markErr != nil {
		return false, f.markErr
	}
	for _, t := range f.tasks {
		if t.ID == id {
			if t.Status == reminder.StatusPending {
				t.Status = reminder.StatusDelivered
				return true, nil
			}
			return false, nil
		}
	}
	return false, fmt.Errorf("task %d not found", id)
}

type sentMessage struct {
	chatID int64
	text   string
}

// fakeTelegramClient records outbound sends.
type fakeTelegramClient struct {
	mu      sync.Mutex
	sent    []sentMessage
	sendErr error
}

func (f *fakeTelegramClient) SendMessage(chatID int64, text string, _ *telebot.SendOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text})
	return nil
}
