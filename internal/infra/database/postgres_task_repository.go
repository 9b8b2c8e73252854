// internal/infra/database/postgres_task_repository.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"reminder_planner_bot/internal/domain/reminder"
)

// Custom errors specific to the task repository
var ErrTaskNotFound = fmt.Errorf("notification task not found")

type PostgresTaskRepository struct {
	db *sql.DB
}

func NewPostgresTaskRepository(db *sql.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{db: db}
}

// Create persists a new task and fills in its ID and CreatedAt.
func (r *PostgresTaskRepository) Create(ctx context.Context, task *reminder.Task) error {
	query := `INSERT INTO notification_tasks (chat_id, message, notify_at, status)
               VALUES ($1, $2, $3, $4)
               RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, task.ChatID, task.Message, task.NotifyAt, task.Status).Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating notification task: %w", err)
	}
	return nil
}

// ListDuePending returns pending tasks whose notify_at is at or before now.
func (r *PostgresTaskRepository) ListDuePending(ctx context.Context, now time.Time) ([]*reminder.Task, error) {
	query := `SELECT id, chat_id, message, notify_at, status, created_at
               FROM notification_tasks
               WHERE status = $1 AND notify_at <= $2
               ORDER BY notify_at ASC` // Deliver overdue tasks oldest first
	rows, err := r.db.QueryContext(ctx, query, reminder.StatusPending, now)
	if err != nil {
		return nil, fmt.Errorf("error querying due pending tasks: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

// MarkDelivered claims the pending->delivered transition. The WHERE clause
// on status makes the claim a compare-and-swap: overlapping dispatcher runs
// cannot both observe a row change, so a task is delivered at most once.
func (r *PostgresTaskRepository) MarkDelivered(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE notification_tasks
               SET status = $1
               WHERE id = $2 AND status = $3`
	res, err := r.db.ExecContext(ctx, query, reminder.StatusDelivered, id, reminder.StatusPending)
	if err != nil {
		return false, fmt.Errorf("error marking task %d delivered: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error reading rows affected for task %d: %w", id, err)
	}
	if affected > 0 {
		return true, nil
	}

	// No row changed: either the task is already delivered (idempotent
	// no-op) or the id is unknown.
	var status reminder.Status
	err = r.db.QueryRowContext(ctx, `SELECT status FROM notification_tasks WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, ErrTaskNotFound
		}
		return false, fmt.Errorf("error checking status of task %d: %w", id, err)
	}
	return false, nil
}

// Helper to scan multiple rows
func scanTasks(rows *sql.Rows) ([]*reminder.Task, error) {
	tasks := make([]*reminder.Task, 0)
	for rows.Next() {
		t := reminder.Task{}
		if err := rows.Scan(&t.ID, &t.ChatID, &t.Message, &t.NotifyAt, &t.Status, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning task row: %w", err)
		}
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}
	return tasks, nil
}
