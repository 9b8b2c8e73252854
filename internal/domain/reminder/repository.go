// internal/domain/reminder/repository.go
package reminder

import (
	"context"
	"time"
)

// Repository defines the persistence operations for notification tasks.
// Tasks are independent rows with no relationships; creates from inbound
// processing may overlap with due-scans and delivery claims from the
// dispatcher without cross-task locking.
type Repository interface {
	// Create persists a new pending task and assigns ID and CreatedAt.
	Create(ctx context.Context, task *Task) error

	// ListDuePending returns tasks with status PENDING whose NotifyAt is
	// at or before now, oldest first.
	ListDuePending(ctx context.Context, now time.Time) ([]*Task, error)

	// MarkDelivered transitions the task to DELIVERED only if it is still
	// PENDING, and reports whether this call performed the transition.
	// Calling it again for an already delivered task is a no-op returning
	// (false, nil). Unknown ids yield ErrTaskNotFound.
	MarkDelivered(ctx context.Context, id int64) (bool, error)
}
