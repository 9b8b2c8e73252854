// internal/domain/reminder/status.go
package reminder

// Status represents the delivery state of a notification task.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusDelivered Status = "DELIVERED"
	// The only legal transition is PENDING -> DELIVERED, performed once
	// by the dispatcher as part of the delivery claim.
)
