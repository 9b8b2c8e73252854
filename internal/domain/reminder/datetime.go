// internal/domain/reminder/datetime.go
package reminder

import (
	"fmt"
	"time"
)

// NotifyAtLayout is the only accepted date-time format for reminder
// requests (no seconds, no timezone).
const NotifyAtLayout = "02.01.2006 15:04"

var ErrInvalidDateTime = fmt.Errorf("date-time does not denote a real calendar date/time")

// ParseNotifyAt converts the grammar's date-time token into an absolute
// naive local timestamp. A token that is lexically well-formed but
// calendrically impossible (31.02.2022, hour 25, month 13) yields
// ErrInvalidDateTime rather than a partial parse.
func ParseNotifyAt(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(NotifyAtLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateTime
	}
	return t, nil
}
