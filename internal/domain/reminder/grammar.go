// internal/domain/reminder/grammar.go
package reminder

import "regexp"

// taskRequestPattern tokenizes a reminder request: a DD.MM.YYYY HH:MM
// token, one whitespace separator, then a body of Latin/Cyrillic letters
// and whitespace. Compiled once at init and read-only thereafter.
// Matching is a search: leading characters before the date-time token are
// tolerated, and the greedy body group silently drops any trailing digits
// or punctuation.
var taskRequestPattern = regexp.MustCompile(`(\d{2}\.\d{2}\.\d{4}\s\d{2}:\d{2})(\s)([A-Za-zА-Яа-яЁё\s]+)`)

// TaskRequest holds the raw tokens extracted from a message that matched
// the reminder grammar. RawNotifyAt is lexically valid only; calendar
// validity is ParseNotifyAt's job.
type TaskRequest struct {
	RawNotifyAt string
	Body        string
}

// MatchTaskRequest reports whether text contains a reminder request and,
// if so, returns its raw tokens.
func MatchTaskRequest(text string) (TaskRequest, bool) {
	groups := taskRequestPattern.FindStringSubmatch(text)
	if groups == nil {
		return TaskRequest{}, false
	}
	return TaskRequest{RawNotifyAt: groups[1], Body: groups[3]}, true
}
