package note

import (
	"slices"
	"time"
)

// Filter selects notes in list and count queries. Empty fields match
// everything.
type Filter struct {
	Types    []Type
	Statuses []Status
	// DueBefore, when set, matches notes whose reminder is at or before it.
	DueBefore time.Time
	Limit     int
	Offset    int
}

// Matches reports whether rec satisfies the filter's predicates. Limit and
// Offset are not considered.
func (f Filter) Matches(rec Record) bool {
	if len(f.Types) > 0 && !slices.Contains(f.Types, Type(rec.Type)) {
		return false
	}
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, Status(rec.Status)) {
		return false
	}
	if !f.DueBefore.IsZero() {
		if rec.DateReminder == nil || rec.DateReminder.After(f.DueBefore) {
			return false
		}
	}
	return true
}
