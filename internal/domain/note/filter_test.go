package note_test

import (
	"testing"
	"time"

	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
)

func TestFilter_Matches(t *testing.T) {
	t.Parallel()

	due := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	later := due.Add(time.Hour)

	rec := note.Record{Type: "update", Status: "snoozed", DateReminder: &due}

	tests := []struct {
		name   string
		filter note.Filter
		rec    note.Record
		want   bool
	}{
		{name: "empty filter matches", filter: note.Filter{}, rec: rec, want: true},
		{name: "type match", filter: note.Filter{Types: []note.Type{note.TypeUpdate}}, rec: rec, want: true},
		{name: "type mismatch", filter: note.Filter{Types: []note.Type{note.TypeError}}, rec: rec, want: false},
		{name: "status match", filter: note.Filter{Statuses: []note.Status{note.StatusActioned, note.StatusSnoozed}}, rec: rec, want: true},
		{name: "status mismatch", filter: note.Filter{Statuses: []note.Status{note.StatusActioned}}, rec: rec, want: false},
		{name: "due at boundary", filter: note.Filter{DueBefore: due}, rec: rec, want: true},
		{name: "due after reminder", filter: note.Filter{DueBefore: later}, rec: rec, want: true},
		{name: "not yet due", filter: note.Filter{DueBefore: due.Add(-time.Second)}, rec: rec, want: false},
		{name: "no reminder never due", filter: note.Filter{DueBefore: later}, rec: note.Record{Status: "snoozed"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.filter.Matches(tt.rec); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}
