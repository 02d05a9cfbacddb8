// Package notes implements the Anti-Corruption Layer translators for the
// remote admin notes resource (wc-analytics/admin/notes).
package notes

import "encoding/json"

// NoteDTO matches the remote note resource. Dates are GMT wall-clock
// strings without an offset ("2006-01-02T15:04:05").
type NoteDTO struct {
	ID              int64           `json:"id,omitempty"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	Locale          string          `json:"locale"`
	Title           string          `json:"title"`
	Content         string          `json:"content"`
	Icon            string          `json:"icon"`
	ContentData     json.RawMessage `json:"content_data"`
	Status          string          `json:"status"`
	Source          string          `json:"source"`
	DateCreatedGMT  string          `json:"date_created_gmt"`
	DateReminderGMT *string         `json:"date_reminder_gmt"`
	IsSnoozable     bool            `json:"is_snoozable"`
	Actions         []ActionDTO     `json:"actions"`
}

// ActionDTO matches one entry of the remote actions array. The remote
// assigns ids to actions; they are not carried into the domain.
type ActionDTO struct {
	ID      int64  `json:"id,omitempty"`
	Name    string `json:"name"`
	Label   string `json:"label"`
	Query   string `json:"query"`
	Status  string `json:"status"`
	Primary bool   `json:"primary"`
}
