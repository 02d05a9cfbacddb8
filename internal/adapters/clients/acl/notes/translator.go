package notes

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
)

// GMTLayout is the remote's date format.
const GMTLayout = "2006-01-02T15:04:05"

// ToRecord converts a remote note to the persisted record shape.
func ToRecord(dto *NoteDTO) (note.Record, error) {
	created, err := parseGMT(dto.DateCreatedGMT)
	if err != nil {
		return note.Record{}, fmt.Errorf("date_created_gmt: %w", err)
	}

	actions := make([]note.Action, len(dto.Actions))
	for i, a := range dto.Actions {
		actions[i] = note.Action{
			Name:    a.Name,
			Label:   a.Label,
			Query:   a.Query,
			Status:  note.Status(a.Status),
			Primary: a.Primary,
		}
	}
	rawActions, err := json.Marshal(actions)
	if err != nil {
		return note.Record{}, fmt.Errorf("encoding actions: %w", err)
	}

	contentData := dto.ContentData
	if len(contentData) == 0 || string(contentData) == "null" || string(contentData) == "[]" {
		// The remote serializes an empty object as an empty array.
		contentData = json.RawMessage(`{}`)
	}

	rec := note.Record{
		ID:          dto.ID,
		Name:        dto.Name,
		Type:        dto.Type,
		Locale:      dto.Locale,
		Title:       dto.Title,
		Content:     dto.Content,
		Icon:        dto.Icon,
		ContentData: contentData,
		Status:      dto.Status,
		Source:      dto.Source,
		DateCreated: created,
		IsSnoozable: dto.IsSnoozable,
		Actions:     rawActions,
	}
	if dto.DateReminderGMT != nil && *dto.DateReminderGMT != "" {
		reminder, err := parseGMT(*dto.DateReminderGMT)
		if err != nil {
			return note.Record{}, fmt.Errorf("date_reminder_gmt: %w", err)
		}
		rec.DateReminder = &reminder
	}
	return rec, nil
}

// ToRecords converts a page of remote notes, stopping at the first
// malformed entry.
func ToRecords(dtos []NoteDTO) ([]note.Record, error) {
	recs := make([]note.Record, len(dtos))
	for i := range dtos {
		rec, err := ToRecord(&dtos[i])
		if err != nil {
			return nil, fmt.Errorf("note %d: %w", dtos[i].ID, err)
		}
		recs[i] = rec
	}
	return recs, nil
}

// FromRecord converts a record to the remote request body. The id is left
// out; the remote takes it from the path.
func FromRecord(rec note.Record) (NoteDTO, error) {
	var actions []note.Action
	if len(rec.Actions) > 0 {
		if err := json.Unmarshal(rec.Actions, &actions); err != nil {
			return NoteDTO{}, fmt.Errorf("decoding actions: %w", err)
		}
	}

	dto := NoteDTO{
		Name:           rec.Name,
		Type:           rec.Type,
		Locale:         rec.Locale,
		Title:          rec.Title,
		Content:        rec.Content,
		Icon:           rec.Icon,
		ContentData:    rec.ContentData,
		Status:         rec.Status,
		Source:         rec.Source,
		DateCreatedGMT: rec.DateCreated.UTC().Format(GMTLayout),
		IsSnoozable:    rec.IsSnoozable,
		Actions:        make([]ActionDTO, len(actions)),
	}
	for i, a := range actions {
		dto.Actions[i] = ActionDTO{
			Name:    a.Name,
			Label:   a.Label,
			Query:   a.Query,
			Status:  string(a.Status),
			Primary: a.Primary,
		}
	}
	if rec.DateReminder != nil {
		reminder := rec.DateReminder.UTC().Format(GMTLayout)
		dto.DateReminderGMT = &reminder
	}
	return dto, nil
}

func parseGMT(s string) (time.Time, error) {
	return time.ParseInLocation(GMTLayout, s, time.UTC)
}
