package note

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jsamuelsen11/admin-notes-service/internal/domain"
)

// Record is the flat persisted shape of a note. ContentData holds a
// serialized object and Actions a serialized array of actions.
type Record struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Locale       string          `json:"locale"`
	Title        string          `json:"title"`
	Content      string          `json:"content"`
	Icon         string          `json:"icon"`
	ContentData  json.RawMessage `json:"content_data"`
	Status       string          `json:"status"`
	Source       string          `json:"source"`
	DateCreated  time.Time       `json:"date_created"`
	DateReminder *time.Time      `json:"date_reminder,omitempty"`
	IsSnoozable  bool            `json:"is_snoozable"`
	Actions      json.RawMessage `json:"actions"`
}

// ToRecord returns the note's persisted shape.
func (n *Note) ToRecord() (Record, error) {
	data, err := json.Marshal(n.contentData)
	if err != nil {
		return Record{}, fmt.Errorf("encoding content data: %w", err)
	}
	actions, err := json.Marshal(n.actions)
	if err != nil {
		return Record{}, fmt.Errorf("encoding actions: %w", err)
	}

	rec := Record{
		ID:          n.id,
		Name:        n.name,
		Type:        string(n.typ),
		Locale:      n.locale,
		Title:       n.title,
		Content:     n.content,
		Icon:        n.icon,
		ContentData: data,
		Status:      string(n.status),
		Source:      n.source,
		DateCreated: n.dateCreated,
		IsSnoozable: n.isSnoozable,
		Actions:     actions,
	}
	if !n.dateReminder.IsZero() {
		reminder := n.dateReminder
		rec.DateReminder = &reminder
	}
	return rec, nil
}

// restoreKind sets the stored type and status. They passed the registries
// when written and are kept even if that type or status has since been
// unregistered; only blank values are rejected.
func (n *Note) restoreKind(t Type, s Status) error {
	if err := requireText(FieldType, string(t)); err != nil {
		return err
	}
	if err := requireText(FieldStatus, string(s)); err != nil {
		return err
	}
	n.typ, n.status = t, s
	n.touch(FieldType)
	n.touch(FieldStatus)
	return nil
}

// restoreActions replaces the action list with a stored sequence. Stored
// actions were validated when they were added and are taken as they are.
func (n *Note) restoreActions(raw json.RawMessage) error {
	actions := []Action{}
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, &actions); err != nil {
			return domain.NewFieldError(string(FieldActions), "must be a list of actions")
		}
	}
	n.actions = actions
	n.touch(FieldActions)
	return nil
}
