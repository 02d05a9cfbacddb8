package notejson

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"time"

	"github.com/jsamuelsen11/admin-notes-service/internal/domain"
	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
	"github.com/jsamuelsen11/admin-notes-service/internal/ports"
)

const (
	msgMustNotEmpty = "must not be empty"
	msgNotRecord    = "must be a JSON object"
)

// DateFormats describes the accepted date encodings.
const DateFormats = "a Unix timestamp or an ISO 8601 string"

// badDate is a *json.UnmarshalTypeError so the decoder fills in the field
// path of the offending date.
func badDate(raw []byte) error {
	kind := "value"
	switch {
	case len(raw) == 0:
	case raw[0] == '"':
		kind = "string"
	case raw[0] == '{':
		kind = "object"
	case raw[0] == '[':
		kind = "array"
	case raw[0] == 't', raw[0] == 'f':
		kind = "bool"
	default:
		kind = "number"
	}
	return &json.UnmarshalTypeError{Value: kind, Type: reflect.TypeFor[DateValue]()}
}

// IsDateValue reports whether t is the DateValue type.
func IsDateValue(t reflect.Type) bool { return t == reflect.TypeFor[DateValue]() }

// DateValue is a date field that accepts either a Unix timestamp (number)
// or an ISO 8601 string.
type DateValue struct {
	input note.DateInput
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DateValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return badDate(b)
		}
		d.input = note.ISO8601(s)
		return nil
	}

	var ts int64
	if err := json.Unmarshal(b, &ts); err != nil {
		return badDate(b)
	}
	d.input = note.Unix(ts)
	return nil
}

// Input returns the value as a note.DateInput; nil when d is nil.
func (d *DateValue) Input() note.DateInput {
	if d == nil {
		return nil
	}
	return d.input
}

// ActionRequest is one action in a create or update body.
type ActionRequest struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	Query   string `json:"query,omitempty"`
	Status  string `json:"status,omitempty"`
	Primary bool   `json:"primary,omitempty"`
}

func (a ActionRequest) toInput() ports.ActionInput {
	return ports.ActionInput{
		Name:    a.Name,
		Label:   a.Label,
		Query:   a.Query,
		Status:  note.Status(a.Status),
		Primary: a.Primary,
	}
}

func validateActions(actions []ActionRequest, fields map[string]string) {
	for _, a := range actions {
		if strings.TrimSpace(a.Name) == "" {
			fields["actions.name"] = domain.MsgRequired
		}
		if strings.TrimSpace(a.Label) == "" {
			fields["actions.label"] = domain.MsgRequired
		}
	}
}

// CreateNoteRequest represents the JSON body for creating a note. Omitted
// fields keep the note defaults.
type CreateNoteRequest struct {
	Name         string          `json:"name"`
	Type         string          `json:"type,omitempty"`
	Locale       string          `json:"locale,omitempty"`
	Title        string          `json:"title"`
	Content      string          `json:"content"`
	Icon         string          `json:"icon,omitempty"`
	ContentData  json.RawMessage `json:"content_data,omitempty"`
	Status       string          `json:"status,omitempty"`
	Source       string          `json:"source,omitempty"`
	DateCreated  *DateValue      `json:"date_created,omitempty"`
	DateReminder *DateValue      `json:"date_reminder,omitempty"`
	IsSnoozable  bool            `json:"is_snoozable,omitempty"`
	Actions      []ActionRequest `json:"actions,omitempty"`
}

// Validate checks that required fields are present and that content_data
// is an object. Field values are validated by the note itself.
func (r *CreateNoteRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.Content) == "" {
		fields["content"] = domain.MsgRequired
	}
	if len(r.ContentData) > 0 && !isObject(r.ContentData) {
		fields["content_data"] = msgNotRecord
	}
	validateActions(r.Actions, fields)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToInput maps the request to the service input.
func (r *CreateNoteRequest) ToInput() ports.NoteInput {
	in := ports.NoteInput{
		Name:         r.Name,
		Type:         note.Type(r.Type),
		Locale:       r.Locale,
		Title:        r.Title,
		Content:      r.Content,
		Icon:         r.Icon,
		Status:       note.Status(r.Status),
		Source:       r.Source,
		DateCreated:  r.DateCreated.Input(),
		DateReminder: r.DateReminder.Input(),
		IsSnoozable:  r.IsSnoozable,
	}
	if len(r.ContentData) > 0 {
		in.ContentData = r.ContentData
	}
	for _, a := range r.Actions {
		in.Actions = append(in.Actions, a.toInput())
	}
	return in
}

// UpdateNoteRequest represents the JSON body for a partial update.
// Omitted fields are left unchanged; a present actions list replaces the
// whole list.
type UpdateNoteRequest struct {
	Name          *string          `json:"name,omitempty"`
	Type          *string          `json:"type,omitempty"`
	Locale        *string          `json:"locale,omitempty"`
	Title         *string          `json:"title,omitempty"`
	Content       *string          `json:"content,omitempty"`
	Icon          *string          `json:"icon,omitempty"`
	ContentData   json.RawMessage  `json:"content_data,omitempty"`
	Status        *string          `json:"status,omitempty"`
	Source        *string          `json:"source,omitempty"`
	DateReminder  *DateValue       `json:"date_reminder,omitempty"`
	ClearReminder bool             `json:"clear_reminder,omitempty"`
	IsSnoozable   *bool            `json:"is_snoozable,omitempty"`
	Actions       *[]ActionRequest `json:"actions,omitempty"`
}

// Validate checks that any provided text fields are non-blank.
func (r *UpdateNoteRequest) Validate() error {
	fields := make(map[string]string)

	for name, v := range map[string]*string{
		"name": r.Name, "type": r.Type, "locale": r.Locale, "title": r.Title,
		"content": r.Content, "icon": r.Icon, "status": r.Status, "source": r.Source,
	} {
		if v != nil && strings.TrimSpace(*v) == "" {
			fields[name] = msgMustNotEmpty
		}
	}
	if len(r.ContentData) > 0 && !isObject(r.ContentData) {
		fields["content_data"] = msgNotRecord
	}
	if r.Actions != nil {
		validateActions(*r.Actions, fields)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPatch maps the request to the service patch.
func (r *UpdateNoteRequest) ToPatch() ports.NotePatch {
	p := ports.NotePatch{
		Name:          r.Name,
		Locale:        r.Locale,
		Title:         r.Title,
		Content:       r.Content,
		Icon:          r.Icon,
		Source:        r.Source,
		DateReminder:  r.DateReminder.Input(),
		ClearReminder: r.ClearReminder,
		IsSnoozable:   r.IsSnoozable,
	}
	if r.Type != nil {
		t := note.Type(*r.Type)
		p.Type = &t
	}
	if r.Status != nil {
		s := note.Status(*r.Status)
		p.Status = &s
	}
	if len(r.ContentData) > 0 {
		p.ContentData = r.ContentData
	}
	if r.Actions != nil {
		actions := make([]ports.ActionInput, len(*r.Actions))
		for i, a := range *r.Actions {
			actions[i] = a.toInput()
		}
		p.Actions = &actions
	}
	return p
}

// SnoozeRequest represents the JSON body of POST /notes/{id}/snooze.
type SnoozeRequest struct {
	Until string `json:"until"`

	until time.Time
}

// Validate requires until to be an RFC 3339 timestamp.
func (r *SnoozeRequest) Validate() error {
	if strings.TrimSpace(r.Until) == "" {
		return domain.NewFieldError("until", domain.MsgRequired)
	}
	t, err := time.Parse(time.RFC3339, r.Until)
	if err != nil {
		return domain.NewFieldError("until", "must be an RFC 3339 timestamp")
	}
	r.until = t
	return nil
}

// UntilTime returns the parsed until value. Call Validate first.
func (r *SnoozeRequest) UntilTime() time.Time {
	return r.until
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{' && json.Valid(trimmed)
}
