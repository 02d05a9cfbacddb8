package note

import (
	"slices"
	"time"
)

// Field names a note attribute. Field values double as the keys used in
// validation errors and in the persisted record.
type Field string

const (
	FieldName         Field = "name"
	FieldType         Field = "type"
	FieldLocale       Field = "locale"
	FieldTitle        Field = "title"
	FieldContent      Field = "content"
	FieldIcon         Field = "icon"
	FieldContentData  Field = "content_data"
	FieldStatus       Field = "status"
	FieldSource       Field = "source"
	FieldDateCreated  Field = "date_created"
	FieldDateReminder Field = "date_reminder"
	FieldIsSnoozable  Field = "is_snoozable"
	FieldActions      Field = "actions"
)

// View selects whether a getter returns a value for display or for further
// editing. Only display values pass through the schema's DisplayFilter.
type View int

const (
	ForView View = iota
	ForEdit
)

// DisplayFilter transforms a text field before it is displayed.
type DisplayFilter func(field Field, value string) string

// Note is one admin notification. The zero value is not usable; create
// notes with Schema.New or Schema.Hydrate.
type Note struct {
	schema *Schema

	id           int64
	name         string
	typ          Type
	locale       string
	title        string
	content      string
	icon         string
	contentData  ContentData
	status       Status
	source       string
	dateCreated  time.Time
	dateReminder time.Time
	isSnoozable  bool
	actions      []Action

	objectRead bool
	changes    map[Field]struct{}
}

// ID returns the note's identifier, or 0 if it has never been saved.
func (n *Note) ID() int64 { return n.id }

// SetID records the identifier assigned by the store.
func (n *Note) SetID(id int64) { n.id = id }

// Name returns the machine identifier of the note.
func (n *Note) Name(v View) string { return n.display(v, FieldName, n.name) }

// Type returns the note type.
func (n *Note) Type(v View) Type { return Type(n.display(v, FieldType, string(n.typ))) }

// Locale returns the locale the note's text is written in.
func (n *Note) Locale(v View) string { return n.display(v, FieldLocale, n.locale) }

// Title returns the note title.
func (n *Note) Title(v View) string { return n.display(v, FieldTitle, n.title) }

// Content returns the sanitized note body.
func (n *Note) Content(v View) string { return n.display(v, FieldContent, n.content) }

// Icon returns the icon identifier.
func (n *Note) Icon(v View) string { return n.display(v, FieldIcon, n.icon) }

// ContentData returns a copy of the note's content data.
func (n *Note) ContentData(_ View) ContentData { return n.contentData.Clone() }

// Status returns the lifecycle status.
func (n *Note) Status(v View) Status { return Status(n.display(v, FieldStatus, string(n.status))) }

// Source returns the origin tag.
func (n *Note) Source(v View) string { return n.display(v, FieldSource, n.source) }

// DateCreated returns the creation instant in UTC.
func (n *Note) DateCreated(_ View) time.Time { return n.dateCreated }

// DateReminder returns the reminder instant in UTC and whether one is set.
func (n *Note) DateReminder(_ View) (time.Time, bool) {
	return n.dateReminder, !n.dateReminder.IsZero()
}

// IsSnoozable reports whether the note may be snoozed.
func (n *Note) IsSnoozable(_ View) bool { return n.isSnoozable }

// ObjectRead reports whether the note was hydrated from a stored record.
func (n *Note) ObjectRead() bool { return n.objectRead }

// Changes returns the fields modified since construction or the last call
// to ApplyChanges, in a stable order.
func (n *Note) Changes() []Field {
	fields := make([]Field, 0, len(n.changes))
	for f := range n.changes {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}

// ApplyChanges makes the current field values the persisted baseline.
func (n *Note) ApplyChanges() {
	n.changes = nil
	n.objectRead = true
}

func (n *Note) touch(f Field) {
	if n.changes == nil {
		n.changes = make(map[Field]struct{})
	}
	n.changes[f] = struct{}{}
}

func (n *Note) display(v View, f Field, value string) string {
	if v == ForView && n.schema.display != nil {
		return n.schema.display(f, value)
	}
	return value
}
