package note

import (
	"fmt"
	"time"
)

const (
	// DefaultLocale is the locale of a fresh note unless overridden.
	DefaultLocale = "en_US"
	// DefaultSource is the source of a fresh note unless overridden.
	DefaultSource = "system"

	placeholder = "-"
	defaultIcon = "info"
)

// Schema holds the collaborators notes are validated against. One Schema is
// shared by every note in a process; it is safe for concurrent use as long
// as its options are not changed after construction.
type Schema struct {
	types     *Registry[Type]
	statuses  *Registry[Status]
	sanitizer Sanitizer
	clock     Clock
	locale    string
	source    string
	display   DisplayFilter
}

// SchemaOption configures a Schema.
type SchemaOption func(*Schema)

// WithTypes replaces the default type registry.
func WithTypes(r *Registry[Type]) SchemaOption {
	return func(s *Schema) { s.types = r }
}

// WithStatuses replaces the default status registry.
func WithStatuses(r *Registry[Status]) SchemaOption {
	return func(s *Schema) { s.statuses = r }
}

// WithClock sets the clock used for default creation dates and for
// interpreting date strings without an offset.
func WithClock(c Clock) SchemaOption {
	return func(s *Schema) { s.clock = c }
}

// WithDefaultLocale sets the locale of fresh notes.
func WithDefaultLocale(locale string) SchemaOption {
	return func(s *Schema) { s.locale = locale }
}

// WithDefaultSource sets the source of fresh notes.
func WithDefaultSource(source string) SchemaOption {
	return func(s *Schema) { s.source = source }
}

// WithDisplayFilter installs a filter applied to text getters called with
// ForView.
func WithDisplayFilter(f DisplayFilter) SchemaOption {
	return func(s *Schema) { s.display = f }
}

// NewSchema creates a schema with the built-in registries, the system clock
// in UTC and the default locale and source.
func NewSchema(sanitizer Sanitizer, opts ...SchemaOption) *Schema {
	s := &Schema{
		types:     NewTypeRegistry(),
		statuses:  NewStatusRegistry(),
		sanitizer: sanitizer,
		clock:     systemClock{},
		locale:    DefaultLocale,
		source:    DefaultSource,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Types returns the type registry.
func (s *Schema) Types() *Registry[Type] { return s.types }

// Statuses returns the status registry.
func (s *Schema) Statuses() *Registry[Status] { return s.statuses }

// Now returns the schema clock's current time.
func (s *Schema) Now() time.Time { return s.clock.Now() }

// New returns a fresh note carrying the documented defaults.
func (s *Schema) New() *Note {
	return &Note{
		schema:      s,
		name:        placeholder,
		typ:         TypeInfo,
		locale:      s.locale,
		title:       placeholder,
		content:     placeholder,
		icon:        defaultIcon,
		contentData: ContentData{},
		status:      StatusUnactioned,
		source:      s.source,
		dateCreated: s.clock.Now().UTC(),
		actions:     []Action{},
	}
}

// Hydrate builds a note from a stored record. Fields pass through their
// setters except type and status, which are taken as stored so notes written
// under a wider registry stay readable. Setting them again goes through the
// registries. The returned note is marked as read and has no pending changes.
func (s *Schema) Hydrate(rec Record) (*Note, error) {
	n := s.New()
	n.id = rec.ID

	var reminder DateInput
	if rec.DateReminder != nil {
		reminder = Instant(*rec.DateReminder)
	}
	contentData := rec.ContentData
	if len(contentData) == 0 {
		contentData = []byte("{}")
	}

	steps := []func() error{
		func() error { return n.SetName(rec.Name) },
		func() error { return n.restoreKind(Type(rec.Type), Status(rec.Status)) },
		func() error { return n.SetLocale(rec.Locale) },
		func() error { return n.SetTitle(rec.Title) },
		func() error { return n.SetContent(rec.Content) },
		func() error { return n.SetIcon(rec.Icon) },
		func() error { return n.SetContentData(contentData) },
		func() error { return n.SetSource(rec.Source) },
		func() error { return n.SetDateCreated(Instant(rec.DateCreated)) },
		func() error { return n.SetDateReminder(reminder) },
		func() error { return n.restoreActions(rec.Actions) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, fmt.Errorf("hydrating note %d: %w", rec.ID, err)
		}
	}
	n.isSnoozable = rec.IsSnoozable

	n.ApplyChanges()
	return n, nil
}
