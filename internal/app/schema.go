package app

import (
	"fmt"

	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
)

// SchemaConfig carries the site settings a note schema is built from.
type SchemaConfig struct {
	DefaultLocale string
	DefaultSource string
	ExtraTypes    []string
	ExtraStatuses []string
}

// NewSchema builds the note schema shared by the service and its stores.
// Extra types and statuses are registered on top of the built-in sets.
func NewSchema(sanitizer note.Sanitizer, clk note.Clock, cfg SchemaConfig) (*note.Schema, error) {
	types := note.NewTypeRegistry()
	for _, t := range cfg.ExtraTypes {
		if err := types.Register(note.Type(t)); err != nil {
			return nil, fmt.Errorf("registering note type %q: %w", t, err)
		}
	}

	statuses := note.NewStatusRegistry()
	for _, s := range cfg.ExtraStatuses {
		if err := statuses.Register(note.Status(s)); err != nil {
			return nil, fmt.Errorf("registering note status %q: %w", s, err)
		}
	}

	opts := []note.SchemaOption{
		note.WithTypes(types),
		note.WithStatuses(statuses),
	}
	if clk != nil {
		opts = append(opts, note.WithClock(clk))
	}
	if cfg.DefaultLocale != "" {
		opts = append(opts, note.WithDefaultLocale(cfg.DefaultLocale))
	}
	if cfg.DefaultSource != "" {
		opts = append(opts, note.WithDefaultSource(cfg.DefaultSource))
	}

	return note.NewSchema(sanitizer, opts...), nil
}
