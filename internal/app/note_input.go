package app

import (
	"errors"
	"maps"

	"github.com/jsamuelsen11/admin-notes-service/internal/domain"
	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
	"github.com/jsamuelsen11/admin-notes-service/internal/ports"
)

// fieldErrors merges the per-field validation errors of several setters
// into one ValidationError.
type fieldErrors struct {
	fields map[string]string
	other  error
}

func (e *fieldErrors) add(err error) {
	if err == nil {
		return
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		if e.other == nil {
			e.other = err
		}
		return
	}
	if e.fields == nil {
		e.fields = make(map[string]string)
	}
	maps.Copy(e.fields, verr.Fields)
}

func (e *fieldErrors) err() error {
	if e.other != nil {
		return e.other
	}
	if len(e.fields) > 0 {
		return &domain.ValidationError{Fields: e.fields}
	}
	return nil
}

// applyInput copies the non-zero fields of in onto a fresh note.
func applyInput(n *note.Note, in ports.NoteInput) error {
	var errs fieldErrors

	if in.Name != "" {
		errs.add(n.SetName(in.Name))
	}
	if in.Type != "" {
		errs.add(n.SetType(in.Type))
	}
	if in.Locale != "" {
		errs.add(n.SetLocale(in.Locale))
	}
	if in.Title != "" {
		errs.add(n.SetTitle(in.Title))
	}
	if in.Content != "" {
		errs.add(n.SetContent(in.Content))
	}
	if in.Icon != "" {
		errs.add(n.SetIcon(in.Icon))
	}
	if in.ContentData != nil {
		errs.add(n.SetContentData(in.ContentData))
	}
	if in.Status != "" {
		errs.add(n.SetStatus(in.Status))
	}
	if in.Source != "" {
		errs.add(n.SetSource(in.Source))
	}
	if in.DateCreated != nil {
		errs.add(n.SetDateCreated(in.DateCreated))
	}
	if in.DateReminder != nil {
		errs.add(n.SetDateReminder(in.DateReminder))
	}
	n.SetIsSnoozable(in.IsSnoozable)
	for _, a := range in.Actions {
		errs.add(addAction(n, a))
	}

	return errs.err()
}

// applyPatch copies the set fields of p onto n.
func applyPatch(n *note.Note, p ports.NotePatch) error {
	var errs fieldErrors

	if p.Name != nil {
		errs.add(n.SetName(*p.Name))
	}
	if p.Type != nil {
		errs.add(n.SetType(*p.Type))
	}
	if p.Locale != nil {
		errs.add(n.SetLocale(*p.Locale))
	}
	if p.Title != nil {
		errs.add(n.SetTitle(*p.Title))
	}
	if p.Content != nil {
		errs.add(n.SetContent(*p.Content))
	}
	if p.Icon != nil {
		errs.add(n.SetIcon(*p.Icon))
	}
	if p.ContentData != nil {
		errs.add(n.SetContentData(p.ContentData))
	}
	if p.Status != nil {
		errs.add(n.SetStatus(*p.Status))
	}
	if p.Source != nil {
		errs.add(n.SetSource(*p.Source))
	}
	switch {
	case p.ClearReminder:
		errs.add(n.SetDateReminder(nil))
	case p.DateReminder != nil:
		errs.add(n.SetDateReminder(p.DateReminder))
	}
	if p.IsSnoozable != nil {
		n.SetIsSnoozable(*p.IsSnoozable)
	}
	if p.Actions != nil {
		n.ClearActions()
		for _, a := range *p.Actions {
			errs.add(addAction(n, a))
		}
	}

	return errs.err()
}

func addAction(n *note.Note, a ports.ActionInput) error {
	opts := []note.ActionOption{note.WithPrimary(a.Primary)}
	if a.Query != "" {
		opts = append(opts, note.WithQuery(a.Query))
	}
	if a.Status != "" {
		opts = append(opts, note.WithActionStatus(a.Status))
	}
	return n.AddAction(a.Name, a.Label, opts...)
}
