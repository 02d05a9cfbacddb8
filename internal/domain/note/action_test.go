package note_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/admin-notes-service/internal/domain"
	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
)

func TestNote_AddActionDefaults(t *testing.T) {
	t.Parallel()

	n := newSchema().New()
	if err := n.AddAction("name", "Label"); err != nil {
		t.Fatalf("AddAction() error = %v", err)
	}

	actions := n.Actions(note.ForEdit)
	if len(actions) != 1 {
		t.Fatalf("len(Actions()) = %d, want 1", len(actions))
	}
	want := note.Action{Name: "name", Label: "Label", Status: note.StatusActioned}
	if actions[0] != want {
		t.Errorf("Actions()[0] = %+v, want %+v", actions[0], want)
	}
}

func TestNote_AddActionValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		action string
		label  string
		opts   []note.ActionOption
		field  string
	}{
		{name: "empty name", action: "", label: "Label", field: "actions.name"},
		{name: "markup-only name", action: "<b></b>", label: "Label", field: "actions.name"},
		{name: "blank label", action: "go", label: "   ", field: "actions.label"},
		{name: "script label", action: "go", label: "<script>x()</script>", field: "actions.label"},
		{name: "unknown status", action: "go", label: "Go", opts: []note.ActionOption{note.WithActionStatus("archived")}, field: "actions.status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := newSchema().New()
			if err := n.AddAction("existing", "Existing"); err != nil {
				t.Fatalf("AddAction() error = %v", err)
			}

			err := n.AddAction(tt.action, tt.label, tt.opts...)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("AddAction() error = %v, want ErrValidation", err)
			}
			if got := fieldOf(t, err); got != tt.field {
				t.Errorf("field = %q, want %q", got, tt.field)
			}
			if got := len(n.Actions(note.ForEdit)); got != 1 {
				t.Errorf("len(Actions()) = %d, want 1 after rejection", got)
			}
		})
	}
}

func TestNote_AddActionCleansInput(t *testing.T) {
	t.Parallel()

	n := newSchema().New()
	err := n.AddAction(" <em>learn-more</em> ", "<strong>Learn</strong> more",
		note.WithQuery("https://example.com/docs page"),
		note.WithActionStatus(note.StatusSnoozed),
		note.WithPrimary(true),
	)
	if err != nil {
		t.Fatalf("AddAction() error = %v", err)
	}

	got, ok := n.Action("learn-more")
	if !ok {
		t.Fatalf("Action(learn-more) not found in %+v", n.Actions(note.ForEdit))
	}
	want := note.Action{
		Name:    "learn-more",
		Label:   "Learn more",
		Query:   "https://example.com/docs%20page",
		Status:  note.StatusSnoozed,
		Primary: true,
	}
	if got != want {
		t.Errorf("Action() = %+v, want %+v", got, want)
	}
}

func TestNote_AddActionUnsafeQuery(t *testing.T) {
	t.Parallel()

	n := newSchema().New()
	if err := n.AddAction("go", "Go", note.WithQuery("javascript:alert(1)")); err != nil {
		t.Fatalf("AddAction() error = %v", err)
	}
	if got, _ := n.Action("go"); got.Query != "" {
		t.Errorf("Query = %q, want empty", got.Query)
	}
}

func TestNote_ActionsOrderAndClear(t *testing.T) {
	t.Parallel()

	n := newSchema().New()
	mustNil(t, n.AddAction("first", "First"))
	mustNil(t, n.AddAction("second", "Second", note.WithPrimary(true)))
	mustNil(t, n.AddAction("third", "Third", note.WithPrimary(true)))

	actions := n.Actions(note.ForEdit)
	for i, name := range []string{"first", "second", "third"} {
		if actions[i].Name != name {
			t.Errorf("Actions()[%d].Name = %q, want %q", i, actions[i].Name, name)
		}
	}

	primary, ok := n.PrimaryAction()
	if !ok || primary.Name != "second" {
		t.Errorf("PrimaryAction() = %+v, %v, want second", primary, ok)
	}

	actions[0].Name = "mutated"
	if first, _ := n.Action("first"); first.Name != "first" {
		t.Error("mutating the returned slice changed the note")
	}

	n.ClearActions()
	if got := n.Actions(note.ForEdit); len(got) != 0 {
		t.Errorf("Actions() after ClearActions = %+v, want empty", got)
	}
	if _, ok := n.PrimaryAction(); ok {
		t.Error("PrimaryAction() should report none after ClearActions")
	}
	if _, ok := n.Action("first"); ok {
		t.Error("Action(first) should be gone after ClearActions")
	}
}
