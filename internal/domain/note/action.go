package note

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/admin-notes-service/internal/domain"
)

// Action is a user-triggerable operation attached to a note. Status is the
// status the owning note should move to when the action is taken.
type Action struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	Query   string `json:"query"`
	Status  Status `json:"status"`
	Primary bool   `json:"primary"`
}

// ActionOption customizes an action passed to AddAction.
type ActionOption func(*Action)

// WithQuery sets the URL the action navigates to.
func WithQuery(query string) ActionOption {
	return func(a *Action) { a.Query = query }
}

// WithActionStatus sets the status the action requests. Defaults to actioned.
func WithActionStatus(status Status) ActionOption {
	return func(a *Action) { a.Status = status }
}

// WithPrimary marks the action as the note's primary call to action.
func WithPrimary(primary bool) ActionOption {
	return func(a *Action) { a.Primary = primary }
}

// AddAction appends an action to the note. Name and label have all markup
// stripped and must be non-empty afterwards. The status, when given, must
// be an allowed status. On error the action list is unchanged.
//
// The whole action list is rewritten on every call. Two callers that load,
// append to and save the same note concurrently will lose one of the appends.
func (n *Note) AddAction(name, label string, opts ...ActionOption) error {
	a := Action{Name: name, Label: label}
	for _, opt := range opts {
		opt(&a)
	}

	a.Name = n.plainText(a.Name)
	if a.Name == "" {
		return domain.NewFieldError("actions.name", domain.MsgRequired)
	}
	a.Label = n.plainText(a.Label)
	if a.Label == "" {
		return domain.NewFieldError("actions.label", domain.MsgRequired)
	}
	if a.Query != "" {
		a.Query = n.schema.sanitizer.EscapeURL(a.Query)
	}

	a.Status = Status(n.plainText(string(a.Status)))
	if a.Status == "" {
		a.Status = StatusActioned
	}
	if !n.schema.statuses.Allows(a.Status) {
		return domain.NewFieldError("actions.status", fmt.Sprintf("unsupported status %q", a.Status))
	}

	actions := n.copyActions()
	actions = append(actions, a)
	n.actions = actions
	n.touch(FieldActions)
	return nil
}

// ClearActions removes every action from the note.
func (n *Note) ClearActions() {
	n.actions = []Action{}
	n.touch(FieldActions)
}

// Actions returns a copy of the note's actions in insertion order.
func (n *Note) Actions(_ View) []Action {
	return n.copyActions()
}

// Action returns the first action named name.
func (n *Note) Action(name string) (Action, bool) {
	for _, a := range n.actions {
		if a.Name == name {
			return a, true
		}
	}
	return Action{}, false
}

// PrimaryAction returns the first action marked primary. Several actions
// may be marked primary; only the first is reported.
func (n *Note) PrimaryAction() (Action, bool) {
	for _, a := range n.actions {
		if a.Primary {
			return a, true
		}
	}
	return Action{}, false
}

func (n *Note) copyActions() []Action {
	out := make([]Action, len(n.actions))
	copy(out, n.actions)
	return out
}

func (n *Note) plainText(s string) string {
	return strings.TrimSpace(n.schema.sanitizer.Sanitize(s, AllowedTags{}))
}
