package notejson_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/notejson"
	"github.com/jsamuelsen11/admin-notes-service/internal/domain"
	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
)

func stringPtr(s string) *string { return &s }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestDateValue_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    note.DateInput
		wantErr bool
	}{
		{name: "unix timestamp", raw: `1700000000`, want: note.Unix(1700000000)},
		{name: "iso string", raw: `"2025-06-01T10:00:00Z"`, want: note.ISO8601("2025-06-01T10:00:00Z")},
		{name: "boolean rejected", raw: `true`, wantErr: true},
		{name: "object rejected", raw: `{"at":1}`, wantErr: true},
		{name: "fractional rejected", raw: `1.5`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var d notejson.DateValue
			err := json.Unmarshal([]byte(tt.raw), &d)
			if tt.wantErr {
				var typeErr *json.UnmarshalTypeError
				if !errors.As(err, &typeErr) || !notejson.IsDateValue(typeErr.Type) {
					t.Fatalf("Unmarshal(%s) = %v, want a DateValue type error", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) = %v", tt.raw, err)
			}
			if d.Input() != tt.want {
				t.Errorf("Input() = %#v, want %#v", d.Input(), tt.want)
			}
		})
	}
}

func TestDateValue_NilInput(t *testing.T) {
	t.Parallel()

	var d *notejson.DateValue
	if d.Input() != nil {
		t.Errorf("nil DateValue Input() = %#v, want nil", d.Input())
	}
}

func TestCreateNoteRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := func() notejson.CreateNoteRequest {
		return notejson.CreateNoteRequest{
			Name:    "wc-admin-welcome",
			Title:   "Welcome",
			Content: "Thanks for installing.",
		}
	}

	tests := []struct {
		name      string
		mutate    func(r *notejson.CreateNoteRequest)
		wantField string
	}{
		{name: "valid request passes", mutate: func(*notejson.CreateNoteRequest) {}},
		{name: "blank name", mutate: func(r *notejson.CreateNoteRequest) { r.Name = "  " }, wantField: "name"},
		{name: "missing title", mutate: func(r *notejson.CreateNoteRequest) { r.Title = "" }, wantField: "title"},
		{name: "missing content", mutate: func(r *notejson.CreateNoteRequest) { r.Content = "" }, wantField: "content"},
		{
			name:      "content_data list rejected",
			mutate:    func(r *notejson.CreateNoteRequest) { r.ContentData = json.RawMessage(`[1,2]`) },
			wantField: "content_data",
		},
		{
			name:   "content_data object accepted",
			mutate: func(r *notejson.CreateNoteRequest) { r.ContentData = json.RawMessage(` {"n":1}`) },
		},
		{
			name: "action without label",
			mutate: func(r *notejson.CreateNoteRequest) {
				r.Actions = []notejson.ActionRequest{{Name: "open"}}
			},
			wantField: "actions.label",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := valid()
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestCreateNoteRequest_ToInput(t *testing.T) {
	t.Parallel()

	body := `{
		"name": "wc-admin-welcome",
		"type": "update",
		"title": "Welcome",
		"content": "Hello",
		"content_data": {"count": 3},
		"date_reminder": 1700000000,
		"is_snoozable": true,
		"actions": [{"name": "open", "label": "Open", "query": "/x", "primary": true}]
	}`

	var req notejson.CreateNoteRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	in := req.ToInput()

	if in.Type != note.TypeUpdate {
		t.Errorf("Type = %q, want %q", in.Type, note.TypeUpdate)
	}
	if in.DateReminder != note.Unix(1700000000) {
		t.Errorf("DateReminder = %#v, want Unix(1700000000)", in.DateReminder)
	}
	if in.DateCreated != nil {
		t.Errorf("DateCreated = %#v, want nil", in.DateCreated)
	}
	if in.ContentData == nil {
		t.Error("ContentData = nil, want raw object")
	}
	if !in.IsSnoozable {
		t.Error("IsSnoozable = false, want true")
	}
	if len(in.Actions) != 1 || !in.Actions[0].Primary || in.Actions[0].Query != "/x" {
		t.Errorf("Actions = %+v, want one primary action with query /x", in.Actions)
	}
}

func TestCreateNoteRequest_ToInputOmitsEmptyContentData(t *testing.T) {
	t.Parallel()

	req := notejson.CreateNoteRequest{Name: "n", Title: "t", Content: "c"}
	if got := req.ToInput().ContentData; got != nil {
		t.Errorf("ContentData = %#v, want untyped nil", got)
	}
}

func TestUpdateNoteRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       notejson.UpdateNoteRequest
		wantField string
	}{
		{name: "empty patch passes", req: notejson.UpdateNoteRequest{}},
		{name: "title provided", req: notejson.UpdateNoteRequest{Title: stringPtr("New")}},
		{name: "blank title", req: notejson.UpdateNoteRequest{Title: stringPtr(" ")}, wantField: "title"},
		{name: "blank status", req: notejson.UpdateNoteRequest{Status: stringPtr("")}, wantField: "status"},
		{
			name:      "scalar content_data",
			req:       notejson.UpdateNoteRequest{ContentData: json.RawMessage(`"x"`)},
			wantField: "content_data",
		},
		{
			name:      "action without name",
			req:       notejson.UpdateNoteRequest{Actions: &[]notejson.ActionRequest{{Label: "Go"}}},
			wantField: "actions.name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestUpdateNoteRequest_ToPatch(t *testing.T) {
	t.Parallel()

	var req notejson.UpdateNoteRequest
	body := `{"status": "actioned", "clear_reminder": true, "actions": []}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	patch := req.ToPatch()

	if patch.Status == nil || *patch.Status != note.StatusActioned {
		t.Errorf("Status = %v, want actioned", patch.Status)
	}
	if !patch.ClearReminder {
		t.Error("ClearReminder = false, want true")
	}
	if patch.Actions == nil || len(*patch.Actions) != 0 {
		t.Errorf("Actions = %v, want empty replacement list", patch.Actions)
	}
	if patch.Title != nil || patch.Type != nil || patch.ContentData != nil {
		t.Errorf("unexpected fields set in patch: %+v", patch)
	}
}

func TestSnoozeRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		until   string
		wantErr bool
	}{
		{name: "rfc3339", until: "2025-06-03T09:00:00Z"},
		{name: "offset", until: "2025-06-03T09:00:00+02:00"},
		{name: "missing", until: "", wantErr: true},
		{name: "not a timestamp", until: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := notejson.SnoozeRequest{Until: tt.until}
			err := req.Validate()
			if tt.wantErr {
				requireValidationField(t, err, "until")
				return
			}
			if err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
			if req.UntilTime().IsZero() {
				t.Error("UntilTime() is zero after Validate")
			}
		})
	}
}
