package notes

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
)

func ptr(s string) *string { return &s }

func TestToRecord(t *testing.T) {
	t.Parallel()

	dto := &NoteDTO{
		ID:              31,
		Name:            "wc-admin-onboarding-payments",
		Type:            "info",
		Locale:          "en_US",
		Title:           "Set up payments",
		Content:         "<p>Connect a gateway</p>",
		Icon:            "credit-card",
		ContentData:     json.RawMessage(`{"gateway":"stripe"}`),
		Status:          "snoozed",
		Source:          "woocommerce-admin",
		DateCreatedGMT:  "2025-02-10T09:00:00",
		DateReminderGMT: ptr("2025-02-12T09:00:00"),
		IsSnoozable:     true,
		Actions: []ActionDTO{
			{ID: 90, Name: "setup", Label: "Set up", Query: "https://example.com/setup", Status: "actioned", Primary: true},
		},
	}

	rec, err := ToRecord(dto)

	require.NoError(t, err)
	assert.Equal(t, int64(31), rec.ID)
	assert.Equal(t, time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC), rec.DateCreated)
	require.NotNil(t, rec.DateReminder)
	assert.Equal(t, time.Date(2025, 2, 12, 9, 0, 0, 0, time.UTC), *rec.DateReminder)
	assert.JSONEq(t, `{"gateway":"stripe"}`, string(rec.ContentData))

	var actions []note.Action
	require.NoError(t, json.Unmarshal(rec.Actions, &actions))
	require.Len(t, actions, 1)
	assert.Equal(t, note.Action{
		Name: "setup", Label: "Set up", Query: "https://example.com/setup",
		Status: note.StatusActioned, Primary: true,
	}, actions[0])
}

func TestToRecord_EmptyContentData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  json.RawMessage
	}{
		{name: "missing", raw: nil},
		{name: "null", raw: json.RawMessage(`null`)},
		{name: "empty array", raw: json.RawMessage(`[]`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, err := ToRecord(&NoteDTO{ContentData: tt.raw, DateCreatedGMT: "2025-02-10T09:00:00"})

			require.NoError(t, err)
			assert.JSONEq(t, `{}`, string(rec.ContentData))
			assert.Nil(t, rec.DateReminder)
		})
	}
}

func TestToRecord_BadDates(t *testing.T) {
	t.Parallel()

	_, err := ToRecord(&NoteDTO{DateCreatedGMT: "yesterday"})
	require.ErrorContains(t, err, "date_created_gmt")

	_, err = ToRecord(&NoteDTO{DateCreatedGMT: "2025-02-10T09:00:00", DateReminderGMT: ptr("soon")})
	require.ErrorContains(t, err, "date_reminder_gmt")
}

func TestFromRecord(t *testing.T) {
	t.Parallel()

	reminder := time.Date(2025, 3, 1, 18, 30, 0, 0, time.FixedZone("CET", 3600))
	rec := note.Record{
		ID:           8,
		Name:         "wc-admin-insight",
		Type:         "update",
		Locale:       "en_US",
		Title:        "Insight",
		Content:      "Sales are up",
		Icon:         "info",
		ContentData:  json.RawMessage(`{}`),
		Status:       "unactioned",
		Source:       "system",
		DateCreated:  time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
		DateReminder: &reminder,
		Actions:      json.RawMessage(`[{"name":"view","label":"View","query":"","status":"actioned","primary":false}]`),
	}

	dto, err := FromRecord(rec)

	require.NoError(t, err)
	assert.Zero(t, dto.ID)
	assert.Equal(t, "2025-03-01T08:00:00", dto.DateCreatedGMT)
	require.NotNil(t, dto.DateReminderGMT)
	assert.Equal(t, "2025-03-01T17:30:00", *dto.DateReminderGMT)
	require.Len(t, dto.Actions, 1)
	assert.Equal(t, "view", dto.Actions[0].Name)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 4, 4, 4, 4, 4, 0, time.UTC)
	rec := note.Record{
		Name: "round", Type: "info", Locale: "en_US", Title: "T", Content: "C", Icon: "info",
		ContentData: json.RawMessage(`{"a":1}`), Status: "actioned", Source: "system",
		DateCreated: created, Actions: json.RawMessage(`[]`),
	}

	dto, err := FromRecord(rec)
	require.NoError(t, err)
	back, err := ToRecord(&dto)
	require.NoError(t, err)

	assert.Equal(t, rec.Name, back.Name)
	assert.Equal(t, created, back.DateCreated)
	assert.JSONEq(t, `[]`, string(back.Actions))
}

func TestToRecords_StopsOnMalformed(t *testing.T) {
	t.Parallel()

	_, err := ToRecords([]NoteDTO{
		{ID: 1, DateCreatedGMT: "2025-02-10T09:00:00"},
		{ID: 2, DateCreatedGMT: "bad"},
	})

	require.ErrorContains(t, err, "note 2")
}
