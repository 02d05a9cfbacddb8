package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
	"github.com/jsamuelsen11/admin-notes-service/internal/platform/sanitize"
)

func TestNewSchema_RegistersExtras(t *testing.T) {
	t.Parallel()

	schema, err := NewSchema(sanitize.New(), fixedClock{now: testNow}, SchemaConfig{
		DefaultLocale: "de_DE",
		DefaultSource: "woocommerce-admin",
		ExtraTypes:    []string{"marketing", "survey"},
		ExtraStatuses: []string{"pending"},
	})
	require.NoError(t, err)

	assert.True(t, schema.Types().Allows("marketing"))
	assert.True(t, schema.Types().Allows(note.TypeInfo))
	assert.True(t, schema.Statuses().Allows("pending"))

	n := schema.New()
	assert.Equal(t, "de_DE", n.Locale(note.ForEdit))
	assert.Equal(t, "woocommerce-admin", n.Source(note.ForEdit))
	assert.Equal(t, testNow, n.DateCreated(note.ForEdit))
	require.NoError(t, n.SetType("survey"))
}

func TestNewSchema_RejectsBlankExtra(t *testing.T) {
	t.Parallel()

	_, err := NewSchema(sanitize.New(), nil, SchemaConfig{ExtraTypes: []string{" "}})
	require.ErrorIs(t, err, note.ErrEmptyRegistryValue)
}

func TestNewSchema_Defaults(t *testing.T) {
	t.Parallel()

	schema, err := NewSchema(sanitize.New(), nil, SchemaConfig{})
	require.NoError(t, err)

	assert.False(t, schema.Types().Allows("marketing"))
	assert.Equal(t, "en_US", schema.New().Locale(note.ForEdit))
}
