package appctx

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// step is a mutation that appends to a shared journal.
type step struct {
	name       string
	failExec   error
	failUndo   error
	journal    *[]string
	rolledBack bool
}

func (s *step) Execute(context.Context) error {
	if s.failExec != nil {
		return s.failExec
	}
	*s.journal = append(*s.journal, "do "+s.name)
	return nil
}

func (s *step) Rollback(context.Context) error {
	s.rolledBack = true
	*s.journal = append(*s.journal, "undo "+s.name)
	return s.failUndo
}

func (s *step) Description() string { return s.name }

func TestGetOrFetch(t *testing.T) {
	t.Parallel()

	t.Run("fetches once", func(t *testing.T) {
		t.Parallel()
		rc := New(context.Background())
		calls := 0
		load := func(context.Context) (string, error) {
			calls++
			return "note 42", nil
		}

		first, err := GetOrFetch(rc, "note:42", load)
		require.NoError(t, err)
		second, err := GetOrFetch(rc, "note:42", load)
		require.NoError(t, err)

		assert.Equal(t, "note 42", first)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, calls)
	})

	t.Run("remembers failures", func(t *testing.T) {
		t.Parallel()
		rc := New(context.Background())
		missing := errors.New("not found")
		calls := 0
		load := func(context.Context) (int, error) {
			calls++
			return 0, missing
		}

		_, err := GetOrFetch(rc, "note:9", load)
		require.ErrorIs(t, err, missing)
		_, err = GetOrFetch(rc, "note:9", load)
		require.ErrorIs(t, err, missing)
		assert.Equal(t, 1, calls)
	})

	t.Run("type mismatch", func(t *testing.T) {
		t.Parallel()
		rc := New(context.Background())
		_, _ = GetOrFetch(rc, "note:1", func(context.Context) (string, error) { return "x", nil })

		_, err := GetOrFetch(rc, "note:1", func(context.Context) (int, error) { return 1, nil })
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("passes the wrapped context", func(t *testing.T) {
		t.Parallel()
		type key struct{}
		rc := New(context.WithValue(context.Background(), key{}, "req-1"))

		v, err := GetOrFetch(rc, "k", func(ctx context.Context) (any, error) { return ctx.Value(key{}), nil })
		require.NoError(t, err)
		assert.Equal(t, "req-1", v)
	})
}

func TestStage(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	var journal []string

	_, _ = GetOrFetch(rc, "note:1", func(context.Context) (string, error) { return "loaded", nil })
	require.NoError(t, rc.Stage("note:1", "edited", &step{name: "edit", journal: &journal}))

	v, err := GetOrFetch(rc, "note:1", func(context.Context) (string, error) {
		t.Fatal("staged value should be served")
		return "", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "edited", v)
	assert.Equal(t, 1, rc.Pending())

	assert.ErrorIs(t, rc.Stage("note:1", nil, nil), ErrNilMutation)

	require.NoError(t, rc.Commit(context.Background()))
	assert.Zero(t, rc.Pending())
	assert.ErrorIs(t, rc.Stage("note:1", nil, &step{name: "late", journal: &journal}), ErrAlreadyCommitted)
	assert.ErrorIs(t, rc.Commit(context.Background()), ErrAlreadyCommitted)
}

func TestCommit_RunsInOrder(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	var journal []string
	for _, name := range []string{"status", "reminder", "save"} {
		require.NoError(t, rc.Stage("note:1", nil, &step{name: name, journal: &journal}))
	}

	require.NoError(t, rc.Commit(context.Background()))
	assert.Equal(t, []string{"do status", "do reminder", "do save"}, journal)
}

func TestCommit_FailureRollsBackNewestFirst(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	var journal []string
	locked := errors.New("database is locked")
	save := &step{name: "save note 7", failExec: locked, journal: &journal}
	for _, m := range []*step{
		{name: "status", journal: &journal},
		{name: "reminder", journal: &journal},
		save,
	} {
		require.NoError(t, rc.Stage("note:7", nil, m))
	}

	err := rc.Commit(context.Background())

	var cerr *CommitError
	require.ErrorAs(t, err, &cerr)
	assert.ErrorIs(t, err, locked)
	assert.Equal(t, 3, cerr.Step)
	assert.Equal(t, "save note 7: database is locked", err.Error())
	assert.Empty(t, cerr.Rollback)
	assert.False(t, save.rolledBack, "the failed step has nothing to undo")
	assert.Equal(t, []string{"do status", "do reminder", "undo reminder", "undo status"}, journal)
}

func TestCommit_ReportsRollbackFailures(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	var journal []string
	first := &step{name: "status", journal: &journal}
	stuck := &step{name: "reminder", failUndo: errors.New("reminder locked"), journal: &journal}
	require.NoError(t, rc.Stage("k", nil, first))
	require.NoError(t, rc.Stage("k", nil, stuck))
	require.NoError(t, rc.Stage("k", nil, &step{name: "save", failExec: errors.New("boom"), journal: &journal}))

	err := rc.Commit(context.Background())

	var cerr *CommitError
	require.ErrorAs(t, err, &cerr)
	assert.True(t, first.rolledBack, "rollback continues past a failed undo")
	require.Len(t, cerr.Rollback, 1)
	assert.Contains(t, err.Error(), "rollback incomplete: reminder: reminder locked")
}
