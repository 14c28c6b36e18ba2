package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/sessionlog/internal/session"
	"github.com/ayoisaiah/sessionlog/internal/testutil"
	"github.com/ayoisaiah/sessionlog/store"
)

func TestJSONFileFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sessions.json")

	s, err := store.Open(store.NewJSONFile(path))
	require.NoError(t, err)

	appendAll(t, s,
		session.Session{
			Task:        "write report",
			Intent:      "finish Q1 draft",
			Start:       at(2, 9, 0),
			End:         at(2, 9, 42),
			DurationMin: 42,
			Outcome:     session.Interrupted,
			Reason:      "meeting",
		},
		newSession("plan week", at(1, 16, 30), at(1, 17, 5)),
		newSession("inbox", at(2, 10, 0), at(2, 10, 20)),
	)

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	testutil.CompareGoldenFile(t, "log", got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestJSONFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")

	require.NoError(t, os.WriteFile(path, []byte("\n"), 0o600))

	l, err := store.NewJSONFile(path).Load()
	require.NoError(t, err)
	assert.Empty(t, l)
}

func TestJSONFileSaveFailureKeepsPreviousContent(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "sessions.json")

	f := store.NewJSONFile(path)

	require.NoError(t, f.Save(store.Log{
		"2024-01-01": {{Task: "a", Start: "09:00", End: "09:10", DurationMin: 10, Outcome: "finished"}},
	}))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	err = f.Save(store.Log{})
	assert.Error(t, err)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
