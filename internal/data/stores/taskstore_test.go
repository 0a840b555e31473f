package stores

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tick/internal/core/task"
)

func newTestStore(t *testing.T) *TaskStore {
	t.Helper()
	return NewTaskStore(t.TempDir(), zerolog.Nop())
}

func TestTaskStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	created := time.Date(2025, time.June, 1, 12, 30, 0, 0, time.UTC)
	tasks := []task.Task{
		{ID: 1, Text: "Buy milk", CreatedAt: created},
		{ID: 2, Text: "Walk dog", Completed: true, CreatedAt: created.Add(time.Minute)},
	}

	require.NoError(t, store.Save(tasks))

	got := store.Load()
	require.Len(t, got, 2)
	assert.Equal(t, tasks[0].ID, got[0].ID)
	assert.Equal(t, tasks[0].Text, got[0].Text)
	assert.Equal(t, tasks[1].Completed, got[1].Completed)
	assert.True(t, tasks[0].CreatedAt.Equal(got[0].CreatedAt), "timestamps must round-trip")
}

func TestTaskStore_LoadMissingFile(t *testing.T) {
	store := newTestStore(t)

	if got := store.Load(); len(got) != 0 {
		t.Errorf("got %d tasks from missing file, want 0", len(got))
	}
}

func TestTaskStore_LoadMalformed(t *testing.T) {
	dir := t.TempDir()
	store := NewTaskStore(dir, zerolog.Nop())

	err := os.WriteFile(filepath.Join(dir, SnapshotFile), []byte(`{not valid json`), 0o644)
	require.NoError(t, err)

	// Malformed data falls back to an empty collection, no panic, no error.
	if got := store.Load(); len(got) != 0 {
		t.Errorf("got %d tasks from malformed file, want 0", len(got))
	}
}

func TestTaskStore_LoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	store := NewTaskStore(dir, zerolog.Nop())

	require.NoError(t, os.WriteFile(filepath.Join(dir, SnapshotFile), nil, 0o644))

	if got := store.Load(); len(got) != 0 {
		t.Errorf("got %d tasks from empty file, want 0", len(got))
	}
}

func TestTaskStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save([]task.Task{{ID: 1, Text: "first"}}))
	require.NoError(t, store.Save([]task.Task{{ID: 2, Text: "second"}}))

	got := store.Load()
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestTaskStore_SaveNil(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(nil))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data), "nil collection persists as an empty array")
}

func TestTaskStore_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewTaskStore(dir, zerolog.Nop())

	require.NoError(t, store.Save([]task.Task{{ID: 1, Text: "x"}}))
	require.Len(t, store.Load(), 1)
}
