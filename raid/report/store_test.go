package report

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raidsim/raidsim/raid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_SaveAndList(t *testing.T) {
	store := openTestStore(t)

	run := fixedRun("run-1", raid.ParityRotating, 4)
	require.NoError(t, store.SaveRun(run))

	runs, err := store.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, "run-1", got.ID)
	assert.Equal(t, "RAID 5", got.RAIDLevel)
	assert.Equal(t, 4, got.DiskCount)
	assert.Equal(t, 4, got.TotalItems)
	assert.Equal(t, int64(1000), got.TotalBytes)
	assert.InDelta(t, 700, got.DiskLoadIOPS, 1e-9)
	assert.InDelta(t, 75, got.UsablePercent, 1e-9)
	assert.Equal(t, 1, got.FaultTolerance)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), got.CreatedAt)
}

func TestStore_ListOrdersOldestFirst(t *testing.T) {
	store := openTestStore(t)

	second := fixedRun("run-b", raid.Striped, 4)
	second.Timestamp = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	first := fixedRun("run-a", raid.Mirrored, 4)

	require.NoError(t, store.SaveRun(second))
	require.NoError(t, store.SaveRun(first))

	runs, err := store.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-a", runs[0].ID)
	assert.Equal(t, "run-b", runs[1].ID)
}

func TestStore_DuplicateIDRejected(t *testing.T) {
	store := openTestStore(t)

	run := fixedRun("run-1", raid.Striped, 4)
	require.NoError(t, store.SaveRun(run))
	assert.Error(t, store.SaveRun(run))
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveRun(fixedRun("run-1", raid.Striped, 4)))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.ListRuns()
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
