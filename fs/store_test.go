package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/ddir"
	"github.com/fwojciec/ddir/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: JSON File Persistence
// The store keeps describer state in a single hand-editable JSON file
// and replaces it atomically on save.

func TestStore_SaveThenLoadRoundTrips(t *testing.T) {
	t.Parallel()

	// Given a describer with descriptions and patterns
	path := filepath.Join(t.TempDir(), "config.json")
	store := fs.NewStore(path)
	d := ddir.NewDescriber()
	d.AddDescription("/path/to/dir", "This is /path/to/dir.")
	d.AddPattern("/path/to/dir", "* is in /path/to/dir.")

	// When I save and load it back
	err := store.Save(context.Background(), d)
	require.NoError(t, err)
	loaded, err := store.Load(context.Background())
	require.NoError(t, err)

	// Then describe results are preserved
	got, ok := loaded.Describe("/path/to/dir")
	require.True(t, ok)
	assert.Equal(t, "This is /path/to/dir.", got)

	got, ok = loaded.Describe("/path/to/dir/child")
	require.True(t, ok)
	assert.Equal(t, "child is in /path/to/dir.", got)
}

func TestStore_LoadMissingFileIsNotFound(t *testing.T) {
	t.Parallel()

	// Given a store pointing at a file that was never written
	path := filepath.Join(t.TempDir(), "config.json")
	store := fs.NewStore(path)

	// When I load
	_, err := store.Load(context.Background())

	// Then the error is ENOTFOUND and names the file
	require.Error(t, err)
	assert.Equal(t, ddir.ENOTFOUND, ddir.ErrorCode(err))
	assert.Contains(t, err.Error(), path)
}

func TestStore_LoadCorruptFileIsInvalid(t *testing.T) {
	t.Parallel()

	// Given a file that is not valid JSON
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	store := fs.NewStore(path)

	// When I load
	_, err := store.Load(context.Background())

	// Then the error is EINVALID, never an empty describer
	require.Error(t, err)
	assert.Equal(t, ddir.EINVALID, ddir.ErrorCode(err))
}

func TestStore_LoadPartialDocumentIsInvalid(t *testing.T) {
	t.Parallel()

	// Given a structurally incomplete document
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"descriptions": {}}`), 0644))
	store := fs.NewStore(path)

	// When I load
	_, err := store.Load(context.Background())

	// Then the missing patterns field fails the load
	require.Error(t, err)
	assert.Equal(t, ddir.EINVALID, ddir.ErrorCode(err))
	assert.Contains(t, err.Error(), "patterns")
}

func TestStore_SaveCreatesConfigDirectory(t *testing.T) {
	t.Parallel()

	// Given a store whose containing directory does not exist yet
	path := filepath.Join(t.TempDir(), ".config", "ddir", "config.json")
	store := fs.NewStore(path)

	// When I save
	err := store.Save(context.Background(), ddir.NewDescriber())

	// Then no error occurs and the file exists
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err, "config file should exist after first save")
}

func TestStore_SaveWritesIndentedJSON(t *testing.T) {
	t.Parallel()

	// Given a describer with one entry
	path := filepath.Join(t.TempDir(), "config.json")
	store := fs.NewStore(path)
	d := ddir.NewDescriber()
	d.AddDescription("/a", "a")

	// When I save
	err := store.Save(context.Background(), d)
	require.NoError(t, err)

	// Then the file is indented so it stays hand-editable
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"descriptions\"")
	assert.Contains(t, string(data), "\n  \"patterns\"")
}

func TestStore_SaveReplacesPreviousState(t *testing.T) {
	t.Parallel()

	// Given a store that already holds state
	path := filepath.Join(t.TempDir(), "config.json")
	store := fs.NewStore(path)
	first := ddir.NewDescriber()
	first.AddDescription("/a", "first")
	require.NoError(t, store.Save(context.Background(), first))

	// When I save a different describer
	second := ddir.NewDescriber()
	second.AddDescription("/a", "second")
	require.NoError(t, store.Save(context.Background(), second))

	// Then the new state fully replaces the old
	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	got, ok := loaded.Describe("/a")
	require.True(t, ok)
	assert.Equal(t, "second", got)

	// And no temporary file is left behind
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file should be gone after save")
}

func TestStore_LoadPreservesHandEdits(t *testing.T) {
	t.Parallel()

	// Given a file written by hand rather than by Save
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"descriptions": {"/hand": "edited"},
		"patterns": {}
	}`), 0644))
	store := fs.NewStore(path)

	// When I load
	loaded, err := store.Load(context.Background())

	// Then the hand-written entry is visible
	require.NoError(t, err)
	got, ok := loaded.Describe("/hand")
	require.True(t, ok)
	assert.Equal(t, "edited", got)
}
