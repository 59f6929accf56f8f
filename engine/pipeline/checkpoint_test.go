package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckpointFreshStart(t *testing.T) {
	dir := t.TempDir()

	cp, err := LoadCheckpoint(dir)
	require.NoError(t, err)
	assert.Equal(t, 0, cp.Done())
	assert.False(t, cp.IsDone("meshes/a.obj"))
}

func TestCheckpointRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cp, err := LoadCheckpoint(dir)
	require.NoError(t, err)
	require.NoError(t, cp.MarkDone("meshes/a.obj"))
	require.NoError(t, cp.MarkDone("meshes/b.obj"))

	resumed, err := LoadCheckpoint(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, resumed.Done())
	assert.True(t, resumed.IsDone("meshes/a.obj"))
	assert.True(t, resumed.IsDone("meshes/b.obj"))
	assert.False(t, resumed.IsDone("meshes/c.obj"))
}

func TestCheckpointMarkDoneIdempotent(t *testing.T) {
	dir := t.TempDir()

	cp, err := LoadCheckpoint(dir)
	require.NoError(t, err)
	require.NoError(t, cp.MarkDone("meshes/a.obj"))
	require.NoError(t, cp.MarkDone("meshes/a.obj"))

	resumed, err := LoadCheckpoint(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, resumed.Done())
	assert.Len(t, resumed.Completed, 1)
}

func TestCheckpointCorruptFileSetAside(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, checkpointFile)
	require.NoError(t, os.WriteFile(path, []byte("not = [valid toml"), 0o644))

	cp, err := LoadCheckpoint(dir)
	require.NoError(t, err)
	assert.Equal(t, 0, cp.Done())

	// The broken file is kept for inspection under a .bad suffix.
	_, err = os.Stat(path + ".bad")
	assert.NoError(t, err)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
