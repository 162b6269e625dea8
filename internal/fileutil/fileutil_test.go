package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_CleansRelativeSegments(t *testing.T) {
	dir := t.TempDir()
	messy := filepath.Join(dir, "sub", "..", "file.txt")
	assert.Equal(t, filepath.Join(dir, "file.txt"), Resolve(messy))
}

func TestResolve_WorksForNonexistentPaths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never", "created.txt")
	assert.Equal(t, path, Resolve(path))
}

func TestSamePath(t *testing.T) {
	dir := t.TempDir()
	direct := filepath.Join(dir, "a.txt")
	indirect := filepath.Join(dir, "sub", "..", "a.txt")

	assert.True(t, SamePath(direct, indirect))
	assert.False(t, SamePath(direct, filepath.Join(dir, "b.txt")))
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.True(t, Exists(file))
	assert.True(t, Exists(dir))
	assert.False(t, Exists(filepath.Join(dir, "missing.txt")))
}

func TestListFiles_RegularFilesOnlySorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	files, err := ListFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "a.txt"), files[0])
	assert.Equal(t, filepath.Join(dir, "b.txt"), files[1])
}

func TestListFiles_MissingDirectory(t *testing.T) {
	_, err := ListFiles(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
