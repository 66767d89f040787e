package codec

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile_NonExistent(t *testing.T) {
	notes, err := ReadFile(filepath.Join(t.TempDir(), "missing", "notes.json"))
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestReadFile_Directory(t *testing.T) {
	_, err := ReadFile(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
	assert.NotErrorIs(t, err, ErrCorruptData)

	var pathErr *fs.PathError
	assert.ErrorAs(t, err, &pathErr, "underlying os error must stay in the chain")
}

func TestReadFile_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0644))

	_, err := ReadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorruptData)
	assert.Contains(t, err.Error(), path)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	for _, name := range []string{"notes.json", "notes.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, WriteFile(path, sampleNotes()))

			got, err := ReadFile(path)
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, "Buy milk", got[0].Content)
		})
	}
}

func TestWriteFile_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "notes.json")
	require.NoError(t, WriteFile(path, sampleNotes()))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, WriteFile(path, sampleNotes()))
	require.NoError(t, WriteFile(path, sampleNotes()[:1]))

	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestWriteFile_KeepsPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"notes": []}`), 0600))

	require.NoError(t, WriteFile(path, sampleNotes()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestWriteFile_FailureLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()

	// A non-empty directory at the target path makes the final rename fail.
	target := filepath.Join(dir, "notes.json")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "keep"), 0755))

	err := WriteFile(target, sampleNotes())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)

	info, err := os.Stat(filepath.Join(target, "keep"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), TempFilePrefix), "leftover temp file %s", e.Name())
	}
}

func TestWriteFile_FailureKeepsPreviousContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.json")
	require.NoError(t, WriteFile(path, sampleNotes()))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	// Parent path is a regular file, so the temp file cannot be created.
	blocked := filepath.Join(path, "notes.json")
	err = WriteFile(blocked, sampleNotes()[:1])
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
	var pathErr *fs.PathError
	assert.ErrorAs(t, err, &pathErr)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
