package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaStorageSaveAndOpen(t *testing.T) {
	store, err := NewMediaStorage(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save("Photo Of Mosque.JPG", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.NotContains(t, name, "Photo")

	file, err := store.Open(name)
	require.NoError(t, err)
	defer file.Close() //nolint:errcheck

	content, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))
}

func TestMediaStorageRejectsPathEscape(t *testing.T) {
	dir := t.TempDir()
	store, err := NewMediaStorage(dir)
	require.NoError(t, err)

	name, err := store.Save("evil.png", strings.NewReader("data"))
	require.NoError(t, err)

	// a traversal attempt resolves to the bare file name under the base dir
	file, err := store.Open("../../" + name)
	require.NoError(t, err)
	defer file.Close() //nolint:errcheck

	parent := filepath.Dir(dir)
	entries, err := os.ReadDir(parent)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".png"))
	}
}

func TestMediaStorageDelete(t *testing.T) {
	store, err := NewMediaStorage(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save("a.webp", strings.NewReader("data"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(name))
	_, err = store.Open(name)
	require.Error(t, err)

	// deleting a missing file is not an error
	require.NoError(t, store.Delete(name))
}

func TestMediaStorageCleanupOlderThan(t *testing.T) {
	dir := t.TempDir()
	store, err := NewMediaStorage(dir)
	require.NoError(t, err)

	old, err := store.Save("old.gif", strings.NewReader("data"))
	require.NoError(t, err)
	fresh, err := store.Save("fresh.gif", strings.NewReader("data"))
	require.NoError(t, err)

	stale := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, old), stale, stale))

	deleted, err := store.CleanupOlderThan(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, []string{old}, deleted)

	_, err = store.Open(old)
	require.Error(t, err)
	_, err = store.Open(fresh)
	require.NoError(t, err)
}
