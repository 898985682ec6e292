package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	path, err := store.Save([]byte("png-bytes"), "cover.PNG")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, PublicPrefix+"/"))
	assert.True(t, strings.HasSuffix(path, ".png"))

	onDisk := filepath.Join(dir, filepath.Base(path))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, store.Delete(path))

	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_Save_UniqueNames(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	// Back-to-back saves land on the same millisecond; paths must differ.
	first, err := store.Save([]byte("a"), "a.jpg")
	require.NoError(t, err)
	second, err := store.Save([]byte("b"), "b.jpg")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalStorage_Delete_IsBestEffort(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "uploads")
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	t.Run("empty path", func(t *testing.T) {
		assert.NoError(t, store.Delete(""))
	})

	t.Run("path outside uploads prefix", func(t *testing.T) {
		assert.NoError(t, store.Delete("/etc/passwd"))
	})

	t.Run("traversal cannot escape the upload directory", func(t *testing.T) {
		outside := filepath.Join(root, "outside.png")
		require.NoError(t, os.WriteFile(outside, []byte("outside"), 0o644))

		assert.NoError(t, store.Delete(PublicPrefix+"/../../outside.png"))

		_, err := os.Stat(outside)
		assert.NoError(t, err, "files outside the upload directory must survive")
	})

	t.Run("missing file", func(t *testing.T) {
		assert.NoError(t, store.Delete(PublicPrefix+"/1700000000000.png"))
	})
}

func TestNewLocalStorage_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewLocalStorage(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
