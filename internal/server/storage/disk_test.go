package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_PutThenRead(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	key := NewStorageKey(".pdf")
	require.NoError(t, store.Put(context.Background(), key, strings.NewReader("%PDF-1.4 fake")))

	b, err := os.ReadFile(filepath.Join(store.root, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(b))
}

func TestDiskStore_PutLeavesNoTempFiles(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStore(root)
	require.NoError(t, err)

	key := NewStorageKey(".doc")
	require.NoError(t, store.Put(context.Background(), key, strings.NewReader("data")))

	dir := filepath.Dir(filepath.Join(root, filepath.FromSlash(key)))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".upload-"), "stray temp file %s", e.Name())
	}
}

func TestDiskStore_Delete(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStore(root)
	require.NoError(t, err)

	key := NewStorageKey(".docx")
	require.NoError(t, store.Put(context.Background(), key, strings.NewReader("data")))
	require.NoError(t, store.Delete(context.Background(), key))

	_, statErr := os.Stat(filepath.Join(root, filepath.FromSlash(key)))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDiskStore_DeleteMissingIsNoop(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, store.Delete(context.Background(), "brochures/1/1/1/nope.pdf"))
}

func TestNewStorageKey_UniqueAndPrefixed(t *testing.T) {
	a := NewStorageKey(".pdf")
	b := NewStorageKey(".pdf")
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "brochures/"))
	assert.True(t, strings.HasSuffix(a, ".pdf"))
}
