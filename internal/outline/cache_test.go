package outline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexCache(t *testing.T) {
	cache, err := NewIndexCache(2)
	require.NoError(t, err)
	loader := &Loader{Cache: cache}

	first := loader.build("# A\ntext\n## B")
	assert.False(t, first.CacheHit())

	second := loader.build("# A\ntext\n## B")
	assert.True(t, second.CacheHit())
	assert.Equal(t, first.Headings(), second.Headings())
	assert.Equal(t, first.Hash, second.Hash)

	stats := cache.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
}

func TestIndexCacheEviction(t *testing.T) {
	cache, err := NewIndexCache(1)
	require.NoError(t, err)
	loader := &Loader{Cache: cache}

	loader.build("# one")
	loader.build("# two")
	again := loader.build("# one")

	assert.False(t, again.CacheHit())
	assert.Equal(t, 1, cache.Stats().Size)
}

func TestLoaderReloadHitsCache(t *testing.T) {
	cache, err := NewIndexCache(4)
	require.NoError(t, err)
	loader := &Loader{Cache: cache}

	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("# A\n\n## B\n"), 0o644))

	for range 3 {
		_, err := loader.Load(path)
		require.NoError(t, err)
	}
	assert.Equal(t, CacheStats{Hits: 2, Misses: 1, Size: 1}, loader.Stats())

	// CRLF line endings hash like LF.
	require.NoError(t, os.WriteFile(path, []byte("# A\r\n\r\n## B\r\n"), 0o644))
	doc, err := loader.Load(path)
	require.NoError(t, err)
	assert.True(t, doc.CacheHit())
}

func TestNewIndexCacheRejectsNonPositiveSize(t *testing.T) {
	_, err := NewIndexCache(0)
	assert.Error(t, err)
}

func TestContentHash(t *testing.T) {
	a := ContentHash([]byte("# A"))
	assert.Len(t, a, 64)
	assert.Equal(t, a, ContentHash([]byte("# A")))
	assert.NotEqual(t, a, ContentHash([]byte("# B")))
}
