package outline

import (
	"encoding/hex"
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/zeebo/blake3"
)

// DefaultCacheSize is the number of heading indexes kept by the default cache.
const DefaultCacheSize = 16

// IndexCache memoizes heading indexes keyed by the content hash of the
// document they were parsed from. Documents are immutable, so an entry never
// needs invalidation.
type IndexCache struct {
	entries *lru.Cache[string, []Heading]
	hits    atomic.Int64
	misses  atomic.Int64
}

// CacheStats reports cache effectiveness.
type CacheStats struct {
	Hits   int64
	Misses int64
	Size   int
}

var defaultCache = mustIndexCache(DefaultCacheSize)

// NewIndexCache returns a cache holding at most size heading indexes.
func NewIndexCache(size int) (*IndexCache, error) {
	entries, err := lru.New[string, []Heading](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create index cache: %w", err)
	}
	return &IndexCache{entries: entries}, nil
}

func mustIndexCache(size int) *IndexCache {
	c, err := NewIndexCache(size)
	if err != nil {
		panic(err)
	}
	return c
}

// Headings returns the heading index for lines, parsing them only when hash
// has not been seen. The second result reports a cache hit.
func (c *IndexCache) Headings(hash string, lines []string) ([]Heading, bool) {
	if headings, ok := c.entries.Get(hash); ok {
		c.hits.Add(1)
		return headings, true
	}
	c.misses.Add(1)
	headings := ParseHeadings(lines)
	c.entries.Add(hash, headings)
	return headings, false
}

// Stats returns hit and miss counts and the current number of entries.
func (c *IndexCache) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.entries.Len(),
	}
}

// ContentHash returns the hex BLAKE3-256 digest of content.
func ContentHash(content []byte) string {
	sum := blake3.Sum256(content)
	return hex.EncodeToString(sum[:])
}
