package equation

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/tsawler/presenta/model"
)

// Cache memoizes a Rasterizer by content hash. A hit returns the stored
// reference without invoking the wrapped Rasterizer, so repeated equations
// across a document (or across documents) are typeset once. Entries live
// for the life of the Cache; there is no persistence and no eviction.
//
// A Cache is safe for concurrent use.
type Cache struct {
	rasterizer Rasterizer

	mu      sync.Mutex
	entries map[string]string
	hits    int
	misses  int
}

// NewCache wraps a Rasterizer with memoization.
func NewCache(r Rasterizer) *Cache {
	return &Cache{
		rasterizer: r,
		entries:    make(map[string]string),
	}
}

// Rasterize returns the cached image reference for (source, kind), invoking
// the wrapped Rasterizer only on a miss. Failed rasterizations are not
// cached; the next call retries.
func (c *Cache) Rasterize(source string, kind model.EquationKind) (string, error) {
	key := cacheKey(source, kind)

	c.mu.Lock()
	if ref, ok := c.entries[key]; ok {
		c.hits++
		c.mu.Unlock()
		return ref, nil
	}
	c.mu.Unlock()

	ref, err := c.rasterizer.Rasterize(source, kind)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.entries[key] = ref
	c.misses++
	c.mu.Unlock()
	return ref, nil
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns the hit and miss counts since the cache was created.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// cacheKey hashes equation source and kind into a stable lookup key. The
// kind participates so the same source rendered inline and display gets two
// distinct images.
func cacheKey(source string, kind model.EquationKind) string {
	h := sha256.New()
	h.Write([]byte(kind.String()))
	h.Write([]byte{0})
	h.Write([]byte(source))
	return hex.EncodeToString(h.Sum(nil))
}
