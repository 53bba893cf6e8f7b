// Package pagecache stores rendered documentation pages for offline
// serving, gzip-compressed at rest.
package pagecache

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/klauspost/compress/gzip"
)

type entry struct {
	compressed []byte
	rawSize    int
	storedAt   time.Time
}

// Cache is an in-memory compressed page store keyed by request path.
type Cache struct {
	entries map[string]*entry
	mu      sync.RWMutex

	hits   int64
	misses int64
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]*entry)}
}

// Put compresses and stores a rendered page under the given path.
func (c *Cache) Put(path string, page []byte) error {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return err
	}
	if _, err := zw.Write(page); err != nil {
		zw.Close()
		return fmt.Errorf("failed to compress page: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to compress page: %w", err)
	}

	c.mu.Lock()
	c.entries[path] = &entry{
		compressed: buf.Bytes(),
		rawSize:    len(page),
		storedAt:   time.Now(),
	}
	c.mu.Unlock()
	return nil
}

// Get returns the decompressed page stored under path.
func (c *Cache) Get(path string) ([]byte, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[path]
	c.mu.RUnlock()

	if !ok {
		c.mu.Lock()
		c.misses++
		c.mu.Unlock()
		return nil, false, nil
	}

	zr, err := gzip.NewReader(bytes.NewReader(e.compressed))
	if err != nil {
		return nil, false, fmt.Errorf("failed to decompress page: %w", err)
	}
	defer zr.Close()

	page, err := io.ReadAll(zr)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decompress page: %w", err)
	}

	c.mu.Lock()
	c.hits++
	c.mu.Unlock()
	return page, true, nil
}

// Invalidate drops the entry stored under path.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}

// Stats returns cache occupancy and effectiveness counters.
func (c *Cache) Stats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var raw, compressed int
	for _, e := range c.entries {
		raw += e.rawSize
		compressed += len(e.compressed)
	}

	return map[string]interface{}{
		"pages":            len(c.entries),
		"raw_bytes":        raw,
		"compressed_bytes": compressed,
		"hits":             c.hits,
		"misses":           c.misses,
	}
}
