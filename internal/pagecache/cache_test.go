package pagecache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	c := New()

	page := []byte("<html><body><h1>Array</h1></body></html>")
	require.NoError(t, c.Put("/pages/array/html", page))

	got, ok, err := c.Get("/pages/array/html")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, page, got)
}

func TestCacheMiss(t *testing.T) {
	c := New()

	_, ok, err := c.Get("/pages/missing/html")
	require.NoError(t, err)
	assert.False(t, ok)

	stats := c.Stats()
	assert.EqualValues(t, 1, stats["misses"])
	assert.EqualValues(t, 0, stats["hits"])
}

func TestCacheCompresses(t *testing.T) {
	c := New()

	// Highly repetitive content must shrink at rest.
	page := []byte(strings.Repeat("<li>item</li>", 1000))
	require.NoError(t, c.Put("/pages/list/html", page))

	stats := c.Stats()
	assert.Less(t, stats["compressed_bytes"].(int), len(page))
	assert.Equal(t, len(page), stats["raw_bytes"])
}

func TestCacheInvalidate(t *testing.T) {
	c := New()
	require.NoError(t, c.Put("/p", []byte("x")))

	c.Invalidate("/p")
	_, ok, err := c.Get("/p")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheOverwrite(t *testing.T) {
	c := New()
	require.NoError(t, c.Put("/p", []byte("old")))
	require.NoError(t, c.Put("/p", []byte("new")))

	got, ok, err := c.Get("/p")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("new"), got)
}
