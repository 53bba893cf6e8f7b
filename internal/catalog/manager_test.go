package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPage(id, title, category string, tags ...string) *Page {
	return &Page{
		ID:          id,
		Title:       title,
		Description: title + " reference page",
		Category:    category,
		Tags:        tags,
	}
}

func TestManagerRegisterAndGet(t *testing.T) {
	m := NewManager()

	require.NoError(t, m.Register(testPage("array", "Array", "indexed-collections")))

	page, ok := m.Get("array")
	require.True(t, ok)
	assert.Equal(t, "Array", page.Title)
	assert.False(t, page.UpdatedAt.IsZero())

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestManagerRegisterValidation(t *testing.T) {
	m := NewManager()

	assert.Error(t, m.Register(&Page{Title: "No ID"}))
	assert.Error(t, m.Register(&Page{ID: "no-title"}))
}

func TestManagerListSortedAndFiltered(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Register(testPage("set", "Set", "keyed-collections")))
	require.NoError(t, m.Register(testPage("array", "Array", "indexed-collections")))
	require.NoError(t, m.Register(testPage("map", "Map", "keyed-collections")))

	all := m.List(nil)
	require.Len(t, all, 3)
	assert.Equal(t, "Array", all[0].Title)
	assert.Equal(t, "Map", all[1].Title)
	assert.Equal(t, "Set", all[2].Title)

	keyed := "keyed-collections"
	filtered := m.List(&keyed)
	require.Len(t, filtered, 2)
	assert.Equal(t, "Map", filtered[0].Title)
}

func TestManagerSearch(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Register(testPage("promise", "Promise", "control-abstractions", "async")))
	require.NoError(t, m.Register(testPage("proxy", "Proxy", "reflection", "metaprogramming")))

	assert.Len(t, m.Search("pro"), 2)
	assert.Len(t, m.Search("ASYNC"), 1)
	assert.Empty(t, m.Search("zzz"))
	assert.Empty(t, m.Search("  "))
}

func TestManagerCategories(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Register(testPage("map", "Map", "keyed-collections")))
	require.NoError(t, m.Register(testPage("set", "Set", "keyed-collections")))
	require.NoError(t, m.Register(testPage("array", "Array", "indexed-collections")))

	assert.Equal(t, []string{"indexed-collections", "keyed-collections"}, m.Categories())
	assert.Equal(t, 3, m.Count())
}
