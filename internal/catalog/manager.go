package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Manager holds the in-memory page registry.
type Manager struct {
	pages sync.Map
}

// NewManager creates an empty catalog.
func NewManager() *Manager {
	return &Manager{}
}

// Register adds or replaces a page.
func (m *Manager) Register(page *Page) error {
	if page.ID == "" {
		return fmt.Errorf("page ID is required")
	}
	if page.Title == "" {
		return fmt.Errorf("page %s: title is required", page.ID)
	}

	page.UpdatedAt = time.Now()
	m.pages.Store(page.ID, page)
	return nil
}

// Get returns one page by ID.
func (m *Manager) Get(id string) (*Page, bool) {
	if cached, ok := m.pages.Load(id); ok {
		return cached.(*Page), true
	}
	return nil, false
}

// List returns all pages, optionally filtered by category, sorted by title.
func (m *Manager) List(category *string) []*Page {
	var pages []*Page

	m.pages.Range(func(_, value interface{}) bool {
		page := value.(*Page)
		if category == nil || page.Category == *category {
			pages = append(pages, page)
		}
		return true
	})

	sort.Slice(pages, func(i, j int) bool {
		return pages[i].Title < pages[j].Title
	})

	return pages
}

// Search returns pages whose title, description or tags contain the
// query, case-insensitively.
func (m *Manager) Search(query string) []*Page {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matches []*Page
	m.pages.Range(func(_, value interface{}) bool {
		page := value.(*Page)
		if pageMatches(page, query) {
			matches = append(matches, page)
		}
		return true
	})

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Title < matches[j].Title
	})

	return matches
}

func pageMatches(page *Page, query string) bool {
	if strings.Contains(strings.ToLower(page.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(page.Description), query) {
		return true
	}
	for _, tag := range page.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// Categories returns the distinct categories in use, sorted.
func (m *Manager) Categories() []string {
	seen := make(map[string]bool)
	m.pages.Range(func(_, value interface{}) bool {
		if c := value.(*Page).Category; c != "" {
			seen[c] = true
		}
		return true
	})

	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}

// Count returns the number of registered pages.
func (m *Manager) Count() int {
	n := 0
	m.pages.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}

// Stats returns catalog statistics for health reporting.
func (m *Manager) Stats() map[string]interface{} {
	return map[string]interface{}{
		"pages":      m.Count(),
		"categories": len(m.Categories()),
	}
}
