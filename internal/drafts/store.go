// Package drafts persists in-progress edited playground code, keyed
// by reference page, so a visitor's edits survive navigation.
package drafts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"
)

// Draft is one saved snippet.
type Draft struct {
	PageID    string    `json:"page_id"`
	Code      string    `json:"code"`
	UpdatedAt time.Time `json:"updated_at"`
}

var validKey = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// Store is a file-backed draft store with an in-memory cache.
type Store struct {
	dir   string
	cache sync.Map
	mu    sync.Mutex
}

// NewStore creates the store, ensuring its directory exists.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create drafts directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes a draft for the given page.
func (s *Store) Save(pageID, code string) (*Draft, error) {
	if !validKey.MatchString(pageID) {
		return nil, fmt.Errorf("invalid page ID %q", pageID)
	}

	draft := &Draft{
		PageID:    pageID,
		Code:      code,
		UpdatedAt: time.Now(),
	}

	data, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize draft: %w", err)
	}

	s.mu.Lock()
	err = os.WriteFile(s.draftPath(pageID), data, 0o644)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to write draft: %w", err)
	}

	s.cache.Store(pageID, draft)
	return draft, nil
}

// Load returns the draft for a page, if one exists.
func (s *Store) Load(pageID string) (*Draft, bool, error) {
	if !validKey.MatchString(pageID) {
		return nil, false, fmt.Errorf("invalid page ID %q", pageID)
	}

	if cached, ok := s.cache.Load(pageID); ok {
		return cached.(*Draft), true, nil
	}

	data, err := os.ReadFile(s.draftPath(pageID))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read draft: %w", err)
	}

	var draft Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, false, fmt.Errorf("failed to parse draft: %w", err)
	}

	s.cache.Store(pageID, &draft)
	return &draft, true, nil
}

// Delete removes a page's draft. Deleting a missing draft is a no-op.
func (s *Store) Delete(pageID string) error {
	if !validKey.MatchString(pageID) {
		return fmt.Errorf("invalid page ID %q", pageID)
	}

	s.cache.Delete(pageID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.draftPath(pageID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

// List returns the page IDs that have saved drafts, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *Store) draftPath(pageID string) string {
	return filepath.Join(s.dir, pageID+".json")
}
