package playground

import "sync"

// History keeps the last N run records in memory, newest first.
// Nothing here is persisted; it exists only to feed the "recent
// runs" display.
type History struct {
	records []*RunRecord
	max     int
	mu      sync.Mutex
}

// NewHistory creates a history ring of the given capacity.
func NewHistory(max int) *History {
	if max <= 0 {
		max = 50
	}
	return &History{max: max}
}

// Add prepends a record, evicting the oldest past capacity.
func (h *History) Add(record *RunRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = append([]*RunRecord{record}, h.records...)
	if len(h.records) > h.max {
		h.records = h.records[:h.max]
	}
}

// Recent returns a copy of the stored records.
func (h *History) Recent() []*RunRecord {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]*RunRecord, len(h.records))
	copy(out, h.records)
	return out
}

// Len returns the number of stored records.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.records)
}
