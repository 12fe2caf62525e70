package listing

import "sync"

// PageTracker maps user ids to their current logical page. Entries are
// created lazily on first use and live for the process lifetime; writes
// are last-write-wins, so two racing taps may skip or repeat a page but
// never corrupt the map.
type PageTracker struct {
	mu    sync.RWMutex
	pages map[int64]int
}

// NewPageTracker returns an empty tracker.
func NewPageTracker() *PageTracker {
	return &PageTracker{pages: make(map[int64]int)}
}

// Get returns the user's current logical page, 0 when unseen.
func (t *PageTracker) Get(userID int64) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.pages[userID]
}

// Set overwrites the user's current logical page.
func (t *PageTracker) Set(userID int64, page int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pages[userID] = page
}

// Advance shifts the user's page by delta, clamped at 0, and returns the
// new value. The upper bound is not enforced here; the paginator rejects
// out-of-range pages when the menu is resolved.
func (t *PageTracker) Advance(userID int64, delta int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	page := t.pages[userID] + delta
	if page < 0 {
		page = 0
	}
	t.pages[userID] = page
	return page
}
