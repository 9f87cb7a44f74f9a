package repository

import (
	"sync"
	"time"
)

// DuplicateRepository is the sliding-window repeated-message tracker feeding
// the duplicate filter.
type DuplicateRepository interface {
	// Observe records the sender's latest normalized text and returns the
	// occurrence count after the update. A different text, or the same text
	// after the window elapsed, resets the count to 1.
	Observe(groupJID, senderJID, text string, now time.Time) int
	// Sweep drops entries whose last activity is older than maxAge and
	// returns how many were removed.
	Sweep(now time.Time, maxAge time.Duration) int
}

type MemoryDuplicateRepository struct {
	mu      sync.Mutex
	entries map[string]*DuplicateEntry
	window  time.Duration
}

func NewDuplicateRepository(window time.Duration) *MemoryDuplicateRepository {
	return &MemoryDuplicateRepository{
		entries: make(map[string]*DuplicateEntry),
		window:  window,
	}
}

func (r *MemoryDuplicateRepository) Observe(groupJID, senderJID, text string, now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := groupJID + "|" + senderJID
	e := r.entries[key]
	if e != nil && e.Text == text && now.Sub(e.LastSeenAt) <= r.window {
		e.Occurrences++
		e.LastSeenAt = now
		return e.Occurrences
	}
	r.entries[key] = &DuplicateEntry{Text: text, Occurrences: 1, LastSeenAt: now}
	return 1
}

func (r *MemoryDuplicateRepository) Sweep(now time.Time, maxAge time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for key, e := range r.entries {
		if now.Sub(e.LastSeenAt) > maxAge {
			delete(r.entries, key)
			removed++
		}
	}
	return removed
}
