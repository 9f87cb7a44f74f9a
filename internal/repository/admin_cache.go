package repository

import (
	"sync"
	"time"
)

// AdminCacheRepository remembers, per group, when a delete last failed with a
// permission error so enforcement can skip transport calls the bot is not
// allowed to make. Entries expire after the TTL.
type AdminCacheRepository interface {
	MarkNotAdmin(groupJID string, now time.Time)
	IsNotAdmin(groupJID string, now time.Time) bool
	Sweep(now time.Time) int
}

type MemoryAdminCacheRepository struct {
	mu     sync.Mutex
	marked map[string]time.Time
	ttl    time.Duration
}

func NewAdminCacheRepository(ttl time.Duration) *MemoryAdminCacheRepository {
	return &MemoryAdminCacheRepository{
		marked: make(map[string]time.Time),
		ttl:    ttl,
	}
}

func (r *MemoryAdminCacheRepository) MarkNotAdmin(groupJID string, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.marked[groupJID] = now
}

func (r *MemoryAdminCacheRepository) IsNotAdmin(groupJID string, now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	at, ok := r.marked[groupJID]
	return ok && now.Sub(at) <= r.ttl
}

func (r *MemoryAdminCacheRepository) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for groupJID, at := range r.marked {
		if now.Sub(at) > r.ttl {
			delete(r.marked, groupJID)
			removed++
		}
	}
	return removed
}
