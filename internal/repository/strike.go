package repository

import "sync"

// StrikeRepository is the per-(group, sender) violation ledger. Counts live
// in process memory only and are lost on restart; an entry disappears only
// through Clear after a successful removal.
type StrikeRepository interface {
	Increment(groupJID, senderJID string) int
	Count(groupJID, senderJID string) int
	Clear(groupJID, senderJID string)
	ActiveCount() int
}

type MemoryStrikeRepository struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewStrikeRepository() StrikeRepository {
	return &MemoryStrikeRepository{counts: make(map[string]int)}
}

func strikeKey(groupJID, senderJID string) string {
	return groupJID + "|" + senderJID
}

func (r *MemoryStrikeRepository) Increment(groupJID, senderJID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strikeKey(groupJID, senderJID)
	r.counts[key]++
	return r.counts[key]
}

func (r *MemoryStrikeRepository) Count(groupJID, senderJID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[strikeKey(groupJID, senderJID)]
}

func (r *MemoryStrikeRepository) Clear(groupJID, senderJID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.counts, strikeKey(groupJID, senderJID))
}

func (r *MemoryStrikeRepository) ActiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.counts)
}
