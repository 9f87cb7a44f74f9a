package service

import "sync"

// keyedMutex serializes work per string key. Entries are reference-counted
// and dropped when the last holder unlocks, so the map does not grow with
// every (group, sender) pair ever seen.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*lockEntry)}
}

func (km *keyedMutex) Lock(key string) {
	km.mu.Lock()
	e := km.locks[key]
	if e == nil {
		e = &lockEntry{}
		km.locks[key] = e
	}
	e.refs++
	km.mu.Unlock()

	e.mu.Lock()
}

func (km *keyedMutex) Unlock(key string) {
	km.mu.Lock()
	e := km.locks[key]
	e.refs--
	if e.refs == 0 {
		delete(km.locks, key)
	}
	km.mu.Unlock()

	e.mu.Unlock()
}
