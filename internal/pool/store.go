package pool

import (
	"sort"
	"sync/atomic"
)

// Store is an immutable set of pool configurations keyed by pool id.
// It is constructed only by Load and never mutated afterwards, so it is
// safe for unsynchronized concurrent reads.
type Store struct {
	pools map[string]Config
}

// Get returns the configuration for poolID.
// Returns *UnknownPoolError if the id is not in the store.
func (s *Store) Get(poolID string) (Config, error) {
	cfg, ok := s.pools[poolID]
	if !ok {
		return Config{}, &UnknownPoolError{ID: poolID, Known: s.List()}
	}
	return cfg, nil
}

// List returns all pool ids in sorted order.
func (s *Store) List() []string {
	ids := make([]string, 0, len(s.pools))
	for id := range s.pools {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of pools in the store.
func (s *Store) Len() int {
	return len(s.pools)
}

// Handle is a swappable reference to a Store for long-lived consumers.
// Replace installs a whole new store at once; readers holding the previous
// store keep a consistent view. There are no partial updates.
type Handle struct {
	current atomic.Pointer[Store]
}

// NewHandle creates a handle serving the given store.
func NewHandle(s *Store) *Handle {
	h := &Handle{}
	h.current.Store(s)
	return h
}

// Current returns the store currently served by the handle.
func (h *Handle) Current() *Store {
	return h.current.Load()
}

// Replace atomically swaps in a new store.
func (h *Handle) Replace(s *Store) {
	h.current.Store(s)
}

// ReloadFile loads path and swaps the result in. On error the previous
// store stays in place.
func (h *Handle) ReloadFile(path string) error {
	store, err := LoadFile(path)
	if err != nil {
		return err
	}
	h.Replace(store)
	return nil
}
