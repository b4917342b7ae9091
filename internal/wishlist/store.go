package wishlist

import (
	"sync"

	"techstore/internal/catalog"
)

// Store owns the wishlist State, one per session.
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore returns an empty wishlist.
func NewStore() *Store {
	return &Store{}
}

// Dispatch runs a command against the current state.
func (s *Store) Dispatch(cmd Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Apply(s.state, cmd)
}

// Add saves the product; adding an already-saved product is a no-op.
func (s *Store) Add(p catalog.Product) {
	s.Dispatch(Add{Product: p})
}

// Remove drops the matching entry.
func (s *Store) Remove(id string) {
	s.Dispatch(Remove{ID: id})
}

// Clear empties the wishlist.
func (s *Store) Clear() {
	s.Dispatch(Clear{})
}

// Contains reports whether the product is saved. Linear scan; wishlist
// sizes are tens of entries at most.
func (s *Store) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.state.Items {
		if item.ProductID == id {
			return true
		}
	}
	return false
}

// Items returns a copy of the saved entries in insertion order.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneItems(s.state.Items)
}

// Len returns the number of saved entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.Items)
}
