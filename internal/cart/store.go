package cart

import (
	"sync"

	"techstore/internal/catalog"
)

// Store owns a cart State. It is constructed once per session and
// passed by reference to every consumer; Bubble Tea commands run on
// their own goroutines, so access is mutex guarded.
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore returns an empty cart.
func NewStore() *Store {
	return &Store{}
}

// Dispatch runs a command against the current state.
func (s *Store) Dispatch(cmd Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Apply(s.state, cmd)
}

// Add appends a quantity-1 line for the product unless one exists.
func (s *Store) Add(p catalog.Product) {
	s.Dispatch(Add{Product: p})
}

// SetQuantity replaces the quantity of the matching line, clamped to 1.
func (s *Store) SetQuantity(id string, quantity int) {
	s.Dispatch(SetQuantity{ID: id, Quantity: quantity})
}

// Remove deletes the matching line.
func (s *Store) Remove(id string) {
	s.Dispatch(Remove{ID: id})
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.Dispatch(Clear{})
}

// State returns a copy of the current cart state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{Items: cloneItems(s.state.Items), Total: s.state.Total}
}

// Items returns a copy of the current line items.
func (s *Store) Items() []Item {
	return s.State().Items
}

// Len returns the number of line items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.Items)
}

// Total returns the running subtotal.
func (s *Store) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Total
}

// Tax returns the tax due on the subtotal at the given rate.
func (s *Store) Tax(rate float64) float64 {
	return s.Total() * rate
}

// GrandTotal returns subtotal plus tax at the given rate.
func (s *Store) GrandTotal(rate float64) float64 {
	return s.Total() * (1 + rate)
}
