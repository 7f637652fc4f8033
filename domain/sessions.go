package domain

import "sync"

// Sessions maps a browsing session id to its cart. Carts are created
// lazily on first access and never shared across sessions.
type Sessions struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewSessions() *Sessions {
	return &Sessions{
		carts: make(map[string]*Cart),
	}
}

func (s *Sessions) Cart(id string) *Cart {
	s.mu.RLock()
	cart, ok := s.carts[id]
	s.mu.RUnlock()
	if ok {
		return cart
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if cart, ok := s.carts[id]; ok {
		return cart
	}

	cart = NewCart()
	s.carts[id] = cart
	return cart
}
