package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Sessions keeps one cart per browsing session plus the per-day visit flags
// used by the visitor counter. Everything here is ephemeral; a restart drops
// all sessions, which matches the session-scoped lifetime of the data.
type Sessions struct {
	mu      sync.Mutex
	carts   map[string]*Cart
	visited map[string]map[string]bool
}

func NewSessions() *Sessions {
	return &Sessions{
		carts:   make(map[string]*Cart),
		visited: make(map[string]map[string]bool),
	}
}

// NewSession issues a fresh opaque session id.
func (s *Sessions) NewSession() string {
	return uuid.NewString()
}

// Cart returns the cart for the session, creating it on first use.
func (s *Sessions) Cart(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		c = &Cart{}
		s.carts[sessionID] = c
	}
	return c
}

// VisitFlag reports whether the session has already been counted for the
// given day.
func (s *Sessions) VisitFlag(sessionID, day string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visited[sessionID][day]
}

// SetVisitFlag marks the session as counted for the given day.
func (s *Sessions) SetVisitFlag(sessionID, day string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.visited[sessionID] == nil {
		s.visited[sessionID] = make(map[string]bool)
	}
	s.visited[sessionID][day] = true
}

// End drops the session's cart and visit flags.
func (s *Sessions) End(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	delete(s.visited, sessionID)
}
