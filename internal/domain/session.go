package domain

import (
	"time"
)

// Session is the per-visitor state bag: the shopping cart and the reviews
// written during this visit. It is created by the session middleware on
// first access and carried through the request context; sessions are never
// shared between visitors.
type Session struct {
	ID        string           `json:"id"`
	Cart      []CartLine       `json:"cart"`
	Reviews   map[int][]Review `json:"reviews"`
	ExpiresAt time.Time        `json:"expires_at"`
}

// NewSession creates an empty session expiring after ttl.
func NewSession(id string, ttl time.Duration) *Session {
	return &Session{
		ID:        id,
		Cart:      []CartLine{},
		Reviews:   make(map[int][]Review),
		ExpiresAt: time.Now().Add(ttl),
	}
}

// Expired reports whether the session is past its expiry time.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Clone returns a deep copy so stores can hand out sessions without sharing
// mutable state with their callers.
func (s *Session) Clone() *Session {
	out := *s
	out.Cart = make([]CartLine, len(s.Cart))
	copy(out.Cart, s.Cart)
	out.Reviews = make(map[int][]Review, len(s.Reviews))
	for id, reviews := range s.Reviews {
		rs := make([]Review, len(reviews))
		copy(rs, reviews)
		out.Reviews[id] = rs
	}
	return &out
}
