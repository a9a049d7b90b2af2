package session

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain"
)

// MemoryStore keeps sessions in process memory. Suitable for a single
// instance; use RedisStore when running more than one replica. Expired
// sessions are removed by a background sweep.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session

	stopOnce sync.Once
	stop     chan struct{}
}

// NewMemoryStore creates a memory-backed session store. A sweepInterval of
// zero disables the background sweep; expired sessions are then only
// dropped lazily on Get.
func NewMemoryStore(sweepInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]*domain.Session),
		stop:     make(chan struct{}),
	}
	if sweepInterval > 0 {
		go s.sweep(sweepInterval)
	}
	return s
}

// Get returns a deep copy of the stored session.
func (s *MemoryStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	if sess.Expired() {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	return sess.Clone(), nil
}

// Save stores a deep copy of the session, so later mutations by the caller
// are not visible until the next Save.
func (s *MemoryStore) Save(ctx context.Context, sess *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess.Clone()
	return nil
}

// Delete removes the session. Deleting an unknown id is not an error.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Close stops the background sweep. Safe to call more than once.
func (s *MemoryStore) Close() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

func (s *MemoryStore) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			for id, sess := range s.sessions {
				if sess.Expired() {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
