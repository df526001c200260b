package cart

import (
	"sync"
	"time"
)

// Store holds live carts. Carts are session state, not durable data: they
// live in memory and expire when abandoned.
type Store interface {
	Get(id string) (*Cart, bool)
	Put(c *Cart)
	Delete(id string)
}

const cartTTL = 24 * time.Hour

type memoryStore struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

// NewMemoryStore creates an in-memory cart store.
func NewMemoryStore() Store {
	return &memoryStore{carts: map[string]*Cart{}}
}

func (s *memoryStore) Get(id string) (*Cart, bool) {
	s.mu.RLock()
	c, ok := s.carts[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Since(c.UpdatedAt) > cartTTL {
		s.Delete(id)
		return nil, false
	}
	return c, true
}

func (s *memoryStore) Put(c *Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[c.ID] = c
	// prune abandoned carts while we hold the lock
	for id, old := range s.carts {
		if time.Since(old.UpdatedAt) > cartTTL {
			delete(s.carts, id)
		}
	}
}

func (s *memoryStore) Delete(id string) {
	s.mu.Lock()
	delete(s.carts, id)
	s.mu.Unlock()
}
