package analytics

import "sync"

// Repository stores the single analytics record.
type Repository interface {
	Get() Analytics
	Set(a Analytics) error
}

// InMemoryRepository backs the counter in snapshot mode and tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	current Analytics
}

func NewInMemoryRepository(seed Analytics) *InMemoryRepository {
	return &InMemoryRepository{current: seed}
}

func (r *InMemoryRepository) Get() Analytics {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

func (r *InMemoryRepository) Set(a Analytics) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = a
	return nil
}
