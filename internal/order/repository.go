package order

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("order not found")
)

// Repository is the append-only order ledger, newest first. Orders are never
// updated or deleted once appended.
type Repository interface {
	Append(ord Order) error
	// All returns the ledger newest-first.
	All() []Order
	GetByID(id string) (Order, error)
	Exists(id string) bool
	// Reset replaces the ledger contents (snapshot restore only).
	Reset(orders []Order) error
}

// InMemoryRepository is the ledger backing used in snapshot mode and tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Order
}

func NewInMemoryRepository(seed []Order) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Order, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) Append(ord Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// prepend, most recent first
	r.storage = append([]Order{ord}, r.storage...)
	return nil
}

func (r *InMemoryRepository) All() []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) GetByID(id string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ord := range r.storage {
		if ord.ID == id {
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) Exists(id string) bool {
	_, err := r.GetByID(id)
	return err == nil
}

func (r *InMemoryRepository) Reset(orders []Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = make([]Order, 0, len(orders))
	r.storage = append(r.storage, orders...)
	return nil
}
