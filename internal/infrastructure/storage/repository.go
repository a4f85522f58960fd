package storage

import (
	"context"
	"sync"
)

type Store interface {
	// Initialize creates the entries table if absent and inserts the seed row
	Initialize(ctx context.Context) error
	LookupNameByID(ctx context.Context, id int64) (string, error)
	Close() error
}

// Handle lends a Store to one caller at a time. The store is not safe for
// concurrent use; every access goes through Do.
type Handle struct {
	mu    sync.Mutex
	store Store
}

func NewHandle(store Store) *Handle {
	return &Handle{store: store}
}

// Do runs fn with exclusive access to the store. Access is released when fn
// returns, whether or not it failed. Waiting for access has no timeout.
func (h *Handle) Do(fn func(store Store) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return fn(h.store)
}

func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.store.Close()
}
