package storage

import (
	"context"
	"sync"
)

type synchronized struct {
	mu    sync.Mutex
	store Store
}

// Synchronized serializes every call to store. Wrap stores that are not
// safe for concurrent use before sharing them between requests.
func Synchronized(store Store) Store {
	return &synchronized{store: store}
}

func (s *synchronized) ReadByID(ctx context.Context, id string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.ReadByID(ctx, id) //nolint:wrapcheck
}

func (s *synchronized) ReadAll(ctx context.Context) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.ReadAll(ctx) //nolint:wrapcheck
}

func (s *synchronized) Create(ctx context.Context, record Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Create(ctx, record) //nolint:wrapcheck
}

func (s *synchronized) Update(ctx context.Context, id string, partial Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Update(ctx, id, partial) //nolint:wrapcheck
}

func (s *synchronized) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Delete(ctx, id) //nolint:wrapcheck
}
