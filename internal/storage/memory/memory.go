// Package memory implements storage.Store on a map held in process memory.
//
// A Store is not safe for concurrent use; wrap it with storage.Synchronized
// before sharing it. Nothing survives a restart.
package memory

import (
	"context"
	"hotel/internal/storage"
	"slices"
)

type Store struct {
	entity  string
	records map[string]storage.Record
	order   []string
}

func New(entity string) *Store {
	return &Store{
		entity:  entity,
		records: make(map[string]storage.Record),
	}
}

func (s *Store) ReadByID(_ context.Context, id string) (storage.Record, error) {
	record, ok := s.records[id]
	if !ok {
		return nil, storage.NotFound(s.entity, id)
	}

	return record.Clone(), nil
}

// ReadAll returns records in insertion order.
func (s *Store) ReadAll(_ context.Context) ([]storage.Record, error) {
	records := make([]storage.Record, 0, len(s.order))
	for _, id := range s.order {
		records = append(records, s.records[id].Clone())
	}

	return records, nil
}

func (s *Store) Create(_ context.Context, record storage.Record) (storage.Record, error) {
	id := record.ID()

	if _, exists := s.records[id]; !exists {
		s.order = append(s.order, id)
	}

	s.records[id] = record.Clone()

	return record.Clone(), nil
}

func (s *Store) Update(_ context.Context, id string, partial storage.Record) (storage.Record, error) {
	record, ok := s.records[id]
	if !ok {
		return nil, storage.NotFound(s.entity, id)
	}

	changes := partial.Clone()
	delete(changes, storage.FieldID)

	record.Merge(changes)

	return record.Clone(), nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	if _, ok := s.records[id]; !ok {
		return storage.NotFound(s.entity, id)
	}

	delete(s.records, id)
	s.order = slices.DeleteFunc(s.order, func(existing string) bool {
		return existing == id
	})

	return nil
}
