// Package cached decorates a storage.Store with a redis read-through cache.
//
// Reads are served from redis when present; every successful write drops
// the record key and the list key of its entity before returning. Cache
// failures are logged and never fail the call.
//
// Each write also stamps a fresh version on the entity. A read that missed
// only fills the cache when the version it saw before reading the store is
// still current, so a read racing an update does not put the old record back.
package cached

import (
	"context"
	"errors"
	"fmt"
	"hotel/internal/storage"
	"hotel/shared"
	"hotel/shared/cache"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheKeyByID    = "id"
	cacheKeyAll     = "all"
	cacheKeyVersion = "version"
)

type Store struct {
	next   storage.Store
	cache  cache.RedisCache
	entity string
	ttl    int
}

func New(next storage.Store, redisCache cache.RedisCache, entity string, ttlSeconds int) *Store {
	return &Store{
		next:   next,
		cache:  redisCache,
		entity: entity,
		ttl:    ttlSeconds,
	}
}

func (s *Store) ReadByID(ctx context.Context, id string) (storage.Record, error) {
	key := s.keyByID(id)

	var record storage.Record
	if s.load(ctx, key, &record) {
		return record, nil
	}

	version := s.version(ctx)

	record, err := s.next.ReadByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	s.fill(ctx, version, key, record)

	return record, nil
}

func (s *Store) ReadAll(ctx context.Context) ([]storage.Record, error) {
	key := s.keyAll()

	var records []storage.Record
	if s.load(ctx, key, &records) && records != nil {
		return records, nil
	}

	version := s.version(ctx)

	records, err := s.next.ReadAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	s.fill(ctx, version, key, records)

	return records, nil
}

func (s *Store) Create(ctx context.Context, record storage.Record) (storage.Record, error) {
	created, err := s.next.Create(ctx, record)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	s.invalidate(ctx, created.ID())

	return created, nil
}

func (s *Store) Update(ctx context.Context, id string, partial storage.Record) (storage.Record, error) {
	updated, err := s.next.Update(ctx, id, partial)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return updated, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.next.Delete(ctx, id); err != nil {
		return err //nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *Store) load(ctx context.Context, key string, value any) bool {
	err := s.cache.Get(ctx, key, value)
	if err == nil {
		return true
	}

	if !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Str("key", key).Msg("Cache read failed, falling back to store")
	}

	return false
}

// Reset drops every cached key of the entity.
func (s *Store) Reset(ctx context.Context) error {
	prefix := shared.BuildCacheKey(s.entity) + ":"

	if err := s.cache.Clear(ctx, prefix); err != nil {
		return fmt.Errorf("failed to reset %s cache: %w", s.entity, err)
	}

	return nil
}

func (s *Store) version(ctx context.Context) string {
	var version string
	if !s.load(ctx, s.keyVersion(), &version) {
		return ""
	}

	return version
}

// fill caches value unless a write has changed the entity since seen was read.
func (s *Store) fill(ctx context.Context, seen, key string, value any) {
	if current := s.version(ctx); current != seen {
		log.Debug().Str("key", key).Msg("Entity changed during read, not caching")

		return
	}

	if err := s.cache.Save(ctx, key, value, s.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to populate cache")
	}
}

func (s *Store) invalidate(ctx context.Context, id string) {
	if err := s.cache.Save(ctx, s.keyVersion(), uuid.NewString(), s.ttl); err != nil {
		log.Warn().Err(err).Str("entity", s.entity).Msg("Failed to bump cache version")
	}

	keys := []string{s.keyByID(id), s.keyAll()}

	if err := s.cache.Delete(ctx, keys...); err != nil {
		log.Warn().Err(err).Strs("keys", keys).Msg("Failed to invalidate cache")
	}
}

func (s *Store) keyByID(id string) string {
	return shared.BuildCacheKey(s.entity, cacheKeyByID, id)
}

func (s *Store) keyAll() string {
	return shared.BuildCacheKey(s.entity, cacheKeyAll)
}

func (s *Store) keyVersion() string {
	return shared.BuildCacheKey(s.entity, cacheKeyVersion)
}
