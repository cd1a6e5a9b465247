package cached_test

import (
	"context"
	"errors"
	"fmt"
	"hotel/internal/storage"
	"hotel/internal/storage/cached"
	"hotel/internal/storage/memory"
	"hotel/shared/cache"
	"hotel/shared/cache/mocks"
	"hotel/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const ttl = 60

var errMiss = fmt.Errorf("failed to get cache value: %w", cache.Nil)

func version(value string) func(context.Context, string, any) error {
	return func(_ context.Context, _ string, dest any) error {
		if value == "" {
			return errMiss
		}

		*dest.(*string) = value

		return nil
	}
}

func seeded(t *testing.T) *memory.Store {
	t.Helper()

	store := memory.New("room")
	_, err := store.Create(context.Background(), storage.Record{"id": "r-1", "number": "101", "size": 2, "price": 150})
	require.NoError(t, err)

	return store
}

func TestReadByID(t *testing.T) {
	ctx := context.Background()

	t.Run("hit skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redisCache := mocks.NewMockRedisCache(ctrl)

		redisCache.EXPECT().
			Get(ctx, "room:id:r-7", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*storage.Record) = storage.Record{"id": "r-7", "price": float64(90)}

				return nil
			})

		store := cached.New(memory.New("room"), redisCache, "room", ttl)

		got, err := store.ReadByID(ctx, "r-7")

		require.NoError(t, err)
		price, err := got.Int("price")
		require.NoError(t, err)
		assert.Equal(t, 90, price)
	})

	t.Run("miss loads and saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redisCache := mocks.NewMockRedisCache(ctrl)

		redisCache.EXPECT().Get(ctx, "room:id:r-1", gomock.Any()).Return(errMiss)
		redisCache.EXPECT().Get(ctx, "room:version", gomock.Any()).DoAndReturn(version("v1")).Times(2)
		redisCache.EXPECT().Save(ctx, "room:id:r-1", gomock.Any(), ttl).Return(nil)

		store := cached.New(seeded(t), redisCache, "room", ttl)

		got, err := store.ReadByID(ctx, "r-1")

		require.NoError(t, err)
		assert.Equal(t, "r-1", got.ID())
	})

	t.Run("miss racing a write is not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redisCache := mocks.NewMockRedisCache(ctrl)

		gomock.InOrder(
			redisCache.EXPECT().Get(ctx, "room:id:r-1", gomock.Any()).Return(errMiss),
			redisCache.EXPECT().Get(ctx, "room:version", gomock.Any()).DoAndReturn(version("v1")),
			redisCache.EXPECT().Get(ctx, "room:version", gomock.Any()).DoAndReturn(version("v2")),
		)
		redisCache.EXPECT().Save(ctx, "room:id:r-1", gomock.Any(), ttl).Times(0)

		store := cached.New(seeded(t), redisCache, "room", ttl)

		got, err := store.ReadByID(ctx, "r-1")

		require.NoError(t, err)
		assert.Equal(t, "r-1", got.ID())
	})

	t.Run("write while reading skips the fill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redisCache := mocks.NewMockRedisCache(ctrl)

		var current string

		redisCache.EXPECT().Get(ctx, "room:id:r-1", gomock.Any()).Return(errMiss)
		redisCache.EXPECT().Get(ctx, "room:version", gomock.Any()).
			DoAndReturn(func(c context.Context, key string, dest any) error {
				return version(current)(c, key, dest)
			}).
			Times(2)
		redisCache.EXPECT().Save(ctx, "room:version", gomock.Any(), ttl).
			DoAndReturn(func(_ context.Context, _ string, value any, _ int) error {
				current = value.(string)

				return nil
			})
		redisCache.EXPECT().Delete(ctx, "room:id:r-1", "room:all").Return(nil)

		next := &updatingStore{Store: seeded(t)}
		store := cached.New(next, redisCache, "room", ttl)
		next.writer = store

		got, err := store.ReadByID(ctx, "r-1")

		require.NoError(t, err)
		assert.Equal(t, 150, got["price"])
	})

	t.Run("cache failure falls back to store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redisCache := mocks.NewMockRedisCache(ctrl)

		redisCache.EXPECT().Get(ctx, "room:id:r-1", gomock.Any()).Return(errors.New("connection refused"))
		redisCache.EXPECT().Get(ctx, "room:version", gomock.Any()).Return(errors.New("connection refused")).Times(2)
		redisCache.EXPECT().Save(ctx, "room:id:r-1", gomock.Any(), ttl).Return(errors.New("connection refused"))

		store := cached.New(seeded(t), redisCache, "room", ttl)

		got, err := store.ReadByID(ctx, "r-1")

		require.NoError(t, err)
		assert.Equal(t, "r-1", got.ID())
	})

	t.Run("not found is not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redisCache := mocks.NewMockRedisCache(ctrl)

		redisCache.EXPECT().Get(ctx, "room:id:nope", gomock.Any()).Return(errMiss)
		redisCache.EXPECT().Get(ctx, "room:version", gomock.Any()).Return(errMiss)

		store := cached.New(memory.New("room"), redisCache, "room", ttl)

		_, err := store.ReadByID(ctx, "nope")

		assert.True(t, failure.IsNotFound(err))
		assert.EqualError(t, err, "Room not found: nope")
	})
}

func TestReadAll(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Get(ctx, "room:all", gomock.Any()).Return(errMiss)
	redisCache.EXPECT().Get(ctx, "room:version", gomock.Any()).Return(errMiss).Times(2)
	redisCache.EXPECT().Save(ctx, "room:all", gomock.Any(), ttl).Return(nil)

	store := cached.New(seeded(t), redisCache, "room", ttl)

	got, err := store.ReadAll(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestWritesInvalidate(t *testing.T) {
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redisCache := mocks.NewMockRedisCache(ctrl)
		redisCache.EXPECT().Save(ctx, "room:version", gomock.Any(), ttl).Return(nil)
		redisCache.EXPECT().Delete(ctx, "room:id:r-2", "room:all").Return(nil)

		store := cached.New(seeded(t), redisCache, "room", ttl)

		_, err := store.Create(ctx, storage.Record{"id": "r-2", "number": "102", "size": 1, "price": 80})
		assert.NoError(t, err)
	})

	t.Run("update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redisCache := mocks.NewMockRedisCache(ctrl)
		redisCache.EXPECT().Save(ctx, "room:version", gomock.Any(), ttl).Return(nil)
		redisCache.EXPECT().Delete(ctx, "room:id:r-1", "room:all").Return(errors.New("timeout"))

		store := cached.New(seeded(t), redisCache, "room", ttl)

		got, err := store.Update(ctx, "r-1", storage.Record{"price": 175})

		require.NoError(t, err)
		assert.Equal(t, 175, got["price"])
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redisCache := mocks.NewMockRedisCache(ctrl)
		redisCache.EXPECT().Save(ctx, "room:version", gomock.Any(), ttl).Return(nil)
		redisCache.EXPECT().Delete(ctx, "room:id:r-1", "room:all").Return(nil)

		store := cached.New(seeded(t), redisCache, "room", ttl)

		assert.NoError(t, store.Delete(ctx, "r-1"))
	})

	t.Run("failed write leaves cache alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redisCache := mocks.NewMockRedisCache(ctrl)

		store := cached.New(memory.New("room"), redisCache, "room", ttl)

		err := store.Delete(ctx, "r-1")
		assert.True(t, failure.IsNotFound(err))

		_, err = store.Update(ctx, "r-1", storage.Record{"price": 1})
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestReset(t *testing.T) {
	ctx := context.Background()

	t.Run("clears the entity prefix", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redisCache := mocks.NewMockRedisCache(ctrl)
		redisCache.EXPECT().Clear(ctx, "room:").Return(nil)

		store := cached.New(memory.New("room"), redisCache, "room", ttl)

		assert.NoError(t, store.Reset(ctx))
	})

	t.Run("reports cache failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redisCache := mocks.NewMockRedisCache(ctrl)
		redisCache.EXPECT().Clear(ctx, "booking:").Return(errors.New("connection refused"))

		store := cached.New(memory.New("booking"), redisCache, "booking", ttl)

		assert.EqualError(t, store.Reset(ctx), "failed to reset booking cache: connection refused")
	})
}

// updatingStore bumps the price of the record through writer while a read is in flight.
type updatingStore struct {
	*memory.Store
	writer storage.Store
}

func (s *updatingStore) ReadByID(ctx context.Context, id string) (storage.Record, error) {
	record, err := s.Store.ReadByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.writer.Update(ctx, id, storage.Record{"price": 175}); err != nil {
		return nil, err
	}

	return record, nil
}
