package di

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/helper"
	"hotel/infras/kafka"
	"hotel/infras/mysql"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	bookingModel "hotel/internal/domains/booking/model"
	customerModel "hotel/internal/domains/customer/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/internal/storage"
	"hotel/internal/storage/cached"
	"hotel/internal/storage/gormstore"
	"hotel/internal/storage/memory"
	postgresStore "hotel/internal/storage/postgres"
	"hotel/shared/cache"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	otelShutdownTimeout = 5 * time.Second
	cacheResetTimeout   = 5 * time.Second
)

func provideOtel(cfg *config.Config) (otel.Otel, func()) {
	o := otel.New(cfg)

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()

		if err := o.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown tracer provider")
		}
	}

	return o, cleanup
}

func provideKafka(cfg *config.Config) (kafka.Client, func()) {
	client := kafka.New(cfg)

	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close kafka writer")
		}
	}

	return client, cleanup
}

// provideStores binds one store per entity to the configured driver and
// puts the redis read-through cache in front of them when caching is on.
func provideStores(cfg *config.Config, otl otel.Otel, redisCache cache.RedisCache) (storage.Stores, func(), error) {
	var (
		stores  storage.Stores
		cleanup = func() {}
		err     error
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory, "":
		stores = memoryStores()
	case config.StorageDriverPostgres:
		stores, cleanup, err = postgresStores(cfg, otl)
	case config.StorageDriverMySQL:
		stores, cleanup, err = mysqlStores(cfg, otl)
	default:
		err = fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	if err != nil {
		return storage.Stores{}, nil, err
	}

	if cfg.Cache.Enable {
		stores, err = cachedStores(cfg, stores, redisCache)
		if err != nil {
			cleanup()

			return storage.Stores{}, nil, err
		}
	}

	log.Info().Str("driver", cfg.Storage.Driver).Bool("cache", cfg.Cache.Enable).Msg("Storage ready")

	return stores, cleanup, nil
}

// cachedStores wraps every store with the redis cache. Memory records do not
// survive a restart, so entries cached by a previous process are dropped first.
func cachedStores(cfg *config.Config, stores storage.Stores, redisCache cache.RedisCache) (storage.Stores, error) {
	rooms := cached.New(stores.Rooms, redisCache, roomModel.EntityName, cfg.Cache.TTL)
	customers := cached.New(stores.Customers, redisCache, customerModel.EntityName, cfg.Cache.TTL)
	bookings := cached.New(stores.Bookings, redisCache, bookingModel.EntityName, cfg.Cache.TTL)

	if cfg.Storage.Driver == config.StorageDriverMemory || cfg.Storage.Driver == "" {
		ctx, cancel := context.WithTimeout(context.Background(), cacheResetTimeout)
		defer cancel()

		for _, store := range []*cached.Store{rooms, customers, bookings} {
			if err := store.Reset(ctx); err != nil {
				return storage.Stores{}, err //nolint:wrapcheck
			}
		}
	}

	return storage.Stores{
		Rooms:     rooms,
		Customers: customers,
		Bookings:  bookings,
	}, nil
}

func memoryStores() storage.Stores {
	return storage.Stores{
		Rooms:     storage.Synchronized(memory.New(roomModel.EntityName)),
		Customers: storage.Synchronized(memory.New(customerModel.EntityName)),
		Bookings:  storage.Synchronized(memory.New(bookingModel.EntityName)),
	}
}

func postgresStores(cfg *config.Config, otl otel.Otel) (storage.Stores, func(), error) {
	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			return storage.Stores{}, nil, fmt.Errorf("failed to migrate postgres: %w", err)
		}
	}

	conn, err := postgres.New(cfg)
	if err != nil {
		return storage.Stores{}, nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	cleanup := func() {
		if err := conn.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close postgres connections")
		}
	}

	return storage.Stores{
		Rooms:     postgresStore.New[roomModel.Room](roomModel.EntityName, roomModel.TableName, conn, otl),
		Customers: postgresStore.New[customerModel.Customer](customerModel.EntityName, customerModel.TableName, conn, otl),
		Bookings:  postgresStore.New[bookingModel.Booking](bookingModel.EntityName, bookingModel.TableName, conn, otl),
	}, cleanup, nil
}

func mysqlStores(cfg *config.Config, otl otel.Otel) (storage.Stores, func(), error) {
	db, err := mysql.New(cfg)
	if err != nil {
		return storage.Stores{}, nil, fmt.Errorf("failed to connect to mysql: %w", err)
	}

	cleanup := func() {
		if err := mysql.Close(db); err != nil {
			log.Error().Err(err).Msg("Failed to close mysql connection")
		}
	}

	if cfg.DB.MySQL.AutoMigrate {
		err = db.AutoMigrate(&roomModel.Room{}, &customerModel.Customer{}, &bookingModel.Booking{})
		if err != nil {
			cleanup()

			return storage.Stores{}, nil, fmt.Errorf("failed to migrate mysql: %w", err)
		}
	}

	return storage.Stores{
		Rooms:     gormstore.New[roomModel.Room](roomModel.EntityName, roomModel.TableName, db, otl),
		Customers: gormstore.New[customerModel.Customer](customerModel.EntityName, customerModel.TableName, db, otl),
		Bookings:  gormstore.New[bookingModel.Booking](bookingModel.EntityName, bookingModel.TableName, db, otl),
	}, cleanup, nil
}
