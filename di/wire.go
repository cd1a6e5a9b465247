//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/redis"
	"hotel/shared/cache"
	"hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"

	bookingService "hotel/internal/domains/booking/service"
	customerService "hotel/internal/domains/customer/service"
	roomService "hotel/internal/domains/room/service"

	bookingHandler "hotel/internal/handlers/booking"
	customerHandler "hotel/internal/handlers/customer"
	roomHandler "hotel/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	provideOtel,
	provideKafka,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var storages = wire.NewSet(
	provideStores,
)

var domains = wire.NewSet(
	roomService.New,
	customerService.New,
	bookingService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	customerHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		storages,
		domains,
		routing,
		http.New,
	)

	return nil, nil, nil
}
