//go:build wireinject
// +build wireinject

package di

import (
	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/infras/redis"
	"lodge/shared/cache"
	"lodge/transport/http"
	"lodge/transport/http/middleware"
	"lodge/transport/http/router"

	bookingRepository "lodge/internal/domains/booking/repository"
	bookingService "lodge/internal/domains/booking/service"
	bookingHandler "lodge/internal/handlers/booking"

	"github.com/google/wire"

	guestRepository "lodge/internal/domains/guest/repository"
	housekeepingRepository "lodge/internal/domains/housekeeping/repository"
	housekeepingService "lodge/internal/domains/housekeeping/service"
	ledgerRepository "lodge/internal/domains/ledger/repository"
	ledgerService "lodge/internal/domains/ledger/service"
	roomRepository "lodge/internal/domains/room/repository"
	roomService "lodge/internal/domains/room/service"
	stayService "lodge/internal/domains/stay/service"
	ledgerHandler "lodge/internal/handlers/ledger"
	roomHandler "lodge/internal/handlers/room"
	stayHandler "lodge/internal/handlers/stay"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var stayDomain = wire.NewSet(
	guestRepository.New,
	stayService.New,
)

var ledgerDomain = wire.NewSet(
	ledgerRepository.NewIncome,
	ledgerRepository.NewExpense,
	ledgerService.New,
)

var housekeepingDomain = wire.NewSet(
	housekeepingRepository.New,
	housekeepingService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	stayDomain,
	ledgerDomain,
	housekeepingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	stayHandler.New,
	ledgerHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeRelay() housekeepingService.Notifier {
	wire.Build(
		configurations,
		infrastructures,
		housekeepingDomain,
	)

	return nil
}
