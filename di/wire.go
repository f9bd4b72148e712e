//go:build wireinject
// +build wireinject

package di

import (
	"wbrent/config"
	"wbrent/infras/geocoder"
	"wbrent/infras/jwt"
	"wbrent/infras/kafka"
	"wbrent/infras/otel"
	"wbrent/infras/postgres"
	"wbrent/infras/redis"
	"wbrent/infras/s3"
	"wbrent/infras/sendgrid"
	"wbrent/internal/jobs"
	"wbrent/internal/worker"
	"wbrent/permissions"
	"wbrent/shared/cache"
	"wbrent/transport/http"
	"wbrent/transport/http/middleware"
	"wbrent/transport/http/router"

	"github.com/google/wire"

	authService "wbrent/internal/domains/auth/service"
	contactRepository "wbrent/internal/domains/contact/repository"
	contactService "wbrent/internal/domains/contact/service"
	distanceService "wbrent/internal/domains/distance/service"
	newsletterRepository "wbrent/internal/domains/newsletter/repository"
	newsletterService "wbrent/internal/domains/newsletter/service"
	notificationService "wbrent/internal/domains/notification/service"
	productRepository "wbrent/internal/domains/product/repository"
	productService "wbrent/internal/domains/product/service"
	quoteService "wbrent/internal/domains/quote/service"
	reservationEvent "wbrent/internal/domains/reservation/event"
	reservationRepository "wbrent/internal/domains/reservation/repository"
	reservationService "wbrent/internal/domains/reservation/service"
	stockRepository "wbrent/internal/domains/stocknotify/repository"
	stockService "wbrent/internal/domains/stocknotify/service"
	userRepository "wbrent/internal/domains/user/repository"
	userService "wbrent/internal/domains/user/service"

	authHandler "wbrent/internal/handlers/auth"
	contactHandler "wbrent/internal/handlers/contact"
	deliveryHandler "wbrent/internal/handlers/delivery"
	newsletterHandler "wbrent/internal/handlers/newsletter"
	productHandler "wbrent/internal/handlers/product"
	quoteHandler "wbrent/internal/handlers/quote"
	reservationHandler "wbrent/internal/handlers/reservation"
	stockHandler "wbrent/internal/handlers/stocknotify"
	userHandler "wbrent/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	sendgrid.New,
	geocoder.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var productDomain = wire.NewSet(
	productRepository.New,
	productRepository.NewImage,
	productService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationEvent.New,
	reservationService.New,
	quoteService.New,
	distanceService.New,
	notificationService.New,
)

var engagementDomain = wire.NewSet(
	stockRepository.New,
	stockService.New,
	contactRepository.New,
	contactService.New,
	newsletterRepository.New,
	newsletterService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	productDomain,
	reservationDomain,
	engagementDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	productHandler.New,
	reservationHandler.New,
	quoteHandler.New,
	deliveryHandler.New,
	stockHandler.New,
	contactHandler.New,
	newsletterHandler.New,
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

func InitializeJobRunner() *jobs.Runner {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		productDomain,
		reservationDomain,
		jobs.NewRunner,
	)

	return &jobs.Runner{}
}

func InitializeWorker() *worker.Worker {
	wire.Build(
		configurations,
		infrastructures,
		productRepository.New,
		notificationService.New,
		stockRepository.New,
		stockService.New,
		worker.New,
	)

	return &worker.Worker{}
}

func InitializeUserService() userService.User {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		userDomain,
	)

	return nil
}
