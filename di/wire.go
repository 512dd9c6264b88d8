//go:build wireinject
// +build wireinject

package di

import (
	"campnest/config"
	"campnest/infras/jwt"
	"campnest/infras/kafka"
	"campnest/infras/mailer"
	"campnest/infras/otel"
	"campnest/infras/postgres"
	"campnest/infras/redis"
	"campnest/infras/s3"
	"campnest/permissions"
	"campnest/shared/cache"
	"campnest/transport/http"
	"campnest/transport/http/middleware"
	"campnest/transport/http/router"

	"github.com/google/wire"

	addonRepository "campnest/internal/domains/addon/repository"
	addonService "campnest/internal/domains/addon/service"
	authService "campnest/internal/domains/auth/service"
	bookingRepository "campnest/internal/domains/booking/repository"
	bookingService "campnest/internal/domains/booking/service"
	campsiteRepository "campnest/internal/domains/campsite/repository"
	campsiteService "campnest/internal/domains/campsite/service"
	galleryRepository "campnest/internal/domains/gallery/repository"
	galleryService "campnest/internal/domains/gallery/service"
	reviewRepository "campnest/internal/domains/review/repository"
	reviewService "campnest/internal/domains/review/service"
	userRepository "campnest/internal/domains/user/repository"
	userService "campnest/internal/domains/user/service"

	addonHandler "campnest/internal/handlers/addon"
	adminHandler "campnest/internal/handlers/admin"
	authHandler "campnest/internal/handlers/auth"
	bookingHandler "campnest/internal/handlers/booking"
	campsiteHandler "campnest/internal/handlers/campsite"
	galleryHandler "campnest/internal/handlers/gallery"
	reviewHandler "campnest/internal/handlers/review"
	userHandler "campnest/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	permissions.Get,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var campsiteDomain = wire.NewSet(
	campsiteRepository.New,
	campsiteService.New,
)

var addonDomain = wire.NewSet(
	addonRepository.New,
	addonService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var galleryDomain = wire.NewSet(
	galleryRepository.New,
	galleryService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	campsiteDomain,
	addonDomain,
	bookingDomain,
	reviewDomain,
	galleryDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	campsiteHandler.New,
	addonHandler.New,
	bookingHandler.New,
	reviewHandler.New,
	galleryHandler.New,
	adminHandler.New,
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
