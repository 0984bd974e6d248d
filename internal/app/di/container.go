package di

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"restaurant_backend/internal/app/router"
	authhandler "restaurant_backend/internal/feature/auth/transport/handler"
	authusecase "restaurant_backend/internal/feature/auth/usecase"
	clientadapters "restaurant_backend/internal/feature/client/adapters"
	clienthandler "restaurant_backend/internal/feature/client/transport/handler"
	clientusecase "restaurant_backend/internal/feature/client/usecase"
	commandeadapters "restaurant_backend/internal/feature/commande/adapters"
	commandehandler "restaurant_backend/internal/feature/commande/transport/handler"
	commandeusecase "restaurant_backend/internal/feature/commande/usecase"
	menuadapters "restaurant_backend/internal/feature/menu/adapters"
	menuhandler "restaurant_backend/internal/feature/menu/transport/handler"
	menuusecase "restaurant_backend/internal/feature/menu/usecase"
	plathandler "restaurant_backend/internal/feature/plat/transport/handler"
	platusecase "restaurant_backend/internal/feature/plat/usecase"
	"restaurant_backend/internal/platform/config"
	"restaurant_backend/internal/platform/http/handler"
	jwtmw "restaurant_backend/internal/platform/jwt"
	"restaurant_backend/internal/platform/metrics"
	"restaurant_backend/internal/platform/password"
)

// Container holds the assembled handlers and the token service they share with
// the authentication middleware.
type Container struct {
	Handlers router.Handlers
	Tokens   *jwtmw.TokenService
}

// NewContainer wires repositories, usecases and handlers. rdb and collector may be nil.
func NewContainer(cfg *config.Config, db *gorm.DB, rdb *redis.Client, collector *metrics.Collector) *Container {
	hasher := password.NewBcryptHasher(cfg.BcryptCost)
	tokens := NewTokenService(cfg)

	// Repository
	clientRepo := clientadapters.NewClientGorm(db)
	platRepo := NewPlatRepository(rdb, db, cfg.DishCacheTTL)
	menuRepo := menuadapters.NewMenuGorm(db)
	commandeRepo := commandeadapters.NewCommandeGorm(db)

	// Usecase
	var recorder authusecase.LoginRecorder
	if collector != nil {
		recorder = collector
	}
	authUC := authusecase.NewAuthUsecase(clientRepo, hasher, tokens, recorder)
	clientUC := clientusecase.NewClientUsecase(clientRepo, hasher)
	platUC := platusecase.NewPlatUsecase(platRepo)
	menuUC := menuusecase.NewMenuUsecase(menuRepo, platRepo)
	commandeUC := commandeusecase.NewCommandeUsecase(commandeRepo, platRepo, clientRepo)

	// Handler
	return &Container{
		Handlers: router.Handlers{
			Auth:      authhandler.NewAuthHandler(authUC),
			Clients:   clienthandler.NewClientHandler(clientUC),
			Plats:     plathandler.NewPlatHandler(platUC),
			Menus:     menuhandler.NewMenuHandler(menuUC),
			Commandes: commandehandler.NewCommandeHandler(commandeUC),
			Health:    handler.Health(HealthChecks(db, rdb)),
			Info:      handler.Info(cfg.AppVersion),
			Contact: handler.ContactInfo(handler.Contact{
				Email:   cfg.ContactEmail,
				Phone:   cfg.ContactPhone,
				Address: cfg.ContactAddress,
			}),
		},
		Tokens: tokens,
	}
}

// NewTokenService creates the token service shared by login and the authentication gate.
func NewTokenService(cfg *config.Config) *jwtmw.TokenService {
	return jwtmw.NewTokenService(cfg.JWTSecret, cfg.JWTExpiration)
}

// HealthChecks pings the relational store and, when configured, Redis.
func HealthChecks(db *gorm.DB, rdb *redis.Client) map[string]handler.Check {
	checks := map[string]handler.Check{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
	}
	return checks
}
