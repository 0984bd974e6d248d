package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	redisv9 "github.com/redis/go-redis/v9"

	"restaurant_backend/internal/app/di"
	"restaurant_backend/internal/app/router"
	"restaurant_backend/internal/platform/authz"
	"restaurant_backend/internal/platform/config"
	"restaurant_backend/internal/platform/db"
	"restaurant_backend/internal/platform/logger"
	"restaurant_backend/internal/platform/metrics"
	infraredis "restaurant_backend/internal/platform/redis"
	"restaurant_backend/internal/shared/ratelimiter"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	logger.SetupDefault(os.Stdout, cfg.LogLevel)
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	gdb, err := db.Open(cfg.DB, di.Models()...)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(ctx, cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword); err != nil {
		slog.Warn("Redis unavailable. Running without cache.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Metrics
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	container := di.NewContainer(cfg, gdb, rdb, collector)

	engine := router.NewRouter(container.Handlers, router.Options{
		Verifier:    container.Tokens,
		Policy:      authz.DefaultPolicy(),
		Metrics:     collector,
		AuthLimiter: ratelimiter.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateWindow),
		CORSOrigins: cfg.CORSOrigins,
	})

	servers := []*http.Server{{Addr: ":" + cfg.ServerPort, Handler: engine}}
	if cfg.MetricsAddr != "" {
		servers = append(servers, &http.Server{Addr: cfg.MetricsAddr, Handler: metrics.SetupMetricsRoute(registry)})
	}

	errCh := make(chan error, len(servers))
	for _, srv := range servers {
		srv := srv
		go func() {
			slog.Info("listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case err := <-errCh:
		slog.Error("server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "addr", srv.Addr, "error", err)
		}
	}
}
