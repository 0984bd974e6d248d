package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"SERVER_PORT", "METRICS_ADDR", "CORS_ALLOWED_ORIGINS", "JWT_SECRET", "JWT_EXPIRATION",
		"DB_DRIVER", "DATABASE_URL", "RUN_MIGRATIONS", "REDIS_HOST", "DISH_CACHE_TTL", "AUTH_RATE_LIMIT",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 10*time.Hour, cfg.JWTExpiration)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.False(t, cfg.DB.RunMigrations)
	assert.Equal(t, 5*time.Minute, cfg.DishCacheTTL)
	assert.Equal(t, 30, cfg.AuthRateLimit)
	assert.Len(t, cfg.JWTSecret, 64, "a random secret is generated when JWT_SECRET is empty")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRATION", "30m")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("RUN_MIGRATIONS", "true")
	t.Setenv("AUTH_RATE_LIMIT", "not-a-number")

	cfg := Load()

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiration)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.True(t, cfg.DB.RunMigrations)
	assert.Equal(t, 30, cfg.AuthRateLimit, "unparsable values fall back to the default")
}

func TestLoad_MetricsAddr(t *testing.T) {
	t.Run("explicit empty value disables the metrics listener", func(t *testing.T) {
		t.Setenv("METRICS_ADDR", "")
		assert.Empty(t, Load().MetricsAddr)
	})

	t.Run("custom address", func(t *testing.T) {
		t.Setenv("METRICS_ADDR", ":9100")
		assert.Equal(t, ":9100", Load().MetricsAddr)
	})
}
