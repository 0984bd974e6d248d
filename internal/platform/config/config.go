// Package config loads the application settings from the environment.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting read at startup. It is treated as immutable afterwards.
type Config struct {
	// Server
	ServerPort  string
	MetricsAddr string
	CORSOrigins []string
	AppVersion  string

	// Auth
	JWTSecret      string
	JWTExpiration  time.Duration
	BcryptCost     int
	AuthRateLimit  int
	AuthRateWindow time.Duration

	// Database
	DB DBConfig

	// Redis (optional)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	DishCacheTTL  time.Duration

	// Logging
	LogLevel string

	// Public contact details served by /api/contact
	ContactEmail   string
	ContactPhone   string
	ContactAddress string
}

// DBConfig selects and addresses the relational store.
type DBConfig struct {
	Driver        string // "postgres" or "sqlite"
	URL           string
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	SSLMode       string
	SQLitePath    string
	RunMigrations bool
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	cfg := &Config{
		ServerPort:     getEnvString("SERVER_PORT", "8080"),
		MetricsAddr:    getEnvOptional("METRICS_ADDR", ":9090"),
		CORSOrigins:    splitList(getEnvString("CORS_ALLOWED_ORIGINS", "*")),
		AppVersion:     getEnvString("APP_VERSION", "dev"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTExpiration:  getEnvDuration("JWT_EXPIRATION", 10*time.Hour),
		BcryptCost:     getEnvInt("BCRYPT_COST", 10),
		AuthRateLimit:  getEnvInt("AUTH_RATE_LIMIT", 30),
		AuthRateWindow: getEnvDuration("AUTH_RATE_WINDOW", time.Minute),
		DB: DBConfig{
			Driver:        strings.ToLower(getEnvString("DB_DRIVER", "postgres")),
			URL:           os.Getenv("DATABASE_URL"),
			Host:          getEnvString("DB_HOST", "localhost"),
			Port:          getEnvString("DB_PORT", "5432"),
			User:          os.Getenv("DB_USER"),
			Password:      os.Getenv("DB_PASSWORD"),
			Name:          getEnvString("DB_NAME", "restaurant"),
			SSLMode:       getEnvString("DB_SSLMODE", "disable"),
			SQLitePath:    getEnvString("SQLITE_PATH", "restaurant.db"),
			RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
		},
		RedisHost:      os.Getenv("REDIS_HOST"),
		RedisPort:      getEnvString("REDIS_PORT", "6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		DishCacheTTL:   getEnvDuration("DISH_CACHE_TTL", 5*time.Minute),
		LogLevel:       getEnvString("LOG_LEVEL", "info"),
		ContactEmail:   getEnvString("CONTACT_EMAIL", "contact@restaurant.local"),
		ContactPhone:   os.Getenv("CONTACT_PHONE"),
		ContactAddress: os.Getenv("CONTACT_ADDRESS"),
	}

	// JWT_SECRET check (development warning)
	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set; using a random secret, tokens will not survive a restart")
		cfg.JWTSecret = randomSecret()
	}
	return cfg
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

// getEnvOptional returns defaultVal only when key is unset, so an explicit empty
// value disables the setting.
func getEnvOptional(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(b)
}
