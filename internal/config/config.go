package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"io.winapps.florafauna/internal/db"
	"io.winapps.florafauna/internal/remote"
	"io.winapps.florafauna/internal/settings"
)

// Config holds everything read from the environment at startup
type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	StoreDriver remote.Driver
	Table       string
	// Fallback credentials used until the user saves their own
	Remote settings.Credentials

	LoadTimeout     time.Duration
	RefreshSchedule string

	Redis    db.RedisOptions
	Postgres db.PostgresOptions
}

// Load reads .env when present, then the process environment
func Load() (*Config, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	driver, err := remote.ParseDriver(getEnvOrDefault("STORE_DRIVER", string(remote.DriverREST)))
	if err != nil {
		return nil, err
	}

	loadTimeout, err := time.ParseDuration(getEnvOrDefault("LOAD_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOAD_TIMEOUT value: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB value: %w", err)
	}

	maxConns, err := strconv.ParseInt(getEnvOrDefault("POSTGRES_MAX_CONNS", "10"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid POSTGRES_MAX_CONNS value: %w", err)
	}

	bootstrap, err := strconv.ParseBool(getEnvOrDefault("POSTGRES_BOOTSTRAP", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid POSTGRES_BOOTSTRAP value: %w", err)
	}

	table := getEnvOrDefault("ENTRIES_TABLE", "data_entries")
	cfg := &Config{
		Port:        getEnvOrDefault("PORT", "9091"),
		AppEnv:      getEnvOrDefault("APP_ENV", "production"),
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
		StoreDriver: driver,
		Table:       table,
		Remote: settings.Credentials{
			EndpointURL: os.Getenv("SUPABASE_URL"),
			AccessKey:   os.Getenv("SUPABASE_ANON_KEY"),
		},
		LoadTimeout: loadTimeout,
		// empty disables the periodic refresh
		RefreshSchedule: getEnvOrDefault("REFRESH_SCHEDULE", "@every 5m"),
		Redis: db.RedisOptions{
			Host:     getEnvOrDefault("REDIS_HOST", "localhost"),
			Port:     getEnvOrDefault("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"), // No default for password
			DB:       redisDB,
		},
		Postgres: db.PostgresOptions{
			MaxConns:  int32(maxConns),
			Bootstrap: bootstrap,
			Table:     table,
		},
	}
	if v, ok := os.LookupEnv("REFRESH_SCHEDULE"); ok {
		cfg.RefreshSchedule = v
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default value if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
