package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds application configuration values.
type Config struct {
	HTTPPort string

	DatabaseDriver string
	DatabaseDSN    string

	Secret        string
	JWTExpiration time.Duration
	BcryptCost    int

	LogLevel  string
	LogFormat string

	SweepSchedule string
	SweepTimeout  time.Duration

	SeedDefaults     bool
	SeedMedicinesCSV string

	CORSAllowedOrigins []string

	LowStockThreshold int64
	ExpiryWindowDays  int
}

// Load reads configuration from environment variables with reasonable defaults.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		DatabaseDriver:   strings.ToLower(getEnv("DATABASE_DRIVER", "sqlite")),
		Secret:           getEnv("JWT_SECRET", "dev_secret"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "json"),
		SweepSchedule:    getEnv("SWEEP_SCHEDULE", "0 8 * * *"),
		SeedMedicinesCSV: os.Getenv("SEED_MEDICINES_CSV"),
	}

	if _, err := strconv.Atoi(cfg.HTTPPort); err != nil {
		return Config{}, fmt.Errorf("invalid HTTP_PORT %q", cfg.HTTPPort)
	}

	switch cfg.DatabaseDriver {
	case "sqlite":
		cfg.DatabaseDSN = getEnv("DATABASE_DSN", "file:hemis.db?_pragma=foreign_keys(1)")
	case "postgres":
		cfg.DatabaseDSN = os.Getenv("DATABASE_DSN")
		if cfg.DatabaseDSN == "" {
			cfg.DatabaseDSN = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
				getEnv("DB_USER", "postgres"),
				os.Getenv("DB_PASSWORD"),
				getEnv("DB_HOST", "localhost"),
				getEnv("DB_PORT", "5432"),
				getEnv("DB_NAME", "hemis"))
		}
	default:
		return Config{}, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}

	var err error
	if cfg.JWTExpiration, err = getEnvDuration("JWT_EXPIRATION", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.SweepTimeout, err = getEnvDuration("SWEEP_TIMEOUT", 2*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.BcryptCost, err = getEnvInt("BCRYPT_COST", bcrypt.DefaultCost); err != nil {
		return Config{}, err
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return Config{}, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if cfg.SeedDefaults, err = getEnvBool("SEED_DEFAULTS", true); err != nil {
		return Config{}, err
	}

	threshold, err := getEnvInt("LOW_STOCK_THRESHOLD", 50)
	if err != nil {
		return Config{}, err
	}
	cfg.LowStockThreshold = int64(threshold)
	if cfg.ExpiryWindowDays, err = getEnvInt("EXPIRY_WINDOW_DAYS", 30); err != nil {
		return Config{}, err
	}

	for _, origin := range strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return b, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}
