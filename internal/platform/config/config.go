package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr             string
	DatabaseURL      string
	JWTSecret        string
	TokenTTL         time.Duration
	Environment      string
	OperatorEmail    string
	OperatorPassword string
	RunMigrations    bool
	RunSeed          bool
	SeedSampleData   bool
	MigrationsDir    string
	MaxBodyBytes     int64
}

func Load() Config {
	return Config{
		Addr:             getEnv("APP_ADDR", ":8080"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		TokenTTL:         getEnvDuration("TOKEN_TTL", 12*time.Hour),
		Environment:      getEnv("APP_ENV", "development"),
		OperatorEmail:    getEnv("OPERATOR_EMAIL", "operator@example.com"),
		OperatorPassword: getEnv("OPERATOR_PASSWORD", ""),
		RunMigrations:    getEnvBool("RUN_MIGRATIONS", true),
		RunSeed:          getEnvBool("RUN_SEED", true),
		SeedSampleData:   getEnvBool("SEED_SAMPLE_DATA", false),
		MigrationsDir:    getEnv("MIGRATIONS_DIR", "migrations"),
		MaxBodyBytes:     int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Environment == "production" && c.RunSeed && strings.TrimSpace(c.OperatorPassword) == "" {
		return fmt.Errorf("OPERATOR_PASSWORD must be set or RUN_SEED disabled in production")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	return nil
}
