package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the storefront backend.
type Config struct {
	Port        string
	Environment string

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string
	PostgresTimeZone string

	// RedisAddr enables the product cache when set.
	RedisAddr     string
	RedisPassword string

	// WhatsAppNumber is the shop contact embedded in checkout links.
	WhatsAppNumber string

	AllowedOrigins []string

	// Per-IP request budgets within RateLimitWindow.
	RateLimitWindow time.Duration
	RateLimitMax    int
	CheckoutMax     int
}

// LoadConfig reads configuration from the environment, with .env support
// for local development.
func LoadConfig() (*Config, error) {
	// No .env file is fine in containers; system env is used.
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "4000"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		PostgresTimeZone: getEnv("POSTGRES_TIMEZONE", "UTC"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		WhatsAppNumber:   os.Getenv("WHATSAPP_NUMBER"),
		RateLimitWindow:  time.Duration(getEnvInt("RATE_LIMIT_WINDOW_MS", 900000)) * time.Millisecond,
		RateLimitMax:     getEnvInt("RATE_LIMIT_MAX_REQUESTS", 100),
		CheckoutMax:      getEnvInt("CHECKOUT_MAX_REQUESTS", 10),
	}

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001")
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	if cfg.PostgresUser == "" || cfg.PostgresPassword == "" || cfg.PostgresDB == "" {
		return nil, fmt.Errorf("database config incomplete")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
