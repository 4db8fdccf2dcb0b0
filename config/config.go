package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment. It is
// loaded and validated once in main and passed to the components that
// need it, so handlers never reach into os.Getenv for payment secrets.
type Config struct {
	Port                string
	DatabaseURL         string
	StripeSecretKey     string
	StripeWebhookSecret string
	Currency            string
	JWTSecret           string
	AdminEmail          string
	AdminPassword       string
}

// Load reads the .env file when present, then the process environment.
// Missing payment or database settings are a startup error.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         os.Getenv("DB_URL"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		Currency:            getEnv("CURRENCY", "eur"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		AdminEmail:          getEnv("ADMIN_EMAIL", "admin@nyumbaninala.org"),
		AdminPassword:       os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DB_URL is not defined in the environment")
	}
	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is not defined in the environment")
	}
	if cfg.StripeWebhookSecret == "" {
		return nil, fmt.Errorf("STRIPE_WEBHOOK_SECRET is not defined in the environment")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not defined in the environment")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
