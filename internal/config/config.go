package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/bcrypt"
)

// Storage backends for reviews, inquiries and claims.
const (
	StorageMemory = "memory"
	StorageMongo  = "mongo"
)

const defaultAdminPassword = "admin"

// Collections names the MongoDB collections.
type Collections struct {
	Institutions string
	Reviews      string
	Inquiries    string
	Claims       string
}

// AuthConfig configures the admin login scaffold.
type AuthConfig struct {
	Secret            []byte
	Issuer            string
	TTL               time.Duration
	AdminUsername     string
	AdminPasswordHash []byte
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Env            string
	Addr           string
	Storage        string
	MongoURI       string
	MongoDatabase  string
	Collections    Collections
	Timeout        time.Duration
	CatalogFile    string
	CatalogRefresh string
	CatalogWatch   bool
	AllowedOrigins []string
	Auth           AuthConfig
	LogLevel       zapcore.Level
}

// LoadEnv reads .env into the environment outside production. A missing
// file is not an error.
func LoadEnv() error {
	env := os.Getenv("APP_ENV")
	if env != "" && env != "development" {
		return nil
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Load reads environment variables and returns a fully populated Config.
func Load() (Config, error) {
	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("MONGO_CONNECT_TIMEOUT: %w", err)
		}
		timeout = parsed
	}

	ttl := 12 * time.Hour
	if v := os.Getenv("AUTH_JWT_TTL"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("AUTH_JWT_TTL: %w", err)
		}
		ttl = parsed
	}

	level, err := zapcore.ParseLevel(envOrDefault("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	storage := strings.ToLower(envOrDefault("STORAGE", StorageMemory))
	if storage != StorageMemory && storage != StorageMongo {
		return Config{}, fmt.Errorf("STORAGE must be %q or %q, got %q", StorageMemory, StorageMongo, storage)
	}

	env := envOrDefault("APP_ENV", "development")
	development := env == "development"

	// The built-in secret and admin password are for local development only.
	secret := strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET"))
	if secret == "" {
		if !development {
			return Config{}, fmt.Errorf("AUTH_JWT_SECRET must be configured when APP_ENV is %q", env)
		}
		secret = "edurank-development-secret"
	}

	hash := []byte(strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")))
	if len(hash) == 0 {
		if !development {
			return Config{}, fmt.Errorf("ADMIN_PASSWORD_HASH must be configured when APP_ENV is %q", env)
		}
		hash, err = bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return Config{}, fmt.Errorf("hash default admin password: %w", err)
		}
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return Config{}, fmt.Errorf("ADMIN_PASSWORD_HASH: %w", err)
	}

	return Config{
		Env:           env,
		Addr:          envOrDefault("HTTP_ADDR", ":8080"),
		Storage:       storage,
		MongoURI:      envOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: envOrDefault("MONGO_DB", "edurank"),
		Collections: Collections{
			Institutions: envOrDefault("INSTITUTION_COLLECTION", "institutions"),
			Reviews:      envOrDefault("REVIEW_COLLECTION", "reviews"),
			Inquiries:    envOrDefault("INQUIRY_COLLECTION", "inquiries"),
			Claims:       envOrDefault("CLAIM_COLLECTION", "claims"),
		},
		Timeout:        timeout,
		CatalogFile:    envOrDefault("CATALOG_FILE", "data/schools.json"),
		CatalogRefresh: envOrDefault("CATALOG_REFRESH_SCHEDULE", "@every 30m"),
		CatalogWatch:   !strings.EqualFold(strings.TrimSpace(os.Getenv("CATALOG_WATCH")), "false"),
		AllowedOrigins: parseList("API_ALLOWED_ORIGINS", []string{"*"}),
		Auth: AuthConfig{
			Secret:            []byte(secret),
			Issuer:            envOrDefault("AUTH_JWT_ISSUER", "edurank-api"),
			TTL:               ttl,
			AdminUsername:     envOrDefault("ADMIN_USERNAME", "admin"),
			AdminPasswordHash: hash,
		},
		LogLevel: level,
	}, nil
}

// NewLogger builds the production zap logger at the configured level.
func (c Config) NewLogger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(c.LogLevel)
	if c.Env == "development" {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.With(zap.String("service", "edurank-api")), nil
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
