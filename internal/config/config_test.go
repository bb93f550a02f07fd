package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/bcrypt"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "STORAGE", "HTTP_ADDR", "AUTH_JWT_SECRET", "ADMIN_PASSWORD_HASH", "API_ALLOWED_ORIGINS", "CATALOG_WATCH", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.True(t, cfg.CatalogWatch)
	assert.Equal(t, "@every 30m", cfg.CatalogRefresh)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TTL)
	assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
	assert.NoError(t, bcrypt.CompareHashAndPassword(cfg.Auth.AdminPasswordHash, []byte("admin")))
}

func TestLoad_Overrides(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Setenv("APP_ENV", "production")
	t.Setenv("STORAGE", "Mongo")
	t.Setenv("AUTH_JWT_SECRET", "prod-secret")
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))
	t.Setenv("API_ALLOWED_ORIGINS", "https://edurank.np, ,https://admin.edurank.np")
	t.Setenv("CATALOG_WATCH", "false")
	t.Setenv("AUTH_JWT_TTL", "30m")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REVIEW_COLLECTION", "parent_reviews")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorageMongo, cfg.Storage)
	assert.Equal(t, []string{"https://edurank.np", "https://admin.edurank.np"}, cfg.AllowedOrigins)
	assert.False(t, cfg.CatalogWatch)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TTL)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "parent_reviews", cfg.Collections.Reviews)
	assert.Equal(t, []byte("prod-secret"), cfg.Auth.Secret)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown storage", map[string]string{"STORAGE": "redis"}},
		{"bad timeout", map[string]string{"MONGO_CONNECT_TIMEOUT": "soon"}},
		{"bad level", map[string]string{"LOG_LEVEL": "loud"}},
		{"bad hash", map[string]string{"ADMIN_PASSWORD_HASH": "plain-text"}},
		{"production without secret", map[string]string{"APP_ENV": "production", "AUTH_JWT_SECRET": ""}},
		{"staging without secret", map[string]string{"APP_ENV": "staging", "AUTH_JWT_SECRET": ""}},
		{"staging without admin hash", map[string]string{"APP_ENV": "staging", "AUTH_JWT_SECRET": "s3cret", "ADMIN_PASSWORD_HASH": ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", "")
			t.Setenv("STORAGE", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := Config{Env: "production", LogLevel: zapcore.WarnLevel}.NewLogger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}
