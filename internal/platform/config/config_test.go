package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DSN", "DB_AUTO_MIGRATE", "JWT_SECRET", "JWT_TTL", "HTTP_READ_TIMEOUT", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "", cfg.DB.DSN)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.True(t, cfg.DevMode())
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DSN", "postgres://localhost/pets")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("HTTP_READ_TIMEOUT", "15")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "postgres://localhost/pets", cfg.DB.DSN)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.False(t, cfg.DevMode())
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_AUTO_MIGRATE", "maybe")
	t.Setenv("JWT_TTL", "-5m")

	cfg := Load()

	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
}
