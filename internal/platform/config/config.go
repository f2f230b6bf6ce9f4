package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config agrupa la configuración del servicio. Todo viene de env (dev/handoff).
type Config struct {
	HTTP struct {
		Port         string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
	}

	DB struct {
		DSN         string // vacío => repos in-memory
		AutoMigrate bool
	}

	Auth struct {
		JWTSecret string // vacío => modo dev (X-Debug-Username)
		JWTIssuer string
		TokenTTL  time.Duration
	}

	Log struct {
		Level  string
		Format string
		App    string
	}
}

// Load lee la configuración desde variables de entorno con defaults razonables.
func Load() Config {
	var cfg Config

	cfg.HTTP.Port = getEnv("PORT", "8080")
	cfg.HTTP.ReadTimeout = getDuration("HTTP_READ_TIMEOUT", 5*time.Second)
	cfg.HTTP.WriteTimeout = getDuration("HTTP_WRITE_TIMEOUT", 10*time.Second)

	cfg.DB.DSN = getEnv("DB_DSN", "")
	cfg.DB.AutoMigrate = getBool("DB_AUTO_MIGRATE", false)

	cfg.Auth.JWTSecret = getEnv("JWT_SECRET", "")
	cfg.Auth.JWTIssuer = getEnv("JWT_ISSUER", "pet-care-journal")
	cfg.Auth.TokenTTL = getDuration("JWT_TTL", 24*time.Hour)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "text")
	cfg.Log.App = getEnv("APP_NAME", "pet-care-journal")

	return cfg
}

// Addr devuelve la dirección de escucha (":8080").
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.HTTP.Port, ":")
}

// DevMode indica que no hay secreto JWT configurado.
func (c Config) DevMode() bool {
	return strings.TrimSpace(c.Auth.JWTSecret) == ""
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// getDuration acepta "30s"/"5m" o un entero en segundos.
func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}
