package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"resume-builder/internal/shared/telemetry"
)

const devSecretKey = "super-secret-key"

// Config holds application configuration.
type Config struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	Env             string        `envconfig:"ENV" default:"dev"`
	DatabaseURL     string        `envconfig:"DATABASE_URL"`
	SecretKey       string        `envconfig:"SECRET_KEY"`
	SessionTTL      time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	SessionCookie   string        `envconfig:"SESSION_COOKIE" default:"session"`
	ObjectStoreType string        `envconfig:"OBJECT_STORE" default:"none"`
	LocalStoreDir   string        `envconfig:"LOCAL_STORE_DIR" default:"./data"`
	AWSRegion       string        `envconfig:"AWS_REGION"`
	S3Bucket        string        `envconfig:"S3_BUCKET"`
	S3Prefix        string        `envconfig:"S3_PREFIX"`
	SSEKMSKeyID     string        `envconfig:"SSE_KMS_KEY_ID"`
	AuthRatePerSec  float64       `envconfig:"AUTH_RATE_PER_SEC" default:"1"`
	AuthRateBurst   int           `envconfig:"AUTH_RATE_BURST" default:"10"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg.Env = normalizeEnv(cfg.Env)
	cfg.ObjectStoreType = normalizeStoreType(cfg.ObjectStoreType)

	if strings.TrimSpace(cfg.SecretKey) == "" {
		if cfg.Env == "production" {
			return Config{}, fmt.Errorf("SECRET_KEY is required in production")
		}
		telemetry.Warn("config.secret_key_default", map[string]any{"env": cfg.Env})
		cfg.SecretKey = devSecretKey
	}
	if cfg.Env == "production" && cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required in production")
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	return cfg, nil
}

// IsDevLike reports whether in-memory fallbacks are acceptable.
func (c Config) IsDevLike() bool {
	return c.Env == "dev" || c.Env == "local"
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	case "local":
		return "local"
	default:
		return "none"
	}
}
