package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type Config struct {
	DatabaseURL string

	// SecretKey is required at startup and doubles as the password pepper.
	SecretKey string

	HTTPAddress string

	TokenTTL           time.Duration
	TokenBackend       string
	TokenSweepInterval time.Duration

	RedisAddress  string
	RedisPassword string
	RedisDB       int

	AllowedOrigins   []string
	AllowCredentials bool

	LogLevel string
}

// Load reads configuration from the environment. DATABASE_URL and
// SECRET_KEY are mandatory; a missing value refuses startup rather than
// limping along without credentials security.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	for _, key := range []string{
		"DATABASE_URL", "SECRET_KEY", "HTTP_ADDRESS",
		"TOKEN_TTL", "TOKEN_BACKEND", "TOKEN_SWEEP_INTERVAL",
		"REDIS_ADDRESS", "REDIS_PASSWORD", "REDIS_DB",
		"ALLOWED_ORIGINS", "ALLOW_CREDENTIALS", "LOG_LEVEL",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	v.SetDefault("HTTP_ADDRESS", ":8080")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("TOKEN_BACKEND", BackendMemory)
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	cfg := &Config{
		DatabaseURL:        v.GetString("DATABASE_URL"),
		SecretKey:          v.GetString("SECRET_KEY"),
		HTTPAddress:        v.GetString("HTTP_ADDRESS"),
		TokenTTL:           v.GetDuration("TOKEN_TTL"),
		TokenBackend:       v.GetString("TOKEN_BACKEND"),
		TokenSweepInterval: v.GetDuration("TOKEN_SWEEP_INTERVAL"),
		RedisAddress:       v.GetString("REDIS_ADDRESS"),
		RedisPassword:      v.GetString("REDIS_PASSWORD"),
		RedisDB:            v.GetInt("REDIS_DB"),
		AllowedOrigins:     v.GetStringSlice("ALLOWED_ORIGINS"),
		AllowCredentials:   v.GetBool("ALLOW_CREDENTIALS"),
		LogLevel:           v.GetString("LOG_LEVEL"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY is not set")
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}
	switch cfg.TokenBackend {
	case BackendMemory, BackendRedis:
	default:
		return nil, fmt.Errorf("TOKEN_BACKEND must be %q or %q, got %q",
			BackendMemory, BackendRedis, cfg.TokenBackend)
	}
	if cfg.TokenBackend == BackendRedis && cfg.RedisAddress == "" {
		return nil, fmt.Errorf("REDIS_ADDRESS is required when TOKEN_BACKEND=redis")
	}

	return cfg, nil
}
