package config

import (
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/db")
	t.Setenv("SECRET_KEY", "s3cr3t")
	t.Setenv("TOKEN_TTL", "12h")
	t.Setenv("TOKEN_BACKEND", "redis")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("HTTP_ADDRESS", ":9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TokenTTL != 12*time.Hour {
		t.Fatalf("TokenTTL want 12h, got %v", cfg.TokenTTL)
	}
	if cfg.TokenBackend != BackendRedis {
		t.Fatalf("TokenBackend want redis, got %q", cfg.TokenBackend)
	}
	if cfg.HTTPAddress != ":9090" {
		t.Fatalf("HTTPAddress want :9090, got %q", cfg.HTTPAddress)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/db")
	t.Setenv("SECRET_KEY", "s3cr3t")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("default TokenTTL want 24h, got %v", cfg.TokenTTL)
	}
	if cfg.TokenBackend != BackendMemory {
		t.Fatalf("default TokenBackend want memory, got %q", cfg.TokenBackend)
	}
	if cfg.HTTPAddress != ":8080" {
		t.Fatalf("default HTTPAddress want :8080, got %q", cfg.HTTPAddress)
	}
}

func TestLoad_MissingSecretKey(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/db")
	t.Setenv("SECRET_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error due to missing SECRET_KEY, got nil")
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SECRET_KEY", "s3cr3t")

	if _, err := Load(); err == nil {
		t.Fatal("expected error due to missing DATABASE_URL, got nil")
	}
}

func TestLoad_RedisBackendNeedsAddress(t *testing.T) {
	t.Setenv("DATABASE_URL", "db")
	t.Setenv("SECRET_KEY", "s")
	t.Setenv("TOKEN_BACKEND", "redis")
	t.Setenv("REDIS_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error due to missing REDIS_ADDRESS, got nil")
	}
}

func TestLoad_BadBackend(t *testing.T) {
	t.Setenv("DATABASE_URL", "db")
	t.Setenv("SECRET_KEY", "s")
	t.Setenv("TOKEN_BACKEND", "cassandra")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported TOKEN_BACKEND, got nil")
	}
}
