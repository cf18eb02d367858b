package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/stridetrack")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "3001" {
		t.Fatalf("expected default port 3001, got %s", cfg.Port)
	}
	if cfg.TokenTTL != time.Hour {
		t.Fatalf("expected default token ttl 1h, got %s", cfg.TokenTTL)
	}
	if cfg.Address() != ":3001" {
		t.Fatalf("unexpected address %s", cfg.Address())
	}
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/stridetrack")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing JWT_SECRET")
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing DATABASE_URL")
	}
}

func TestLoadParsesTokenTTL(t *testing.T) {
	setRequired(t)
	t.Setenv("TOKEN_TTL", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("expected 30m token ttl, got %s", cfg.TokenTTL)
	}

	t.Setenv("TOKEN_TTL", "soon")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid TOKEN_TTL")
	}
}

func TestLoadParsesShutdownTimeout(t *testing.T) {
	setRequired(t)
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ShutdownPeriod != 5*time.Second {
		t.Fatalf("expected 5s shutdown period, got %s", cfg.ShutdownPeriod)
	}
}
