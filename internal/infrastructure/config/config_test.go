package config_test

import (
	"testing"
	"time"

	"github.com/uctoportal/backend/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LEGACY_EXPORT_DIR", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL == "" {
		t.Fatalf("expected default database URL to be set")
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.StatementCacheTTL != 15*time.Minute {
		t.Fatalf("expected default statement cache TTL 15m, got %s", cfg.StatementCacheTTL)
	}

	if cfg.SyncInterval != 0 {
		t.Fatalf("expected sync worker disabled by default, got %s", cfg.SyncInterval)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_TIMEOUT", "45s")
	t.Setenv("LEGACY_EXPORT_DIR", "/mnt/exports")
	t.Setenv("STATEMENT_CACHE_TTL", "5m")
	t.Setenv("SYNC_INTERVAL", "1h")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL != "postgres://example" {
		t.Fatalf("expected custom database URL, got %s", cfg.DatabaseURL)
	}

	if cfg.RedisURL != "redis://example" {
		t.Fatalf("expected custom redis URL, got %s", cfg.RedisURL)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}

	if cfg.DatabaseTimeout != 45*time.Second {
		t.Fatalf("expected database timeout override, got %s", cfg.DatabaseTimeout)
	}

	if cfg.LegacyExportDir != "/mnt/exports" {
		t.Fatalf("expected export dir override, got %s", cfg.LegacyExportDir)
	}

	if cfg.StatementCacheTTL != 5*time.Minute || cfg.SyncInterval != time.Hour {
		t.Fatalf("expected TTL and sync overrides, got %s / %s", cfg.StatementCacheTTL, cfg.SyncInterval)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}
