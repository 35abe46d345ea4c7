package config

import (
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/sportsdata-go/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SPORTSDATA_HOST", "")
	t.Setenv("SPORTSDATA_HTTPS", "")
	t.Setenv("SPORTSDATA_TIMEOUT", "")
	t.Setenv("ARCHIVE_ENABLED", "")
	t.Setenv("UPTRACE_ENABLED", "")
	t.Setenv("APP_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SportsDataHost != "api.sportsdata.io" {
		t.Fatalf("unexpected host: %q", cfg.SportsDataHost)
	}
	if cfg.SportsDataScheme != "https" {
		t.Fatalf("unexpected scheme: %q", cfg.SportsDataScheme)
	}
	if cfg.SportsDataTimeout != 100*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.SportsDataTimeout)
	}
	if cfg.ArchiveEnabled {
		t.Fatalf("expected archive disabled by default")
	}
	if cfg.LogLevel != logging.LevelWarn {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
}

func TestLoad_HTTPSToggle(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SPORTSDATA_HTTPS", "false")
	t.Setenv("SPORTSDATA_HOST", "localhost:8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SportsDataScheme != "http" {
		t.Fatalf("expected http scheme, got %q", cfg.SportsDataScheme)
	}
	if cfg.SportsDataHost != "localhost:8080" {
		t.Fatalf("unexpected host: %q", cfg.SportsDataHost)
	}
}

func TestLoad_RejectsHostWithPath(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SPORTSDATA_HOST", "api.sportsdata.io/v3")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "SPORTSDATA_HOST") {
		t.Fatalf("expected SPORTSDATA_HOST error, got %v", err)
	}
}

func TestLoad_RejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SPORTSDATA_TIMEOUT", "0s")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "SPORTSDATA_TIMEOUT") {
		t.Fatalf("expected SPORTSDATA_TIMEOUT error, got %v", err)
	}
}

func TestLoad_ArchiveRequiresDBURL(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ARCHIVE_ENABLED", "true")
	t.Setenv("DB_URL", "")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error when ARCHIVE_ENABLED=true without DB_URL")
	}
	if !strings.Contains(err.Error(), "DB_URL is required when ARCHIVE_ENABLED=true") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "foo=bar, uptrace-dsn='https://token@api.uptrace.dev/1'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}
