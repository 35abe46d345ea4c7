package observability

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/riskibarqy/sportsdata-go/internal/config"
	"github.com/riskibarqy/sportsdata-go/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "sportsdata-cli",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EnabledWithoutDSNWarns(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Config{
		UptraceEnabled: true,
		ServiceName:    "sportsdata-cli",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.New(&buf, logging.LevelDebug))
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
	if !strings.Contains(buf.String(), "UPTRACE_DSN empty") {
		t.Fatalf("expected warning about empty dsn, got %q", buf.String())
	}
}
