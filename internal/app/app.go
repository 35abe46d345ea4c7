package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/sportsdata-go/external/sportsdata"
	"github.com/riskibarqy/sportsdata-go/internal/config"
	"github.com/riskibarqy/sportsdata-go/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/sportsdata-go/internal/platform/logging"
	"github.com/riskibarqy/sportsdata-go/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewSportsDataClient builds the provider client from config. When tracing is
// on, every request runs through an otelhttp transport.
func NewSportsDataClient(cfg config.Config, logger *logging.Logger) (*sportsdata.Client, error) {
	transport := http.DefaultTransport
	if cfg.UptraceEnabled {
		transport = otelhttp.NewTransport(transport,
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return "sportsdata " + r.Method + " " + r.URL.Path
			}),
		)
	}

	return sportsdata.NewClient(sportsdata.ClientConfig{
		HTTPClient: &http.Client{Transport: transport, Timeout: cfg.SportsDataTimeout},
		APIKey:     cfg.SportsDataAPIKey,
		Host:       cfg.SportsDataHost,
		Scheme:     cfg.SportsDataScheme,
		Timeout:    cfg.SportsDataTimeout,
		Logger:     logger,
	})
}

func OpenArchiveDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	if strings.TrimSpace(cfg.DBURL) == "" {
		return nil, fmt.Errorf("%w: DB_URL is empty", usecase.ErrDependencyUnavailable)
	}

	db, err := otelsqlx.Open("postgres", ArchiveDBURL(cfg),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open archive db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping archive db: %w", usecase.ErrDependencyUnavailable, err)
	}
	return db, nil
}

// NewArchiveService wires the archive use case. The returned closer releases
// the database handle when archiving is enabled and is a no-op otherwise.
func NewArchiveService(ctx context.Context, cfg config.Config, client *sportsdata.Client, logger *logging.Logger) (*usecase.ArchiveService, func() error, error) {
	if !cfg.ArchiveEnabled {
		return usecase.NewArchiveService(client, nil, logger), func() error { return nil }, nil
	}

	db, err := OpenArchiveDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	repo := postgres.NewRawPayloadRepository(db)
	return usecase.NewArchiveService(client, repo, logger), db.Close, nil
}
