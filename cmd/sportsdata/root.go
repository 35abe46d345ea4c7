package main

import (
	"context"
	"io"
	"time"

	"github.com/riskibarqy/sportsdata-go/external/sportsdata"
	"github.com/riskibarqy/sportsdata-go/internal/app"
	"github.com/riskibarqy/sportsdata-go/internal/config"
	"github.com/riskibarqy/sportsdata-go/internal/observability"
	"github.com/riskibarqy/sportsdata-go/internal/platform/id"
	"github.com/riskibarqy/sportsdata-go/internal/platform/logging"
	"github.com/spf13/cobra"
)

// cliState carries what PersistentPreRunE builds to the subcommands.
type cliState struct {
	stdout io.Writer
	stderr io.Writer

	cfg      config.Config
	logger   *logging.Logger
	client   *sportsdata.Client
	shutdown func(context.Context) error
}

func (s *cliState) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	s.cfg = cfg

	runID, err := id.NewUUIDGenerator().NewID()
	if err != nil {
		return err
	}
	s.logger = logging.New(s.stderr, cfg.LogLevel).With("service", cfg.ServiceName, "env", cfg.AppEnv, "run_id", runID)
	logging.SetDefault(s.logger)

	s.shutdown, err = observability.InitUptrace(cfg, s.logger)
	if err != nil {
		return err
	}

	s.client, err = app.NewSportsDataClient(cfg, s.logger)
	return err
}

func (s *cliState) close() {
	if s.shutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.shutdown(ctx); err != nil && s.logger != nil {
			s.logger.Warn("shutdown tracing failed", "error", err)
		}
	}
	if s.logger != nil {
		_ = s.logger.Sync()
	}
}

// Commands that run without config or a provider client.
var skipSetup = map[string]bool{
	"version":    true,
	"help":       true,
	"completion": true,
}

func newRootCmd(state *cliState) *cobra.Command {
	root := &cobra.Command{
		Use:           "sportsdata",
		Short:         "Query SportsData.io endpoints from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if skipSetup[cmd.Name()] {
				return nil
			}
			return state.setup()
		},
	}

	root.AddCommand(
		newGetCmd(state),
		newNFLCmd(state),
		newVersionCmd(state),
	)
	return root
}

func newVersionCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(state.stdout, "sportsdata "+version+"\n")
			return err
		},
	}
}
