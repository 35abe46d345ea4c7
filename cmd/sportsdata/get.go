package main

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/sportsdata-go/external/sportsdata"
	"github.com/riskibarqy/sportsdata-go/internal/app"
	"github.com/spf13/cobra"
)

func newGetCmd(state *cliState) *cobra.Command {
	var (
		raw     bool
		pretty  bool
		archive bool
	)

	cmd := &cobra.Command{
		Use:   "get <template> [name=value...]",
		Short: "Call any endpoint by path template",
		Example: `  sportsdata get '/v3/nfl/scores/{format}/Teams/{season}' season=2023REG
  sportsdata get '/v3/nba/pbp/{format}/PlayByPlay/{gameid}' gameid=20442 --pretty`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			template := args[0]

			if archive {
				cfg := state.cfg
				cfg.ArchiveEnabled = true
				if err := cfg.Validate(); err != nil {
					return err
				}
				service, closeDB, err := app.NewArchiveService(ctx, cfg, state.client, state.logger)
				if err != nil {
					return err
				}
				defer func() { _ = closeDB() }()

				result, err := service.Fetch(ctx, template, params...)
				if err != nil {
					return err
				}
				state.logger.Info("payload archived", "entity_key", result.Payload.EntityKey, "hash", result.Payload.PayloadHash)
				return writeResult(state.stdout, result.Value, result.Payload.PayloadJSON, raw, pretty)
			}

			value, body, err := sportsdata.GetWithRaw[any](ctx, state.client, template, params...)
			if err != nil {
				return err
			}
			return writeResult(state.stdout, value, body, raw, pretty)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the response body exactly as received")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the decoded response")
	cmd.Flags().BoolVar(&archive, "archive", false, "store the raw response in the archive database (needs DB_URL)")
	cmd.MarkFlagsMutuallyExclusive("raw", "pretty")
	return cmd
}

// parseParams turns name=value arguments into an ordered parameter list.
func parseParams(args []string) ([]sportsdata.Param, error) {
	params := make([]sportsdata.Param, 0, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid parameter %q: expected name=value", arg)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("invalid parameter %q: name is empty", arg)
		}
		params = append(params, sportsdata.P(name, value))
	}
	return params, nil
}
