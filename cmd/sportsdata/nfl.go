package main

import (
	"github.com/riskibarqy/sportsdata-go/external/sportsdata/nfl"
	"github.com/spf13/cobra"
)

func newNFLCmd(state *cliState) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "nfl",
		Short: "NFL scores endpoints",
	}
	cmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "indent the decoded response")

	var week int
	scores := &cobra.Command{
		Use:     "scores <season>",
		Short:   "Game scores for a season, or one week of it with --week",
		Example: "  sportsdata nfl scores 2023REG --week 4",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := nfl.NewScoresClient(state.client)
			if week > 0 {
				out, err := client.ScoresByWeek(cmd.Context(), args[0], week)
				if err != nil {
					return err
				}
				return writeJSON(state.stdout, out, pretty)
			}
			out, err := client.Scores(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(state.stdout, out, pretty)
		},
	}
	scores.Flags().IntVar(&week, "week", 0, "restrict to one week")

	teams := &cobra.Command{
		Use:   "teams [season]",
		Short: "Active teams, or the teams of a season",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := nfl.NewScoresClient(state.client)
			if len(args) == 1 {
				out, err := client.TeamsBySeason(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return writeJSON(state.stdout, out, pretty)
			}
			out, err := client.Teams(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(state.stdout, out, pretty)
		},
	}

	byes := &cobra.Command{
		Use:   "byes <season>",
		Short: "Bye weeks for a season",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := nfl.NewScoresClient(state.client).Byes(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(state.stdout, out, pretty)
		},
	}

	cmd.AddCommand(scores, teams, byes)
	return cmd
}
