// Package nfl binds the NFL scores endpoints to typed responses.
package nfl

import (
	"context"

	"github.com/riskibarqy/sportsdata-go/external/sportsdata"
)

type ScoresClient struct {
	api *sportsdata.Client
}

func NewScoresClient(api *sportsdata.Client) *ScoresClient {
	return &ScoresClient{api: api}
}

func (c *ScoresClient) AreAnyGamesInProgress(ctx context.Context) (bool, error) {
	return sportsdata.Get[bool](ctx, c.api, "/v3/nfl/scores/{format}/AreAnyGamesInProgress")
}

// Byes lists bye weeks. season is e.g. "2023", "2023REG", "2023PRE".
func (c *ScoresClient) Byes(ctx context.Context, season string) ([]Bye, error) {
	return sportsdata.Get[[]Bye](ctx, c.api, "/v3/nfl/scores/{format}/Byes/{season}",
		sportsdata.P("season", season),
	)
}

// CurrentSeason returns nil outside of any season.
func (c *ScoresClient) CurrentSeason(ctx context.Context) (*int, error) {
	return sportsdata.Get[*int](ctx, c.api, "/v3/nfl/scores/{format}/CurrentSeason")
}

func (c *ScoresClient) CurrentWeek(ctx context.Context) (*int, error) {
	return sportsdata.Get[*int](ctx, c.api, "/v3/nfl/scores/{format}/CurrentWeek")
}

func (c *ScoresClient) Scores(ctx context.Context, season string) ([]Score, error) {
	return sportsdata.Get[[]Score](ctx, c.api, "/v3/nfl/scores/{format}/Scores/{season}",
		sportsdata.P("season", season),
	)
}

func (c *ScoresClient) ScoresByWeek(ctx context.Context, season string, week int) ([]Score, error) {
	return sportsdata.Get[[]Score](ctx, c.api, "/v3/nfl/scores/{format}/ScoresByWeek/{season}/{week}",
		sportsdata.P("season", season),
		sportsdata.P("week", week),
	)
}

func (c *ScoresClient) Schedules(ctx context.Context, season string) ([]Schedule, error) {
	return sportsdata.Get[[]Schedule](ctx, c.api, "/v3/nfl/scores/{format}/Schedules/{season}",
		sportsdata.P("season", season),
	)
}

func (c *ScoresClient) Standings(ctx context.Context, season string) ([]Standing, error) {
	return sportsdata.Get[[]Standing](ctx, c.api, "/v3/nfl/scores/{format}/Standings/{season}",
		sportsdata.P("season", season),
	)
}

func (c *ScoresClient) Stadiums(ctx context.Context) ([]Stadium, error) {
	return sportsdata.Get[[]Stadium](ctx, c.api, "/v3/nfl/scores/{format}/Stadiums")
}

// Teams returns the active teams.
func (c *ScoresClient) Teams(ctx context.Context) ([]Team, error) {
	return sportsdata.Get[[]Team](ctx, c.api, "/v3/nfl/scores/{format}/Teams")
}

func (c *ScoresClient) TeamsBySeason(ctx context.Context, season string) ([]Team, error) {
	return sportsdata.Get[[]Team](ctx, c.api, "/v3/nfl/scores/{format}/Teams/{season}",
		sportsdata.P("season", season),
	)
}

// Timeframes accepts "current", "upcoming", "completed", "recent" or "all".
func (c *ScoresClient) Timeframes(ctx context.Context, kind string) ([]Timeframe, error) {
	return sportsdata.Get[[]Timeframe](ctx, c.api, "/v3/nfl/scores/{format}/Timeframes/{type}",
		sportsdata.P("type", kind),
	)
}

func (c *ScoresClient) NewsByTeam(ctx context.Context, team string) ([]News, error) {
	return sportsdata.Get[[]News](ctx, c.api, "/v3/nfl/scores/{format}/NewsByTeam/{team}",
		sportsdata.P("team", team),
	)
}

func (c *ScoresClient) Player(ctx context.Context, playerID int) (PlayerDetail, error) {
	return sportsdata.Get[PlayerDetail](ctx, c.api, "/v3/nfl/scores/{format}/Player/{playerid}",
		sportsdata.P("playerid", playerID),
	)
}
