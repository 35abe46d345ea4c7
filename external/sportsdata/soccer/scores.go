// Package soccer binds the soccer scores endpoints to typed responses.
package soccer

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

// CompetitionHierarchy returns areas with their competitions, seasons and rounds.
func (c *ScoresClient) CompetitionHierarchy(ctx context.Context) ([]Area, error) {
	return sportsdata.Get[[]Area](ctx, c.api, "/v3/soccer/scores/{format}/CompetitionHierarchy")
}

func (c *ScoresClient) Competitions(ctx context.Context) ([]Competition, error) {
	return sportsdata.Get[[]Competition](ctx, c.api, "/v3/soccer/scores/{format}/Competitions")
}

// CompetitionDetails accepts a competition id or key ("EPL", "1", "MLS").
func (c *ScoresClient) CompetitionDetails(ctx context.Context, competition string) (CompetitionDetail, error) {
	return sportsdata.Get[CompetitionDetail](ctx, c.api, "/v3/soccer/scores/{format}/CompetitionDetails/{competition}",
		sportsdata.P("competition", competition),
	)
}

// GamesByDate takes a date such as "2017-02-27".
func (c *ScoresClient) GamesByDate(ctx context.Context, date string) ([]Game, error) {
	return sportsdata.Get[[]Game](ctx, c.api, "/v3/soccer/scores/{format}/GamesByDate/{date}",
		sportsdata.P("date", date),
	)
}

func (c *ScoresClient) Teams(ctx context.Context) ([]Team, error) {
	return sportsdata.Get[[]Team](ctx, c.api, "/v3/soccer/scores/{format}/Teams")
}

func (c *ScoresClient) Standings(ctx context.Context, roundID int) ([]Standing, error) {
	return sportsdata.Get[[]Standing](ctx, c.api, "/v3/soccer/scores/{format}/Standings/{roundid}",
		sportsdata.P("roundid", roundID),
	)
}
