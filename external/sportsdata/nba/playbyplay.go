// Package nba binds the NBA play-by-play endpoints to typed responses.
package nba

import (
	"context"

	"github.com/riskibarqy/sportsdata-go/external/sportsdata"
)

type PlayByPlayClient struct {
	api *sportsdata.Client
}

func NewPlayByPlayClient(api *sportsdata.Client) *PlayByPlayClient {
	return &PlayByPlayClient{api: api}
}

// PlayByPlay returns the full feed for one game.
func (c *PlayByPlayClient) PlayByPlay(ctx context.Context, gameID int) (PlayByPlay, error) {
	return sportsdata.Get[PlayByPlay](ctx, c.api, "/v3/nba/pbp/{format}/PlayByPlay/{gameid}",
		sportsdata.P("gameid", gameID),
	)
}

// PlayByPlayDelta returns games on date (e.g. "2024-JAN-05") with plays from
// the last minutes minutes; minutes may be "all".
func (c *PlayByPlayClient) PlayByPlayDelta(ctx context.Context, date, minutes string) ([]PlayByPlay, error) {
	return sportsdata.Get[[]PlayByPlay](ctx, c.api, "/v3/nba/pbp/{format}/PlayByPlayDelta/{date}/{minutes}",
		sportsdata.P("date", date),
		sportsdata.P("minutes", minutes),
	)
}

// PlayByPlayDeltaRaw is PlayByPlayDelta plus the body it was decoded from.
func (c *PlayByPlayClient) PlayByPlayDeltaRaw(ctx context.Context, date, minutes string) ([]PlayByPlay, string, error) {
	return sportsdata.GetWithRaw[[]PlayByPlay](ctx, c.api, "/v3/nba/pbp/{format}/PlayByPlayDelta/{date}/{minutes}",
		sportsdata.P("date", date),
		sportsdata.P("minutes", minutes),
	)
}
