package sportsdata

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
	"time"

	"github.com/riskibarqy/sportsdata-go/internal/domain/rawdata"
)

const payloadSource = "sportsdata"

// FetchPayload decodes the endpoint response into a generic value and wraps
// the raw body as an archive payload keyed by the resolved path.
func (c *Client) FetchPayload(ctx context.Context, template string, params ...Param) (any, rawdata.Payload, error) {
	value, raw, err := GetWithRaw[any](ctx, c, template, params...)
	if err != nil {
		return nil, rawdata.Payload{}, err
	}
	return value, buildAPIPayload(template, c.ResolveURL(template, params...), raw, time.Now().UTC()), nil
}

func buildAPIPayload(template, resolvedURL, raw string, fetchedAt time.Time) rawdata.Payload {
	sum := sha256.Sum256([]byte(raw))
	return rawdata.Payload{
		Source:      payloadSource,
		EntityType:  strings.ToLower(strings.TrimSpace(template)),
		EntityKey:   entityKeyFromURL(resolvedURL),
		PayloadJSON: raw,
		PayloadHash: hex.EncodeToString(sum[:]),
		FetchedAt:   fetchedAt,
	}
}

// entityKeyFromURL drops scheme and host so the key survives host overrides.
func entityKeyFromURL(resolvedURL string) string {
	parsed, err := url.Parse(resolvedURL)
	if err != nil || parsed == nil {
		return resolvedURL
	}
	return parsed.RequestURI()
}
