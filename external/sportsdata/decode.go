package sportsdata

import (
	"context"
	"reflect"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Get calls the endpoint and decodes the body into T.
func Get[T any](ctx context.Context, c *Client, template string, params ...Param) (T, error) {
	var zero T
	raw, err := c.fetch(ctx, template, params)
	if err != nil {
		return zero, err
	}
	return decode[T](raw)
}

// GetWithRaw is Get that also returns the body text the value was decoded from.
func GetWithRaw[T any](ctx context.Context, c *Client, template string, params ...Param) (T, string, error) {
	var zero T
	raw, err := c.fetch(ctx, template, params)
	if err != nil {
		return zero, "", err
	}
	out, err := decode[T](raw)
	if err != nil {
		return zero, "", err
	}
	return out, string(raw), nil
}

func decode[T any](raw []byte) (T, error) {
	var out T
	if err := sonic.Unmarshal(raw, &out); err != nil {
		var zero T
		return zero, &DecodeError{
			Target: reflect.TypeOf((*T)(nil)).Elem().String(),
			Body:   string(raw),
			Err:    err,
		}
	}
	return out, nil
}

func (c *Client) fetch(ctx context.Context, template string, params []Param) ([]byte, error) {
	if c == nil {
		return nil, crerr.New("sportsdata: nil client")
	}

	fullURL := c.ResolveURL(template, params...)
	if missing := unresolvedPlaceholders(fullURL); len(missing) > 0 {
		c.logger.DebugContext(ctx, "sportsdata url has unresolved placeholders", "template", template, "placeholders", missing)
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("sportsdata.template", template),
			attribute.String("sportsdata.url", fullURL),
		)
	}

	started := time.Now()
	resp, err := c.invoke(ctx, fullURL)
	if err != nil {
		c.logger.WarnContext(ctx, "sportsdata request failed", "url", fullURL, "error", err)
		return nil, crerr.Wrapf(err, "sportsdata: get %s", fullURL)
	}
	c.logger.DebugContext(ctx, "sportsdata response",
		"url", fullURL,
		"status", resp.statusCode,
		"bytes", len(resp.body),
		"duration", time.Since(started),
	)
	if span.IsRecording() {
		span.SetAttributes(attribute.Int("sportsdata.status_code", resp.statusCode))
	}

	raw, err := classify(resp)
	if err != nil {
		c.logger.WarnContext(ctx, "sportsdata request rejected", "url", fullURL, "status", resp.statusCode, "reason", resp.reason)
		return nil, err
	}
	return raw, nil
}
