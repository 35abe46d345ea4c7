package sportsdata

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

type response struct {
	statusCode int
	reason     string
	header     http.Header
	body       []byte
}

// invoke performs exactly one GET. Redirects follow the http.Client policy.
func (c *Client) invoke(ctx context.Context, fullURL string) (response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return response{}, crerr.Wrap(err, "build request")
	}
	req.Header.Set(SubscriptionKeyHeader, c.credential)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response{}, crerr.Wrap(err, "send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return response{}, crerr.Wrapf(err, "read response body status=%d", resp.StatusCode)
	}

	return response{
		statusCode: resp.StatusCode,
		reason:     reasonPhrase(resp),
		header:     resp.Header,
		body:       body,
	}, nil
}

func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}
