// Package sportsdata is the request pipeline shared by every SportsData.io
// endpoint: it resolves a path template against ordered parameters, issues an
// authenticated GET, turns non-2xx responses into *APIError and decodes the
// body into the caller's type.
package sportsdata

import (
	"net/http"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/riskibarqy/sportsdata-go/internal/platform/logging"
)

const (
	DefaultHost   = "api.sportsdata.io"
	DefaultScheme = "https"

	// SubscriptionKeyHeader carries the credential on every request.
	SubscriptionKeyHeader = "Ocp-Apim-Subscription-Key"

	// Matches the stock HTTP client timeout of the provider's reference SDK.
	defaultTimeout = 100 * time.Second
)

type ClientConfig struct {
	HTTPClient *http.Client
	APIKey     string
	Host       string
	Scheme     string
	Timeout    time.Duration
	Logger     *logging.Logger
}

// Client is immutable after NewClient and safe for concurrent use.
type Client struct {
	httpClient *http.Client
	scheme     string
	host       string
	credential string
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) (*Client, error) {
	credential := normalizeCredential(cfg.APIKey)
	if credential == "" {
		return nil, crerr.New("sportsdata: api key is required")
	}

	scheme := strings.ToLower(strings.TrimSpace(cfg.Scheme))
	switch scheme {
	case "":
		scheme = DefaultScheme
	case "http", "https":
	default:
		return nil, crerr.Newf("sportsdata: unsupported scheme %q; expected http or https", cfg.Scheme)
	}

	host := strings.TrimRight(strings.TrimSpace(cfg.Host), "/")
	if host == "" {
		host = DefaultHost
	}
	if strings.ContainsAny(host, "/?#") {
		return nil, crerr.Newf("sportsdata: host %q must not contain a scheme, path or query", cfg.Host)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := &http.Client{Timeout: timeout}
	if cfg.HTTPClient != nil {
		clone := *cfg.HTTPClient
		if clone.Timeout <= 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	}

	return &Client{
		httpClient: httpClient,
		scheme:     scheme,
		host:       host,
		credential: credential,
		logger:     logger,
	}, nil
}

// NewClientForKeyID builds a client whose credential is the given key identifier.
func NewClientForKeyID(id uuid.UUID, cfg ClientConfig) (*Client, error) {
	if id == uuid.Nil {
		return nil, crerr.New("sportsdata: api key id is required")
	}
	cfg.APIKey = id.String()
	return NewClient(cfg)
}

func normalizeCredential(raw string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), "-", ""))
}
