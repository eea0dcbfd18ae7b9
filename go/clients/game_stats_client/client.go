package game_stats_client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"

	"github.com/mcdev12/gamestats/go/clients"
)

// Options are the user-facing settings accepted by NewGameStatsClient and
// Configure. Zero-valued fields leave the current setting untouched.
type Options struct {
	APIKey  string
	BaseURL string
	Version clients.APIVersion
}

// Config is the configuration a Client issues requests with.
type Config struct {
	APIKey  string
	BaseURL string
	Version clients.APIVersion
}

// Client issues requests against the endpoint table and normalizes the
// platform envelope. It holds no state between calls beyond its Config and
// is safe for concurrent use, except that Configure must not race with
// in-flight requests.
type Client struct {
	*clients.BaseClient
	config      Config
	diagnostics Diagnostics
	metrics     MetricsCollector
	clock       clockwork.Clock
	limiter     *rate.Limiter
}

func NewGameStatsClient(opts Options, options ...Option) (*Client, error) {
	client := &Client{
		BaseClient: clients.NewBaseClient(nil),
		config: Config{
			BaseURL: BaseURL,
			Version: clients.DefaultAPIVersion,
		},
		diagnostics: NoOpDiagnostics{},
		metrics:     &NoOpMetricsCollector{},
		clock:       clockwork.NewRealClock(),
	}

	client.SetHeader(UserAgentHeader, UserAgent)
	client.SetHeader(RequestedWithHeader, RequestedWithValue)
	client.SetHeader(AcceptLanguageHeader, AcceptLanguage)
	client.SetHeader(ConnectionHeader, KeepAlive)

	for _, opt := range options {
		if err := opt(client); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	client.Configure(opts)
	return client, nil
}

// Configure replaces the client configuration with opts merged over the
// current one. Empty fields keep their prior value and an unknown version
// is ignored. Calling Configure while requests are in flight is unsupported.
func (c *Client) Configure(opts Options) {
	next := c.config

	if opts.APIKey != "" {
		next.APIKey = opts.APIKey
	}
	if opts.BaseURL != "" {
		next.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	}
	if opts.Version != "" {
		if clients.ValidateAPIVersion(opts.Version) {
			next.Version = opts.Version
		} else {
			c.diagnostics.Trace("ignoring unknown api version", map[string]any{
				"version": string(opts.Version),
				"current": string(next.Version),
			})
		}
	}

	c.config = next
}

// Config returns the active configuration.
func (c *Client) Config() Config {
	return c.config
}

// ResolvePath returns the absolute URL a request for endpoint would be sent to.
func (c *Client) ResolvePath(endpoint string, params Params) (string, error) {
	return c.resolveURL(c.config, endpoint, params)
}

func (c *Client) resolveURL(cfg Config, endpoint string, params Params) (string, error) {
	pathRoot, _ := clients.APIPathRoot(cfg.Version)
	path, err := resolvePath(endpoint, pathRoot, params)
	if err != nil {
		return "", err
	}
	return cfg.BaseURL + path, nil
}

func (c *Client) execute(ctx context.Context, cfg Config, url string) (*clients.Response, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingCredential
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	header := make(http.Header)
	header.Set(APIKeyHeader, cfg.APIKey)

	return c.Get(ctx, url, header)
}

// Request resolves endpoint with params, performs the GET and returns the
// envelope's Response payload. A nil payload with a nil error means the
// platform answered with a 404 or a no-data code. Every failure is an
// *AdapterError matching ErrAdapter.
func (c *Client) Request(ctx context.Context, endpoint string, params Params) (json.RawMessage, error) {
	cfg := c.config
	requestID := uuid.NewString()
	start := c.clock.Now()

	payload, err := c.request(ctx, cfg, endpoint, params)

	outcome := OutcomeSuccess
	switch {
	case err != nil:
		outcome = OutcomeError
	case payload == nil:
		outcome = OutcomeEmpty
	}
	c.metrics.RecordRequest(metricEndpointLabel(endpoint), outcome, c.clock.Since(start))

	if err != nil {
		return nil, c.fail(requestID, endpoint, err)
	}
	return payload, nil
}

func (c *Client) request(ctx context.Context, cfg Config, endpoint string, params Params) (json.RawMessage, error) {
	url, err := c.resolveURL(cfg, endpoint, params)
	if err != nil {
		return nil, err
	}

	resp, err := c.execute(ctx, cfg, url)
	if err != nil {
		return nil, err
	}

	return normalizeResponse(resp.StatusCode, resp.Body)
}

// RequestInto decodes the payload of Request into out. It reports false with
// a nil error for the logical empty result.
func (c *Client) RequestInto(ctx context.Context, endpoint string, params Params, out any) (bool, error) {
	payload, err := c.Request(ctx, endpoint, params)
	if err != nil {
		return false, err
	}
	if payload == nil {
		return false, nil
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return false, c.fail(uuid.NewString(), endpoint, &MalformedResponseError{Body: string(payload), Err: err})
	}
	return true, nil
}

func (c *Client) fail(requestID, endpoint string, err error) *AdapterError {
	adapterErr := newAdapterError(err)
	c.diagnostics.Trace("request failed", map[string]any{
		"request_id": requestID,
		"endpoint":   endpoint,
		"kind":       string(adapterErr.Kind),
		"code":       adapterErr.Code,
		"error":      adapterErr.Message,
	})
	return adapterErr
}
