package game_stats_client

import (
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"

	"github.com/mcdev12/gamestats/go/clients"
)

// Option configures a Client during construction.
type Option func(*Client) error

// WithHTTPClient replaces the keep-alive http.Client used by default.
func WithHTTPClient(doer clients.Doer) Option {
	return func(c *Client) error {
		if doer == nil {
			return errors.New("http client should be non-nil")
		}
		c.SetHTTPClient(doer)
		return nil
	}
}

// WithDiagnostics installs the sink that receives failure traces.
func WithDiagnostics(d Diagnostics) Option {
	return func(c *Client) error {
		if d == nil {
			d = NoOpDiagnostics{}
		}
		c.diagnostics = d
		return nil
	}
}

func WithMetrics(m MetricsCollector) Option {
	return func(c *Client) error {
		if m == nil {
			return errors.New("metrics collector should be non-nil")
		}
		c.metrics = m
		return nil
	}
}

// WithClock sets the clock used to time requests. Tests pass a clockwork.FakeClock.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Client) error {
		if clock == nil {
			return errors.New("clock should be non-nil")
		}
		c.clock = clock
		return nil
	}
}

// WithRateLimit makes every request wait for a token before it is sent.
// Waiting honours the request context; no request is ever retried.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) error {
		if limit <= 0 {
			return fmt.Errorf("rate limit must be > 0, got %v", limit)
		}
		if burst < 1 {
			return fmt.Errorf("rate limit burst must be >= 1, got %d", burst)
		}
		c.limiter = rate.NewLimiter(limit, burst)
		return nil
	}
}
