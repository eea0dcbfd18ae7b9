package clients

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Response is the raw outcome of a round trip. Status handling is left to the caller.
type Response struct {
	StatusCode int
	Body       []byte
}

type BaseClient struct {
	client  Doer
	headers map[string]string
}

func NewBaseClient(client Doer) *BaseClient {
	if client == nil {
		client = NewKeepAliveHTTPClient()
	}
	return &BaseClient{
		client:  client,
		headers: make(map[string]string),
	}
}

// NewKeepAliveHTTPClient returns an http.Client whose transport keeps
// connections alive and pools idle ones per host. No client timeout is set;
// callers bound requests through their context.
func NewKeepAliveHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableKeepAlives = false
	transport.MaxIdleConns = 100
	transport.MaxIdleConnsPerHost = 10
	transport.IdleConnTimeout = 90 * time.Second

	return &http.Client{Transport: transport}
}

// SetHeader registers a header sent with every request. Not safe to call
// while requests are in flight.
func (c *BaseClient) SetHeader(key, value string) {
	c.headers[key] = value
}

func (c *BaseClient) SetHTTPClient(client Doer) {
	c.client = client
}

// MakeRequest sends the request with the static headers plus the given
// per-request headers, and returns the status and body whatever the status is.
func (c *BaseClient) MakeRequest(ctx context.Context, method, url string, header http.Header, body io.Reader) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range c.headers {
		req.Header.Set(key, value)
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: responseBody}, nil
}

func (c *BaseClient) Get(ctx context.Context, url string, header http.Header) (*Response, error) {
	return c.MakeRequest(ctx, http.MethodGet, url, header, nil)
}
