package clients

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errDoer struct{}

func (errDoer) Do(*http.Request) (*http.Response, error) { return nil, errors.New("boom") }

func TestBaseClient_GetReturnsAnyStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "static", r.Header.Get("X-Static"))
		assert.Equal(t, "per-request", r.Header.Get("X-Dynamic"))
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, "maintenance")
	}))
	defer srv.Close()

	client := NewBaseClient(srv.Client())
	client.SetHeader("X-Static", "static")

	header := make(http.Header)
	header.Set("X-Dynamic", "per-request")
	resp, err := client.Get(context.Background(), srv.URL+"/x", header)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "maintenance", string(resp.Body))
}

func TestBaseClient_TransportError(t *testing.T) {
	client := NewBaseClient(errDoer{})

	_, err := client.Get(context.Background(), "http://stats.invalid/", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to make request")
}

func TestBaseClient_InvalidURL(t *testing.T) {
	client := NewBaseClient(errDoer{})

	_, err := client.Get(context.Background(), "://bad", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create request")
}

func TestNewKeepAliveHTTPClient(t *testing.T) {
	client := NewKeepAliveHTTPClient()

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.False(t, transport.DisableKeepAlives)
	assert.Positive(t, transport.MaxIdleConnsPerHost)
	assert.Zero(t, client.Timeout)
}

func TestNewBaseClient_DefaultsToKeepAliveClient(t *testing.T) {
	client := NewBaseClient(nil)

	httpClient, ok := client.client.(*http.Client)
	require.True(t, ok)
	assert.IsType(t, &http.Transport{}, httpClient.Transport)
}
