package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// rewriteTransport points every request at the test server regardless of the
// host the client built into the URL.
type rewriteTransport struct {
	host string
}

func (t rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.host
	return http.DefaultTransport.RoundTrip(req)
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func mapboxClientFor(server *httptest.Server) *MapboxLocationClient {
	return &MapboxLocationClient{
		HTTP: &http.Client{
			Timeout:   5 * time.Second,
			Transport: rewriteTransport{host: server.Listener.Addr().String()},
		},
		AccessToken: "test-token",
	}
}

func TestMapboxLocationClient_ResolveCity(t *testing.T) {
	t.Run("builds City, ST from the first place feature", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{
				"features": [{
					"text": "Portland",
					"context": [
						{"id": "district.123", "short_code": ""},
						{"id": "region.456", "short_code": "US-OR"},
						{"id": "country.789", "short_code": "us"}
					]
				}]
			}`))
		}))
		defer server.Close()

		city := mapboxClientFor(server).ResolveCity(context.Background(), 45.52, -122.67)

		assert.Equal(t, "Portland, OR", city)
	})

	t.Run("place with no region keeps just the name", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"features": [{"text": "Reykjavik", "context": []}]}`))
		}))
		defer server.Close()

		city := mapboxClientFor(server).ResolveCity(context.Background(), 64.14, -21.9)

		assert.Equal(t, "Reykjavik", city)
	})

	t.Run("unreachable geocoder falls back to the default city", func(t *testing.T) {
		client := &MapboxLocationClient{
			HTTP:        &http.Client{Timeout: time.Second, Transport: failingTransport{}},
			AccessToken: "test-token",
		}

		city := client.ResolveCity(context.Background(), 45.52, -122.67)

		assert.Equal(t, DefaultCity, city)
	})

	t.Run("non-200 falls back to the default city", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		assert.Equal(t, DefaultCity, mapboxClientFor(server).ResolveCity(context.Background(), 45.52, -122.67))
	})

	t.Run("empty feature list falls back to the default city", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"features": []}`))
		}))
		defer server.Close()

		assert.Equal(t, DefaultCity, mapboxClientFor(server).ResolveCity(context.Background(), 0, 0))
	})
}
