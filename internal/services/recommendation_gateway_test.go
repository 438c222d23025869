package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(url string) *HostedRecommendationGateway {
	return &HostedRecommendationGateway{
		HTTP:     &http.Client{Timeout: 5 * time.Second},
		Endpoint: url,
	}
}

func TestHostedRecommendationGateway_FetchRecommendations(t *testing.T) {
	t.Run("posts the expected payload and decodes the response", func(t *testing.T) {
		var captured map[string]interface{}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"recommendations":[{"retreat_id":"r-9","title":"Coastal Reset","match_score":0.82,"reason":"matches your interests"}]}`))
		}))
		defer server.Close()

		gateway := newTestGateway(server.URL)

		start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
		recs, err := gateway.FetchRecommendations(context.Background(), "Portland, OR", []string{"yoga", "nature"}, start, nil)

		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "r-9", recs[0].RetreatID)
		assert.Equal(t, 0.82, recs[0].MatchScore)

		assert.Equal(t, "Portland, OR", captured["location"])
		assert.Equal(t, []interface{}{"yoga", "nature"}, captured["interests"])
		assert.Equal(t, "2026-09-01T10:00:00Z", captured["startDatetime"])
		_, hasEnd := captured["endDatetime"]
		assert.False(t, hasEnd)
	})

	t.Run("includes the end datetime when given", func(t *testing.T) {
		var captured map[string]interface{}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			_, _ = w.Write([]byte(`{"recommendations":[]}`))
		}))
		defer server.Close()

		gateway := newTestGateway(server.URL)

		start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, 3)
		_, err := gateway.FetchRecommendations(context.Background(), "Austin, TX", nil, start, &end)

		require.NoError(t, err)
		assert.Equal(t, "2026-09-04T10:00:00Z", captured["endDatetime"])
	})

	t.Run("non-2xx becomes a RemoteError with the server message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"message":"model overloaded"}`))
		}))
		defer server.Close()

		gateway := newTestGateway(server.URL)

		recs, err := gateway.FetchRecommendations(context.Background(), "Denver, CO", nil, time.Now(), nil)

		require.Nil(t, recs)
		var remoteErr *RemoteError
		require.ErrorAs(t, err, &remoteErr)
		assert.Equal(t, "model overloaded", remoteErr.Message)
	})

	t.Run("transport failure becomes a RemoteError", func(t *testing.T) {
		gateway := newTestGateway("http://127.0.0.1:1")

		_, err := gateway.FetchRecommendations(context.Background(), "Denver, CO", nil, time.Now(), nil)

		var remoteErr *RemoteError
		require.ErrorAs(t, err, &remoteErr)
	})

	t.Run("malformed body becomes a RemoteError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		gateway := newTestGateway(server.URL)

		_, err := gateway.FetchRecommendations(context.Background(), "Denver, CO", nil, time.Now(), nil)

		var remoteErr *RemoteError
		require.ErrorAs(t, err, &remoteErr)
	})
}
