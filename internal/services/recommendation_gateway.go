package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"retreatly/internal/models/response_models"
)

// RemoteError wraps any failure from the hosted recommendation function so
// callers can tell it apart from local errors and route to the fallback.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("recommendation function: %s", e.Message)
}

type RecommendationGateway interface {
	FetchRecommendations(ctx context.Context, location string, interests []string, start time.Time, end *time.Time) ([]response_models.RetreatRecommendation, error)
}

// HostedRecommendationGateway calls the hosted recommendation function once
// per request. No retry here; backoff is a caller concern and the designated
// fallback path makes retries unnecessary in practice.
type HostedRecommendationGateway struct {
	HTTP     *http.Client
	Endpoint string
}

func NewHostedRecommendationGateway() *HostedRecommendationGateway {
	endpoint := os.Getenv("RECOMMENDER_FN_URL")
	if endpoint == "" {
		panic("RECOMMENDER_FN_URL is empty")
	}
	return &HostedRecommendationGateway{
		HTTP:     &http.Client{Timeout: 15 * time.Second},
		Endpoint: endpoint,
	}
}

type recommendationFnRequest struct {
	Location      string   `json:"location"`
	Interests     []string `json:"interests"`
	StartDatetime string   `json:"startDatetime"`
	EndDatetime   string   `json:"endDatetime,omitempty"`
}

func (g *HostedRecommendationGateway) FetchRecommendations(
	ctx context.Context,
	location string,
	interests []string,
	start time.Time,
	end *time.Time,
) ([]response_models.RetreatRecommendation, error) {

	body := recommendationFnRequest{
		Location:      location,
		Interests:     interests,
		StartDatetime: start.Format(time.RFC3339),
	}
	if end != nil {
		body.EndDatetime = end.Format(time.RFC3339)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &RemoteError{Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &RemoteError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.HTTP.Do(req)
	if err != nil {
		return nil, &RemoteError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		var errBody struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if errBody.Message == "" {
			errBody.Message = resp.Status
		}
		return nil, &RemoteError{Message: errBody.Message}
	}

	var result struct {
		Recommendations []response_models.RetreatRecommendation `json:"recommendations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &RemoteError{Message: fmt.Sprintf("decode: %v", err)}
	}

	return result.Recommendations, nil
}
