package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

// DefaultCity is what every caller falls back to when geolocation is
// unavailable or the geocoder cannot be reached.
const DefaultCity = "San Francisco, CA"

type LocationService interface {
	ResolveCity(ctx context.Context, lat, lng float64) string
}

// MapboxLocationClient reverse-geocodes coordinates into a "City, Region"
// display string. Any failure resolves to DefaultCity rather than an error;
// location is cosmetic everywhere it is used.
type MapboxLocationClient struct {
	HTTP        *http.Client
	AccessToken string
}

func NewMapboxLocationClient() *MapboxLocationClient {
	token := os.Getenv("MAPBOX_ACCESS_TOKEN")
	if token == "" {
		panic("MAPBOX_ACCESS_TOKEN is empty")
	}
	return &MapboxLocationClient{
		HTTP:        &http.Client{Timeout: 15 * time.Second},
		AccessToken: token,
	}
}

func (c *MapboxLocationClient) ResolveCity(ctx context.Context, lat, lng float64) string {
	endpoint := fmt.Sprintf(
		"https://api.mapbox.com/geocoding/v5/mapbox.places/%f,%f.json?types=place&access_token=%s",
		lng, lat, url.QueryEscape(c.AccessToken),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return DefaultCity
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return DefaultCity
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return DefaultCity
	}

	var body struct {
		Features []struct {
			Text    string `json:"text"`
			Context []struct {
				ID        string `json:"id"`
				ShortCode string `json:"short_code"`
			} `json:"context"`
		} `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || len(body.Features) == 0 {
		return DefaultCity
	}

	feature := body.Features[0]
	region := ""
	for _, c := range feature.Context {
		if len(c.ID) >= 6 && c.ID[:6] == "region" && c.ShortCode != "" {
			// short_code comes back like "US-CA"
			region = c.ShortCode
			if len(region) > 3 && region[2] == '-' {
				region = region[3:]
			}
			break
		}
	}

	if region == "" {
		return feature.Text
	}
	return fmt.Sprintf("%s, %s", feature.Text, region)
}
