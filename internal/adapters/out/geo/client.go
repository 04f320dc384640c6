// Package geo resolves delivery addresses to coordinates through the
// external geocoding service's HTTP API.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
)

const defaultTimeout = 3 * time.Second

// Client is an HTTP client for the geocoding service. Lookups are best
// effort: callers treat every error as "no coordinates", so the timeout is
// kept short to not stall order creation.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a geocoding client for the given service base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type geocodeResponse struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Geocode resolves an address to a location.
func (c *Client) Geocode(ctx context.Context, address string) (kernel.Location, error) {
	endpoint := fmt.Sprintf("%s/geocode?address=%s", c.baseURL, url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return kernel.Location{}, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return kernel.Location{}, fmt.Errorf("geocode request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return kernel.Location{}, fmt.Errorf("geocode request: unexpected status %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return kernel.Location{}, fmt.Errorf("decode geocode response: %w", err)
	}

	return kernel.NewLocation(body.Latitude, body.Longitude)
}
