// Package maps wraps the Google Maps web service endpoints the finder
// uses: geocoding for origin validation and the distance matrix for
// proximity ranking.
package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	domerrors "github.com/averyhall/classroom-finder-go/internal/errors"
	"github.com/averyhall/classroom-finder-go/internal/metrics"
)

const (
	geocodeEndpoint        = "/maps/api/geocode/json"
	distanceMatrixEndpoint = "/maps/api/distancematrix/json"
)

// StatusOK is the per-element and top-level success status in Maps responses.
const StatusOK = "OK"

// Mode is a travel mode accepted by the distance matrix.
type Mode string

// Travel modes.
const (
	ModeWalking   Mode = "walking"
	ModeDriving   Mode = "driving"
	ModeBicycling Mode = "bicycling"
	ModeTransit   Mode = "transit"
)

// ValidMode reports whether m is one of the supported travel modes.
func ValidMode(m Mode) bool {
	switch m {
	case ModeWalking, ModeDriving, ModeBicycling, ModeTransit:
		return true
	}
	return false
}

// Client calls the Google Maps web services. A zero API key disables all
// calls with ErrConfigMissing before any network attempt.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	metrics    *metrics.Metrics
}

// NewClient creates a Maps client. baseURL is injected so tests can point
// at a local server; production passes config.DefaultMapsBaseURL.
func NewClient(baseURL, apiKey string, timeout time.Duration, m *metrics.Metrics) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		metrics:    m,
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// get performs a request against one of the Maps endpoints and decodes the
// JSON body into out.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	query.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+endpoint+"?"+query.Encode(), http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domerrors.ErrUpstreamFailure, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: maps returned status %d", domerrors.ErrUpstreamFailure, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %w", domerrors.ErrUpstreamFailure, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode response: %w", domerrors.ErrUpstreamFailure, err)
	}
	return nil
}

func (c *Client) observe(endpoint string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	c.metrics.MapsRequestsTotal.WithLabelValues(endpoint, status).Inc()
	c.metrics.MapsDurationSeconds.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
