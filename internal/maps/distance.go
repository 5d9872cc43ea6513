package maps

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	domerrors "github.com/averyhall/classroom-finder-go/internal/errors"
)

// Element is one per-destination result from a distance matrix row,
// positionally aligned with the request's destinations.
type Element struct {
	Status         string
	DistanceMeters int
	DistanceText   string
	DurationText   string
}

// OK reports whether the provider resolved this destination.
func (e Element) OK() bool {
	return e.Status == StatusOK
}

type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int    `json:"value"`
				Text  string `json:"text"`
			} `json:"distance"`
			Duration struct {
				Text string `json:"text"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// DistanceMatrix issues one batched request for a single origin and N
// destinations and returns N elements in destination order. Per-element
// failures are carried in the element status; a provider-level failure
// (missing key, transport error, malformed body) returns an error instead.
func (c *Client) DistanceMatrix(ctx context.Context, origin string, destinations []string, mode Mode) ([]Element, error) {
	wrap := domerrors.NewWrapper("maps", "distance_matrix")

	if !c.Enabled() {
		return nil, wrap.Wrap(domerrors.ErrConfigMissing,
			"Error: Google Maps API key not configured")
	}
	if len(destinations) == 0 {
		return nil, wrap.Wrap(domerrors.ErrInvalidInput, "No destinations supplied.")
	}
	if !ValidMode(mode) {
		return nil, wrap.Wrapf(domerrors.ErrInvalidInput,
			"Unsupported travel mode %q. Use walking, driving, bicycling, or transit.", mode)
	}

	query := url.Values{}
	query.Set("origins", origin)
	query.Set("destinations", strings.Join(destinations, "|"))
	query.Set("mode", string(mode))

	start := time.Now()
	var resp distanceMatrixResponse
	err := c.get(ctx, distanceMatrixEndpoint, query, &resp)
	c.observe("distancematrix", start, err)
	if err != nil {
		return nil, wrap.Wrap(err, "Error calculating distances. Please try again later.")
	}

	if resp.Status != StatusOK {
		return nil, wrap.Wrap(
			fmt.Errorf("%w: distance matrix status %q", domerrors.ErrUpstreamFailure, resp.Status),
			"Error calculating distances. Please try again later.")
	}
	if len(resp.Rows) != 1 || len(resp.Rows[0].Elements) != len(destinations) {
		return nil, wrap.Wrap(
			fmt.Errorf("%w: expected 1 row with %d elements, got %d rows",
				domerrors.ErrUpstreamFailure, len(destinations), len(resp.Rows)),
			"Error calculating distances. Please try again later.")
	}

	elements := make([]Element, len(destinations))
	for i, el := range resp.Rows[0].Elements {
		elements[i] = Element{
			Status:         el.Status,
			DistanceMeters: el.Distance.Value,
			DistanceText:   el.Distance.Text,
			DurationText:   el.Duration.Text,
		}
	}
	return elements, nil
}

// Distance returns the travel distance and time between two locations as
// a short human-readable string, e.g. "1.2 km (15 mins walking)".
func (c *Client) Distance(ctx context.Context, origin, destination string, mode Mode) (string, error) {
	elements, err := c.DistanceMatrix(ctx, origin, []string{destination}, mode)
	if err != nil {
		return "", err
	}

	el := elements[0]
	if !el.OK() {
		return "Could not find route between locations.", nil
	}
	return fmt.Sprintf("%s (%s %s)", el.DistanceText, el.DurationText, mode), nil
}
