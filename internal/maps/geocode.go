package maps

import (
	"context"
	"net/url"
	"time"

	domerrors "github.com/averyhall/classroom-finder-go/internal/errors"
)

// AddressValidation is the result of pre-validating a user-supplied origin.
type AddressValidation struct {
	Valid            bool   `json:"valid"`
	Input            string `json:"input"`
	FormattedAddress string `json:"formatted_address,omitempty"`
	// LocationType is Google's precision classification, e.g. ROOFTOP or
	// APPROXIMATE.
	LocationType string `json:"location_type,omitempty"`
	Message      string `json:"message,omitempty"`
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			LocationType string `json:"location_type"`
		} `json:"geometry"`
	} `json:"results"`
}

// ValidateAddress verifies that an address exists and returns its
// canonical form. A not-found address is a valid=false result, not an
// error; only configuration and transport problems return errors.
func (c *Client) ValidateAddress(ctx context.Context, address string) (AddressValidation, error) {
	wrap := domerrors.NewWrapper("maps", "geocode")

	if !c.Enabled() {
		return AddressValidation{}, wrap.Wrap(domerrors.ErrConfigMissing,
			"Error: Google Maps API key not configured")
	}

	query := url.Values{}
	query.Set("address", address)

	start := time.Now()
	var resp geocodeResponse
	err := c.get(ctx, geocodeEndpoint, query, &resp)
	c.observe("geocode", start, err)
	if err != nil {
		return AddressValidation{}, wrap.Wrap(err, "Error validating address. Please try again later.")
	}

	if resp.Status != StatusOK || len(resp.Results) == 0 {
		return AddressValidation{
			Valid:   false,
			Input:   address,
			Message: "Address not found. Please check spelling or add more details.",
		}, nil
	}

	result := resp.Results[0]
	return AddressValidation{
		Valid:            true,
		Input:            address,
		FormattedAddress: result.FormattedAddress,
		LocationType:     result.Geometry.LocationType,
	}, nil
}
