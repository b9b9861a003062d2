package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/hazelpaw/captionforge/internal/model"
)

type geocodeResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

// Geocode resolves a free-text location to coordinates for the
// radius-filtered event search. Any failure is ErrUnavailable; the
// caller falls straight to the city-name search.
func (c *Client) Geocode(ctx context.Context, location string) (*model.Coordinates, error) {
	key := "geo:" + strings.ToLower(location)
	if cached, ok := c.cacheGet(key); ok {
		return cached.(*model.Coordinates), nil
	}

	q := url.Values{}
	q.Set("name", location)
	q.Set("count", "1")

	body, err := c.get(ctx, c.GeocodeBaseURL+"?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var parsed geocodeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decode geocode: %v", ErrUnavailable, err)
	}
	if len(parsed.Results) == 0 {
		return nil, fmt.Errorf("%w: location %q not found", ErrUnavailable, location)
	}

	coords := &model.Coordinates{
		Latitude:  parsed.Results[0].Latitude,
		Longitude: parsed.Results[0].Longitude,
	}
	c.cacheSet(key, coords)
	return coords, nil
}
