package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/hazelpaw/captionforge/internal/model"
)

// friendlyConditions maps raw condition text to caption-ready phrasing.
// Unrecognized conditions pass through unchanged.
var friendlyConditions = map[string]string{
	"sunny":         "bright and sunny",
	"cloudy":        "a bit cloudy",
	"partly cloudy": "a mix of sun and clouds",
	"rainy":         "a little rainy",
	"stormy":        "wild and stormy",
	"clear":         "clear and beautiful",
	"snowy":         "a winter wonderland",
}

type weatherResponse struct {
	Location struct {
		Name   string `json:"name"`
		Region string `json:"region"`
	} `json:"location"`
	Current struct {
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
}

// Weather returns current conditions for a location with the raw
// condition text mapped through the friendly vocabulary.
func (c *Client) Weather(ctx context.Context, location string) (*model.Weather, error) {
	key := "weather:" + strings.ToLower(location)
	if cached, ok := c.cacheGet(key); ok {
		return cached.(*model.Weather), nil
	}

	q := url.Values{}
	q.Set("key", c.weatherKey)
	q.Set("q", location)
	q.Set("aqi", "no")

	body, err := c.get(ctx, c.WeatherBaseURL+"?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var parsed weatherResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decode weather: %v", ErrUnavailable, err)
	}
	if parsed.Location.Name == "" {
		return nil, fmt.Errorf("%w: no location in weather response", ErrUnavailable)
	}

	condition := strings.ToLower(strings.TrimSpace(parsed.Current.Condition.Text))
	if friendly, ok := friendlyConditions[condition]; ok {
		condition = friendly
	}

	w := &model.Weather{
		Condition: condition,
		City:      parsed.Location.Name,
		Region:    parsed.Location.Region,
	}
	c.cacheSet(key, w)
	return w, nil
}
