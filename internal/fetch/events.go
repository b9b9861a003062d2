package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/hazelpaw/captionforge/internal/model"
)

type ticketmasterResponse struct {
	Embedded struct {
		Events []struct {
			Name  string `json:"name"`
			Dates struct {
				Start struct {
					LocalDate string `json:"localDate"`
				} `json:"start"`
			} `json:"dates"`
			Embedded struct {
				Venues []struct {
					Name string `json:"name"`
					City struct {
						Name string `json:"name"`
					} `json:"city"`
				} `json:"venues"`
				Attractions []struct {
					Name string `json:"name"`
				} `json:"attractions"`
			} `json:"_embedded"`
		} `json:"events"`
	} `json:"_embedded"`
}

// Events returns the next upcoming event for a city. A result needs at
// least one venue; placeholder artist names are rejected in favor of
// the event's own name.
func (c *Client) Events(ctx context.Context, city string) (*model.Event, error) {
	q := url.Values{}
	q.Set("city", city)
	return c.events(ctx, "events:"+strings.ToLower(city), q)
}

// EventsNear is the radius-filtered variant used when the free-text
// location was geocoded first.
func (c *Client) EventsNear(ctx context.Context, coords model.Coordinates, radiusMiles int) (*model.Event, error) {
	q := url.Values{}
	q.Set("latlong", fmt.Sprintf("%.4f,%.4f", coords.Latitude, coords.Longitude))
	q.Set("radius", strconv.Itoa(radiusMiles))
	q.Set("unit", "miles")
	key := fmt.Sprintf("events:%.4f,%.4f", coords.Latitude, coords.Longitude)
	return c.events(ctx, key, q)
}

func (c *Client) events(ctx context.Context, cacheKey string, q url.Values) (*model.Event, error) {
	if cached, ok := c.cacheGet(cacheKey); ok {
		return cached.(*model.Event), nil
	}

	q.Set("apikey", c.ticketmasterKey)
	q.Set("countryCode", "US")
	q.Set("locale", "*")
	q.Set("size", "3")
	q.Set("sort", "date,asc")

	body, err := c.get(ctx, c.EventsBaseURL+"?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var parsed ticketmasterResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decode events: %v", ErrUnavailable, err)
	}
	if len(parsed.Embedded.Events) == 0 {
		return nil, fmt.Errorf("%w: no events found", ErrUnavailable)
	}

	raw := parsed.Embedded.Events[0]
	if len(raw.Embedded.Venues) == 0 {
		return nil, fmt.Errorf("%w: no venue information", ErrUnavailable)
	}
	venue := raw.Embedded.Venues[0]

	artist := ""
	for _, a := range raw.Embedded.Attractions {
		name := strings.TrimSpace(a.Name)
		if name == "" || strings.HasPrefix(name, "TBD") || strings.HasPrefix(name, "To Be Announced") {
			continue
		}
		artist = name
		break
	}
	if artist == "" {
		artist = raw.Name
	}

	ev := &model.Event{
		Artist: artist,
		Venue:  venue.Name,
		City:   venue.City.Name,
		Date:   raw.Dates.Start.LocalDate,
		Name:   raw.Name,
	}
	if ev.Venue == "" {
		ev.Venue = "a cool venue"
	}
	if ev.City == "" {
		ev.City = "the city"
	}
	if ev.Name == "" {
		ev.Name = "Live Music"
	}

	c.cacheSet(cacheKey, ev)
	return ev, nil
}
