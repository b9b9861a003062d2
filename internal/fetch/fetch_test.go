package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hazelpaw/captionforge/internal/model"
)

func testClient(cacheEnabled bool) *Client {
	return NewClient(
		model.HTTPConfig{
			Timeout:           5 * time.Second,
			UserAgent:         "captionforge-test",
			MaxBodyBytes:      1 << 20,
			RequestsPerSecond: 100,
			Burst:             10,
		},
		model.CacheConfig{Enabled: cacheEnabled, TTL: time.Minute},
		Keys{Weather: "wkey", Ticketmaster: "tkey"},
	)
}

func TestWeather_MapsCondition(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "wkey" {
			t.Errorf("missing api key, got query %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{"location":{"name":"Austin","region":"Texas"},"current":{"condition":{"text":"Sunny"}}}`))
	}))
	defer server.Close()

	c := testClient(false)
	c.WeatherBaseURL = server.URL

	got, err := c.Weather(context.Background(), "Austin")
	if err != nil {
		t.Fatalf("Weather error: %v", err)
	}
	if got.Condition != "bright and sunny" {
		t.Errorf("condition = %q, want mapped phrase", got.Condition)
	}
	if got.City != "Austin" || got.Region != "Texas" {
		t.Errorf("location = %+v", got)
	}
}

func TestWeather_UnknownConditionPassesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"location":{"name":"Austin","region":"Texas"},"current":{"condition":{"text":"Volcanic ash"}}}`))
	}))
	defer server.Close()

	c := testClient(false)
	c.WeatherBaseURL = server.URL

	got, err := c.Weather(context.Background(), "Austin")
	if err != nil {
		t.Fatalf("Weather error: %v", err)
	}
	if got.Condition != "volcanic ash" {
		t.Errorf("condition = %q, want passthrough", got.Condition)
	}
}

func TestWeather_Non200IsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	c := testClient(false)
	c.WeatherBaseURL = server.URL

	_, err := c.Weather(context.Background(), "Austin")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestNews_FirstHeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<rss version="2.0"><channel><item><title>Bakery wins award</title></item><item><title>Second story</title></item></channel></rss>`))
	}))
	defer server.Close()

	c := testClient(false)
	c.NewsBaseURL = server.URL

	got, err := c.News(context.Background(), "Austin")
	if err != nil {
		t.Fatalf("News error: %v", err)
	}
	if got != "Bakery wins award" {
		t.Errorf("headline = %q", got)
	}
}

func TestNews_EmptyFeedIsDegenerateString(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<rss version="2.0"><channel></channel></rss>`))
	}))
	defer server.Close()

	c := testClient(false)
	c.NewsBaseURL = server.URL

	got, err := c.News(context.Background(), "Austin")
	if err != nil {
		t.Fatalf("News error: %v", err)
	}
	if got != "No trending news in Austin." {
		t.Errorf("headline = %q", got)
	}
}

const eventJSON = `{"_embedded":{"events":[{
	"name":"Summer Fest",
	"dates":{"start":{"localDate":"2026-09-05"}},
	"_embedded":{
		"venues":[{"name":"Zilker Park","city":{"name":"Austin"}}],
		"attractions":[{"name":"TBD Headliner"},{"name":"The Midnight"}]
	}
}]}}`

func TestEvents_RejectsPlaceholderArtist(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("apikey") != "tkey" {
			t.Errorf("missing api key")
		}
		w.Write([]byte(eventJSON))
	}))
	defer server.Close()

	c := testClient(false)
	c.EventsBaseURL = server.URL

	got, err := c.Events(context.Background(), "Austin")
	if err != nil {
		t.Fatalf("Events error: %v", err)
	}
	if got.Artist != "The Midnight" {
		t.Errorf("artist = %q, want first non-TBD attraction", got.Artist)
	}
	if got.Venue != "Zilker Park" || got.City != "Austin" || got.Date != "2026-09-05" {
		t.Errorf("event = %+v", got)
	}
}

func TestEvents_NoVenueIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"_embedded":{"events":[{"name":"Mystery Show","dates":{"start":{"localDate":"2026-09-05"}},"_embedded":{"venues":[]}}]}}`))
	}))
	defer server.Close()

	c := testClient(false)
	c.EventsBaseURL = server.URL

	_, err := c.Events(context.Background(), "Austin")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestEvents_EmptyListIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"_embedded":{"events":[]}}`))
	}))
	defer server.Close()

	c := testClient(false)
	c.EventsBaseURL = server.URL

	_, err := c.Events(context.Background(), "Austin")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"latitude":30.2672,"longitude":-97.7431}]}`))
	}))
	defer server.Close()

	c := testClient(false)
	c.GeocodeBaseURL = server.URL

	got, err := c.Geocode(context.Background(), "Austin")
	if err != nil {
		t.Fatalf("Geocode error: %v", err)
	}
	if got.Latitude != 30.2672 || got.Longitude != -97.7431 {
		t.Errorf("coords = %+v", got)
	}
}

func TestGeocode_NoResultsIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	c := testClient(false)
	c.GeocodeBaseURL = server.URL

	_, err := c.Geocode(context.Background(), "Nowhereville")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestWeather_CacheAvoidsSecondCall(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"location":{"name":"Austin","region":"Texas"},"current":{"condition":{"text":"Clear"}}}`))
	}))
	defer server.Close()

	c := testClient(true)
	c.WeatherBaseURL = server.URL

	for i := 0; i < 3; i++ {
		if _, err := c.Weather(context.Background(), "Austin"); err != nil {
			t.Fatalf("Weather error: %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("upstream calls = %d, want 1 (cache hit)", calls)
	}
}
