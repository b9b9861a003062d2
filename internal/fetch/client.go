package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/hazelpaw/captionforge/internal/model"
)

// ErrUnavailable signals a data-source miss. Callers degrade to the
// next enrichment fallback; it is never surfaced to the HTTP caller.
var ErrUnavailable = errors.New("data source unavailable")

// Client is the shared transport for all data-source adapters: one
// http.Client with a timeout, per-host rate limiting and an optional
// TTL cache on fetch results.
type Client struct {
	httpClient *http.Client
	limiter    *hostLimiter
	cache      *gocache.Cache
	userAgent  string
	maxBytes   int64

	weatherKey      string
	ticketmasterKey string

	// Overridable in tests
	WeatherBaseURL string
	NewsBaseURL    string
	EventsBaseURL  string
	GeocodeBaseURL string
}

// Keys carries the data-source API keys
type Keys struct {
	Weather      string
	Ticketmaster string
}

// NewClient creates a data-source client from configuration
func NewClient(httpCfg model.HTTPConfig, cacheCfg model.CacheConfig, keys Keys) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: httpCfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		limiter:         newHostLimiter(httpCfg.RequestsPerSecond, httpCfg.Burst),
		userAgent:       httpCfg.UserAgent,
		maxBytes:        httpCfg.MaxBodyBytes,
		weatherKey:      keys.Weather,
		ticketmasterKey: keys.Ticketmaster,
		WeatherBaseURL:  "http://api.weatherapi.com/v1/current.json",
		NewsBaseURL:     "https://news.google.com/rss/search",
		EventsBaseURL:   "https://app.ticketmaster.com/discovery/v2/events.json",
		GeocodeBaseURL:  "https://geocoding-api.open-meteo.com/v1/search",
	}
	if cacheCfg.Enabled {
		c.cache = gocache.New(cacheCfg.TTL, 2*cacheCfg.TTL)
	}
	return c
}

// get performs a rate-limited GET and returns the body, bounded by
// maxBytes. Any non-2xx status maps to ErrUnavailable.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx, rawURL); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json, application/xml;q=0.9, */*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

// cacheGet looks up a typed value when caching is enabled
func (c *Client) cacheGet(key string) (interface{}, bool) {
	if c.cache == nil {
		return nil, false
	}
	return c.cache.Get(key)
}

func (c *Client) cacheSet(key string, val interface{}) {
	if c.cache != nil {
		c.cache.SetDefault(key, val)
	}
}

// hostLimiter rate-limits outbound calls per upstream host
type hostLimiter struct {
	mu           sync.RWMutex
	limiters     map[string]*rate.Limiter
	defaultRate  rate.Limit
	defaultBurst int
}

func newHostLimiter(requestsPerSecond float64, burst int) *hostLimiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 4
	}
	if burst <= 0 {
		burst = 5
	}
	return &hostLimiter{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  rate.Limit(requestsPerSecond),
		defaultBurst: burst,
	}
}

func (l *hostLimiter) Wait(ctx context.Context, rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	return l.getLimiter(parsed.Hostname()).Wait(ctx)
}

func (l *hostLimiter) getLimiter(host string) *rate.Limiter {
	l.mu.RLock()
	lim, ok := l.limiters[host]
	l.mu.RUnlock()
	if ok {
		return lim
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if lim, ok = l.limiters[host]; ok {
		return lim
	}
	lim = rate.NewLimiter(l.defaultRate, l.defaultBurst)
	l.limiters[host] = lim
	return lim
}
