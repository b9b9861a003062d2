package fetch

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
)

// Google News RSS feed shape; only titles are consumed.
type rssFeed struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Items []struct {
			Title string `xml:"title"`
		} `xml:"item"`
	} `xml:"channel"`
}

// News returns the top headline for a location. An empty feed yields a
// degenerate-but-valid "no trending news" string rather than an error;
// only transport failures report ErrUnavailable.
func (c *Client) News(ctx context.Context, location string) (string, error) {
	key := "news:" + strings.ToLower(location)
	if cached, ok := c.cacheGet(key); ok {
		return cached.(string), nil
	}

	q := url.Values{}
	q.Set("q", location+" news")
	q.Set("hl", "en-US")
	q.Set("gl", "US")
	q.Set("ceid", "US:en")

	body, err := c.get(ctx, c.NewsBaseURL+"?"+q.Encode())
	if err != nil {
		return "", err
	}

	var feed rssFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return "", fmt.Errorf("%w: decode feed: %v", ErrUnavailable, err)
	}

	headline := fmt.Sprintf("No trending news in %s.", location)
	if len(feed.Channel.Items) > 0 && strings.TrimSpace(feed.Channel.Items[0].Title) != "" {
		headline = strings.TrimSpace(feed.Channel.Items[0].Title)
	}

	c.cacheSet(key, headline)
	return headline, nil
}
