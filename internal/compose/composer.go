package compose

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/hazelpaw/captionforge/internal/fetch"
	"github.com/hazelpaw/captionforge/internal/model"
	"github.com/hazelpaw/captionforge/internal/templates"
)

// DataSource is the slice of the fetch client the composer consumes
type DataSource interface {
	Weather(ctx context.Context, location string) (*model.Weather, error)
	News(ctx context.Context, location string) (string, error)
	Events(ctx context.Context, city string) (*model.Event, error)
	EventsNear(ctx context.Context, coords model.Coordinates, radiusMiles int) (*model.Event, error)
	Geocode(ctx context.Context, location string) (*model.Coordinates, error)
}

// Prompt is the system/user pair handed to the completion provider
type Prompt struct {
	System string
	User   string
	Style  model.Style
}

// Composer selects base captions, enriches them with fetched data and
// assembles the prompt pair for each style.
type Composer struct {
	store   *templates.Store
	src     DataSource
	tracker *Tracker
	cfg     model.ComposeConfig

	// now is replaceable in tests
	now func() time.Time
	// sleep between event attempts, replaceable in tests
	sleep func(time.Duration)
}

// New creates a Composer
func New(store *templates.Store, src DataSource, tracker *Tracker, cfg model.ComposeConfig) *Composer {
	return &Composer{
		store:   store,
		src:     src,
		tracker: tracker,
		cfg:     cfg,
		now:     time.Now,
		sleep:   time.Sleep,
	}
}

// StyleForNumber maps a 1-indexed rotation number onto the three
// styles with period 3. Invalid numbers coerce to 1.
func StyleForNumber(n int) model.Style {
	if n < 1 {
		n = 1
	}
	return model.Styles[(n-1)%3]
}

// RandomStyle picks a style uniformly, for the batch pass
func RandomStyle() model.Style {
	return model.Styles[rand.Intn(len(model.Styles))]
}

const (
	baitySystem = "You are a creative assistant generating a single, fresh, flirty, and inviting social media caption. " +
		"Keep the tone cheeky and engaging, but avoid using hashtags or tags. " +
		"Generate exactly ONE caption, not a list of options. " +
		"Mention only one news or weather item if relevant—do not add extra topics."

	opinionSystem = "You are a creative assistant generating real, relatable, and location-based social media captions. " +
		"Reference only the single local news headline. Do not add extra or unrelated topics. " +
		"Keep it concise and avoid hashtags or tags."

	eventSystem = "You are a creative assistant generating real, relatable, and location-based social media captions " +
		"focusing on a single local concert or festival event. Do not add unrelated topics. " +
		"Keep it concise and avoid hashtags or tags."
)

// Compose builds the prompt pair for a style. Data-source misses
// degrade through the style's fallback chain; Compose itself never
// fails.
func (c *Composer) Compose(ctx context.Context, style model.Style, location, persona string) *Prompt {
	var p *Prompt
	switch style {
	case model.StyleOpinion:
		p = c.composeOpinion(ctx, location)
	case model.StyleEvent:
		p = c.composeEvent(ctx, location)
	default:
		p = c.composeBaity(ctx, location)
	}
	if persona != "" {
		p.System += " Write in the voice of this persona: " + persona + "."
	}
	return p
}

// enrichment channels for the baity style
type channel int

const (
	channelWeather channel = iota
	channelNews
	channelLocation
	channelGeneric
)

func (c *Composer) pickChannel() channel {
	weights := []int{c.cfg.WeatherWeight, c.cfg.NewsWeight, c.cfg.LocationWeight, c.cfg.GenericWeight}
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return channelGeneric
	}
	n := rand.Intn(total)
	for i, w := range weights {
		if n < w {
			return channel(i)
		}
		n -= w
	}
	return channelGeneric
}

func (c *Composer) composeBaity(ctx context.Context, location string) *Prompt {
	base := c.tracker.Pick(model.StyleBaity, c.store.Baity)
	dynamic := c.baityDynamic(ctx, location)
	return &Prompt{
		System: baitySystem,
		User:   base + "\n\n" + dynamic,
		Style:  model.StyleBaity,
	}
}

// baityDynamic picks an enrichment channel and falls through the
// chain weather/news -> location literal -> generic -> hard literal.
func (c *Composer) baityDynamic(ctx context.Context, location string) string {
	ch := c.pickChannel()

	if ch == channelWeather {
		if w, err := c.src.Weather(ctx, location); err == nil {
			text, rerr := Render(pickFrom(c.store.Weather), Values{
				PhWeather: w.Condition,
				PhCity:    w.City,
			})
			if rerr == nil {
				return text
			}
			slog.Warn("weather template render failed", "error", rerr)
		}
		ch = channelGeneric
	}

	if ch == channelNews {
		if headline, err := c.src.News(ctx, location); err == nil {
			text, rerr := Render(pickFrom(c.store.News), Values{PhNews: headline})
			if rerr == nil {
				return text
			}
			slog.Warn("news template render failed", "error", rerr)
		}
		ch = channelGeneric
	}

	if ch == channelLocation {
		// A corpus caption with placeholders, filled with best-effort defaults
		if withSlots := filter(c.store.Baity, HasPlaceholders); len(withSlots) > 0 {
			text, rerr := Render(pickFrom(withSlots), Values{
				PhCity:      location,
				PhWeather:   "lovely",
				PhNews:      "the latest happenings in " + location,
				PhBase:      "",
				PhArtist:    "amazing performers",
				PhVenue:     "a great venue",
				PhEventCity: location,
				PhDate:      "soon",
				PhEvent:     "exciting event",
			})
			if rerr == nil {
				return text
			}
		}
		ch = channelGeneric
	}

	if generic := filter(c.store.Baity, func(s string) bool { return !HasPlaceholders(s) }); len(generic) > 0 {
		return pickFrom(generic)
	}
	return "Living my best life ✨"
}

func (c *Composer) composeOpinion(ctx context.Context, location string) *Prompt {
	base := c.tracker.Pick(model.StyleOpinion, c.store.Opinion)

	headline, err := c.src.News(ctx, location)
	if err != nil {
		headline = "the latest happenings in " + location
	}

	user, rerr := Render(pickFrom(c.store.OpinionForms), Values{
		PhBase: base,
		PhNews: headline,
	})
	if rerr != nil {
		slog.Warn("opinion template render failed", "error", rerr)
		user = base + "\n\nBy the way, did you catch this update about " + headline + "?"
	}

	return &Prompt{System: opinionSystem, User: user, Style: model.StyleOpinion}
}

// composeEvent tries the supplied location first, then walks the
// major-city list under a wall-clock budget, falling back to the
// no-event template when nothing valid turns up.
func (c *Composer) composeEvent(ctx context.Context, location string) *Prompt {
	base := c.tracker.Pick(model.StyleEvent, c.store.Opinion)

	if user, ok := c.tryEventCaption(ctx, location, base); ok {
		return &Prompt{System: eventSystem, User: user, Style: model.StyleEvent}
	}

	deadline := c.now().Add(c.cfg.EventSearchTimeout)
	searchCtx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	for _, i := range rand.Perm(len(templates.MajorCities)) {
		city := templates.MajorCities[i]
		if city == location {
			continue
		}
		if !c.now().Before(deadline) || searchCtx.Err() != nil {
			break
		}

		c.sleep(c.cfg.EventAttemptDelay)
		if user, ok := c.tryEventCaption(searchCtx, city, base); ok {
			return &Prompt{System: eventSystem, User: user, Style: model.StyleEvent}
		}
	}

	user, rerr := Render(pickFrom(c.store.EventFallback), Values{PhBase: base})
	if rerr != nil {
		user = base + "\n\nNothing beats the energy of a live show. When's our next concert night?"
	}
	return &Prompt{System: eventSystem, User: user, Style: model.StyleEvent}
}

// tryEventCaption fetches one city's next event and formats it when
// valid: non-empty artist and a date inside the recency window.
func (c *Composer) tryEventCaption(ctx context.Context, city, base string) (string, bool) {
	ev, err := c.fetchEvent(ctx, city)
	if err != nil {
		slog.Debug("event fetch miss", "city", city, "error", err)
		return "", false
	}
	if ev.Artist == "" {
		return "", false
	}

	label, err := DateLabel(ev.Date, c.now())
	if err != nil {
		slog.Debug("event date rejected", "city", city, "date", ev.Date, "error", err)
		return "", false
	}

	user, rerr := Render(pickFrom(c.store.EventForms), Values{
		PhBase:      base,
		PhArtist:    ev.Artist,
		PhVenue:     ev.Venue,
		PhEventCity: ev.City,
		PhDate:      label,
		PhEvent:     ev.Name,
	})
	if rerr != nil {
		slog.Warn("event template render failed", "error", rerr)
		return "", false
	}
	return user, true
}

func (c *Composer) fetchEvent(ctx context.Context, city string) (*model.Event, error) {
	if c.cfg.GeocodeEvents {
		coords, err := c.src.Geocode(ctx, city)
		if err != nil {
			return nil, fetch.ErrUnavailable
		}
		return c.src.EventsNear(ctx, *coords, c.cfg.EventRadiusMiles)
	}
	return c.src.Events(ctx, city)
}

func pickFrom(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[rand.Intn(len(list))]
}

func filter(list []string, keep func(string) bool) []string {
	var out []string
	for _, s := range list {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
