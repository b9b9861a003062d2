package compose

import (
	"fmt"
	"regexp"
	"strings"
)

// Placeholder is a recognized template slot. The set is closed: a
// template naming anything else fails at render time instead of
// silently passing through.
type Placeholder string

const (
	PhCity      Placeholder = "city_name"
	PhWeather   Placeholder = "weather_condition"
	PhNews      Placeholder = "news_summary"
	PhBase      Placeholder = "base_prompt"
	PhArtist    Placeholder = "artist"
	PhVenue     Placeholder = "venue"
	PhEventCity Placeholder = "city"
	PhDate      Placeholder = "date"
	PhEvent     Placeholder = "event"
)

var knownPlaceholders = map[Placeholder]bool{
	PhCity: true, PhWeather: true, PhNews: true, PhBase: true,
	PhArtist: true, PhVenue: true, PhEventCity: true, PhDate: true, PhEvent: true,
}

// Values maps placeholders to their rendered text
type Values map[Placeholder]string

var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// Render substitutes every {name} slot in the template. An unknown or
// unvalued placeholder is an error, not a no-op.
func Render(template string, vals Values) (string, error) {
	var renderErr error
	out := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := Placeholder(strings.Trim(match, "{}"))
		if !knownPlaceholders[name] {
			renderErr = fmt.Errorf("unknown placeholder %q", name)
			return match
		}
		val, ok := vals[name]
		if !ok {
			renderErr = fmt.Errorf("no value for placeholder %q", name)
			return match
		}
		return val
	})
	if renderErr != nil {
		return "", renderErr
	}
	return out, nil
}

// HasPlaceholders reports whether the text contains any {name} slot
func HasPlaceholders(text string) bool {
	return placeholderPattern.MatchString(text)
}
