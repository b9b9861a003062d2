package sanitize

import (
	"math/rand"
	"regexp"
	"strings"
	"unicode"

	"github.com/hazelpaw/captionforge/internal/model"
)

// Sanitizer normalizes raw completion output into a postable caption.
// Every step is best-effort text cleanup; the fallback list guarantees
// the result is never empty or punctuation-only.
type Sanitizer struct {
	cfg model.SanitizeConfig

	// randFloat drives the hashtag coin flip, replaceable in tests
	randFloat func() float64
}

// New creates a Sanitizer
func New(cfg model.SanitizeConfig) *Sanitizer {
	return &Sanitizer{cfg: cfg, randFloat: rand.Float64}
}

// Clean runs the full pipeline over raw completion text
func (s *Sanitizer) Clean(raw string, style model.Style, location string) string {
	text := raw

	// Models sometimes return several candidates separated by a blank
	// line; baity wants exactly one.
	if style == model.StyleBaity {
		if idx := strings.Index(text, "\n\n"); idx >= 0 {
			text = text[:idx]
		}
	}

	text = SubstituteDefaults(text, location)
	text = StripQuotes(text)
	text = StripMetaPrefix(text)
	text = StripMetaSentence(text)
	text = strings.TrimSpace(text)
	text = Capitalize(text)

	if Degenerate(text) {
		text = FallbackCaption(style, location)
	}

	text = CollapseWhitespace(text)
	text = s.truncate(text)

	if location != "" && s.randFloat() < s.cfg.HashtagProbability {
		sep := " "
		if s.randFloat() < 0.5 {
			sep = "\n"
		}
		text += sep + Hashtag(location)
	}

	return text
}

// placeholderDefaults fills template slots the model echoed back
// unfilled. Location-dependent slots are handled in SubstituteDefaults.
var placeholderDefaults = map[string]string{
	"{weather_condition}": "lovely",
	"{artist}":            "amazing performers",
	"{venue}":             "a great venue",
	"{date}":              "soon",
	"{event}":             "exciting event",
	"{base_prompt}":       "",
}

// SubstituteDefaults replaces any still-present placeholders with
// deterministic defaults, a safety net for echoed templates.
func SubstituteDefaults(text, location string) string {
	text = strings.ReplaceAll(text, "{city_name}", location)
	text = strings.ReplaceAll(text, "{city}", location)
	text = strings.ReplaceAll(text, "{news_summary}", "the latest happenings in "+location)
	for placeholder, def := range placeholderDefaults {
		text = strings.ReplaceAll(text, placeholder, def)
	}
	return text
}

var quoteChars = []string{`"`, "'", "“", "”", "‘", "’"}

// StripQuotes removes straight and curly quote characters. Idempotent.
func StripQuotes(text string) string {
	for _, q := range quoteChars {
		text = strings.ReplaceAll(text, q, "")
	}
	return text
}

// metaPrefixes are leading strings that are commentary, not caption
var metaPrefixes = []string{
	"caption:",
	"text:",
	"post:",
	"social media caption:",
	"here's your caption",
	"here is your caption",
	"here's a caption",
	"this caption",
	"sure! here",
	"sure, here",
}

// StripMetaPrefix cuts a known meta prefix off the front. When the
// prefix has no trailing colon, the cut runs through the first colon
// or period that follows within a short window.
func StripMetaPrefix(text string) string {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	for _, prefix := range metaPrefixes {
		if !strings.HasPrefix(lower, prefix) {
			continue
		}
		rest := trimmed[len(prefix):]
		if !strings.HasSuffix(prefix, ":") {
			if idx := strings.IndexAny(rest, ":."); idx >= 0 && idx < 40 {
				rest = rest[idx+1:]
			}
		}
		return strings.TrimSpace(rest)
	}
	return trimmed
}

// metaWords flag a leading sentence as commentary about the caption
// rather than caption content
var metaWords = []string{"caption", "social media", "based on"}

// StripMetaSentence drops a leading sentence that talks about the
// caption instead of being the caption.
func StripMetaSentence(text string) string {
	trimmed := strings.TrimSpace(text)
	idx := strings.IndexAny(trimmed, ".!?")
	if idx < 0 || idx == len(trimmed)-1 {
		return trimmed
	}

	first := strings.ToLower(trimmed[:idx])
	for _, w := range metaWords {
		if strings.Contains(first, w) {
			return strings.TrimSpace(trimmed[idx+1:])
		}
	}
	return trimmed
}

// Capitalize uppercases the first alphabetic rune if needed
func Capitalize(text string) string {
	runes := []rune(text)
	for i, r := range runes {
		if unicode.IsLetter(r) {
			if unicode.IsLower(r) {
				runes[i] = unicode.ToUpper(r)
				return string(runes)
			}
			return text
		}
	}
	return text
}

var nonWordOnly = regexp.MustCompile(`^[^\p{L}\p{N}]*$`)

// Degenerate reports whether text is empty, too short or contains no
// word characters at all.
func Degenerate(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) <= 5 {
		return true
	}
	return nonWordOnly.MatchString(trimmed)
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// CollapseWhitespace keeps only the first paragraph and squeezes any
// internal whitespace run to a single space.
func CollapseWhitespace(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "\n\n"); idx >= 0 {
		text = text[:idx]
	}
	return whitespaceRun.ReplaceAllString(text, " ")
}

// truncate enforces the max length, preferring a sentence boundary
// when the cut still keeps enough of the text.
func (s *Sanitizer) truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= s.cfg.MaxLength {
		return text
	}

	clipped := string(runes[:s.cfg.MaxLength])
	if idx := strings.LastIndex(clipped, "."); idx+1 >= s.cfg.SentenceFloor {
		return strings.TrimSpace(clipped[:idx+1])
	}
	return strings.TrimSpace(clipped)
}

// Hashtag camel-cases a location into a tag: "New York" -> "#NewYork"
func Hashtag(location string) string {
	var b strings.Builder
	b.WriteByte('#')
	for _, word := range strings.Fields(location) {
		first := true
		for _, r := range word {
			if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
				continue
			}
			if first {
				b.WriteRune(unicode.ToUpper(r))
				first = false
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
