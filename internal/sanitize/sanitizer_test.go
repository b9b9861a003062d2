package sanitize

import (
	"strings"
	"testing"

	"github.com/hazelpaw/captionforge/internal/model"
)

func testConfig() model.SanitizeConfig {
	return model.SanitizeConfig{
		MaxLength:          280,
		SentenceFloor:      180,
		HashtagProbability: 0,
	}
}

func TestClean_EndToEnd(t *testing.T) {
	s := New(testConfig())
	got := s.Clean(`"Caption: Living it up in {city_name} today!"`, model.StyleBaity, "New York")
	want := "Living it up in New York today!"
	if got != want {
		t.Errorf("Clean = %q, want %q", got, want)
	}
}

func TestClean_BaityKeepsFirstCandidate(t *testing.T) {
	s := New(testConfig())
	got := s.Clean("First option here!\n\nSecond option here!", model.StyleBaity, "Austin")
	if got != "First option here!" {
		t.Errorf("Clean = %q", got)
	}
}

func TestStripQuotes_Idempotent(t *testing.T) {
	inputs := []string{
		`"double" and 'single'`,
		"“curly” and ‘fancy’",
		"no quotes at all",
	}
	for _, in := range inputs {
		once := StripQuotes(in)
		twice := StripQuotes(once)
		if once != twice {
			t.Errorf("StripQuotes not idempotent for %q: %q vs %q", in, once, twice)
		}
		if strings.ContainsAny(twice, `"'`) {
			t.Errorf("quotes remain in %q", twice)
		}
	}
}

func TestStripMetaPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Caption: chasing sunsets again", "chasing sunsets again"},
		{"caption: lowercase prefix works", "lowercase prefix works"},
		{"Text: short and sweet", "short and sweet"},
		{"Here's your caption: golden hour glow", "golden hour glow"},
		{"Here's a caption for you: city lights tonight", "city lights tonight"},
		{"no prefix at all", "no prefix at all"},
	}
	for _, tt := range tests {
		if got := StripMetaPrefix(tt.in); got != tt.want {
			t.Errorf("StripMetaPrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripMetaSentence(t *testing.T) {
	got := StripMetaSentence("This is a social media caption based on your request. Sunsets hit different here!")
	if got != "Sunsets hit different here!" {
		t.Errorf("StripMetaSentence = %q", got)
	}

	kept := "Sunny days call for bold choices. No regrets!"
	if got := StripMetaSentence(kept); got != kept {
		t.Errorf("content sentence was dropped: %q", got)
	}
}

func TestClean_DegenerateOutputGetsFallback(t *testing.T) {
	s := New(testConfig())
	for _, raw := range []string{"", "   ", "!!!...", "?!", "ab"} {
		got := s.Clean(raw, model.StyleOpinion, "Austin")
		if Degenerate(got) {
			t.Errorf("Clean(%q) = %q is still degenerate", raw, got)
		}
		if got == "" {
			t.Errorf("Clean(%q) returned empty caption", raw)
		}
	}
}

func TestClean_LengthBound(t *testing.T) {
	s := New(testConfig())
	long := strings.Repeat("word after word keeps going ", 30) + "end."
	got := s.Clean(long, model.StyleOpinion, "Austin")
	if n := len([]rune(got)); n > 280 {
		t.Errorf("caption length %d exceeds 280", n)
	}
}

func TestTruncate_SentenceBoundary(t *testing.T) {
	s := New(testConfig())
	// A sentence break past the floor: cut there, not mid-word
	first := strings.Repeat("a", 200) + "."
	text := first + " " + strings.Repeat("b", 200)
	got := s.truncate(text)
	if got != first {
		t.Errorf("expected cut at sentence boundary, got %d chars ending %q", len(got), got[len(got)-5:])
	}
}

func TestTruncate_HardCutWhenBoundaryTooEarly(t *testing.T) {
	s := New(testConfig())
	// Period at position 50 is under the floor, so hard-truncate
	text := strings.Repeat("a", 50) + "." + strings.Repeat("b", 400)
	got := s.truncate(text)
	if n := len([]rune(got)); n != 280 {
		t.Errorf("expected hard truncation to 280, got %d", n)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	got := CollapseWhitespace("first  line\there\n\nsecond paragraph dropped")
	if got != "first line here" {
		t.Errorf("CollapseWhitespace = %q", got)
	}
}

func TestSubstituteDefaults(t *testing.T) {
	got := SubstituteDefaults("see {artist} at {venue} in {city} on {date}", "Denver")
	want := "see amazing performers at a great venue in Denver on soon"
	if got != want {
		t.Errorf("SubstituteDefaults = %q, want %q", got, want)
	}
}

func TestHashtag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"New York", "#NewYork"},
		{"austin", "#Austin"},
		{"St. Louis", "#StLouis"},
		{"san  francisco", "#SanFrancisco"},
	}
	for _, tt := range tests {
		if got := Hashtag(tt.in); got != tt.want {
			t.Errorf("Hashtag(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClean_HashtagAppended(t *testing.T) {
	cfg := testConfig()
	cfg.HashtagProbability = 1
	s := New(cfg)
	s.randFloat = func() float64 { return 0.9 } // always append, inline separator

	got := s.Clean("Great vibes all around here today", model.StyleBaity, "New York")
	if !strings.HasSuffix(got, " #NewYork") {
		t.Errorf("expected inline hashtag, got %q", got)
	}
}

func TestCapitalize(t *testing.T) {
	if got := Capitalize("hello there"); got != "Hello there" {
		t.Errorf("Capitalize = %q", got)
	}
	if got := Capitalize("👀 watch this"); got != "👀 Watch this" {
		t.Errorf("Capitalize = %q", got)
	}
	if got := Capitalize("Already fine"); got != "Already fine" {
		t.Errorf("Capitalize = %q", got)
	}
}
