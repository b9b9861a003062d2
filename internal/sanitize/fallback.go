package sanitize

import (
	"math/rand"
	"strings"

	"github.com/hazelpaw/captionforge/internal/model"
)

// Canned captions substituted when the completion output is empty or
// punctuation-only. {loc} is replaced with the request location.
var fallbackCaptions = map[model.Style][]string{
	model.StyleBaity: {
		"Feeling extra cute in {loc} today, might just steal your heart 😉",
		"{loc} looks good on me, don't you think? 😘",
		"Just me, {loc}, and a little bit of trouble ✨",
	},
	model.StyleOpinion: {
		"So much happening in {loc} right now, and yes, I have thoughts about all of it 💭",
		"Hot take from {loc}: this city never runs out of things to talk about 🔥",
	},
	model.StyleEvent: {
		"Somewhere in {loc} there's a stage waiting for us tonight 🎶",
		"Counting down to the next big night out in {loc} 🎟️",
	},
}

// FallbackCaption returns a non-degenerate literal for the style
func FallbackCaption(style model.Style, location string) string {
	list, ok := fallbackCaptions[style]
	if !ok {
		list = fallbackCaptions[model.StyleBaity]
	}
	caption := list[rand.Intn(len(list))]
	if location == "" {
		location = "town"
	}
	return strings.ReplaceAll(caption, "{loc}", location)
}
