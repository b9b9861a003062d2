package compose

import (
	"math/rand"
	"sync"

	"github.com/hazelpaw/captionforge/internal/model"
)

// Tracker records which base captions have been handed out per style,
// to soften immediate repeats. It is a heuristic, not a distinctness
// guarantee: once usage reaches 80% of the corpus the style resets.
type Tracker struct {
	mu   sync.Mutex
	used map[model.Style]map[string]struct{}
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{used: make(map[model.Style]map[string]struct{})}
}

// Pick draws a base caption from the corpus, redrawing while the draw
// is already used and unused entries remain.
func (t *Tracker) Pick(style model.Style, corpus []string) string {
	if len(corpus) == 0 {
		return ""
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.saturatedLocked(style, len(corpus)) {
		t.used[style] = nil
	}
	set := t.used[style]
	if set == nil {
		set = make(map[string]struct{})
		t.used[style] = set
	}

	pick := corpus[rand.Intn(len(corpus))]
	for {
		if _, seen := set[pick]; !seen || len(set) >= len(corpus) {
			break
		}
		pick = corpus[rand.Intn(len(corpus))]
	}
	set[pick] = struct{}{}
	return pick
}

// MarkUsed records a caption as handed out
func (t *Tracker) MarkUsed(style model.Style, value string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.used[style] == nil {
		t.used[style] = make(map[string]struct{})
	}
	t.used[style][value] = struct{}{}
}

// Saturated reports whether usage has crossed 80% of the corpus size
func (t *Tracker) Saturated(style model.Style, corpusSize int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.saturatedLocked(style, corpusSize)
}

func (t *Tracker) saturatedLocked(style model.Style, corpusSize int) bool {
	if corpusSize == 0 {
		return false
	}
	return float64(len(t.used[style])) >= 0.8*float64(corpusSize)
}

// Reset clears the usage record for a style
func (t *Tracker) Reset(style model.Style) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.used, style)
}
