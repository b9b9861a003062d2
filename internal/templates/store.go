package templates

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hazelpaw/captionforge/internal/model"
)

// Store holds the caption corpora and literal template sets.
// Read-only after Load.
type Store struct {
	Baity   []string // Seed captions for the baity style (CSV)
	Opinion []string // Seed captions for the opinion and event styles (TXT)

	Weather       []string
	News          []string
	OpinionForms  []string
	EventForms    []string
	EventFallback []string
}

// Load reads the corpora from cfg.Data and attaches the built-in
// literal template sets. Missing corpus files degrade to a single
// placeholder entry so the service can still start.
func Load(cfg model.DataConfig) (*Store, error) {
	s := &Store{
		Weather:       weatherTemplates,
		News:          newsTemplates,
		OpinionForms:  opinionTemplates,
		EventForms:    eventTemplates,
		EventFallback: fallbackEventTemplates,
	}

	baity, err := loadCSVColumn(filepath.Join(cfg.Dir, cfg.BaityCSV))
	if err != nil {
		slog.Warn("could not load baity corpus, using placeholder", "error", err)
		baity = []string{"Default baity caption placeholder"}
	}
	s.Baity = baity

	opinion, err := loadLines(filepath.Join(cfg.Dir, cfg.OpinionTXT))
	if err != nil {
		slog.Warn("could not load opinion corpus, using placeholder", "error", err)
		opinion = []string{"Default opinion caption placeholder"}
	}
	s.Opinion = opinion

	slog.Info("loaded caption corpora", "baity", len(s.Baity), "opinion", len(s.Opinion))
	return s, nil
}

// Corpus returns the seed corpus for a style. Event captions reuse
// the opinion corpus as their base prompts.
func (s *Store) Corpus(style model.Style) []string {
	if style == model.StyleBaity {
		return s.Baity
	}
	return s.Opinion
}

// loadCSVColumn reads the first column of a CSV file, skipping a
// header row when the first cell is the literal "caption".
func loadCSVColumn(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var out []string
	first := true
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read corpus: %w", err)
		}
		if first {
			first = false
			if len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "caption") {
				continue
			}
		}
		if len(row) > 0 && strings.TrimSpace(row[0]) != "" {
			out = append(out, strings.TrimSpace(row[0]))
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("corpus %s is empty", path)
	}
	return out, nil
}

// loadLines reads a text file one caption per line, dropping blanks.
func loadLines(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	var out []string
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("corpus %s is empty", path)
	}
	return out, nil
}
