package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hazelpaw/captionforge/internal/compose"
	"github.com/hazelpaw/captionforge/internal/fetch"
	"github.com/hazelpaw/captionforge/internal/llm"
	"github.com/hazelpaw/captionforge/internal/model"
	"github.com/hazelpaw/captionforge/internal/sanitize"
	"github.com/hazelpaw/captionforge/internal/templates"
)

type failingSource struct {
	calls int
}

func (s *failingSource) Weather(ctx context.Context, location string) (*model.Weather, error) {
	s.calls++
	return nil, fetch.ErrUnavailable
}

func (s *failingSource) News(ctx context.Context, location string) (string, error) {
	s.calls++
	return "", fetch.ErrUnavailable
}

func (s *failingSource) Events(ctx context.Context, city string) (*model.Event, error) {
	s.calls++
	return nil, fetch.ErrUnavailable
}

func (s *failingSource) EventsNear(ctx context.Context, coords model.Coordinates, radiusMiles int) (*model.Event, error) {
	s.calls++
	return nil, fetch.ErrUnavailable
}

func (s *failingSource) Geocode(ctx context.Context, location string) (*model.Coordinates, error) {
	s.calls++
	return nil, fetch.ErrUnavailable
}

type stubProvider struct {
	text  string
	err   error
	calls int
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) IsAvailable(ctx context.Context) bool { return true }

func (p *stubProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return &llm.CompletionResponse{Text: p.text, Model: "stub"}, nil
}

func testRouter(provider llm.Provider, src compose.DataSource) *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := &templates.Store{
		Baity:         []string{"plain caption"},
		Opinion:       []string{"opinion base"},
		Weather:       []string{"weather: {weather_condition} in {city_name}"},
		News:          []string{"news: {news_summary}"},
		OpinionForms:  []string{"{base_prompt} | {news_summary}"},
		EventForms:    []string{"{artist} at {venue} on {date}"},
		EventFallback: []string{"fallback | {base_prompt}"},
	}

	composeCfg := model.DefaultConfig().Compose
	composeCfg.EventSearchTimeout = 50 * time.Millisecond
	composeCfg.EventAttemptDelay = time.Millisecond

	composer := compose.New(store, src, compose.NewTracker(), composeCfg)
	sanitizer := sanitize.New(model.SanitizeConfig{
		MaxLength:          280,
		SentenceFloor:      180,
		HashtagProbability: 0,
	})

	return NewRouter(model.ServerConfig{AllowedOrigins: []string{"http://localhost:3000"}}, composer, provider, sanitizer)
}

func postGenerate(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerate_BaityEndToEnd(t *testing.T) {
	provider := &stubProvider{text: "Caption: Living it up in {city_name} today!"}
	r := testRouter(provider, &failingSource{})

	w := postGenerate(t, r, `{"location": "New York", "number": 1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp model.CaptionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Caption != "Living it up in New York today!" {
		t.Errorf("caption = %q", resp.Caption)
	}
	if resp.CaptionType != model.StyleBaity {
		t.Errorf("caption_type = %q", resp.CaptionType)
	}
}

func TestGenerate_EmptyLocationRejectedBeforeUpstream(t *testing.T) {
	provider := &stubProvider{text: "anything"}
	src := &failingSource{}
	r := testRouter(provider, src)

	w := postGenerate(t, r, `{"location": "   ", "number": 2}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if provider.calls != 0 {
		t.Errorf("completion calls = %d, want 0", provider.calls)
	}
	if src.calls != 0 {
		t.Errorf("data-source calls = %d, want 0", src.calls)
	}
}

func TestGenerate_CompletionFailureIs500(t *testing.T) {
	provider := &stubProvider{err: errors.New("connection refused")}
	r := testRouter(provider, &failingSource{})

	w := postGenerate(t, r, `{"location": "Austin", "number": 1}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestGenerate_EventStyleAllMissesStillSucceeds(t *testing.T) {
	provider := &stubProvider{text: "Nothing beats a live show with friends around here!"}
	r := testRouter(provider, &failingSource{})

	start := time.Now()
	w := postGenerate(t, r, `{"location": "Austin", "number": 3}`)
	elapsed := time.Since(start)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp model.CaptionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.CaptionType != model.StyleEvent {
		t.Errorf("caption_type = %q", resp.CaptionType)
	}
	if resp.Caption == "" {
		t.Error("caption is empty")
	}
	if elapsed > 2*time.Second {
		t.Errorf("request took %v, expected the event search to stay bounded", elapsed)
	}
}

func TestGenerate_RotationCyclesStyles(t *testing.T) {
	provider := &stubProvider{text: "A perfectly fine caption for testing purposes."}
	r := testRouter(provider, &failingSource{})

	wantByNumber := map[int]model.Style{
		1: model.StyleBaity,
		2: model.StyleOpinion,
		4: model.StyleBaity,
		5: model.StyleOpinion,
	}
	for n, want := range wantByNumber {
		w := postGenerate(t, r, `{"location": "Austin", "number": `+strconv.Itoa(n)+`}`)
		if w.Code != http.StatusOK {
			t.Fatalf("number %d: status = %d", n, w.Code)
		}
		var resp model.CaptionResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.CaptionType != want {
			t.Errorf("number %d: caption_type = %q, want %q", n, resp.CaptionType, want)
		}
	}
}

func TestRoot(t *testing.T) {
	r := testRouter(&stubProvider{}, &failingSource{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Caption Generator API") {
		t.Errorf("body = %s", w.Body.String())
	}
}
