package server

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hazelpaw/captionforge/internal/compose"
	"github.com/hazelpaw/captionforge/internal/llm"
	"github.com/hazelpaw/captionforge/internal/model"
	"github.com/hazelpaw/captionforge/internal/sanitize"
)

// Handler serves the caption endpoints. Each request runs a single
// pass: validate, compose, complete, sanitize.
type Handler struct {
	composer  *compose.Composer
	provider  llm.Provider
	sanitizer *sanitize.Sanitizer
}

// NewHandler creates a Handler
func NewHandler(composer *compose.Composer, provider llm.Provider, sanitizer *sanitize.Sanitizer) *Handler {
	return &Handler{composer: composer, provider: provider, sanitizer: sanitizer}
}

// Root handles GET /
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Caption Generator API is running. Use /generate endpoint to create captions.",
	})
}

// Health handles GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "provider": h.provider.Name()})
}

// Generate handles POST /generate. The rotation number maps onto the
// three styles with period 3; data-source misses degrade silently and
// only a completion failure surfaces as a 500.
func (h *Handler) Generate(c *gin.Context) {
	var req model.CaptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	location := strings.TrimSpace(req.Location)
	if location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location cannot be empty"})
		return
	}

	style := compose.StyleForNumber(req.Number)
	prompt := h.composer.Compose(c.Request.Context(), style, location, strings.TrimSpace(req.Description))

	resp, err := h.provider.Complete(c.Request.Context(), llm.CompletionRequest{
		System: prompt.System,
		User:   prompt.User,
	})
	if err != nil {
		slog.Error("completion call failed", "style", style, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "completion API error"})
		return
	}

	caption := h.sanitizer.Clean(resp.Text, style, location)
	slog.Info("caption generated", "style", style, "location", location, "tokens", resp.TokensUsed)

	c.JSON(http.StatusOK, model.CaptionResponse{
		Caption:     caption,
		CaptionType: style,
	})
}
