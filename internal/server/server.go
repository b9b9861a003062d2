package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hazelpaw/captionforge/internal/compose"
	"github.com/hazelpaw/captionforge/internal/llm"
	"github.com/hazelpaw/captionforge/internal/model"
	"github.com/hazelpaw/captionforge/internal/sanitize"
)

// NewRouter wires the HTTP surface
func NewRouter(cfg model.ServerConfig, composer *compose.Composer, provider llm.Provider, sanitizer *sanitize.Sanitizer) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	h := NewHandler(composer, provider, sanitizer)

	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.POST("/generate", h.Generate)

	return r
}
