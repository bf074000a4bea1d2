package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler holds shared dependencies (config) for all route handlers.
type Handler struct {
	cfg *Config
}

/* ─── Helpers ─────────────────────────────────────────────────────────── */

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

/* ─── Middleware ──────────────────────────────────────────────────────── */

// requestIDMiddleware tags every request with an ID, echoed in the
// X-Request-ID response header. An inbound X-Request-ID is preserved so
// callers can correlate across proxies.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// corsMiddleware builds the CORS policy from config. The calculator has no
// cookies or auth, so no credentials are allowed.
func corsMiddleware(cfg *Config) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
		MaxAge:       12 * time.Hour,
	})
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.GET("/options", h.getOptions)
	api.POST("/plan", h.computePlan)
	api.POST("/exercise", h.estimateExercise)
}
