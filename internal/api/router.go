// Package api wires the gateway's routes and middleware.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/radichu/radichu-serve/internal/api/handlers"
	"github.com/radichu/radichu-serve/internal/auth"
	"github.com/radichu/radichu-serve/internal/config"
	"github.com/radichu/radichu-serve/internal/playlist"
	"github.com/radichu/radichu-serve/internal/schedule"
	"github.com/radichu/radichu-serve/pkg/logger"
	"github.com/radichu/radichu-serve/pkg/version"
)

// SetupRouter configures and returns the gateway router with all routes and
// middleware. The playlist fetcher is injected so the collaborator can be
// replaced in tests.
func SetupRouter(cfg *config.Config, fetcher playlist.Fetcher) *gin.Engine {
	resolver, err := schedule.NewResolver(cfg.Schedule.Timezone)
	if err != nil {
		logger.Fatal("Failed to create date resolver: %v", err)
	}

	scheduleClient := schedule.NewClient(cfg.Schedule.BaseURL, cfg.Schedule.RequestTimeout)
	h := handlers.NewHandlers(cfg, resolver, scheduleClient, fetcher)
	gate := auth.NewGate(cfg.Auth.Token)

	// Set Gin mode based on environment
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestIDMiddleware())
	r.Use(corsMiddleware())

	r.GET("/", h.Root)

	// One schedule handler behind two routes: the legacy path predates the
	// date/channel query parameters and keeps its fixed behavior.
	r.GET("/schedule", h.Schedule(true))
	r.GET("/radiko-proxy", h.Schedule(false))

	r.GET("/play/:stationId/:ft/:to/playlist.m3u8", gate.Middleware(), h.Playlist)
	r.GET("/live/:stationId/playlist.m3u8", gate.Middleware(), h.Playlist)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "radichu-serve",
			"version": version.Version,
		})
	})

	return r
}

// corsMiddleware permits cross-origin requests from any origin on all routes.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requestIDMiddleware tags every request with an ID for log correlation,
// reusing the caller's X-Request-ID when present.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(handlers.ContextKeyRequestID, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
