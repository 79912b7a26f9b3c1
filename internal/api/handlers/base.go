// Package handlers contains the gateway's HTTP request handlers.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/radichu/radichu-serve/internal/config"
	"github.com/radichu/radichu-serve/internal/playlist"
	"github.com/radichu/radichu-serve/internal/schedule"
)

// ContextKeyRequestID is the Gin context key under which the request-ID
// middleware stores the ID for the current request.
const ContextKeyRequestID = "request_id"

// Handlers holds the services the route handlers depend on.
type Handlers struct {
	cfg      *config.Config
	resolver *schedule.Resolver
	schedule *schedule.Client
	playlist playlist.Fetcher
}

// NewHandlers creates the handler set with its dependencies injected.
func NewHandlers(cfg *config.Config, resolver *schedule.Resolver, scheduleClient *schedule.Client, fetcher playlist.Fetcher) *Handlers {
	return &Handlers{
		cfg:      cfg,
		resolver: resolver,
		schedule: scheduleClient,
		playlist: fetcher,
	}
}

// Root serves the unauthenticated greeting.
func (h *Handlers) Root(c *gin.Context) {
	c.String(200, "Hello World!")
}

// requestID returns the request ID set by the middleware, if any.
func requestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}
