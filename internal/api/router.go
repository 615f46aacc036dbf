// Package api exposes the URL translator over HTTP for serve mode.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linode/legacy-to-techdocs/internal/stats"
	"github.com/linode/legacy-to-techdocs/internal/translate"
)

// Router wires the conversion API routes.
type Router struct {
	engine  *gin.Engine
	handler *Handler
	hub     *Hub
}

// NewRouter creates a router over the shared translator.
func NewRouter(translator *translate.Translator, collector *stats.Collector, hub *Hub) *Router {
	gin.SetMode(gin.ReleaseMode)

	r := &Router{
		engine:  gin.New(),
		handler: NewHandler(translator, collector, hub),
		hub:     hub,
	}

	r.engine.Use(gin.Recovery())
	r.engine.Use(corsMiddleware())
	r.engine.Use(gin.Logger())

	r.setupRoutes()

	return r
}

func (r *Router) setupRoutes() {
	v1 := r.engine.Group("/v1")
	{
		v1.GET("/convert", r.handler.Convert)
		v1.POST("/convert", r.handler.ConvertBatch)
		v1.GET("/redirect", r.handler.Redirect)

		v1.GET("/stats", r.handler.GetStats)
		v1.POST("/stats/reset", r.handler.ResetStats)

		v1.GET("/health", r.handler.HealthCheck)
	}

	// WebSocket stream of live conversion events.
	r.engine.GET("/v1/events", gin.WrapH(NewWebSocketHandler(r.hub)))
}

// Handler returns the http.Handler.
func (r *Router) Handler() http.Handler {
	return r.engine
}

// corsMiddleware adds CORS headers.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
