// Package routes defines the HTTP routes for the Communication Agent Service.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/josephmowjew/communication-agent/internal/api/handlers"
	"github.com/josephmowjew/communication-agent/internal/api/middleware"
)

// Config holds the dependencies for setting up routes.
type Config struct {
	HealthHandler *handlers.HealthHandler
	ChatHandler   *handlers.ChatHandler
	EmailHandler  *handlers.EmailHandler
}

// Setup configures all routes on the Gin engine.
func Setup(r *gin.Engine, cfg *Config) {
	// Root liveness probe
	r.GET("/", cfg.HealthHandler.Root)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/status", cfg.HealthHandler.Status)

		v1.POST("/chat", cfg.ChatHandler.Chat)
		v1.GET("/chat/history", cfg.ChatHandler.History)
		v1.POST("/chat/clear", cfg.ChatHandler.Clear)

		v1.POST("/email/respond", cfg.EmailHandler.Respond)
	}

	r.NoRoute(middleware.NotFound())
}

// SetupWithMiddleware sets up routes with common middleware.
func SetupWithMiddleware(r *gin.Engine, cfg *Config, loggingMw *middleware.LoggingMiddleware, errorMw *middleware.ErrorMiddleware) {
	r.Use(middleware.NewCORSMiddleware(middleware.DefaultCORSConfig()))
	r.Use(loggingMw.Logger())
	r.Use(errorMw.Recovery())
	r.Use(gin.Recovery())

	Setup(r, cfg)
}
