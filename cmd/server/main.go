// Package main is the entry point for the Communication Agent Service.
// @title Communication Agent API
// @version 1.0
// @description HTTP service that forwards chat and customer-email-response requests to a locally hosted language model, with rule-based tone detection.

// @host localhost:8000
// @BasePath /
// @schemes http
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/josephmowjew/communication-agent/internal/api/handlers"
	"github.com/josephmowjew/communication-agent/internal/api/middleware"
	"github.com/josephmowjew/communication-agent/internal/api/routes"
	"github.com/josephmowjew/communication-agent/internal/config"
	"github.com/josephmowjew/communication-agent/internal/domain/models"
	rediscache "github.com/josephmowjew/communication-agent/internal/infrastructure/cache/redis"
	openaillm "github.com/josephmowjew/communication-agent/internal/infrastructure/llm/openai"
	"github.com/josephmowjew/communication-agent/internal/pkg/encryption"
	"github.com/josephmowjew/communication-agent/internal/services/conversation"
	"github.com/josephmowjew/communication-agent/internal/services/responder"
	"github.com/josephmowjew/communication-agent/internal/services/tone"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogger(cfg.Log)

	// Initialize transcript cache
	cacheClient, err := rediscache.NewClient(rediscache.Config{
		Host:     cfg.Cache.Host,
		Port:     cfg.Cache.Port,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize cache client")
	}
	defer cacheClient.Close()

	// Initialize transcript encryptor
	encryptor, err := createEncryptor(cfg.Cache.EncryptionKey)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize encryptor")
	}

	// Initialize generation client
	generator := openaillm.NewClient(openaillm.Config{
		BaseURL:     cfg.Ollama.Host,
		Model:       cfg.Ollama.Model,
		MaxRetries:  cfg.Ollama.MaxRetries,
		Timeout:     cfg.Ollama.Timeout,
		Temperature: cfg.Generation.Temperature,
		MaxTokens:   cfg.Generation.MaxTokens,
		TopP:        cfg.Generation.TopP,
	})
	defer generator.Close()

	// The service still starts when the model backend is down; requests
	// surface it as service-unavailable.
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := generator.Ping(pingCtx); err != nil {
		log.Warn().Err(err).Str("host", cfg.Ollama.Host).Msg("model backend unreachable at startup")
	} else {
		log.Info().Str("host", cfg.Ollama.Host).Str("model", cfg.Ollama.Model).Msg("model backend ready")
	}
	cancel()

	// Initialize tone classifier
	classifier, err := tone.NewClassifier()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tone classifier")
	}

	// Initialize responder service
	responderSvc, err := responder.NewService(generator, classifier, models.GenerationSettings{
		Temperature: cfg.Generation.Temperature,
		MaxTokens:   cfg.Generation.MaxTokens,
		TopP:        cfg.Generation.TopP,
		TopK:        cfg.Generation.TopK,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize responder service")
	}

	// Initialize conversation service
	conversationSvc, err := conversation.NewService(&conversation.Config{
		CacheClient: cacheClient,
		Encryptor:   encryptor,
		Generator:   generator,
		TTL:         cfg.Cache.TranscriptTTL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize conversation service")
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Setup router
	router := gin.New()
	routes.SetupWithMiddleware(router, &routes.Config{
		HealthHandler: handlers.NewHealthHandler(conversationSvc),
		ChatHandler:   handlers.NewChatHandler(conversationSvc),
		EmailHandler:  handlers.NewEmailHandler(responderSvc, conversationSvc),
	}, middleware.NewLoggingMiddleware(), middleware.NewErrorMiddleware())

	// Create HTTP server
	srv := &http.Server{
		Addr:    cfg.Server.Address(),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", cfg.Server.Address()).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

// setupLogger configures the global zerolog logger from config.
func setupLogger(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
}

// createEncryptor picks the transcript encryptor based on configuration.
func createEncryptor(key string) (encryption.Encryptor, error) {
	if key == "" {
		log.Warn().Msg("TRANSCRIPT_ENCRYPTION_KEY not set, storing transcripts unencrypted")
		return encryption.NewNoOpEncryptor(), nil
	}
	return encryption.NewAESEncryptor(key)
}
