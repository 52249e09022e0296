// Package config handles application configuration loading and management.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Server     ServerConfig
	Ollama     OllamaConfig
	Generation GenerationConfig
	Cache      CacheConfig
	Log        LogConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host    string
	Port    int
	GinMode string
}

// Address returns the server address in host:port format.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// OllamaConfig holds connection settings for the local model runtime.
type OllamaConfig struct {
	// Host is the base URL of the Ollama server. The client talks to its
	// OpenAI-compatible endpoint under /v1.
	Host       string
	Model      string
	MaxRetries int
	Timeout    time.Duration
}

// GenerationConfig holds the fixed model sampling parameters.
type GenerationConfig struct {
	Temperature float64
	MaxTokens   int
	TopP        float64
	TopK        int
}

// CacheConfig holds transcript cache configuration.
type CacheConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	// TranscriptTTL bounds how long an idle transcript survives in the
	// cache. Zero means no expiry.
	TranscriptTTL time.Duration
	// EncryptionKey, when set, enables AES-GCM encryption of cached
	// transcript blobs.
	EncryptionKey string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:    getEnv("SERVER_HOST", "0.0.0.0"),
			Port:    getEnvAsInt("SERVER_PORT", 8000),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Ollama: OllamaConfig{
			Host:       getEnv("OLLAMA_HOST", "http://localhost:11434"),
			Model:      getEnv("OLLAMA_MODEL", "yasserrmd/DeepScaleR-1.5B-Preview:latest"),
			MaxRetries: getEnvAsInt("OLLAMA_MAX_RETRIES", 3),
			Timeout:    time.Duration(getEnvAsInt("OLLAMA_TIMEOUT_SECONDS", 120)) * time.Second,
		},
		Generation: GenerationConfig{
			Temperature: getEnvAsFloat("TEMPERATURE", 0.3),
			MaxTokens:   getEnvAsInt("MAX_TOKENS", 4096),
			TopP:        getEnvAsFloat("TOP_P", 0.9),
			TopK:        getEnvAsInt("TOP_K", 40),
		},
		Cache: CacheConfig{
			Host:          getEnv("REDIS_HOST", "localhost"),
			Port:          getEnv("REDIS_PORT", "6379"),
			Password:      getEnv("REDIS_PASSWORD", ""),
			DB:            getEnvAsInt("REDIS_DB", 0),
			TranscriptTTL: time.Duration(getEnvAsInt("TRANSCRIPT_TTL_SECONDS", 0)) * time.Second,
			EncryptionKey: getEnv("TRANSCRIPT_ENCRYPTION_KEY", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}

	return cfg, nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer with a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat gets an environment variable as a float with a default value.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
