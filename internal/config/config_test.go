package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephmowjew/communication-agent/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Address())

	assert.Equal(t, "http://localhost:11434", cfg.Ollama.Host)
	assert.Equal(t, "yasserrmd/DeepScaleR-1.5B-Preview:latest", cfg.Ollama.Model)
	assert.Equal(t, 3, cfg.Ollama.MaxRetries)
	assert.Equal(t, 120*time.Second, cfg.Ollama.Timeout)

	assert.Equal(t, 0.3, cfg.Generation.Temperature)
	assert.Equal(t, 4096, cfg.Generation.MaxTokens)
	assert.Equal(t, 0.9, cfg.Generation.TopP)
	assert.Equal(t, 40, cfg.Generation.TopK)

	assert.Equal(t, "localhost", cfg.Cache.Host)
	assert.Equal(t, "6379", cfg.Cache.Port)
	assert.Equal(t, time.Duration(0), cfg.Cache.TranscriptTTL)
	assert.Empty(t, cfg.Cache.EncryptionKey)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("OLLAMA_HOST", "http://model-host:11434")
	t.Setenv("OLLAMA_MODEL", "llama3:8b")
	t.Setenv("TEMPERATURE", "0.7")
	t.Setenv("MAX_TOKENS", "1024")
	t.Setenv("TRANSCRIPT_TTL_SECONDS", "3600")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "http://model-host:11434", cfg.Ollama.Host)
	assert.Equal(t, "llama3:8b", cfg.Ollama.Model)
	assert.Equal(t, 0.7, cfg.Generation.Temperature)
	assert.Equal(t, 1024, cfg.Generation.MaxTokens)
	assert.Equal(t, time.Hour, cfg.Cache.TranscriptTTL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidNumbersFallBackToDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("TEMPERATURE", "warm")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 0.3, cfg.Generation.Temperature)
}
