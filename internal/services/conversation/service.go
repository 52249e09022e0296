// Package conversation maintains session-keyed conversation transcripts and
// drives chat exchanges against the generation capability. Transcripts live
// in the cache as (optionally encrypted) JSON blobs keyed by session ID.
package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/josephmowjew/communication-agent/internal/core/cache"
	"github.com/josephmowjew/communication-agent/internal/core/llm"
	"github.com/josephmowjew/communication-agent/internal/domain/models"
	"github.com/josephmowjew/communication-agent/internal/pkg/encryption"
)

// DefaultSessionID is the well-known key used when the boundary layer does
// not supply a session identifier, preserving single-session behavior.
const DefaultSessionID = "default"

// healthProbeMessage is the trivial prompt used for health checks.
const healthProbeMessage = "Hi"

// Service runs chat turns over session transcripts.
type Service struct {
	cacheClient cache.Client
	encryptor   encryption.Encryptor
	generator   llm.Generator
	ttl         time.Duration
}

// Config holds the configuration for the conversation service.
type Config struct {
	CacheClient cache.Client
	Encryptor   encryption.Encryptor
	Generator   llm.Generator
	// TTL bounds how long an idle transcript survives. Zero means no
	// expiry.
	TTL time.Duration
}

// NewService creates a conversation service.
func NewService(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.CacheClient == nil {
		return nil, fmt.Errorf("cache client is required")
	}
	if cfg.Encryptor == nil {
		return nil, fmt.Errorf("encryptor is required")
	}
	if cfg.Generator == nil {
		return nil, fmt.Errorf("generator is required")
	}
	return &Service{
		cacheClient: cfg.CacheClient,
		encryptor:   cfg.Encryptor,
		generator:   cfg.Generator,
		ttl:         cfg.TTL,
	}, nil
}

// transcriptKey generates the cache key for a session transcript.
func transcriptKey(sessionID string) string {
	return "transcript:" + sessionID
}

// load retrieves the transcript for a session, returning a fresh empty one
// when none exists. An undecryptable or corrupted blob is dropped and
// replaced rather than failing the request.
func (s *Service) load(ctx context.Context, sessionID string) (*models.Transcript, error) {
	key := transcriptKey(sessionID)

	blob, err := s.cacheClient.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get transcript from cache: %w", err)
	}
	if blob == nil {
		return models.NewTranscript(sessionID), nil
	}

	decrypted, err := s.encryptor.Decrypt(string(blob))
	if err != nil {
		// Key changed or blob damaged: start over for this session.
		log.Warn().Str("session", sessionID).Msg("dropping undecryptable transcript")
		_, _ = s.cacheClient.Delete(ctx, key)
		return models.NewTranscript(sessionID), nil
	}

	var transcript models.Transcript
	if err := json.Unmarshal(decrypted, &transcript); err != nil {
		log.Warn().Str("session", sessionID).Msg("dropping corrupted transcript")
		_, _ = s.cacheClient.Delete(ctx, key)
		return models.NewTranscript(sessionID), nil
	}
	return &transcript, nil
}

// store writes the transcript back to the cache.
func (s *Service) store(ctx context.Context, transcript *models.Transcript) error {
	data, err := json.Marshal(transcript)
	if err != nil {
		return fmt.Errorf("failed to marshal transcript: %w", err)
	}

	encrypted, err := s.encryptor.Encrypt(data)
	if err != nil {
		return fmt.Errorf("failed to encrypt transcript: %w", err)
	}

	key := transcriptKey(transcript.SessionID)
	if err := s.cacheClient.Set(ctx, key, []byte(encrypted), s.ttl); err != nil {
		return fmt.Errorf("failed to store transcript in cache: %w", err)
	}
	return nil
}

// Send runs one chat turn for a session: it formats the history+input
// prompt, invokes generation, appends both turns to the transcript and
// returns the trimmed response text.
func (s *Service) Send(ctx context.Context, sessionID, message string) (string, error) {
	transcript, err := s.load(ctx, sessionID)
	if err != nil {
		return "", err
	}

	prompt := buildChatPrompt(transcript.Turns, message)
	log.Debug().Str("session", sessionID).Int("history_turns", len(transcript.Turns)).Msg("generating chat response")

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Str("session", sessionID).Msg("chat generation failed")
		return "", err
	}
	answer := strings.TrimSpace(raw)

	transcript.Append(models.RoleHuman, message)
	transcript.Append(models.RoleAssistant, answer)
	if err := s.store(ctx, transcript); err != nil {
		return "", err
	}
	return answer, nil
}

// History returns the ordered transcript for a session. A session that has
// never spoken yields an empty sequence.
func (s *Service) History(ctx context.Context, sessionID string) ([]models.Turn, error) {
	transcript, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return transcript.Turns, nil
}

// Clear wipes the transcript for a session synchronously.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if _, err := s.cacheClient.Delete(ctx, transcriptKey(sessionID)); err != nil {
		return fmt.Errorf("failed to clear transcript: %w", err)
	}
	log.Info().Str("session", sessionID).Msg("conversation cleared")
	return nil
}

// HealthCheck issues a trivial generation call and reports whether a
// non-empty response came back. Any failure counts as unhealthy.
func (s *Service) HealthCheck(ctx context.Context) bool {
	raw, err := s.generator.Generate(ctx, healthProbeMessage)
	if err != nil {
		log.Error().Err(err).Msg("health check failed")
		return false
	}
	return strings.TrimSpace(raw) != ""
}
