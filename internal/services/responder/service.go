// Package responder orchestrates customer-email response generation:
// tone resolution, context formatting, prompt assembly, model invocation
// and metadata construction.
package responder

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/josephmowjew/communication-agent/internal/core/llm"
	"github.com/josephmowjew/communication-agent/internal/domain/models"
	"github.com/josephmowjew/communication-agent/internal/services/tone"
)

// DefaultMaxLength is the response character budget used when a request
// does not specify one.
const DefaultMaxLength = 2048

// Request describes one email-response generation.
type Request struct {
	CustomerMessage string
	Context         *models.EmailContext
	// Tone is the explicit tone label, empty for auto-detection. Kept as a
	// raw string so an unrecognized value coming past the boundary layer
	// can be caught here.
	Tone      string
	MaxLength int
}

// Service generates email responses through the generation capability.
type Service struct {
	generator  llm.Generator
	classifier *tone.Classifier
	settings   models.GenerationSettings
}

// NewService creates a responder service. The tone guideline table is
// validated here so misconfiguration fails at startup.
func NewService(generator llm.Generator, classifier *tone.Classifier, settings models.GenerationSettings) (*Service, error) {
	if err := tone.ValidateGuidelines(); err != nil {
		return nil, err
	}
	return &Service{
		generator:  generator,
		classifier: classifier,
		settings:   settings,
	}, nil
}

// GenerateEmailResponse resolves the tone, assembles the prompt, invokes
// generation and returns the structured result. Generation failures
// propagate to the caller unmodified; no retry happens at this layer.
func (s *Service) GenerateEmailResponse(ctx context.Context, req Request) (*models.EmailResponse, error) {
	start := time.Now()

	// Tone resolution: explicit wins, otherwise detect from the message
	// and context. An unrecognized explicit value falls back to
	// professional rather than failing the request.
	var detection *models.ToneDetection
	toneUsed := models.ToneLabel(req.Tone)
	if req.Tone == "" {
		d := s.classifier.Detect(req.CustomerMessage, req.Context.Map())
		detection = &d
		toneUsed = d.DetectedTone
		log.Info().Str("tone", string(toneUsed)).Msg("auto-detected tone")
	} else if !toneUsed.IsValid() {
		log.Warn().Str("tone", req.Tone).Msg("invalid tone, falling back to professional")
		toneUsed = models.ToneProfessional
	}

	maxLength := req.MaxLength
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	contextBlock := formatContext(req.Context)
	prompt := buildPrompt(contextBlock, tone.Guideline(toneUsed), req.CustomerMessage, maxLength)

	log.Debug().Str("tone", string(toneUsed)).Int("prompt_chars", len(prompt)).Msg("generating email response")
	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Msg("email response generation failed")
		return nil, err
	}

	message := stripThinking(strings.TrimSpace(raw))
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	return &models.EmailResponse{
		Message:         message,
		StatusCode:      http.StatusOK,
		ExecutionTimeMs: elapsed,
		Metadata: models.EmailResponseMetadata{
			ToneUsed:           toneUsed,
			ContextLength:      len(prompt),
			GenerationSettings: s.settings,
			ToneDetection:      detection,
			Timestamp:          time.Now().UTC(),
		},
	}, nil
}
