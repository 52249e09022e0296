package responder_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/josephmowjew/communication-agent/internal/core/llm"
	"github.com/josephmowjew/communication-agent/internal/domain/models"
	"github.com/josephmowjew/communication-agent/internal/services/responder"
	"github.com/josephmowjew/communication-agent/internal/services/tone"
)

// mockGenerator is a testify mock for the llm.Generator port.
type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *mockGenerator) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockGenerator) Close() error {
	return nil
}

var testSettings = models.GenerationSettings{
	Temperature: 0.3,
	MaxTokens:   4096,
	TopP:        0.9,
	TopK:        40,
}

func newService(t *testing.T, gen *mockGenerator) *responder.Service {
	t.Helper()
	classifier, err := tone.NewClassifier()
	require.NoError(t, err)
	svc, err := responder.NewService(gen, classifier, testSettings)
	require.NoError(t, err)
	return svc
}

func TestGenerateEmailResponse_ExplicitToneSkipsDetection(t *testing.T) {
	gen := &mockGenerator{}
	gen.On("Generate", mock.Anything, mock.Anything).Return("Dear Customer,\n\nAll set.\n\nRegards", nil)
	svc := newService(t, gen)

	resp, err := svc.GenerateEmailResponse(context.Background(), responder.Request{
		CustomerMessage: "URGENT!! My account is locked, this is unacceptable!!!",
		Tone:            "formal",
	})

	require.NoError(t, err)
	assert.Equal(t, models.ToneFormal, resp.Metadata.ToneUsed)
	assert.Nil(t, resp.Metadata.ToneDetection)
	gen.AssertExpectations(t)
}

func TestGenerateEmailResponse_AutoDetectsTone(t *testing.T) {
	gen := &mockGenerator{}
	gen.On("Generate", mock.Anything, mock.Anything).Return("Dear Customer, on it.", nil)
	svc := newService(t, gen)

	resp, err := svc.GenerateEmailResponse(context.Background(), responder.Request{
		CustomerMessage: "URGENT!! My account is locked, this is unacceptable!!!",
	})

	require.NoError(t, err)
	assert.Equal(t, models.ToneDirect, resp.Metadata.ToneUsed)
	require.NotNil(t, resp.Metadata.ToneDetection)
	assert.Equal(t, models.ToneDirect, resp.Metadata.ToneDetection.DetectedTone)
	assert.Len(t, resp.Metadata.ToneDetection.Factors, 4)
}

func TestGenerateEmailResponse_InvalidToneFallsBackToProfessional(t *testing.T) {
	gen := &mockGenerator{}
	gen.On("Generate", mock.Anything, mock.Anything).Return("Dear Customer, done.", nil)
	svc := newService(t, gen)

	resp, err := svc.GenerateEmailResponse(context.Background(), responder.Request{
		CustomerMessage: "Where do I update my billing details?",
		Tone:            "sarcastic",
	})

	require.NoError(t, err)
	assert.Equal(t, models.ToneProfessional, resp.Metadata.ToneUsed)
	// Explicit tone (even invalid) suppresses detection metadata.
	assert.Nil(t, resp.Metadata.ToneDetection)
}

func TestGenerateEmailResponse_PromptContents(t *testing.T) {
	gen := &mockGenerator{}
	var captured string
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		captured = prompt
		return true
	})).Return("Dear Sam, thanks.", nil)
	svc := newService(t, gen)

	interactions := 4
	resp, err := svc.GenerateEmailResponse(context.Background(), responder.Request{
		CustomerMessage: "My invoice looks wrong.",
		Context: &models.EmailContext{
			CustomerName:         "Sam Carter",
			AccountType:          "enterprise",
			PreviousInteractions: &interactions,
		},
		Tone:      "professional",
		MaxLength: 1024,
	})

	require.NoError(t, err)
	assert.Contains(t, captured, "Customer Information:")
	assert.Contains(t, captured, "- Customer Name: Sam Carter")
	assert.Contains(t, captured, "- Account Type: enterprise")
	assert.Contains(t, captured, "- Previous Interactions: 4")
	assert.Contains(t, captured, "My invoice looks wrong.")
	assert.Contains(t, captured, "Stay within 1024 characters")
	assert.Contains(t, captured, tone.Guideline(models.ToneProfessional))
	assert.Equal(t, len(captured), resp.Metadata.ContextLength)
}

func TestGenerateEmailResponse_NoContextSentence(t *testing.T) {
	gen := &mockGenerator{}
	var captured string
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		captured = prompt
		return true
	})).Return("Dear Customer, sure.", nil)
	svc := newService(t, gen)

	_, err := svc.GenerateEmailResponse(context.Background(), responder.Request{
		CustomerMessage: "Can you reset my password?",
		Tone:            "friendly",
	})

	require.NoError(t, err)
	assert.Contains(t, captured, "No additional context provided.")
	// Default length budget applies when none is given.
	assert.Contains(t, captured, "Stay within 2048 characters")
}

func TestGenerateEmailResponse_ContextLengthExceedsMessageLength(t *testing.T) {
	gen := &mockGenerator{}
	gen.On("Generate", mock.Anything, mock.Anything).Return("Dear Customer, ok.", nil)
	svc := newService(t, gen)

	msg := "Short question."
	resp, err := svc.GenerateEmailResponse(context.Background(), responder.Request{
		CustomerMessage: msg,
	})

	require.NoError(t, err)
	assert.Greater(t, resp.Metadata.ContextLength, len(msg))
}

func TestGenerateEmailResponse_StripsThinkingSegment(t *testing.T) {
	gen := &mockGenerator{}
	gen.On("Generate", mock.Anything, mock.Anything).
		Return("<think>The customer is upset, I should apologize.</think>\nDear Customer,\n\nSorry about that.", nil)
	svc := newService(t, gen)

	resp, err := svc.GenerateEmailResponse(context.Background(), responder.Request{
		CustomerMessage: "This is broken again.",
		Tone:            "empathetic",
	})

	require.NoError(t, err)
	assert.Equal(t, "Dear Customer,\n\nSorry about that.", resp.Message)
}

func TestGenerateEmailResponse_GenerationFailurePropagates(t *testing.T) {
	gen := &mockGenerator{}
	genErr := llm.NewError(llm.KindUnavailable, "model backend is not responding", nil)
	gen.On("Generate", mock.Anything, mock.Anything).Return("", genErr)
	svc := newService(t, gen)

	_, err := svc.GenerateEmailResponse(context.Background(), responder.Request{
		CustomerMessage: "Hello?",
	})

	require.Error(t, err)
	assert.True(t, llm.IsKind(err, llm.KindUnavailable))
}

func TestGenerateEmailResponse_ResultEnvelope(t *testing.T) {
	gen := &mockGenerator{}
	gen.On("Generate", mock.Anything, mock.Anything).Return("  Dear Customer, fixed.  ", nil)
	svc := newService(t, gen)

	resp, err := svc.GenerateEmailResponse(context.Background(), responder.Request{
		CustomerMessage: "Please fix this.",
		Tone:            "direct",
	})

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "Dear Customer, fixed.", resp.Message)
	assert.GreaterOrEqual(t, resp.ExecutionTimeMs, 0.0)
	assert.Equal(t, testSettings, resp.Metadata.GenerationSettings)
	assert.False(t, resp.Metadata.Timestamp.IsZero())
}
