// Package openai provides the llm.Generator implementation backed by the
// OpenAI-compatible endpoint of a local Ollama server.
package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/josephmowjew/communication-agent/internal/core/llm"
)

// Config holds the configuration for the generation client.
type Config struct {
	// BaseURL is the Ollama server address; the OpenAI-compatible API is
	// served under /v1.
	BaseURL string
	Model   string
	// MaxRetries is the number of additional attempts after a
	// transport-level failure. Retry policy lives here, not in callers.
	MaxRetries  int
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
	TopP        float64
}

// Client implements llm.Generator using the go-openai chat-completion API.
type Client struct {
	client *openai.Client
	cfg    Config
}

// NewClient creates a new generation client.
func NewClient(cfg Config) *Client {
	// Ollama ignores the API key but the client requires one.
	clientCfg := openai.DefaultConfig("ollama")
	clientCfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/") + "/v1"
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	clientCfg.HTTPClient = &http.Client{Timeout: timeout}

	return &Client{
		client: openai.NewClientWithConfig(clientCfg),
		cfg:    cfg,
	}
}

// Generate sends the assembled prompt as a single user message and returns
// the raw generated text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: float32(c.cfg.Temperature),
		MaxTokens:   c.cfg.MaxTokens,
		TopP:        float32(c.cfg.TopP),
	}

	var resp openai.ChatCompletionResponse
	var err error
	attempts := c.cfg.MaxRetries + 1
	if attempts < 1 {
		attempts = 1
	}
	for attempt := 1; attempt <= attempts; attempt++ {
		resp, err = c.client.CreateChatCompletion(ctx, req)
		if err == nil {
			break
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", llm.NewError(llm.KindCanceled, "generation request canceled", err)
		}
		log.Warn().Err(err).Int("attempt", attempt).Msg("generation request failed")
	}
	if err != nil {
		return "", llm.NewError(llm.KindUnavailable, "model backend is not responding", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", llm.NewError(llm.KindEmptyOutput, "model returned an empty response", nil)
	}
	return resp.Choices[0].Message.Content, nil
}

// Ping verifies the backend is reachable by listing available models.
func (c *Client) Ping(ctx context.Context) error {
	reqCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := c.client.ListModels(reqCtx); err != nil {
		return llm.NewError(llm.KindUnavailable, "model backend is not responding", err)
	}
	return nil
}

// Close releases any resources held by the client.
func (c *Client) Close() error {
	return nil
}
