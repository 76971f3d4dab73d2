package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// ErrNoChoices is returned when the provider answers without any completion.
var ErrNoChoices = errors.New("no choices in response")

// OpenAIOptions configures an OpenAIProvider.
type OpenAIOptions struct {
	// APIKey is sent as a bearer token. An empty key is passed through and
	// rejected by the provider.
	APIKey string

	// BaseURL is the OpenAI-compatible endpoint, e.g. Gemini's
	// https://generativelanguage.googleapis.com/v1beta/openai/
	BaseURL string

	// Model is the fixed model identifier.
	Model string

	// HTTPClient overrides the transport. If nil, http.DefaultClient is used.
	HTTPClient *http.Client

	// Logger for debug output. If nil, a no-op logger is used.
	Logger *zap.Logger
}

// OpenAIProvider implements Generator for any OpenAI-compatible chat
// completion endpoint.
type OpenAIProvider struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewOpenAIProvider creates a new OpenAI-compatible provider
func NewOpenAIProvider(opts OpenAIOptions) *OpenAIProvider {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	config := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		// go-openai appends "/chat/completions" itself
		config.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	}
	if opts.HTTPClient != nil {
		config.HTTPClient = opts.HTTPClient
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		model:  opts.Model,
		logger: logger,
	}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Model returns the model identifier used for requests
func (p *OpenAIProvider) Model() string {
	return p.model
}

// Generate sends prompt as a single user message and returns the text of
// the first choice.
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	p.logger.Debug("sending generation request", zap.String("model", p.model), zap.Int("promptLength", len(prompt)))

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	p.logger.Debug("generation finished",
		zap.String("finishReason", string(resp.Choices[0].FinishReason)),
		zap.Int("promptTokens", resp.Usage.PromptTokens),
		zap.Int("completionTokens", resp.Usage.CompletionTokens),
	)

	return resp.Choices[0].Message.Content, nil
}
