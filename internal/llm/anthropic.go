package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicClient implements Client for the Anthropic Messages API
type AnthropicClient struct {
	client   anthropic.Client
	config   *Config
	resolver ModelResolver
}

// NewAnthropicClient creates a new Anthropic client
func NewAnthropicClient(config *Config, apiKey string, opts ...anthropicoption.RequestOption) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, ErrMissingKey
	}
	opts = append([]anthropicoption.RequestOption{anthropicoption.WithAPIKey(apiKey)}, opts...)

	return &AnthropicClient{
		client:   anthropic.NewClient(opts...),
		config:   config,
		resolver: StaticModels{Config: config},
	}, nil
}

// GenerateContent generates text content using the specified model tier
func (c *AnthropicClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	model, err := c.resolver.Resolve(ctx, tier)
	if err != nil {
		return "", err
	}

	maxTokens := int64(c.config.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(float64(c.config.Temperature)),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	var parts []string
	for _, block := range msg.Content {
		if block.Type == "text" {
			parts = append(parts, block.Text)
		}
	}
	if len(parts) == 0 {
		return "", ErrNoText
	}
	return strings.Join(parts, ""), nil
}

// GetModel returns the model name for a tier
func (c *AnthropicClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close is a no-op; the HTTP client holds no resources that need releasing.
func (c *AnthropicClient) Close() error {
	return nil
}
