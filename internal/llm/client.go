package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoText is returned when a provider answers without any text content.
var ErrNoText = errors.New("no text in model response")

// ErrMissingKey is returned when a client is built without an API key.
var ErrMissingKey = errors.New("API key is required")

// Client sends a single prompt to a provider and returns the text answer.
type Client interface {
	GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GetModel names the model a tier maps to, for logs and draft metadata.
	GetModel(tier ModelTier) string
	Close() error
}

// NewClient builds the client for config.Provider with the key found by creds.
// A nil config means Gemini defaults; nil creds means the provider's usual
// environment variables.
func NewClient(ctx context.Context, config *Config, creds CredentialSource) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if creds == nil {
		creds = DefaultCredentials(config.Provider, "")
	}

	apiKey, err := creds.APIKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to locate %s API key: %w", config.Provider, err)
	}

	switch config.Provider {
	case ProviderAnthropic:
		return NewAnthropicClient(config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}
