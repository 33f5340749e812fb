package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GeminiClient talks to the Gemini API.
type GeminiClient struct {
	api      *genai.Client
	config   *Config
	resolver ModelResolver
}

// NewGeminiClient returns a client that maps tiers through config.Models.
// Call UseDiscovery to pick from the models the key can reach instead.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string, opts ...option.ClientOption) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrMissingKey
	}
	api, err := genai.NewClient(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	return &GeminiClient{api: api, config: config, resolver: StaticModels{Config: config}}, nil
}

// UseDiscovery resolves models from ListModels, most preferred first, and
// falls back to the configured tiers when nothing matches.
func (c *GeminiClient) UseDiscovery(preference []string) {
	if len(preference) == 0 {
		preference = DefaultGeminiPreference
	}
	c.resolver = &DiscoverModels{
		Lister:     c,
		Preference: preference,
		Fallback:   StaticModels{Config: c.config},
	}
}

func (c *GeminiClient) model(name string) *genai.GenerativeModel {
	m := c.api.GenerativeModel(name)
	m.SetTemperature(c.config.Temperature)
	if c.config.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(c.config.MaxTokens))
	}
	return m
}

func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	name, err := c.resolver.Resolve(ctx, tier)
	if err != nil {
		return "", err
	}
	resp, err := c.model(name).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini %s: %w", name, err)
	}
	return geminiText(resp)
}

// ListModels pages through every model the key can see.
func (c *GeminiClient) ListModels(ctx context.Context) ([]ModelInfo, error) {
	var out []ModelInfo
	it := c.api.ListModels(ctx)
	for {
		m, err := it.Next()
		if errors.Is(err, iterator.Done) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("gemini list models: %w", err)
		}
		out = append(out, ModelInfo{Name: m.Name, Methods: m.SupportedGenerationMethods})
	}
}

func (c *GeminiClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

func (c *GeminiClient) Close() error {
	if c.api == nil {
		return nil
	}
	return c.api.Close()
}

// geminiText joins the text parts of the first candidate.
func geminiText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrNoText
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", ErrNoText
	}
	return sb.String(), nil
}
