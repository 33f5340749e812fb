// Package llm provides the language model configuration and client abstractions
// used to generate resume drafts. Providers, credentials and model selection are
// pluggable so a single generation path serves every deployment.
package llm

import (
	"fmt"
	"maps"
	"strings"
)

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for short, cheap completions
	TierLite ModelTier = "lite"
	// TierStandard is the default for draft generation
	TierStandard ModelTier = "standard"
	// TierAdvanced is for long or demanding drafts
	TierAdvanced ModelTier = "advanced"
)

// ParseTier maps a name to a ModelTier, defaulting to TierStandard.
func ParseTier(s string) ModelTier {
	switch ModelTier(s) {
	case TierLite, TierAdvanced:
		return ModelTier(s)
	default:
		return TierStandard
	}
}

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderAnthropic is the Anthropic provider
	ProviderAnthropic Provider = "anthropic"
)

// ParseProvider maps a case-insensitive name to a Provider.
func ParseProvider(s string) (Provider, error) {
	switch p := Provider(strings.ToLower(strings.TrimSpace(s))); p {
	case ProviderGemini, ProviderAnthropic:
		return p, nil
	default:
		return "", fmt.Errorf("unknown provider %q (want gemini or anthropic)", s)
	}
}

// Config selects a provider and the model behind each tier.
type Config struct {
	Provider    Provider
	Models      map[ModelTier]string
	Temperature float32
	MaxTokens   int
}

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 4096
)

var defaultModels = map[Provider]map[ModelTier]string{
	ProviderGemini: {
		TierLite:     "gemini-2.5-flash-lite",
		TierStandard: "gemini-2.5-flash",
		TierAdvanced: "gemini-2.5-pro",
	},
	ProviderAnthropic: {
		TierLite:     "claude-3-5-haiku-latest",
		TierStandard: "claude-sonnet-4-5",
		TierAdvanced: "claude-opus-4-1",
	},
}

// ConfigFor returns the defaults of p. Unknown providers get Gemini.
func ConfigFor(p Provider) *Config {
	if _, ok := defaultModels[p]; !ok {
		p = ProviderGemini
	}
	return &Config{
		Provider:    p,
		Models:      maps.Clone(defaultModels[p]),
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
	}
}

// DefaultConfig is ConfigFor(ProviderGemini).
func DefaultConfig() *Config { return ConfigFor(ProviderGemini) }

// DefaultGeminiConfig is ConfigFor(ProviderGemini).
func DefaultGeminiConfig() *Config { return ConfigFor(ProviderGemini) }

// DefaultAnthropicConfig is ConfigFor(ProviderAnthropic).
func DefaultAnthropicConfig() *Config { return ConfigFor(ProviderAnthropic) }

// GetModel returns the model for tier. A tier with no model falls back to
// standard, then lite, then "".
func (c *Config) GetModel(tier ModelTier) string {
	for _, t := range []ModelTier{tier, TierStandard, TierLite} {
		if model := c.Models[t]; model != "" {
			return model
		}
	}
	return ""
}

// WithModel returns a copy of c with tier mapped to model.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	out := *c
	out.Models = maps.Clone(c.Models)
	if out.Models == nil {
		out.Models = map[ModelTier]string{}
	}
	out.Models[tier] = model
	return &out
}
