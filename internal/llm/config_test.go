package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFor(t *testing.T) {
	tests := []struct {
		provider Provider
		want     Provider
		lite     string
		advanced string
	}{
		{ProviderGemini, ProviderGemini, "gemini-2.5-flash-lite", "gemini-2.5-pro"},
		{ProviderAnthropic, ProviderAnthropic, "claude-3-5-haiku-latest", "claude-opus-4-1"},
		{"other", ProviderGemini, "gemini-2.5-flash-lite", "gemini-2.5-pro"},
	}
	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			c := ConfigFor(tt.provider)
			assert.Equal(t, tt.want, c.Provider)
			assert.Equal(t, tt.lite, c.GetModel(TierLite))
			assert.Equal(t, tt.advanced, c.GetModel(TierAdvanced))
			assert.InDelta(t, 0.7, c.Temperature, 1e-6)
			assert.Equal(t, 4096, c.MaxTokens)
		})
	}
	assert.Equal(t, ConfigFor(ProviderGemini), DefaultConfig())
}

func TestConfigFor_ReturnsCopies(t *testing.T) {
	a := DefaultAnthropicConfig()
	a.Models[TierLite] = "changed"
	assert.Equal(t, "claude-3-5-haiku-latest", DefaultAnthropicConfig().GetModel(TierLite))
}

func TestGetModel_Fallback(t *testing.T) {
	tests := []struct {
		name   string
		models map[ModelTier]string
		tier   ModelTier
		want   string
	}{
		{"exact", map[ModelTier]string{TierAdvanced: "big", TierStandard: "mid"}, TierAdvanced, "big"},
		{"falls to standard", map[ModelTier]string{TierStandard: "mid", TierLite: "small"}, TierAdvanced, "mid"},
		{"falls to lite", map[ModelTier]string{TierLite: "small"}, "unknown", "small"},
		{"empty", map[ModelTier]string{}, TierAdvanced, ""},
		{"nil map", nil, TierLite, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{Models: tt.models}
			assert.Equal(t, tt.want, c.GetModel(tt.tier))
		})
	}
}

func TestWithModel(t *testing.T) {
	base := DefaultConfig()
	custom := base.WithModel(TierAdvanced, "custom-model")

	assert.Equal(t, "gemini-2.5-pro", base.GetModel(TierAdvanced), "original unchanged")
	assert.Equal(t, "custom-model", custom.GetModel(TierAdvanced))
	assert.Equal(t, "gemini-2.5-flash-lite", custom.GetModel(TierLite))
	assert.Equal(t, base.Temperature, custom.Temperature)

	empty := (&Config{}).WithModel(TierLite, "x")
	assert.Equal(t, "x", empty.GetModel(TierAdvanced))
}

func TestParseTier(t *testing.T) {
	for in, want := range map[string]ModelTier{
		"lite":     TierLite,
		"advanced": TierAdvanced,
		"standard": TierStandard,
		"":         TierStandard,
		"turbo":    TierStandard,
	} {
		assert.Equal(t, want, ParseTier(in), in)
	}
}

func TestParseProvider(t *testing.T) {
	p, err := ParseProvider(" Anthropic ")
	require.NoError(t, err)
	assert.Equal(t, ProviderAnthropic, p)

	p, err = ParseProvider("gemini")
	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, p)

	_, err = ParseProvider("openai")
	assert.ErrorContains(t, err, "unknown provider")
}
