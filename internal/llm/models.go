package llm

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
)

// ModelResolver picks the model name used for a tier.
type ModelResolver interface {
	Resolve(ctx context.Context, tier ModelTier) (string, error)
}

// StaticModels resolves tiers from a fixed Config.
type StaticModels struct {
	Config *Config
}

func (s StaticModels) Resolve(_ context.Context, tier ModelTier) (string, error) {
	if s.Config == nil {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}
	model := s.Config.GetModel(tier)
	if model == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}
	return model, nil
}

// ModelInfo describes a model offered by a provider.
type ModelInfo struct {
	Name    string
	Methods []string
}

// Supports reports whether the model offers a generation method.
func (m ModelInfo) Supports(method string) bool {
	for _, have := range m.Methods {
		if have == method {
			return true
		}
	}
	return false
}

// ModelLister lists the models available to the current credentials.
type ModelLister interface {
	ListModels(ctx context.Context) ([]ModelInfo, error)
}

// generateContentMethod is the Gemini generation method a draft needs.
const generateContentMethod = "generateContent"

// DefaultGeminiPreference orders model name fragments from most to least preferred.
var DefaultGeminiPreference = []string{"flash", "pro"}

// DiscoverModels asks the provider which models the key can use and picks one.
// Every tier resolves to the same discovered model. When discovery fails or
// finds nothing usable, Fallback is consulted. A successful discovery is cached.
type DiscoverModels struct {
	Lister     ModelLister
	Preference []string
	Fallback   ModelResolver

	mu    sync.Mutex
	model string
}

func (d *DiscoverModels) Resolve(ctx context.Context, tier ModelTier) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.model != "" {
		return d.model, nil
	}

	models, err := d.Lister.ListModels(ctx)
	if err == nil {
		if model := pickModel(models, d.Preference); model != "" {
			log.Printf("[llm] discovered model %s", model)
			d.model = model
			return model, nil
		}
		err = fmt.Errorf("none of %d models supports %s", len(models), generateContentMethod)
	}

	if d.Fallback == nil {
		return "", fmt.Errorf("model discovery failed: %w", err)
	}
	log.Printf("[llm] model discovery failed, using configured models: %v", err)
	return d.Fallback.Resolve(ctx, tier)
}

// pickModel returns the first usable model matching the earliest preference,
// or the first usable model when no preference matches.
func pickModel(models []ModelInfo, preference []string) string {
	var usable []string
	for _, m := range models {
		if m.Supports(generateContentMethod) {
			usable = append(usable, m.Name)
		}
	}
	for _, want := range preference {
		for _, name := range usable {
			if strings.Contains(name, want) {
				return name
			}
		}
	}
	if len(usable) > 0 {
		return usable[0]
	}
	return ""
}
