package provider

import (
	"github.com/daymade/medscribe/internal/config"
)

// Config carries everything a creator needs to build a processor. The
// credential is resolved from the environment by the factory so creators
// can report exactly which variable is missing.
type Config struct {
	// Type selects the registered creator ("gemini", "openai").
	Type string

	// APIKey is the provider credential. Empty means not configured.
	APIKey string

	// Model overrides the prompts config model for this provider, if set.
	Model string

	// Prompts holds the per-step instructions and the report template.
	Prompts config.PromptsConfig
}

// ModelFor returns the effective model for the configured provider type.
func (c Config) ModelFor(providerType string) string {
	if c.Model != "" {
		return c.Model
	}
	switch providerType {
	case "openai":
		return c.Prompts.Models.OpenAI
	default:
		return c.Prompts.Models.Gemini
	}
}
