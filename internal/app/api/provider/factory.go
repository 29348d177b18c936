package provider

import (
	"github.com/daymade/medscribe/internal/app/api"
	apperrors "github.com/daymade/medscribe/internal/app/errors"
	"github.com/daymade/medscribe/internal/config"
)

// Build constructs a single processor of the given type. Credential
// resolution happens in the creator so authentication errors name the
// exact environment variable.
func Build(cfg Config) (api.ConsultationProcessor, error) {
	creator, err := GetCreator(cfg.Type)
	if err != nil {
		return nil, err
	}
	return creator(cfg)
}

// BuildRegistry constructs every registered provider type whose credential
// is configured and returns them in one registry, with defaultType
// selected as the default. A provider whose key is missing is skipped
// silently unless it is the requested default; then its authentication
// error propagates, because the caller cannot process anything without it.
func BuildRegistry(defaultType string, keys config.APIKeys, prompts config.PromptsConfig) (*Registry, error) {
	registry := NewRegistry()

	var defaultErr error
	for _, providerType := range RegisteredTypes() {
		cfg := Config{
			Type:    providerType,
			APIKey:  keyFor(providerType, keys),
			Prompts: prompts,
		}

		processor, err := Build(cfg)
		if err != nil {
			if providerType == defaultType {
				defaultErr = err
			}
			continue
		}
		if err := registry.Register(processor); err != nil {
			return nil, err
		}
	}

	if defaultErr != nil {
		return nil, defaultErr
	}
	if len(registry.List()) == 0 {
		return nil, apperrors.Wrap(apperrors.ErrProviderNotFound,
			"no provider credentials configured")
	}
	if defaultType != "" {
		if err := registry.SetDefault(defaultType); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func keyFor(providerType string, keys config.APIKeys) string {
	switch providerType {
	case "openai":
		return keys.OpenAI
	default:
		return keys.Gemini
	}
}
