package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daymade/medscribe/internal/app/api"
	apperrors "github.com/daymade/medscribe/internal/app/errors"
	"github.com/daymade/medscribe/internal/config"
)

func registerFactoryFakes(t *testing.T) {
	t.Helper()
	// The shared creator registry is package-global; re-registering the
	// same type in another test run is harmless because the map assignment
	// just replaces the creator.
	RegisterProvider("gemini", func(cfg Config) (api.ConsultationProcessor, error) {
		if cfg.APIKey == "" {
			return nil, apperrors.MissingCredential(config.EnvGeminiAPIKey)
		}
		return &fakeProcessor{name: "gemini"}, nil
	})
	RegisterProvider("openai", func(cfg Config) (api.ConsultationProcessor, error) {
		if cfg.APIKey == "" {
			return nil, apperrors.MissingCredential(config.EnvOpenAIAPIKey)
		}
		return &fakeProcessor{name: "openai"}, nil
	})
}

func TestBuildRegistrySkipsUnconfiguredProviders(t *testing.T) {
	registerFactoryFakes(t)

	registry, err := BuildRegistry("gemini", config.APIKeys{Gemini: "AIzaTest"}, config.DefaultPrompts())
	require.NoError(t, err)

	assert.Equal(t, []string{"gemini"}, registry.List())
	assert.Equal(t, "gemini", registry.DefaultName())
}

func TestBuildRegistryBuildsAllConfiguredProviders(t *testing.T) {
	registerFactoryFakes(t)

	registry, err := BuildRegistry("openai",
		config.APIKeys{Gemini: "AIzaTest", OpenAI: "sk-test"}, config.DefaultPrompts())
	require.NoError(t, err)

	assert.Equal(t, []string{"gemini", "openai"}, registry.List())
	assert.Equal(t, "openai", registry.DefaultName())
}

func TestBuildRegistryDefaultProviderMissingKey(t *testing.T) {
	registerFactoryFakes(t)

	_, err := BuildRegistry("gemini", config.APIKeys{OpenAI: "sk-test"}, config.DefaultPrompts())

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthentication))
	assert.Contains(t, err.Error(), config.EnvGeminiAPIKey)
}

func TestBuildRegistryNoCredentialsAtAll(t *testing.T) {
	registerFactoryFakes(t)

	// No default pinned, no keys: nothing can be built.
	_, err := BuildRegistry("", config.APIKeys{}, config.DefaultPrompts())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no provider credentials")
}

func TestConfigModelFor(t *testing.T) {
	prompts := config.DefaultPrompts()

	assert.Equal(t, prompts.Models.Gemini, Config{Prompts: prompts}.ModelFor("gemini"))
	assert.Equal(t, prompts.Models.OpenAI, Config{Prompts: prompts}.ModelFor("openai"))
	assert.Equal(t, "custom", Config{Model: "custom", Prompts: prompts}.ModelFor("gemini"))
}
