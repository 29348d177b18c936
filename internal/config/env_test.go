package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIKeyWarnings(t *testing.T) {
	tests := []struct {
		name string
		keys APIKeys
		want int
	}{
		{"both empty", APIKeys{}, 0},
		{"valid prefixes", APIKeys{Gemini: "AIzaSyTest123", OpenAI: "sk-test123"}, 0},
		{"odd gemini prefix", APIKeys{Gemini: "key-123"}, 1},
		{"odd openai prefix", APIKeys{OpenAI: "token-123"}, 1},
		{"both odd", APIKeys{Gemini: "x", OpenAI: "y"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.keys.Warnings(), tt.want)
		})
	}
}

func TestGetAPIKeysTrimsWhitespace(t *testing.T) {
	t.Setenv(EnvGeminiAPIKey, "  AIzaSyTest123  ")
	t.Setenv(EnvOpenAIAPIKey, "sk-test123\n")

	keys := GetAPIKeys()

	assert.Equal(t, "AIzaSyTest123", keys.Gemini)
	assert.Equal(t, "sk-test123", keys.OpenAI)
}

func TestServerFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvHost, "")
	t.Setenv(EnvPort, "")
	t.Setenv(EnvEnvironment, "")
	t.Setenv(EnvProvider, "")
	t.Setenv(EnvMaxUploadMB, "")

	cfg := ServerFromEnv()

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, int64(200<<20), cfg.MaxUploadBytes)
}

func TestServerFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvProvider, "openai")
	t.Setenv(EnvMaxUploadMB, "50")

	cfg := ServerFromEnv()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, int64(50<<20), cfg.MaxUploadBytes)
}

func TestServerFromEnvIgnoresBadUploadLimit(t *testing.T) {
	t.Setenv(EnvMaxUploadMB, "not-a-number")

	assert.Equal(t, int64(200<<20), ServerFromEnv().MaxUploadBytes)
}

func TestArchiveEnabled(t *testing.T) {
	assert.False(t, ArchiveConfig{}.Enabled())
	assert.False(t, ArchiveConfig{Endpoint: "localhost:9000"}.Enabled())
	assert.True(t, ArchiveConfig{Endpoint: "localhost:9000", Bucket: "consults"}.Enabled())
}
