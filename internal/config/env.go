package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names. The provider API keys are the only secrets
// the application handles; everything else is plumbing.
const (
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvOpenAIAPIKey = "OPENAI_API_KEY"

	EnvProvider    = "MEDSCRIBE_PROVIDER"
	EnvHost        = "MEDSCRIBE_HOST"
	EnvPort        = "MEDSCRIBE_PORT"
	EnvEnvironment = "MEDSCRIBE_ENV"
	EnvMaxUploadMB = "MEDSCRIBE_MAX_UPLOAD_MB"

	EnvArchiveEndpoint  = "ARCHIVE_ENDPOINT"
	EnvArchiveBucket    = "ARCHIVE_BUCKET"
	EnvArchiveAccessKey = "ARCHIVE_ACCESS_KEY"
	EnvArchiveSecretKey = "ARCHIVE_SECRET_KEY"
	EnvArchiveUseSSL    = "ARCHIVE_USE_SSL"
)

// LoadEnv loads a .env file from the first location that has one. Values
// already present in the process environment win, godotenv never overrides.
func LoadEnv() error {
	candidates := []string{
		".env",
		filepath.Join("configs", ".env"),
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".medscribe", ".env"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return godotenv.Load(path)
	}
	return nil
}

// APIKeys holds the provider credentials loaded from the environment.
type APIKeys struct {
	Gemini string
	OpenAI string
}

// GetAPIKeys reads the provider credentials. Missing keys are not an error
// here; the provider that needs a key reports it at construction time.
func GetAPIKeys() APIKeys {
	return APIKeys{
		Gemini: strings.TrimSpace(os.Getenv(EnvGeminiAPIKey)),
		OpenAI: strings.TrimSpace(os.Getenv(EnvOpenAIAPIKey)),
	}
}

// Warnings reports keys that are present but do not look like the
// provider's usual format. A surprising prefix is worth a log line, not a
// refusal, since both providers accept project-scoped key variants.
func (k APIKeys) Warnings() []string {
	var warnings []string
	if k.Gemini != "" && !strings.HasPrefix(k.Gemini, "AIza") {
		warnings = append(warnings, EnvGeminiAPIKey+" does not start with 'AIza'")
	}
	if k.OpenAI != "" && !strings.HasPrefix(k.OpenAI, "sk-") {
		warnings = append(warnings, EnvOpenAIAPIKey+" does not start with 'sk-'")
	}
	return warnings
}

// ServerConfig is the HTTP server surface read from the environment.
type ServerConfig struct {
	Host           string
	Port           string
	Environment    string
	Provider       string
	MaxUploadBytes int64
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
}

// ServerFromEnv builds the server configuration with defaults suitable for
// local development. The write timeout is generous because a processing run
// blocks the request for three provider round-trips.
func ServerFromEnv() ServerConfig {
	cfg := ServerConfig{
		Host:           envOr(EnvHost, "0.0.0.0"),
		Port:           envOr(EnvPort, "8080"),
		Environment:    envOr(EnvEnvironment, "development"),
		Provider:       envOr(EnvProvider, "gemini"),
		MaxUploadBytes: 200 << 20,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   10 * time.Minute,
		IdleTimeout:    120 * time.Second,
	}

	if raw := os.Getenv(EnvMaxUploadMB); raw != "" {
		if mb, err := strconv.ParseInt(raw, 10, 64); err == nil && mb > 0 {
			cfg.MaxUploadBytes = mb << 20
		}
	}
	return cfg
}

// ArchiveConfig is the optional object-storage copy of uploaded audio.
// Archiving stays off unless an endpoint and bucket are both configured.
type ArchiveConfig struct {
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// ArchiveFromEnv reads the archive settings.
func ArchiveFromEnv() ArchiveConfig {
	return ArchiveConfig{
		Endpoint:  os.Getenv(EnvArchiveEndpoint),
		Bucket:    os.Getenv(EnvArchiveBucket),
		AccessKey: os.Getenv(EnvArchiveAccessKey),
		SecretKey: os.Getenv(EnvArchiveSecretKey),
		UseSSL:    os.Getenv(EnvArchiveUseSSL) == "true",
	}
}

// Enabled reports whether archiving is configured at all.
func (c ArchiveConfig) Enabled() bool {
	return c.Endpoint != "" && c.Bucket != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
