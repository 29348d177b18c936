package gemini

import (
	"context"

	"github.com/daymade/medscribe/internal/app/api"
	"github.com/daymade/medscribe/internal/app/api/provider"
)

func init() {
	provider.RegisterProvider(ProviderName, createGeminiProcessor)
}

func createGeminiProcessor(cfg provider.Config) (api.ConsultationProcessor, error) {
	return New(context.Background(), cfg.APIKey, cfg.ModelFor(ProviderName), cfg.Prompts)
}
