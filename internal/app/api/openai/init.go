package openai

import (
	"github.com/daymade/medscribe/internal/app/api"
	"github.com/daymade/medscribe/internal/app/api/provider"
)

func init() {
	provider.RegisterProvider(ProviderName, createOpenAIProcessor)
}

func createOpenAIProcessor(cfg provider.Config) (api.ConsultationProcessor, error) {
	return New(cfg.APIKey, cfg.ModelFor(ProviderName), cfg.Prompts)
}
