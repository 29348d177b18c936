package services

import (
	"github.com/daymade/medscribe/internal/api/v1/dto"
	"github.com/daymade/medscribe/internal/app/api/provider"
)

// DefaultProviderService exposes the processor registry.
type DefaultProviderService struct {
	registry *provider.Registry
}

var _ ProviderService = (*DefaultProviderService)(nil)

func NewProviderService(registry *provider.Registry) *DefaultProviderService {
	return &DefaultProviderService{registry: registry}
}

func (s *DefaultProviderService) List() dto.ProvidersResponse {
	return dto.ProvidersResponse{
		Providers: s.registry.List(),
		Default:   s.registry.DefaultName(),
	}
}
