package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daymade/medscribe/internal/api/v1/services"
)

// ProviderHandler handles provider discovery.
type ProviderHandler struct {
	service services.ProviderService
}

// NewProviderHandler creates a new provider handler
func NewProviderHandler(service services.ProviderService) *ProviderHandler {
	return &ProviderHandler{service: service}
}

// List handles GET /api/v1/providers
//
// @Summary List registered providers
// @Tags providers
// @Produce json
// @Success 200 {object} dto.ProvidersResponse
// @Router /providers [get]
func (h *ProviderHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List())
}
