package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/daymade/medscribe/internal/api/v1/handlers"
	"github.com/daymade/medscribe/internal/api/v1/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	ConsultationService services.ConsultationService
	ArtifactService     services.ArtifactService
	ProviderService     services.ProviderService
	StatsService        services.StatsService
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	consultationHandler := handlers.NewConsultationHandler(container.ConsultationService)
	router.POST("/consultations", consultationHandler.Create)

	artifactHandler := handlers.NewArtifactHandler(container.ArtifactService)
	artifacts := router.Group("/artifacts")
	{
		artifacts.GET("", artifactHandler.List)
		artifacts.GET("/:type", artifactHandler.Get)
		artifacts.GET("/:type/download", artifactHandler.Download)
	}
	router.GET("/audio/preview", artifactHandler.AudioPreview)
	router.DELETE("/session", artifactHandler.ResetSession)

	providerHandler := handlers.NewProviderHandler(container.ProviderService)
	router.GET("/providers", providerHandler.List)

	if container.StatsService != nil {
		statsHandler := handlers.NewStatsHandler(container.StatsService)
		router.GET("/stats", statsHandler.Get)
	}
}
