package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daymade/medscribe/internal/api/v1/services"
)

// StatsHandler handles the run statistics endpoint.
type StatsHandler struct {
	service services.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service services.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Get handles GET /api/v1/stats
//
// @Summary In-memory pipeline statistics
// @Description Runs, failures by stage, and durations per provider since process start.
// @Tags stats
// @Produce json
// @Success 200 {object} provider.OverallStats
// @Router /stats [get]
func (h *StatsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Overall())
}
