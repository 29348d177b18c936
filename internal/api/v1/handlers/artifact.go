package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/daymade/medscribe/internal/api/middleware"
	"github.com/daymade/medscribe/internal/api/v1/services"
)

// ArtifactHandler serves the session's stored artifacts and their
// downloads.
type ArtifactHandler struct {
	service services.ArtifactService
}

// NewArtifactHandler creates a new artifact handler
func NewArtifactHandler(service services.ArtifactService) *ArtifactHandler {
	return &ArtifactHandler{service: service}
}

// List handles GET /api/v1/artifacts
//
// @Summary List the session's artifacts
// @Description Returns metadata for every artifact the session currently holds, in presentation order.
// @Tags artifacts
// @Produce json
// @Success 200 {array} dto.ArtifactMeta
// @Router /artifacts [get]
func (h *ArtifactHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(middleware.SessionID(c)))
}

// Get handles GET /api/v1/artifacts/:type
//
// @Summary Get one artifact with content
// @Tags artifacts
// @Produce json
// @Param type path string true "Artifact type" Enums(transcript,conversation,report)
// @Success 200 {object} dto.ArtifactContent
// @Failure 400 {object} errors.APIError "Unknown artifact type"
// @Failure 404 {object} errors.APIError "Artifact not present in this session"
// @Router /artifacts/{type} [get]
func (h *ArtifactHandler) Get(c *gin.Context) {
	artifact, err := h.service.Get(middleware.SessionID(c), c.Param("type"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, artifact)
}

// Download handles GET /api/v1/artifacts/:type/download
//
// @Summary Download one artifact as a text attachment
// @Description The attachment filename is {artifact_type}_{timestamp}.{ext}, stamped at the moment of download.
// @Tags artifacts
// @Produce plain
// @Param type path string true "Artifact type" Enums(transcript,conversation,report)
// @Success 200 {string} string "Artifact text"
// @Failure 404 {object} errors.APIError "Artifact not present in this session"
// @Router /artifacts/{type}/download [get]
func (h *ArtifactHandler) Download(c *gin.Context) {
	download, err := h.service.Download(middleware.SessionID(c), c.Param("type"), time.Now())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+download.Filename+`"`)
	c.Data(http.StatusOK, download.ContentType, []byte(download.Content))
}

// AudioPreview handles GET /api/v1/audio/preview
//
// @Summary Presigned preview URL for the session's archived upload
// @Tags artifacts
// @Produce json
// @Success 200 {object} dto.AudioPreview
// @Failure 404 {object} errors.APIError "Archiving disabled or nothing uploaded"
// @Router /audio/preview [get]
func (h *ArtifactHandler) AudioPreview(c *gin.Context) {
	preview, err := h.service.AudioPreview(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// ResetSession handles DELETE /api/v1/session
//
// @Summary Reset the session
// @Description Drops all stored artifacts and run metadata for the calling session.
// @Tags artifacts
// @Success 204 "Session reset"
// @Router /session [delete]
func (h *ArtifactHandler) ResetSession(c *gin.Context) {
	h.service.ResetSession(middleware.SessionID(c))
	c.Status(http.StatusNoContent)
}
