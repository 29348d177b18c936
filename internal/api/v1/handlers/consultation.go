package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daymade/medscribe/internal/api/errors"
	"github.com/daymade/medscribe/internal/api/middleware"
	"github.com/daymade/medscribe/internal/api/v1/dto"
	"github.com/daymade/medscribe/internal/api/v1/services"
)

// ConsultationHandler handles the processing endpoint.
type ConsultationHandler struct {
	service services.ConsultationService
}

// NewConsultationHandler creates a new consultation handler
func NewConsultationHandler(service services.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{service: service}
}

// Create handles POST /api/v1/consultations
// Runs the three-step chain synchronously over one uploaded MP3
//
// @Summary Process a consultation recording
// @Description Uploads one MP3 and runs transcription, conversation formatting, and report summarization in order. The request blocks until the chain finishes or a step fails; artifacts produced before the failing step stay available.
// @Tags consultations
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "MP3 consultation recording"
// @Param provider formData string false "Provider to use" Enums(gemini,openai)
// @Success 200 {object} dto.RunResponse "Run summary with artifact metadata"
// @Failure 400 {object} errors.APIError "Unsupported or oversized file"
// @Failure 401 {object} errors.APIError "Provider credential missing or invalid"
// @Failure 502 {object} errors.APIError "A chain step failed at the provider"
// @Router /consultations [post]
func (h *ConsultationHandler) Create(c *gin.Context) {
	var form dto.CreateConsultationForm
	if err := middleware.ValidateForm(c, &form); err != nil {
		middleware.HandleError(c, err)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("No file uploaded"))
		return
	}
	defer file.Close()

	response, err := h.service.Process(c.Request.Context(), middleware.SessionID(c), services.ConsultationUpload{
		Reader:   file,
		Filename: header.Filename,
		Provider: form.Provider,
	})
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
