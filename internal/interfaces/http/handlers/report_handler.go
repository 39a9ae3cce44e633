package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"verifyme.backend/internal/domain/entities"
	domainerrors "verifyme.backend/internal/domain/errors"
	"verifyme.backend/internal/interfaces/http/response"
	"verifyme.backend/internal/usecases"
)

// ReportHandler handles suspicious-handle reports
type ReportHandler struct {
	reportUsecase *usecases.ReportUsecase
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportUsecase *usecases.ReportUsecase) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
	}
}

// Create stores a report from an end user
// POST /api/reports
func (h *ReportHandler) Create(c *gin.Context) {
	var input entities.CreateReportInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("reporter_name, reported_channel and reason are required"))
		return
	}

	if _, err := h.reportUsecase.Create(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"success": true,
	})
}
