package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"verifyme.backend/internal/domain/entities"
	domainerrors "verifyme.backend/internal/domain/errors"
	"verifyme.backend/internal/interfaces/http/middleware"
	"verifyme.backend/internal/interfaces/http/response"
	"verifyme.backend/internal/usecases"
)

// CSVHandler handles the bulk import and verification endpoints. The
// upload endpoint takes already-parsed records; parsing the CSV file is
// the frontend's job.
type CSVHandler struct {
	bulkUsecase *usecases.BulkUsecase
}

// NewCSVHandler creates a new csv handler
func NewCSVHandler(bulkUsecase *usecases.BulkUsecase) *CSVHandler {
	return &CSVHandler{
		bulkUsecase: bulkUsecase,
	}
}

// Upload imports a batch of channel records for the authenticated company
// POST /api/csv/upload
func (h *CSVHandler) Upload(c *gin.Context) {
	companyID, ok := middleware.GetCompanyID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("not authenticated"))
		return
	}

	var input struct {
		Channels []*entities.ImportRecord `json:"channels" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	channels, err := h.bulkUsecase.ImportBatch(c.Request.Context(), companyID, input.Channels)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":       "Import successful",
		"count":         len(channels),
		"verifications": channels,
	})
}

// Verify runs ownership checks for the given channel ids
// POST /api/csv/verify
func (h *CSVHandler) Verify(c *gin.Context) {
	companyID, ok := middleware.GetCompanyID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("not authenticated"))
		return
	}

	var input struct {
		VerificationIDs []uuid.UUID `json:"verificationIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	channels, err := h.bulkUsecase.VerifyBatch(c.Request.Context(), companyID, input.VerificationIDs)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Verification complete",
		"results": channels,
	})
}
