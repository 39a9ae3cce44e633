package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "verifyme.backend/internal/domain/errors"
	"verifyme.backend/internal/interfaces/http/response"
	"verifyme.backend/internal/usecases"
)

// VerifyHandler handles the public verification endpoints
type VerifyHandler struct {
	verifyUsecase *usecases.VerifyUsecase
}

// NewVerifyHandler creates a new verify handler
func NewVerifyHandler(verifyUsecase *usecases.VerifyUsecase) *VerifyHandler {
	return &VerifyHandler{
		verifyUsecase: verifyUsecase,
	}
}

// Verify answers whether a channel value belongs to a verified company
// POST /api/verify
func (h *VerifyHandler) Verify(c *gin.Context) {
	var input struct {
		InputValue string `json:"input_value" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("input_value is required"))
		return
	}

	result, err := h.verifyUsecase.Verify(c.Request.Context(), input.InputValue)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Analytics returns aggregate verification attempt stats
// GET /api/analytics
func (h *VerifyHandler) Analytics(c *gin.Context) {
	stats, err := h.verifyUsecase.Analytics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"total_verifications": stats.TotalVerifications,
		"verified_count":      stats.VerifiedCount,
		"stats": gin.H{
			"today": stats.Today,
			"week":  stats.Week,
			"month": stats.Month,
		},
	})
}
