package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"verifyme.backend/internal/domain/entities"
	domainerrors "verifyme.backend/internal/domain/errors"
	"verifyme.backend/internal/interfaces/http/middleware"
	"verifyme.backend/internal/interfaces/http/response"
	"verifyme.backend/internal/usecases"
	"verifyme.backend/pkg/utils"
)

// ChannelHandler handles channel registry endpoints
type ChannelHandler struct {
	channelUsecase *usecases.ChannelUsecase
}

// NewChannelHandler creates a new channel handler
func NewChannelHandler(channelUsecase *usecases.ChannelUsecase) *ChannelHandler {
	return &ChannelHandler{
		channelUsecase: channelUsecase,
	}
}

// Create registers a new channel for the authenticated company
// POST /api/channels
func (h *ChannelHandler) Create(c *gin.Context) {
	companyID, ok := middleware.GetCompanyID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("not authenticated"))
		return
	}

	var input entities.CreateChannelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	channel, err := h.channelUsecase.Create(c.Request.Context(), companyID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, channel)
}

// List returns the authenticated company's channels in insertion order,
// optionally paginated with ?page= and ?limit=
// GET /api/channels
func (h *ChannelHandler) List(c *gin.Context) {
	companyID, ok := middleware.GetCompanyID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("not authenticated"))
		return
	}

	channels, err := h.channelUsecase.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		response.Error(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	params := utils.GetPaginationParams(page, limit)

	total := int64(len(channels))
	if params.Limit > 0 {
		offset := params.CalculateOffset()
		if offset > len(channels) {
			offset = len(channels)
		}
		end := offset + params.Limit
		if end > len(channels) {
			end = len(channels)
		}
		channels = channels[offset:end]
	}

	response.Success(c, http.StatusOK, gin.H{
		"channels":   channels,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// Delete removes a channel owned by the authenticated company. Deleting
// an unknown id still succeeds.
// DELETE /api/channels/:id
func (h *ChannelHandler) Delete(c *gin.Context) {
	companyID, ok := middleware.GetCompanyID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("not authenticated"))
		return
	}

	channelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid channel id"))
		return
	}

	if err := h.channelUsecase.Remove(c.Request.Context(), companyID, channelID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Channel removed",
	})
}
