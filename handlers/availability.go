package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"consultly/models"
	"consultly/services/professional"
	"consultly/utils"
)

// AvailabilityHandler exposes weekly availability management for
// professionals.
type AvailabilityHandler struct {
	Svc    professional.AvailabilityService
	Logger *zap.Logger
}

func NewAvailabilityHandler(svc professional.AvailabilityService, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc, Logger: logger}
}

// SetupAvailability replaces the authenticated professional's weekly blocks.
func (h *AvailabilityHandler) SetupAvailability(c *gin.Context) {
	professionalID := c.GetString("professionalID")

	var req models.SetupAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	blocks, err := h.Svc.SetupAvailability(c.Request.Context(), professionalID, req)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocks": blocks})
}

func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	blocks, err := h.Svc.GetAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocks": blocks})
}

func (h *AvailabilityHandler) DeleteBlock(c *gin.Context) {
	professionalID := c.GetString("professionalID")

	err := h.Svc.DeleteBlock(c.Request.Context(), professionalID, c.Param("blockId"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "availability block not found", "")
			return
		}
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
