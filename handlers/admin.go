package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"consultly/services/scheduling"
	"consultly/utils"
)

// AdminHandler exposes the approval workflow. Routes are gated by the admin
// auth middleware; the handlers assume the caller is already authorized.
type AdminHandler struct {
	Svc    scheduling.SchedulingService
	Logger *zap.Logger
}

func NewAdminHandler(svc scheduling.SchedulingService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Logger: logger}
}

// ApproveBooking confirms a pending booking and attaches the meeting link.
func (h *AdminHandler) ApproveBooking(c *gin.Context) {
	var input struct {
		MeetingLink string `json:"meetingLink" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := h.Svc.Approve(c.Request.Context(), c.Param("id"), input.MeetingLink)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// RejectBooking cancels a pending booking.
func (h *AdminHandler) RejectBooking(c *gin.Context) {
	booking, err := h.Svc.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}
