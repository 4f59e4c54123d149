package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"consultly/models"
	"consultly/services/scheduling"
	"consultly/utils"
)

// BookingHandler exposes booking creation and queries.
type BookingHandler struct {
	Svc    scheduling.SchedulingService
	Logger *zap.Logger
}

func NewBookingHandler(svc scheduling.SchedulingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// CreateBooking reserves an instant. The payment reference must already have
// been obtained from the payment provider.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req scheduling.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := h.Svc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.Svc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// ListProfessionalBookings lists the authenticated professional's bookings,
// optionally filtered by ?status=.
func (h *BookingHandler) ListProfessionalBookings(c *gin.Context) {
	professionalID := c.GetString("professionalID")
	status := models.BookingStatus(c.Query("status"))

	bookings, err := h.Svc.ListBookings(c.Request.Context(), professionalID, status)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *BookingHandler) ListClientBookings(c *gin.Context) {
	bookings, err := h.Svc.ListClientBookings(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// respondSchedulingError maps the core's typed errors onto HTTP statuses.
func respondSchedulingError(c *gin.Context, err error) {
	switch {
	case scheduling.IsValidation(err):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
	case scheduling.IsConflict(err):
		utils.JSONError(c, http.StatusConflict, "slot no longer available", err.Error())
	case scheduling.IsNotFound(err):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case scheduling.IsIllegalState(err):
		utils.JSONError(c, http.StatusConflict, "booking is not pending", err.Error())
	case errors.Is(err, scheduling.ErrNoSlotAvailable):
		utils.JSONError(c, http.StatusNotFound, "no slot available", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
