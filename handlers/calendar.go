package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"consultly/services/scheduling"
	"consultly/utils"
)

// CalendarHandler exposes the bookable-calendar and next-slot views.
type CalendarHandler struct {
	Svc      scheduling.SchedulingService
	Location *time.Location
	Logger   *zap.Logger
}

func NewCalendarHandler(svc scheduling.SchedulingService, loc *time.Location, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{Svc: svc, Location: loc, Logger: logger}
}

// GetCalendar returns the expanded, booked-annotated calendar for
// /professionals/:id/calendar?from=YYYY-MM-DD&to=YYYY-MM-DD. Missing bounds
// default to the next 7 days.
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	professionalID := c.Param("id")

	now := time.Now().In(h.Location)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.Location)
	to := from.AddDate(0, 0, 7)

	var err error
	if q := c.Query("from"); q != "" {
		if from, err = time.ParseInLocation("2006-01-02", q, h.Location); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid from date", err.Error())
			return
		}
		to = from.AddDate(0, 0, 7)
	}
	if q := c.Query("to"); q != "" {
		if to, err = time.ParseInLocation("2006-01-02", q, h.Location); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid to date", err.Error())
			return
		}
	}

	days, err := h.Svc.GetCalendar(c.Request.Context(), professionalID, from, to)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"professionalId": professionalID, "days": days})
}

// NextSlot reports the soonest free instant. Advisory: the slot can be taken
// by the time the client submits, in which case creation returns a conflict.
func (h *CalendarHandler) NextSlot(c *gin.Context) {
	professionalID := c.Param("id")

	slot, err := h.Svc.NextAvailable(c.Request.Context(), professionalID, time.Now())
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slot": slot})
}
