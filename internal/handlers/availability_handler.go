package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/court-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/court-scheduler/internal/httperr"
	"github.com/BruksfildServices01/court-scheduler/internal/httpresp"
	usecase "github.com/BruksfildServices01/court-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	getSlots  *usecase.GetAvailableSlots
	checkSlot *usecase.CheckSlotAvailability
}

func NewAvailabilityHandler(
	getSlots *usecase.GetAvailableSlots,
	checkSlot *usecase.CheckSlotAvailability,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		getSlots:  getSlots,
		checkSlot: checkSlot,
	}
}

// ======================================================
// GET /courts/:id/availability?date=YYYY-MM-DD
// ======================================================

func (h *AvailabilityHandler) GetSlots(c *gin.Context) {
	courtID := c.Param("id")
	date := c.Query("date")

	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	result, err := h.getSlots.Execute(c.Request.Context(), domain.AvailabilityInput{
		CourtID: courtID,
		Date:    date,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, result)
}

// ======================================================
// GET /courts/:id/availability/check?date=...&start_time=...
// ======================================================

func (h *AvailabilityHandler) CheckSlot(c *gin.Context) {
	courtID := c.Param("id")
	date := c.Query("date")
	startTime := c.Query("start_time")

	if date == "" || startTime == "" {
		httperr.BadRequest(c, "missing_date_or_time", "Data e horário obrigatórios.")
		return
	}

	available, err := h.checkSlot.Execute(c.Request.Context(), courtID, date, startTime)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"court_id":     courtID,
		"date":         date,
		"start_time":   startTime,
		"is_available": available,
	})
}
