package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/court-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/court-scheduler/internal/httperr"
	"github.com/BruksfildServices01/court-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/court-scheduler/internal/middleware"
	usecase "github.com/BruksfildServices01/court-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER — agenda administrativa da quadra
// ======================================================

type ScheduleHandler struct {
	repo          domain.ScheduleRepository
	updateHours   *usecase.UpdateOperatingHours
	addSpecial    *usecase.AddSpecialDate
	removeSpecial *usecase.RemoveSpecialDate
	blockSlot     *usecase.BlockSlot
	unblockSlot   *usecase.UnblockSlot
}

func NewScheduleHandler(
	repo domain.ScheduleRepository,
	updateHours *usecase.UpdateOperatingHours,
	addSpecial *usecase.AddSpecialDate,
	removeSpecial *usecase.RemoveSpecialDate,
	blockSlot *usecase.BlockSlot,
	unblockSlot *usecase.UnblockSlot,
) *ScheduleHandler {
	return &ScheduleHandler{
		repo:          repo,
		updateHours:   updateHours,
		addSpecial:    addSpecial,
		removeSpecial: removeSpecial,
		blockSlot:     blockSlot,
		unblockSlot:   unblockSlot,
	}
}

func performer(c *gin.Context) (string, string) {
	userID := c.GetString(middleware.ContextUserID)
	role := c.GetString(middleware.ContextUserRole)
	return userID, role
}

// ======================================================
// GET /admin/courts/:id/schedule
// ======================================================

func (h *ScheduleHandler) Get(c *gin.Context) {
	courtID := c.Param("id")

	schedule, err := h.repo.GetSchedule(c.Request.Context(), courtID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_schedule", "Erro ao carregar agenda.")
		return
	}

	httpresp.OK(c, gin.H{
		"court_id":        courtID,
		"operating_hours": schedule.OperatingHours,
		"special_dates":   schedule.SpecialDates,
		"blocked_slots":   schedule.BlockedSlots,
	})
}

// ======================================================
// PUT /admin/courts/:id/schedule/:weekday
// ======================================================

type UpdateHoursRequest struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	IsOpen bool   `json:"is_open"`
}

func (h *ScheduleHandler) UpdateWeekday(c *gin.Context) {
	userID, role := performer(c)

	var req UpdateHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	err := h.updateHours.Execute(c.Request.Context(), usecase.UpdateOperatingHoursInput{
		CourtID: c.Param("id"),
		Weekday: c.Param("weekday"),
		Hours: domain.DayHours{
			Open:   req.Open,
			Close:  req.Close,
			IsOpen: req.IsOpen,
		},
		PerformedBy:     userID,
		PerformedByRole: role,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "updated"})
}

// ======================================================
// POST /admin/courts/:id/special-dates
// DELETE /admin/courts/:id/special-dates/:date
// ======================================================

type SpecialDateRequest struct {
	Date     string `json:"date" binding:"required"`
	IsClosed bool   `json:"is_closed"`
	Reason   string `json:"reason"`
	Open     string `json:"open"`
	Close    string `json:"close"`
}

func (h *ScheduleHandler) AddSpecialDate(c *gin.Context) {
	userID, role := performer(c)

	var req SpecialDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	err := h.addSpecial.Execute(c.Request.Context(), usecase.AddSpecialDateInput{
		CourtID:         c.Param("id"),
		Date:            req.Date,
		IsClosed:        req.IsClosed,
		Reason:          req.Reason,
		Open:            req.Open,
		Close:           req.Close,
		PerformedBy:     userID,
		PerformedByRole: role,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(201, gin.H{"status": "created"})
}

func (h *ScheduleHandler) RemoveSpecialDate(c *gin.Context) {
	userID, role := performer(c)

	err := h.removeSpecial.Execute(
		c.Request.Context(),
		c.Param("id"),
		c.Param("date"),
		userID,
		role,
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "removed"})
}

// ======================================================
// POST /admin/courts/:id/blocked-slots
// DELETE /admin/courts/:id/blocked-slots
// ======================================================

type BlockSlotRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Reason    string `json:"reason"`
}

func (h *ScheduleHandler) BlockSlot(c *gin.Context) {
	userID, role := performer(c)

	var req BlockSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	err := h.blockSlot.Execute(c.Request.Context(), usecase.BlockSlotInput{
		CourtID:         c.Param("id"),
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Reason:          req.Reason,
		PerformedBy:     userID,
		PerformedByRole: role,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(201, gin.H{"status": "blocked"})
}

func (h *ScheduleHandler) UnblockSlot(c *gin.Context) {
	userID, role := performer(c)

	var req BlockSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	err := h.unblockSlot.Execute(c.Request.Context(), usecase.UnblockSlotInput{
		CourtID:         c.Param("id"),
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		PerformedBy:     userID,
		PerformedByRole: role,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "unblocked"})
}
