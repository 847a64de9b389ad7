package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/court-scheduler/internal/httperr"
	"github.com/BruksfildServices01/court-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/court-scheduler/internal/middleware"
	usecase "github.com/BruksfildServices01/court-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	reserve *usecase.ReserveSlot
	confirm *usecase.ConfirmBooking
	cancel  *usecase.CancelBooking
	listing *usecase.ListUserBookings
	byCourt *usecase.ListCourtBookings
}

func NewBookingHandler(
	reserve *usecase.ReserveSlot,
	confirm *usecase.ConfirmBooking,
	cancel *usecase.CancelBooking,
	listing *usecase.ListUserBookings,
	byCourt *usecase.ListCourtBookings,
) *BookingHandler {
	return &BookingHandler{
		reserve: reserve,
		confirm: confirm,
		cancel:  cancel,
		listing: listing,
		byCourt: byCourt,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ReserveRequest struct {
	CourtID   string `json:"court_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

type ConfirmRequest struct {
	PaymentID string `json:"payment_id" binding:"required"`
	OrderID   string `json:"order_id"`
}

// ======================================================
// POST /bookings — reserva provisória
// ======================================================

func (h *BookingHandler) Reserve(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	booking, err := h.reserve.Execute(c.Request.Context(), usecase.ReserveSlotInput{
		CourtID:   req.CourtID,
		Date:      req.Date,
		StartTime: req.StartTime,
		UserID:    userID,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(201, booking)
}

// ======================================================
// POST /bookings/:id/cancel
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	role := c.GetString(middleware.ContextUserRole)
	bookingID := c.Param("id")

	var req CancelRequest
	_ = c.ShouldBindJSON(&req)

	booking, err := h.cancel.Execute(c.Request.Context(), usecase.CancelBookingInput{
		BookingID:       bookingID,
		Reason:          req.Reason,
		PerformedBy:     userID,
		PerformedByRole: role,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, booking)
}

// ======================================================
// PATCH /admin/bookings/:id/confirm — confirmação manual
// (pagamento fora do checkout: pix no balcão, cortesia)
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	bookingID := c.Param("id")

	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	booking, err := h.confirm.Execute(c.Request.Context(), bookingID, usecase.PaymentData{
		PaymentID: req.PaymentID,
		OrderID:   req.OrderID,
		UserID:    userID,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, booking)
}

// ======================================================
// GET /bookings — reservas do usuário logado
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	bookings, err := h.listing.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar reservas.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// GET /admin/courts/:id/bookings?date=YYYY-MM-DD
// ======================================================

func (h *BookingHandler) ListByCourt(c *gin.Context) {
	courtID := c.Param("id")
	date := c.Query("date")

	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	bookings, err := h.byCourt.Execute(c.Request.Context(), courtID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar reservas.")
		return
	}

	httpresp.List(c, bookings)
}
