package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/court-scheduler/internal/httperr"
	"github.com/BruksfildServices01/court-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/court-scheduler/internal/middleware"
	"github.com/BruksfildServices01/court-scheduler/internal/models"
	"github.com/BruksfildServices01/court-scheduler/internal/payments"
	usecase "github.com/BruksfildServices01/court-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type PaymentHandler struct {
	db       *gorm.DB
	checkout payments.Checkout
	confirm  *usecase.ConfirmBooking
	cancel   *usecase.CancelBooking
	backURL  string
}

func NewPaymentHandler(
	db *gorm.DB,
	checkout payments.Checkout,
	confirm *usecase.ConfirmBooking,
	cancel *usecase.CancelBooking,
	backURL string,
) *PaymentHandler {
	return &PaymentHandler{
		db:       db,
		checkout: checkout,
		confirm:  confirm,
		cancel:   cancel,
		backURL:  backURL,
	}
}

// ======================================================
// POST /bookings/:id/checkout — abre preferência de pagamento
// ======================================================

func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	bookingID := c.Param("id")

	var booking models.Booking
	if err := h.db.
		Where("id = ? AND user_id = ?", bookingID, userID).
		First(&booking).Error; err != nil {
		httperr.NotFound(c, "booking_not_found", "Reserva não encontrada.")
		return
	}

	if booking.BookingStatus != "reserved" {
		httperr.BadRequest(c, "invalid_state", "Reserva não aguarda pagamento.")
		return
	}

	pref, err := h.checkout.CreatePreference(c.Request.Context(), &booking, h.backURL)
	if err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("checkout failed")
		httperr.Internal(c, "checkout_failed", "Erro ao iniciar pagamento.")
		return
	}

	httpresp.OK(c, pref)
}

// ======================================================
// POST /payments/webhook — notificação do Mercado Pago
// ======================================================

type WebhookRequest struct {
	Action string `json:"action"`
	Type   string `json:"type"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Webhook confirma ou derruba a reserva conforme o status real do
// pagamento, consultado de volta na API — nunca confiamos só no corpo
// da notificação. Respondemos 200 mesmo em falha de processamento para
// o Mercado Pago não reenviar eternamente.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	var req WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Payload inválido.")
		return
	}

	if req.Type != "payment" || req.Data.ID == "" {
		// outros eventos (merchant_order etc.) não interessam
		httpresp.OK(c, gin.H{"status": "ignored"})
		return
	}

	info, err := h.checkout.GetPayment(c.Request.Context(), req.Data.ID)
	if err != nil {
		log.Error().Err(err).Str("payment_id", req.Data.ID).Msg("webhook payment lookup failed")
		httpresp.OK(c, gin.H{"status": "lookup_failed"})
		return
	}

	switch {
	case info.Approved():
		_, err = h.confirm.Execute(c.Request.Context(), info.BookingID, usecase.PaymentData{
			PaymentID: info.PaymentID,
			OrderID:   info.OrderID,
		})
	case info.Rejected():
		_, err = h.cancel.Execute(c.Request.Context(), usecase.CancelBookingInput{
			BookingID:       info.BookingID,
			Reason:          "Payment failed",
			PerformedBy:     "mercadopago",
			PerformedByRole: "system",
		})
	default:
		// pending / in_process: o hold continua valendo até expirar
	}

	if err != nil {
		log.Error().Err(err).
			Str("payment_id", info.PaymentID).
			Str("booking_id", info.BookingID).
			Msg("webhook processing failed")
		httpresp.OK(c, gin.H{"status": "error"})
		return
	}

	httpresp.OK(c, gin.H{"status": "processed"})
}
