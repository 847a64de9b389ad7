package booking

import (
	"time"

	"github.com/BruksfildServices01/court-scheduler/internal/httperr"
	"github.com/BruksfildServices01/court-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Confirm marca a reserva como paga. Idempotente por paymentID:
// repetir a confirmação com o mesmo pagamento é no-op; um segundo
// pagamento diferente para a mesma reserva é conflito.
func Confirm(b *models.Booking, paymentID, orderID string) error {
	if Status(b.BookingStatus) == StatusConfirmed {
		if b.PaymentID == paymentID {
			return nil
		}
		return httperr.ErrBusiness("payment_conflict")
	}

	if err := CanConfirm(Status(b.BookingStatus)); err != nil {
		return err
	}

	b.BookingStatus = string(StatusConfirmed)
	b.PaymentStatus = string(PaymentCompleted)
	b.PaymentID = paymentID
	b.OrderID = orderID
	return nil
}

func Cancel(b *models.Booking, reason string, now time.Time) error {
	if err := CanCancel(Status(b.BookingStatus)); err != nil {
		return err
	}

	b.BookingStatus = string(StatusCancelled)
	b.CancelReason = reason
	b.CancelledAt = &now
	return nil
}

// Expire encerra uma reserva provisória vencida. Mantemos a linha com
// status terminal em vez de apagar: o histórico mostra o hold expirado.
func Expire(b *models.Booking, now time.Time) error {
	if err := CanExpire(Status(b.BookingStatus)); err != nil {
		return err
	}

	b.BookingStatus = string(StatusExpired)
	b.CancelReason = "Reservation hold expired"
	b.CancelledAt = &now
	return nil
}
