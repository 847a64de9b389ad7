package booking

import (
	"time"

	"github.com/BruksfildServices01/court-scheduler/internal/httperr"
	"github.com/BruksfildServices01/court-scheduler/internal/models"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusReserved  Status = "reserved"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Janelas de bloqueio da reserva provisória. A expiração é detectada
// por idade (lazy) em toda leitura; o sweeper só materializa depois.
const (
	ReservedHoldWindow = 5 * time.Minute
	PendingPayWindow   = 10 * time.Minute
)

// ===============================
// Predicado de bloqueio
// ===============================

// IsBlocking decide se uma reserva existente ainda segura o slot.
// Regra única usada pela disponibilidade, pelo pré-check e pela
// criação de reserva — as janelas de 5/10 minutos nunca divergem
// entre pontos de chamada.
func IsBlocking(b *models.Booking, now time.Time) bool {
	switch Status(b.BookingStatus) {
	case StatusConfirmed:
		return true
	case StatusCancelled, StatusExpired:
		return false
	case StatusReserved:
		return now.Sub(b.CreatedAt) < ReservedHoldWindow
	}

	if PaymentStatus(b.PaymentStatus) == PaymentPending {
		return now.Sub(b.CreatedAt) < PendingPayWindow
	}

	return false
}

// ===============================
// Validations
// ===============================

func CanConfirm(current Status) error {
	if current != StatusReserved {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusReserved && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanExpire(current Status) error {
	if current != StatusReserved {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusReserved
}
