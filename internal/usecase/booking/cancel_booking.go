package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/court-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/court-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/court-scheduler/internal/httperr"
	"github.com/BruksfildServices01/court-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CancelBookingInput struct {
	BookingID string
	Reason    string

	PerformedBy     string
	PerformedByRole string
}

// ======================================================
// USE CASE — cancelamento (usuário ou admin)
// ======================================================

type CancelBooking struct {
	repo  domain.Repository
	lock  SlotLock
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCancelBooking(
	repo domain.Repository,
	lock SlotLock,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		lock:  lock,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	in CancelBookingInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	// Só o dono cancela a própria reserva. Para os demais a reserva
	// simplesmente não existe — não vazamos que o id é válido.
	if b.UserID != in.PerformedBy && !canCancelAny(in.PerformedByRole) {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	oldData := *b

	reason := in.Reason
	if reason == "" {
		reason = "User cancelled"
	}

	if err := domain.Cancel(b, reason, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	// slot volta ao pool imediatamente
	if uc.lock != nil {
		_ = uc.lock.Release(ctx, b.CourtID, b.Date, b.StartTime)
	}

	uc.audit.Dispatch(audit.Event{
		BookingID:       b.ID,
		CourtID:         b.CourtID,
		UserID:          b.UserID,
		Action:          "cancelled",
		PerformedBy:     in.PerformedBy,
		PerformedByRole: in.PerformedByRole,
		OldData:         oldData,
	})

	return b, nil
}

// canCancelAny: admin e manager cancelam qualquer reserva; "system" é o
// webhook de pagamento derrubando o hold de um pagamento recusado.
func canCancelAny(role string) bool {
	switch role {
	case "admin", "manager", "system":
		return true
	}
	return false
}
