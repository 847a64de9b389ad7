package booking

import (
	"context"

	"github.com/BruksfildServices01/court-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/court-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/court-scheduler/internal/httperr"
	"github.com/BruksfildServices01/court-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type PaymentData struct {
	PaymentID string
	OrderID   string
	UserID    string
}

// ======================================================
// USE CASE — confirmação pós-pagamento
// ======================================================

type ConfirmBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	bookingID string,
	payment PaymentData,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	alreadyConfirmed := domain.Status(b.BookingStatus) == domain.StatusConfirmed

	if err := domain.Confirm(b, payment.PaymentID, payment.OrderID); err != nil {
		return nil, err
	}

	// reconfirmação com o mesmo pagamento: nada a gravar
	if alreadyConfirmed {
		return b, nil
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	// webhook não carrega usuário: atribuímos ao dono da reserva
	performedBy := payment.UserID
	if performedBy == "" {
		performedBy = b.UserID
	}

	uc.audit.Dispatch(audit.Event{
		BookingID:       b.ID,
		CourtID:         b.CourtID,
		UserID:          b.UserID,
		Action:          "payment_completed",
		PerformedBy:     performedBy,
		PerformedByRole: "user",
		NewData:         payment,
	})

	return b, nil
}
