package booking

import (
	"context"

	domain "github.com/BruksfildServices01/court-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/court-scheduler/internal/models"
)

// Listagens são preocupação de leitura: o agrupamento de meia em meia
// hora que o cliente exibe como "uma reserva" acontece aqui fora da
// máquina de estados, que opera sempre por linha.

type ListUserBookings struct {
	repo domain.Repository
}

func NewListUserBookings(repo domain.Repository) *ListUserBookings {
	return &ListUserBookings{repo: repo}
}

func (uc *ListUserBookings) Execute(
	ctx context.Context,
	userID string,
) ([]models.Booking, error) {
	return uc.repo.ListBookingsByUser(ctx, userID)
}

type ListCourtBookings struct {
	repo domain.Repository
}

func NewListCourtBookings(repo domain.Repository) *ListCourtBookings {
	return &ListCourtBookings{repo: repo}
}

func (uc *ListCourtBookings) Execute(
	ctx context.Context,
	courtID string,
	date string,
) ([]models.Booking, error) {
	return uc.repo.ListBookingsForDate(ctx, courtID, date)
}
