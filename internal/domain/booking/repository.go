package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/court-scheduler/internal/models"
)

type Repository interface {
	// -------- Court --------
	GetCourt(
		ctx context.Context,
		id string,
	) (*models.Court, error)

	// -------- User --------
	GetUser(
		ctx context.Context,
		id string,
	) (*models.User, error)

	// -------- Schedule (leitura) --------
	GetSchedule(
		ctx context.Context,
		courtID string,
	) (*Schedule, error)

	// -------- Bookings (leitura) --------
	ListBookingsForDate(
		ctx context.Context,
		courtID string,
		date string,
	) ([]models.Booking, error)

	ListBookingsForSlot(
		ctx context.Context,
		courtID string,
		date string,
		startTime string,
	) ([]models.Booking, error)

	ListBookingsByUser(
		ctx context.Context,
		userID string,
	) ([]models.Booking, error)

	GetBooking(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	// -------- Reserva (escrita condicional) --------

	// CreateReservation insere a reserva somente se nenhuma reserva
	// bloqueante (segundo IsBlocking em now) existir para o mesmo
	// (court, date, startTime). A checagem e o insert correm na mesma
	// transação, com lock das linhas candidatas — fecha a corrida de
	// dupla reserva. Falha com slot_unavailable.
	CreateReservation(
		ctx context.Context,
		b *models.Booking,
		now time.Time,
	) error

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Sweeper --------
	ListStaleReservations(
		ctx context.Context,
		olderThan time.Time,
	) ([]models.Booking, error)
}

// ScheduleRepository cobre as mutações administrativas da agenda.
type ScheduleRepository interface {
	GetSchedule(
		ctx context.Context,
		courtID string,
	) (*Schedule, error)

	UpsertOperatingHour(
		ctx context.Context,
		courtID string,
		weekday string,
		hours DayHours,
	) error

	UpsertSpecialDate(
		ctx context.Context,
		sd *models.SpecialDate,
	) error

	DeleteSpecialDate(
		ctx context.Context,
		courtID string,
		date string,
	) error

	UpsertBlockedSlot(
		ctx context.Context,
		bs *models.BlockedSlot,
	) error

	DeleteBlockedSlot(
		ctx context.Context,
		courtID string,
		date string,
		startTime string,
		endTime string,
	) error
}
