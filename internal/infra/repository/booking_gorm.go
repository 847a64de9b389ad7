package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/court-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/court-scheduler/internal/httperr"
	"github.com/BruksfildServices01/court-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Court / User
// --------------------------------------------------

func (r *BookingGormRepository) GetCourt(
	ctx context.Context,
	id string,
) (*models.Court, error) {

	var court models.Court
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&court).Error; err != nil {
		return nil, err
	}
	return &court, nil
}

func (r *BookingGormRepository) GetUser(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Schedule (leitura)
// --------------------------------------------------

func (r *BookingGormRepository) GetSchedule(
	ctx context.Context,
	courtID string,
) (*domain.Schedule, error) {
	return loadSchedule(ctx, r.db, courtID)
}

// --------------------------------------------------
// Bookings (leitura)
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForDate(
	ctx context.Context,
	courtID string,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("court_id = ? AND date = ?", courtID, date).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForSlot(
	ctx context.Context,
	courtID string,
	date string,
	startTime string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"court_id = ? AND date = ? AND start_time = ?",
			courtID, date, startTime,
		).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsByUser(
	ctx context.Context,
	userID string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, start_time DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// --------------------------------------------------
// Reserva (escrita condicional)
// --------------------------------------------------

// CreateReservation fecha a corrida de dupla reserva em duas camadas.
// Linhas candidatas existentes são travadas com FOR UPDATE e o
// predicado de bloqueio reavaliado dentro da transação. No slot ainda
// vazio não há linha para travar: quem decide é o índice único parcial
// das linhas ativas, e de dois inserts simultâneos o segundo leva
// unique violation.
func (r *BookingGormRepository) CreateReservation(
	ctx context.Context,
	b *models.Booking,
	now time.Time,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var existing []models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"court_id = ? AND date = ? AND start_time = ? AND booking_status IN ?",
				b.CourtID, b.Date, b.StartTime,
				[]string{
					string(domain.StatusReserved),
					string(domain.StatusConfirmed),
				},
			).
			Find(&existing).Error; err != nil {
			return err
		}

		for i := range existing {
			if domain.IsBlocking(&existing[i], now) {
				return httperr.ErrBusiness("slot_unavailable")
			}
		}

		// hold vencido que o sweeper ainda não varreu: encerramos aqui
		// para a linha sair do índice único antes do nosso insert
		for i := range existing {
			if existing[i].BookingStatus != string(domain.StatusReserved) {
				continue
			}
			if err := domain.Expire(&existing[i], now); err != nil {
				return err
			}
			if err := tx.Save(&existing[i]).Error; err != nil {
				return err
			}
		}

		if b.ID == "" {
			b.ID = uuid.NewString()
		}

		if err := tx.Create(b).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return httperr.ErrBusiness("slot_unavailable")
			}
			return err
		}
		return nil
	})
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Sweeper
// --------------------------------------------------

func (r *BookingGormRepository) ListStaleReservations(
	ctx context.Context,
	olderThan time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"booking_status = ? AND created_at < ?",
			string(domain.StatusReserved), olderThan,
		).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
