package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/court-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/court-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/court-scheduler/internal/httperr"
	"github.com/BruksfildServices01/court-scheduler/internal/models"
	"github.com/BruksfildServices01/court-scheduler/internal/timeutil"
	"github.com/BruksfildServices01/court-scheduler/internal/timezone"
)

// SlotLock é o guarda rápido opcional por slot (Redis). A decisão
// final é sempre do insert condicional no repositório.
type SlotLock interface {
	Acquire(ctx context.Context, courtID, date, startTime string) (bool, error)
	Release(ctx context.Context, courtID, date, startTime string) error
}

// ======================================================
// INPUT
// ======================================================

type ReserveSlotInput struct {
	CourtID   string
	Date      string
	StartTime string
	UserID    string
}

// ======================================================
// USE CASE — reserva provisória (soft hold)
// ======================================================

type ReserveSlot struct {
	repo  domain.Repository
	lock  SlotLock
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewReserveSlot(
	repo domain.Repository,
	lock SlotLock,
	audit *audit.Dispatcher,
) *ReserveSlot {
	return &ReserveSlot{
		repo:  repo,
		lock:  lock,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *ReserveSlot) Execute(
	ctx context.Context,
	in ReserveSlotInput,
) (*models.Booking, error) {

	now := uc.now()

	// --------------------------------------------------
	// 1. Entrada
	// --------------------------------------------------
	if !timeutil.ValidDate(in.Date) || !timeutil.ValidTime(in.StartTime) {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 2. Quadra
	// --------------------------------------------------
	court, err := uc.repo.GetCourt(ctx, in.CourtID)
	if err != nil {
		return nil, httperr.ErrBusiness("court_not_found")
	}
	if !court.IsActive {
		return nil, httperr.ErrBusiness("court_inactive")
	}

	// passado é relativo ao fuso da quadra
	localNow := now
	if court.Timezone != "" {
		localNow = now.In(timezone.Location(court.Timezone))
	}
	if timeutil.IsPastDate(in.Date, localNow) {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	duration := court.SlotDuration
	if duration <= 0 {
		duration = defaultSlotDuration
	}

	// --------------------------------------------------
	// 3. Agenda: dia fechado, horário fora da grade ou bloqueado
	// --------------------------------------------------
	schedule, err := uc.repo.GetSchedule(ctx, in.CourtID)
	if err != nil {
		return nil, err
	}

	weekday := timeutil.DayOfWeek(in.Date)
	av := domain.ResolveDayAvailability(schedule, in.Date, weekday)
	if !av.IsOpen {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	// Data especial aberta sem horário próprio herda a grade semanal.
	hours := av.Hours
	if hours == nil {
		day, ok := schedule.OperatingHours[weekday]
		if !ok || !day.IsOpen {
			return nil, httperr.ErrBusiness("slot_unavailable")
		}
		hours = &domain.HourRange{Open: day.Open, Close: day.Close}
	}

	// Só horários da própria grade do dia podem virar reserva: fora do
	// expediente ou fora do passo (ex.: 06:15 numa grade de 30) não vale.
	if !onGrid(in.StartTime, hours, duration) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	for _, bs := range schedule.BlockedFor(in.Date) {
		if timeutil.IsTimeInRange(in.StartTime, bs.StartTime, bs.EndTime) {
			return nil, httperr.ErrBusiness("slot_unavailable")
		}
	}

	// --------------------------------------------------
	// 4. Lock rápido do slot
	// --------------------------------------------------
	locked := false
	if uc.lock != nil {
		ok, err := uc.lock.Acquire(ctx, in.CourtID, in.Date, in.StartTime)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.ErrBusiness("slot_unavailable")
		}
		locked = true
	}

	// --------------------------------------------------
	// 5. Dados desnormalizados do usuário
	// --------------------------------------------------
	userName := "User"
	userEmail := ""
	if user, err := uc.repo.GetUser(ctx, in.UserID); err == nil {
		userName = user.Name
		userEmail = user.Email
	}

	// --------------------------------------------------
	// 6. Insert condicional (check + write na mesma transação)
	// --------------------------------------------------
	b := &models.Booking{
		UserID:    in.UserID,
		UserName:  userName,
		UserEmail: userEmail,

		CourtID:   in.CourtID,
		CourtName: court.Name,
		SportType: court.SportType,

		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   timeutil.AddMinutes(in.StartTime, duration),
		Duration:  duration,

		Amount:        court.PricePerSlot,
		PaymentStatus: string(domain.PaymentPending),
		BookingStatus: string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateReservation(ctx, b, now); err != nil {
		if locked {
			_ = uc.lock.Release(ctx, in.CourtID, in.Date, in.StartTime)
		}
		return nil, err
	}

	// --------------------------------------------------
	// 7. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		BookingID:       b.ID,
		CourtID:         in.CourtID,
		UserID:          in.UserID,
		Action:          "slot_reserved",
		PerformedBy:     in.UserID,
		PerformedByRole: "user",
		NewData:         b,
	})

	return b, nil
}

func onGrid(startTime string, hours *domain.HourRange, duration int) bool {
	for _, s := range domain.GenerateTimeSlots(hours.Open, hours.Close, duration) {
		if s == startTime {
			return true
		}
	}
	return false
}
