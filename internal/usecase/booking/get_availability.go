package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/court-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/court-scheduler/internal/httperr"
	"github.com/BruksfildServices01/court-scheduler/internal/timeutil"
	"github.com/BruksfildServices01/court-scheduler/internal/timezone"
)

const defaultSlotDuration = 30

// ======================================================
// USE CASE — disponibilidade de slots
// ======================================================

type GetAvailableSlots struct {
	repo domain.Repository
	now  func() time.Time
}

func NewGetAvailableSlots(repo domain.Repository) *GetAvailableSlots {
	return &GetAvailableSlots{
		repo: repo,
		now:  time.Now,
	}
}

// Execute monta a grade do dia: agenda resolvida, slots gerados,
// reservas e bloqueios administrativos cruzados. Só leitura — nenhuma
// escrita acontece aqui, duas chamadas seguidas devolvem o mesmo
// resultado se nada mudou no meio.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.AvailabilityResult, error) {

	if !timeutil.ValidDate(in.Date) {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 1. Quadra (preço e duração do slot)
	// --------------------------------------------------
	court, err := uc.repo.GetCourt(ctx, in.CourtID)
	if err != nil {
		return nil, httperr.ErrBusiness("court_not_found")
	}

	duration := court.SlotDuration
	if duration <= 0 {
		duration = defaultSlotDuration
	}

	// --------------------------------------------------
	// 2. Agenda resolvida para a data
	// --------------------------------------------------
	schedule, err := uc.repo.GetSchedule(ctx, in.CourtID)
	if err != nil {
		return nil, err
	}

	weekday := timeutil.DayOfWeek(in.Date)
	av := domain.ResolveDayAvailability(schedule, in.Date, weekday)

	if !av.IsOpen {
		return &domain.AvailabilityResult{
			Slots:   []domain.Slot{},
			IsOpen:  false,
			Message: av.Reason,
		}, nil
	}

	// Data especial aberta sem horário próprio herda a grade semanal.
	hours := av.Hours
	if hours == nil {
		day, ok := schedule.OperatingHours[weekday]
		if !ok || !day.IsOpen {
			return &domain.AvailabilityResult{
				Slots:   []domain.Slot{},
				IsOpen:  false,
				Message: "Court closed on this day",
			}, nil
		}
		hours = &domain.HourRange{Open: day.Open, Close: day.Close}
	}

	// --------------------------------------------------
	// 3. Grade de slots
	// --------------------------------------------------
	times := domain.GenerateTimeSlots(hours.Open, hours.Close, duration)
	slots := domain.BuildSlots(times, duration, court.PricePerSlot)

	// "hoje" é o hoje da quadra, não o do servidor
	now := uc.now()
	if court.Timezone != "" {
		now = now.In(timezone.Location(court.Timezone))
	}
	if timeutil.IsToday(in.Date, now) {
		slots = domain.FilterFutureSlots(slots, now)
	}

	// --------------------------------------------------
	// 4. Reservas existentes + bloqueios do admin
	// --------------------------------------------------
	bookings, err := uc.repo.ListBookingsForDate(ctx, in.CourtID, in.Date)
	if err != nil {
		return nil, err
	}

	adminBlocked := schedule.BlockedFor(in.Date)

	for i := range slots {
		slot := &slots[i]

		blockedByAdmin := false
		for _, bs := range adminBlocked {
			if timeutil.IsTimeInRange(slot.StartTime, bs.StartTime, bs.EndTime) {
				blockedByAdmin = true
				slot.IsAvailable = false
				slot.BlockedByAdmin = true
				slot.BlockReason = bs.Reason
				if slot.BlockReason == "" {
					slot.BlockReason = "Blocked by admin"
				}
				break
			}
		}
		if blockedByAdmin {
			// admin ganha a rotulagem mesmo que também exista reserva
			continue
		}

		for j := range bookings {
			b := &bookings[j]
			if b.StartTime != slot.StartTime {
				continue
			}
			if domain.IsBlocking(b, now) {
				slot.IsAvailable = false
				slot.BookingID = b.ID
				slot.BookingStatus = b.BookingStatus
				break
			}
		}
	}

	// --------------------------------------------------
	// 5. Agregados
	// --------------------------------------------------
	result := &domain.AvailabilityResult{
		Slots:      slots,
		IsOpen:     true,
		Message:    "Slots loaded successfully",
		TotalSlots: len(slots),
	}
	for i := range slots {
		if slots[i].IsAvailable {
			result.AvailableCount++
		} else {
			result.BookedCount++
		}
	}

	return result, nil
}
