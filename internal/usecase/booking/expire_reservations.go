package booking

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/court-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/court-scheduler/internal/domain/booking"
)

// ======================================================
// USE CASE — expiração de reservas vencidas (sweeper)
// ======================================================

type ExpireReservations struct {
	repo  domain.Repository
	lock  SlotLock
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewExpireReservations(
	repo domain.Repository,
	lock SlotLock,
	audit *audit.Dispatcher,
) *ExpireReservations {
	return &ExpireReservations{
		repo:  repo,
		lock:  lock,
		audit: audit,
		now:   time.Now,
	}
}

// Execute finaliza os holds além da janela de 5 minutos. A linha fica
// com status terminal "expired" em vez de sumir do histórico; os
// filtros por idade já liberaram o slot nas leituras, então atraso de
// sweep não compromete a correção.
func (uc *ExpireReservations) Execute(ctx context.Context) (int, error) {

	now := uc.now()
	cutoff := now.Add(-domain.ReservedHoldWindow)

	stale, err := uc.repo.ListStaleReservations(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	expired := 0
	for i := range stale {
		b := stale[i]

		if err := domain.Expire(&b, now); err != nil {
			continue
		}

		if err := uc.repo.UpdateBooking(ctx, &b); err != nil {
			log.Error().Err(err).
				Str("booking_id", b.ID).
				Msg("failed to expire reservation")
			continue
		}

		if uc.lock != nil {
			_ = uc.lock.Release(ctx, b.CourtID, b.Date, b.StartTime)
		}

		uc.audit.Dispatch(audit.Event{
			BookingID:       b.ID,
			CourtID:         b.CourtID,
			UserID:          b.UserID,
			Action:          "reservation_expired",
			PerformedBy:     "system",
			PerformedByRole: "system",
			OldData:         stale[i],
		})

		expired++
	}

	return expired, nil
}
