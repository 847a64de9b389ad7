package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/court-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/court-scheduler/internal/timeutil"
)

// ======================================================
// USE CASE — pré-check de um slot específico
// ======================================================

type CheckSlotAvailability struct {
	repo domain.Repository
	now  func() time.Time
}

func NewCheckSlotAvailability(repo domain.Repository) *CheckSlotAvailability {
	return &CheckSlotAvailability{
		repo: repo,
		now:  time.Now,
	}
}

// Execute responde se o slot pode ser reservado agora. Usa o mesmo
// predicado de bloqueio da grade de disponibilidade; reservas vencidas
// liberam o slot aqui mesmo antes do sweeper passar.
func (uc *CheckSlotAvailability) Execute(
	ctx context.Context,
	courtID, date, startTime string,
) (bool, error) {

	schedule, err := uc.repo.GetSchedule(ctx, courtID)
	if err != nil {
		return false, err
	}

	for _, bs := range schedule.BlockedFor(date) {
		if timeutil.IsTimeInRange(startTime, bs.StartTime, bs.EndTime) {
			return false, nil
		}
	}

	bookings, err := uc.repo.ListBookingsForSlot(ctx, courtID, date, startTime)
	if err != nil {
		return false, err
	}

	now := uc.now()
	for i := range bookings {
		if domain.IsBlocking(&bookings[i], now) {
			return false, nil
		}
	}

	return true, nil
}
