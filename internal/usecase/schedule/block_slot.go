package schedule

import (
	"context"

	"github.com/BruksfildServices01/court-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/court-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/court-scheduler/internal/httperr"
	"github.com/BruksfildServices01/court-scheduler/internal/models"
	"github.com/BruksfildServices01/court-scheduler/internal/timeutil"
)

// ======================================================
// INPUT
// ======================================================

type BlockSlotInput struct {
	CourtID   string
	Date      string
	StartTime string
	EndTime   string
	Reason    string

	PerformedBy     string
	PerformedByRole string
}

type UnblockSlotInput struct {
	CourtID   string
	Date      string
	StartTime string
	EndTime   string

	PerformedBy     string
	PerformedByRole string
}

// ======================================================
// USE CASE — bloqueio administrativo de faixa
// ======================================================

type BlockSlot struct {
	repo  domain.ScheduleRepository
	audit *audit.Dispatcher
}

func NewBlockSlot(
	repo domain.ScheduleRepository,
	audit *audit.Dispatcher,
) *BlockSlot {
	return &BlockSlot{
		repo:  repo,
		audit: audit,
	}
}

func (uc *BlockSlot) Execute(ctx context.Context, in BlockSlotInput) error {

	if !timeutil.ValidDate(in.Date) ||
		!timeutil.ValidTime(in.StartTime) ||
		!timeutil.ValidTime(in.EndTime) {
		return httperr.ErrBusiness("validation_error")
	}
	if timeutil.CompareTime(in.StartTime, in.EndTime) >= 0 {
		return httperr.ErrBusiness("validation_error")
	}

	bs := &models.BlockedSlot{
		CourtID:   in.CourtID,
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Reason:    in.Reason,
	}

	// mesma faixa já bloqueada só troca o motivo
	if err := uc.repo.UpsertBlockedSlot(ctx, bs); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		CourtID:         in.CourtID,
		Action:          "slot_blocked",
		PerformedBy:     in.PerformedBy,
		PerformedByRole: in.PerformedByRole,
		NewData:         bs,
	})

	return nil
}

// ======================================================
// USE CASE — remoção do bloqueio
// ======================================================

type UnblockSlot struct {
	repo  domain.ScheduleRepository
	audit *audit.Dispatcher
}

func NewUnblockSlot(
	repo domain.ScheduleRepository,
	audit *audit.Dispatcher,
) *UnblockSlot {
	return &UnblockSlot{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UnblockSlot) Execute(ctx context.Context, in UnblockSlotInput) error {

	if err := uc.repo.DeleteBlockedSlot(
		ctx, in.CourtID, in.Date, in.StartTime, in.EndTime,
	); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		CourtID:         in.CourtID,
		Action:          "slot_unblocked",
		PerformedBy:     in.PerformedBy,
		PerformedByRole: in.PerformedByRole,
		OldData: map[string]any{
			"date":       in.Date,
			"start_time": in.StartTime,
			"end_time":   in.EndTime,
		},
	})

	return nil
}
