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

type AddSpecialDateInput struct {
	CourtID  string
	Date     string
	IsClosed bool
	Reason   string
	Open     string
	Close    string

	PerformedBy     string
	PerformedByRole string
}

// ======================================================
// USE CASE — datas especiais (feriado, evento pontual)
// ======================================================

type AddSpecialDate struct {
	repo  domain.ScheduleRepository
	audit *audit.Dispatcher
}

func NewAddSpecialDate(
	repo domain.ScheduleRepository,
	audit *audit.Dispatcher,
) *AddSpecialDate {
	return &AddSpecialDate{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AddSpecialDate) Execute(ctx context.Context, in AddSpecialDateInput) error {

	if !timeutil.ValidDate(in.Date) {
		return httperr.ErrBusiness("validation_error")
	}
	if !in.IsClosed && in.Open != "" && in.Close != "" {
		if !timeutil.ValidTime(in.Open) || !timeutil.ValidTime(in.Close) ||
			timeutil.CompareTime(in.Open, in.Close) >= 0 {
			return httperr.ErrBusiness("validation_error")
		}
	}

	sd := &models.SpecialDate{
		CourtID:  in.CourtID,
		Date:     in.Date,
		IsClosed: in.IsClosed,
		Reason:   in.Reason,
		Open:     in.Open,
		Close:    in.Close,
	}

	// uma entrada por data: escrever de novo substitui a anterior
	if err := uc.repo.UpsertSpecialDate(ctx, sd); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		CourtID:         in.CourtID,
		Action:          "schedule_updated",
		PerformedBy:     in.PerformedBy,
		PerformedByRole: in.PerformedByRole,
		NewData:         sd,
	})

	return nil
}

// ======================================================
// USE CASE — remoção de data especial
// ======================================================

type RemoveSpecialDate struct {
	repo  domain.ScheduleRepository
	audit *audit.Dispatcher
}

func NewRemoveSpecialDate(
	repo domain.ScheduleRepository,
	audit *audit.Dispatcher,
) *RemoveSpecialDate {
	return &RemoveSpecialDate{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RemoveSpecialDate) Execute(
	ctx context.Context,
	courtID, date string,
	performedBy, performedByRole string,
) error {

	if err := uc.repo.DeleteSpecialDate(ctx, courtID, date); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		CourtID:         courtID,
		Action:          "schedule_updated",
		PerformedBy:     performedBy,
		PerformedByRole: performedByRole,
		OldData:         map[string]any{"date": date},
	})

	return nil
}
