package schedule

import (
	"context"

	"github.com/BruksfildServices01/court-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/court-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/court-scheduler/internal/httperr"
	"github.com/BruksfildServices01/court-scheduler/internal/timeutil"
)

// ======================================================
// INPUT
// ======================================================

type UpdateOperatingHoursInput struct {
	CourtID string
	Weekday string
	Hours   domain.DayHours

	PerformedBy     string
	PerformedByRole string
}

var validWeekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true,
	"thursday": true, "friday": true, "saturday": true, "sunday": true,
}

// ======================================================
// USE CASE — grade semanal (admin)
// ======================================================

type UpdateOperatingHours struct {
	repo  domain.ScheduleRepository
	audit *audit.Dispatcher
}

func NewUpdateOperatingHours(
	repo domain.ScheduleRepository,
	audit *audit.Dispatcher,
) *UpdateOperatingHours {
	return &UpdateOperatingHours{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateOperatingHours) Execute(
	ctx context.Context,
	in UpdateOperatingHoursInput,
) error {

	if !validWeekdays[in.Weekday] {
		return httperr.ErrBusiness("validation_error")
	}
	if in.Hours.IsOpen {
		if !timeutil.ValidTime(in.Hours.Open) || !timeutil.ValidTime(in.Hours.Close) {
			return httperr.ErrBusiness("validation_error")
		}
		if timeutil.CompareTime(in.Hours.Open, in.Hours.Close) >= 0 {
			return httperr.ErrBusiness("validation_error")
		}
	}

	if err := uc.repo.UpsertOperatingHour(
		ctx, in.CourtID, in.Weekday, in.Hours,
	); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		CourtID:         in.CourtID,
		Action:          "schedule_updated",
		PerformedBy:     in.PerformedBy,
		PerformedByRole: in.PerformedByRole,
		NewData: map[string]any{
			"weekday": in.Weekday,
			"hours":   in.Hours,
		},
	})

	return nil
}
