package booking

import (
	"testing"

	"github.com/BruksfildServices01/court-scheduler/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weeklySchedule() *Schedule {
	return &Schedule{OperatingHours: DefaultOperatingHours()}
}

func TestResolveDayAvailability_RegularHours(t *testing.T) {
	av := ResolveDayAvailability(weeklySchedule(), "2025-12-15", "monday")

	assert.True(t, av.IsOpen)
	require.NotNil(t, av.Hours)
	assert.Equal(t, "06:00", av.Hours.Open)
	assert.Equal(t, "22:00", av.Hours.Close)
}

func TestResolveDayAvailability_ClosedWeekday(t *testing.T) {
	s := weeklySchedule()
	day := s.OperatingHours["monday"]
	day.IsOpen = false
	s.OperatingHours["monday"] = day

	av := ResolveDayAvailability(s, "2025-12-15", "monday")

	assert.False(t, av.IsOpen)
	assert.Equal(t, "Court closed on this day", av.Reason)
	assert.Nil(t, av.Hours)
}

func TestResolveDayAvailability_MissingWeekday(t *testing.T) {
	s := &Schedule{OperatingHours: map[string]DayHours{}}

	av := ResolveDayAvailability(s, "2025-12-15", "monday")

	assert.False(t, av.IsOpen)
	assert.Equal(t, "Court closed on this day", av.Reason)
}

func TestResolveDayAvailability_SpecialDateClosed(t *testing.T) {
	s := weeklySchedule()
	s.SpecialDates = []models.SpecialDate{
		{Date: "2025-12-25", IsClosed: true, Reason: "Holiday"},
	}

	// quinta-feira normal, mas a data especial domina
	av := ResolveDayAvailability(s, "2025-12-25", "thursday")

	assert.False(t, av.IsOpen)
	assert.Equal(t, "Holiday", av.Reason)
}

func TestResolveDayAvailability_SpecialDateOverridesHours(t *testing.T) {
	s := weeklySchedule()
	s.SpecialDates = []models.SpecialDate{
		{Date: "2025-12-31", IsClosed: false, Reason: "New Year's Eve", Open: "08:00", Close: "14:00"},
	}

	av := ResolveDayAvailability(s, "2025-12-31", "wednesday")

	assert.True(t, av.IsOpen)
	require.NotNil(t, av.Hours)
	assert.Equal(t, "08:00", av.Hours.Open)
	assert.Equal(t, "14:00", av.Hours.Close)
}

func TestResolveDayAvailability_SpecialDateOpenWithoutHours(t *testing.T) {
	s := weeklySchedule()
	s.SpecialDates = []models.SpecialDate{
		{Date: "2025-12-31", IsClosed: false},
	}

	av := ResolveDayAvailability(s, "2025-12-31", "wednesday")

	assert.True(t, av.IsOpen)
	assert.Equal(t, "Special date", av.Reason)
	assert.Nil(t, av.Hours)
}

func TestBlockedFor(t *testing.T) {
	s := weeklySchedule()
	s.BlockedSlots = []models.BlockedSlot{
		{Date: "2025-12-15", StartTime: "10:00", EndTime: "12:00", Reason: "Maintenance"},
		{Date: "2025-12-16", StartTime: "08:00", EndTime: "09:00", Reason: "Event"},
	}

	blocked := s.BlockedFor("2025-12-15")

	require.Len(t, blocked, 1)
	assert.Equal(t, "Maintenance", blocked[0].Reason)
}
