package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/court-scheduler/internal/models"
)

func checkUC(repo *MockRepository, at time.Time) *CheckSlotAvailability {
	return &CheckSlotAvailability{repo: repo, now: func() time.Time { return at }}
}

func TestCheckSlot_FreeSlot(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetSchedule", mock.Anything, "court-1").Return(openSchedule(), nil)
	repo.On("ListBookingsForSlot", mock.Anything, "court-1", "2025-06-05", "18:00").
		Return([]models.Booking{}, nil)

	ok, err := checkUC(repo, testNow).Execute(context.Background(), "court-1", "2025-06-05", "18:00")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckSlot_HoldExpiresWithoutSweeper(t *testing.T) {
	hold := models.Booking{
		ID: "b-hold", CourtID: "court-1", Date: "2025-06-05",
		StartTime: "18:00", BookingStatus: "reserved", PaymentStatus: "pending",
		CreatedAt: testNow,
	}

	repo := new(MockRepository)
	repo.On("GetSchedule", mock.Anything, "court-1").Return(openSchedule(), nil)
	repo.On("ListBookingsForSlot", mock.Anything, "court-1", "2025-06-05", "18:00").
		Return([]models.Booking{hold}, nil)

	// logo após reservar o slot está tomado
	ok, err := checkUC(repo, testNow.Add(time.Minute)).
		Execute(context.Background(), "court-1", "2025-06-05", "18:00")
	require.NoError(t, err)
	assert.False(t, ok)

	// seis minutos depois o hold venceu: livre de novo, sem sweeper
	ok, err = checkUC(repo, testNow.Add(6*time.Minute)).
		Execute(context.Background(), "court-1", "2025-06-05", "18:00")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckSlot_ConfirmedAlwaysBlocks(t *testing.T) {
	confirmed := models.Booking{
		ID: "b-paid", CourtID: "court-1", Date: "2025-06-05",
		StartTime: "18:00", BookingStatus: "confirmed", PaymentStatus: "completed",
		CreatedAt: testNow.Add(-48 * time.Hour),
	}

	repo := new(MockRepository)
	repo.On("GetSchedule", mock.Anything, "court-1").Return(openSchedule(), nil)
	repo.On("ListBookingsForSlot", mock.Anything, "court-1", "2025-06-05", "18:00").
		Return([]models.Booking{confirmed}, nil)

	ok, err := checkUC(repo, testNow).Execute(context.Background(), "court-1", "2025-06-05", "18:00")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckSlot_AdminBlockWins(t *testing.T) {
	schedule := openSchedule()
	schedule.BlockedSlots = []models.BlockedSlot{
		{CourtID: "court-1", Date: "2025-06-05", StartTime: "17:00", EndTime: "19:00"},
	}

	repo := new(MockRepository)
	repo.On("GetSchedule", mock.Anything, "court-1").Return(schedule, nil)

	ok, err := checkUC(repo, testNow).Execute(context.Background(), "court-1", "2025-06-05", "18:00")

	require.NoError(t, err)
	assert.False(t, ok)
	repo.AssertNotCalled(t, "ListBookingsForSlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
