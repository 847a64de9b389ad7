package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/court-scheduler/internal/httperr"
)

func TestCancelBooking_Reserved(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetBooking", mock.Anything, "b-1").Return(reservedBooking(), nil)
	repo.On("UpdateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	lock := new(MockSlotLock)
	lock.On("Release", mock.Anything, "court-1", "2025-06-05", "18:00").Return(nil)

	dispatcher, sink := newTestAudit()
	uc := &CancelBooking{repo: repo, lock: lock, audit: dispatcher, now: func() time.Time { return testNow }}

	b, err := uc.Execute(context.Background(), CancelBookingInput{
		BookingID:       "b-1",
		Reason:          "Changed my mind",
		PerformedBy:     "user-1",
		PerformedByRole: "user",
	})

	require.NoError(t, err)
	assert.Equal(t, "cancelled", b.BookingStatus)
	assert.Equal(t, "Changed my mind", b.CancelReason)
	require.NotNil(t, b.CancelledAt)
	assert.Equal(t, testNow, *b.CancelledAt)

	lock.AssertCalled(t, "Release", mock.Anything, "court-1", "2025-06-05", "18:00")
	assert.Eventually(t, func() bool { return sink.has("cancelled") },
		time.Second, 10*time.Millisecond)
}

func TestCancelBooking_DefaultReason(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetBooking", mock.Anything, "b-1").Return(reservedBooking(), nil)
	repo.On("UpdateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	dispatcher, _ := newTestAudit()
	uc := &CancelBooking{repo: repo, audit: dispatcher, now: func() time.Time { return testNow }}

	b, err := uc.Execute(context.Background(), CancelBookingInput{
		BookingID:   "b-1",
		PerformedBy: "user-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "User cancelled", b.CancelReason)
}

func TestCancelBooking_ForeignUserRejected(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetBooking", mock.Anything, "b-1").Return(reservedBooking(), nil)

	dispatcher, sink := newTestAudit()
	uc := &CancelBooking{repo: repo, audit: dispatcher, now: func() time.Time { return testNow }}

	_, err := uc.Execute(context.Background(), CancelBookingInput{
		BookingID:       "b-1",
		PerformedBy:     "user-2",
		PerformedByRole: "user",
	})

	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
	repo.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything)
	assert.False(t, sink.has("cancelled"))
}

func TestCancelBooking_AdminCancelsAnyBooking(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetBooking", mock.Anything, "b-1").Return(reservedBooking(), nil)
	repo.On("UpdateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	dispatcher, _ := newTestAudit()
	uc := &CancelBooking{repo: repo, audit: dispatcher, now: func() time.Time { return testNow }}

	b, err := uc.Execute(context.Background(), CancelBookingInput{
		BookingID:       "b-1",
		Reason:          "Maintenance",
		PerformedBy:     "admin-1",
		PerformedByRole: "admin",
	})

	require.NoError(t, err)
	assert.Equal(t, "cancelled", b.BookingStatus)
}

func TestCancelBooking_SystemCancelsOnPaymentFailure(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetBooking", mock.Anything, "b-1").Return(reservedBooking(), nil)
	repo.On("UpdateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	dispatcher, _ := newTestAudit()
	uc := &CancelBooking{repo: repo, audit: dispatcher, now: func() time.Time { return testNow }}

	b, err := uc.Execute(context.Background(), CancelBookingInput{
		BookingID:       "b-1",
		Reason:          "Payment failed",
		PerformedBy:     "mercadopago",
		PerformedByRole: "system",
	})

	require.NoError(t, err)
	assert.Equal(t, "cancelled", b.BookingStatus)
}

func TestCancelBooking_ConfirmedAllowed(t *testing.T) {
	booked := reservedBooking()
	booked.BookingStatus = "confirmed"
	booked.PaymentStatus = "completed"

	repo := new(MockRepository)
	repo.On("GetBooking", mock.Anything, "b-1").Return(booked, nil)
	repo.On("UpdateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	dispatcher, _ := newTestAudit()
	uc := &CancelBooking{repo: repo, audit: dispatcher, now: func() time.Time { return testNow }}

	b, err := uc.Execute(context.Background(), CancelBookingInput{
		BookingID:   "b-1",
		Reason:      "Rain",
		PerformedBy: "user-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "cancelled", b.BookingStatus)
}

func TestCancelBooking_TerminalRejected(t *testing.T) {
	gone := reservedBooking()
	gone.BookingStatus = "expired"

	repo := new(MockRepository)
	repo.On("GetBooking", mock.Anything, "b-1").Return(gone, nil)

	dispatcher, _ := newTestAudit()
	uc := &CancelBooking{repo: repo, audit: dispatcher, now: func() time.Time { return testNow }}

	_, err := uc.Execute(context.Background(), CancelBookingInput{
		BookingID:   "b-1",
		PerformedBy: "user-1",
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	repo.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything)
}

func TestCancelBooking_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetBooking", mock.Anything, "missing").Return(nil, errors.New("record not found"))

	dispatcher, _ := newTestAudit()
	uc := &CancelBooking{repo: repo, audit: dispatcher, now: func() time.Time { return testNow }}

	_, err := uc.Execute(context.Background(), CancelBookingInput{BookingID: "missing"})
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}
