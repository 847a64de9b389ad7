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
	"github.com/BruksfildServices01/court-scheduler/internal/models"
)

func reservedBooking() *models.Booking {
	return &models.Booking{
		ID:            "b-1",
		UserID:        "user-1",
		CourtID:       "court-1",
		Date:          "2025-06-05",
		StartTime:     "18:00",
		EndTime:       "18:30",
		BookingStatus: "reserved",
		PaymentStatus: "pending",
		CreatedAt:     testNow.Add(-time.Minute),
	}
}

func TestConfirmBooking_Success(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetBooking", mock.Anything, "b-1").Return(reservedBooking(), nil)
	repo.On("UpdateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	dispatcher, sink := newTestAudit()
	uc := NewConfirmBooking(repo, dispatcher)

	b, err := uc.Execute(context.Background(), "b-1", PaymentData{
		PaymentID: "mp-123",
		OrderID:   "order-9",
		UserID:    "user-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", b.BookingStatus)
	assert.Equal(t, "completed", b.PaymentStatus)
	assert.Equal(t, "mp-123", b.PaymentID)
	assert.Equal(t, "order-9", b.OrderID)

	assert.Eventually(t, func() bool { return sink.has("payment_completed") },
		time.Second, 10*time.Millisecond)
	repo.AssertExpectations(t)
}

func TestConfirmBooking_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetBooking", mock.Anything, "missing").Return(nil, errors.New("record not found"))

	dispatcher, _ := newTestAudit()
	uc := NewConfirmBooking(repo, dispatcher)

	_, err := uc.Execute(context.Background(), "missing", PaymentData{PaymentID: "mp-1"})
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestConfirmBooking_SamePaymentIsIdempotent(t *testing.T) {
	b := reservedBooking()
	b.BookingStatus = "confirmed"
	b.PaymentStatus = "completed"
	b.PaymentID = "mp-123"

	repo := new(MockRepository)
	repo.On("GetBooking", mock.Anything, "b-1").Return(b, nil)

	dispatcher, sink := newTestAudit()
	uc := NewConfirmBooking(repo, dispatcher)

	got, err := uc.Execute(context.Background(), "b-1", PaymentData{PaymentID: "mp-123"})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", got.BookingStatus)
	repo.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything)
	assert.False(t, sink.has("payment_completed"))
}

func TestConfirmBooking_DifferentPaymentConflicts(t *testing.T) {
	b := reservedBooking()
	b.BookingStatus = "confirmed"
	b.PaymentStatus = "completed"
	b.PaymentID = "mp-123"

	repo := new(MockRepository)
	repo.On("GetBooking", mock.Anything, "b-1").Return(b, nil)

	dispatcher, _ := newTestAudit()
	uc := NewConfirmBooking(repo, dispatcher)

	_, err := uc.Execute(context.Background(), "b-1", PaymentData{PaymentID: "mp-999"})
	assert.True(t, httperr.IsBusiness(err, "payment_conflict"))
	repo.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything)
}

func TestConfirmBooking_CancelledRejected(t *testing.T) {
	b := reservedBooking()
	b.BookingStatus = "cancelled"

	repo := new(MockRepository)
	repo.On("GetBooking", mock.Anything, "b-1").Return(b, nil)

	dispatcher, _ := newTestAudit()
	uc := NewConfirmBooking(repo, dispatcher)

	_, err := uc.Execute(context.Background(), "b-1", PaymentData{PaymentID: "mp-123"})
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
