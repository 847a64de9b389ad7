package booking

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/court-scheduler/internal/httperr"
	"github.com/BruksfildServices01/court-scheduler/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 12, 15, 18, 0, 0, 0, time.UTC)

func bookingWith(status Status, payment PaymentStatus, age time.Duration) *models.Booking {
	return &models.Booking{
		BookingStatus: string(status),
		PaymentStatus: string(payment),
		CreatedAt:     baseTime.Add(-age),
	}
}

func TestIsBlocking_Confirmed(t *testing.T) {
	// confirmada bloqueia sempre, sem expiração por idade
	b := bookingWith(StatusConfirmed, PaymentCompleted, 48*time.Hour)
	assert.True(t, IsBlocking(b, baseTime))
}

func TestIsBlocking_ReservedWithinHold(t *testing.T) {
	b := bookingWith(StatusReserved, PaymentPending, 4*time.Minute)
	assert.True(t, IsBlocking(b, baseTime))
}

func TestIsBlocking_ReservedPastHold(t *testing.T) {
	// aos 6 minutos o hold de 5 já venceu — libera sem esperar o sweeper
	b := bookingWith(StatusReserved, PaymentPending, 6*time.Minute)
	assert.False(t, IsBlocking(b, baseTime))
}

func TestIsBlocking_ReservedExactlyAtHold(t *testing.T) {
	b := bookingWith(StatusReserved, PaymentPending, ReservedHoldWindow)
	assert.False(t, IsBlocking(b, baseTime))
}

func TestIsBlocking_PendingPayment(t *testing.T) {
	b := bookingWith("pending", PaymentPending, 9*time.Minute)
	assert.True(t, IsBlocking(b, baseTime))

	b = bookingWith("pending", PaymentPending, 11*time.Minute)
	assert.False(t, IsBlocking(b, baseTime))
}

func TestIsBlocking_Terminal(t *testing.T) {
	assert.False(t, IsBlocking(bookingWith(StatusCancelled, PaymentFailed, time.Minute), baseTime))
	assert.False(t, IsBlocking(bookingWith(StatusExpired, PaymentPending, time.Minute), baseTime))
}

func TestConfirm(t *testing.T) {
	b := bookingWith(StatusReserved, PaymentPending, time.Minute)

	require.NoError(t, Confirm(b, "pay_123", "order_456"))
	assert.Equal(t, string(StatusConfirmed), b.BookingStatus)
	assert.Equal(t, string(PaymentCompleted), b.PaymentStatus)
	assert.Equal(t, "pay_123", b.PaymentID)
	assert.Equal(t, "order_456", b.OrderID)
}

func TestConfirm_IdempotentSamePayment(t *testing.T) {
	b := bookingWith(StatusReserved, PaymentPending, time.Minute)
	require.NoError(t, Confirm(b, "pay_123", "order_456"))

	// repetir com o mesmo pagamento não é erro nem sobrescreve nada
	require.NoError(t, Confirm(b, "pay_123", "order_456"))
	assert.Equal(t, "pay_123", b.PaymentID)
}

func TestConfirm_ConflictingPayment(t *testing.T) {
	b := bookingWith(StatusReserved, PaymentPending, time.Minute)
	require.NoError(t, Confirm(b, "pay_123", "order_456"))

	err := Confirm(b, "pay_999", "order_999")
	assert.True(t, httperr.IsBusiness(err, "payment_conflict"))
	assert.Equal(t, "pay_123", b.PaymentID)
}

func TestConfirm_InvalidState(t *testing.T) {
	b := bookingWith(StatusCancelled, PaymentFailed, time.Minute)
	err := Confirm(b, "pay_123", "")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancel(t *testing.T) {
	b := bookingWith(StatusReserved, PaymentPending, time.Minute)

	require.NoError(t, Cancel(b, "User cancelled", baseTime))
	assert.Equal(t, string(StatusCancelled), b.BookingStatus)
	assert.Equal(t, "User cancelled", b.CancelReason)
	require.NotNil(t, b.CancelledAt)
	assert.Equal(t, baseTime, *b.CancelledAt)
}

func TestCancel_ConfirmedAllowed(t *testing.T) {
	b := bookingWith(StatusConfirmed, PaymentCompleted, time.Hour)
	assert.NoError(t, Cancel(b, "Admin cancelled", baseTime))
}

func TestCancel_TerminalRejected(t *testing.T) {
	b := bookingWith(StatusExpired, PaymentPending, time.Hour)
	err := Cancel(b, "again", baseTime)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestExpire(t *testing.T) {
	b := bookingWith(StatusReserved, PaymentPending, 10*time.Minute)

	require.NoError(t, Expire(b, baseTime))
	assert.Equal(t, string(StatusExpired), b.BookingStatus)
	require.NotNil(t, b.CancelledAt)
}

func TestExpire_OnlyReserved(t *testing.T) {
	b := bookingWith(StatusConfirmed, PaymentCompleted, time.Hour)
	err := Expire(b, baseTime)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
