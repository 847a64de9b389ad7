package booking

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/BruksfildServices01/court-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/court-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/court-scheduler/internal/models"
)

// Mock do repositório de reservas

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetCourt(ctx context.Context, id string) (*models.Court, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Court), args.Error(1)
}

func (m *MockRepository) GetUser(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRepository) GetSchedule(ctx context.Context, courtID string) (*domain.Schedule, error) {
	args := m.Called(ctx, courtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Schedule), args.Error(1)
}

func (m *MockRepository) ListBookingsForDate(ctx context.Context, courtID, date string) ([]models.Booking, error) {
	args := m.Called(ctx, courtID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockRepository) ListBookingsForSlot(ctx context.Context, courtID, date, startTime string) ([]models.Booking, error) {
	args := m.Called(ctx, courtID, date, startTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockRepository) ListBookingsByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockRepository) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockRepository) CreateReservation(ctx context.Context, b *models.Booking, now time.Time) error {
	args := m.Called(ctx, b, now)
	return args.Error(0)
}

func (m *MockRepository) UpdateBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockRepository) ListStaleReservations(ctx context.Context, olderThan time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, olderThan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

var _ domain.Repository = (*MockRepository)(nil)

// Mock do lock de slot

type MockSlotLock struct {
	mock.Mock
}

func (m *MockSlotLock) Acquire(ctx context.Context, courtID, date, startTime string) (bool, error) {
	args := m.Called(ctx, courtID, date, startTime)
	return args.Bool(0), args.Error(1)
}

func (m *MockSlotLock) Release(ctx context.Context, courtID, date, startTime string) error {
	args := m.Called(ctx, courtID, date, startTime)
	return args.Error(0)
}

var _ SlotLock = (*MockSlotLock)(nil)

// Sink de auditoria em memória. O dispatcher grava em goroutine
// própria, então as asserções usam Eventually.

type recordingSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *recordingSink) Log(ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *recordingSink) has(action string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ev := range s.events {
		if ev.Action == action {
			return true
		}
	}
	return false
}

func newTestAudit() (*audit.Dispatcher, *recordingSink) {
	sink := &recordingSink{}
	return audit.NewDispatcher(sink), sink
}
