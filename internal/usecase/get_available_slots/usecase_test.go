package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andrez18/lummoo-core/internal/domain"
	businessRepo "github.com/Andrez18/lummoo-core/internal/infra/storage/business"
	"github.com/Andrez18/lummoo-core/pkg/logger"
)

type stubBusinesses map[uuid.UUID]*domain.Business

func (s stubBusinesses) GetByID(_ context.Context, id uuid.UUID) (*domain.Business, error) {
	if b, ok := s[id]; ok {
		return b, nil
	}
	return nil, businessRepo.ErrBusinessNotFound
}

type stubServices map[uuid.UUID]*domain.Service

func (s stubServices) GetByID(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	return s[id], nil
}

type stubBookings struct {
	bookings []*domain.Booking
	calls    int
}

func (s *stubBookings) GetByFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	s.calls++
	return s.bookings, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func newUseCase(options Options, bookings *stubBookings) (*UseCase, *domain.Business, *domain.Service) {
	business := &domain.Business{
		ID:       uuid.New(),
		Timezone: "UTC",
		BusinessHours: &domain.BusinessHours{
			Monday: &domain.DaySchedule{Open: "09:00", Close: "10:00"},
			Sunday: &domain.DaySchedule{Closed: true},
		},
	}
	service := &domain.Service{ID: uuid.New(), BusinessID: business.ID, Duration: 30, IsActive: true}

	uc := NewUseCase(
		stubBusinesses{business.ID: business},
		stubServices{service.ID: service},
		bookings,
		options,
		logger.NewNop(),
	)
	uc.timeProvider = fixedTime{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}

	return uc, business, service
}

func TestExecute_HardenedIntersectsBookings(t *testing.T) {
	bookings := &stubBookings{bookings: []*domain.Booking{
		{StartTime: "09:00", EndTime: "09:30", Status: domain.StatusPending},
	}}
	uc, business, service := newUseCase(Options{}, bookings)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: business.ID, ServiceID: service.ID, Date: "2025-03-10"})
	require.NoError(t, err)

	assert.Equal(t, []domain.Slot{{Start: "09:30", End: "10:00"}}, resp.Slots)
	assert.Equal(t, 30, resp.DurationMinutes)
}

func TestExecute_ClosedDayIsEmpty(t *testing.T) {
	bookings := &stubBookings{}
	uc, business, service := newUseCase(Options{}, bookings)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: business.ID, ServiceID: service.ID, Date: "2025-03-09"})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Zero(t, bookings.calls)
}

func TestExecute_PastDateIsEmpty(t *testing.T) {
	uc, business, service := newUseCase(Options{}, &stubBookings{})

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: business.ID, ServiceID: service.ID, Date: "2025-02-24"})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_StaticIgnoresHoursAndBookings(t *testing.T) {
	bookings := &stubBookings{}
	uc, business, service := newUseCase(Options{Static: true}, bookings)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: business.ID, ServiceID: service.ID, Date: "2025-03-09"})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 17)
	assert.Zero(t, bookings.calls)
}

func TestExecute_Errors(t *testing.T) {
	uc, business, service := newUseCase(Options{}, &stubBookings{})

	_, err := uc.Execute(context.Background(), &Request{BusinessID: business.ID, ServiceID: service.ID, Date: "10-03-2025"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BusinessID: uuid.New(), ServiceID: service.ID, Date: "2025-03-10"})
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	service.IsActive = false
	_, err = uc.Execute(context.Background(), &Request{BusinessID: business.ID, ServiceID: service.ID, Date: "2025-03-10"})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
