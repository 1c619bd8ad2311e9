package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andrez18/lummoo-core/internal/domain"
	bookingRepo "github.com/Andrez18/lummoo-core/internal/infra/storage/booking"
	"github.com/Andrez18/lummoo-core/pkg/logger"
	"github.com/Andrez18/lummoo-core/pkg/ptr"
)

type memoryBookings struct {
	items      map[uuid.UUID]*domain.BookingDetails
	lastFilter domain.BookingsFilter

	// beforeUpdate вызывается перед сравнением статуса в UpdateStatus
	beforeUpdate func()
	updateErr    error
}

func (m *memoryBookings) GetDetailsByID(_ context.Context, id uuid.UUID) (*domain.BookingDetails, error) {
	if b, ok := m.items[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (m *memoryBookings) ListDetails(_ context.Context, filter domain.BookingsFilter) ([]*domain.BookingDetails, error) {
	m.lastFilter = filter
	out := make([]*domain.BookingDetails, 0)
	for _, b := range m.items {
		out = append(out, b)
	}
	return out, nil
}

func (m *memoryBookings) UpdateStatus(_ context.Context, id uuid.UUID, from, to domain.BookingStatus) error {
	if m.beforeUpdate != nil {
		m.beforeUpdate()
	}
	if m.updateErr != nil {
		return m.updateErr
	}
	b, ok := m.items[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if b.Status != from {
		return bookingRepo.ErrStatusChanged
	}
	b.Status = to
	return nil
}

type ownerBusinesses map[uuid.UUID][]*domain.Business

func (o ownerBusinesses) ListByOwner(_ context.Context, userID uuid.UUID) ([]*domain.Business, error) {
	return o[userID], nil
}

func newBookings(status domain.BookingStatus) (*Service, *memoryBookings, uuid.UUID, uuid.UUID) {
	owner := uuid.New()
	business := &domain.Business{ID: uuid.New(), UserID: owner}
	booking := &domain.BookingDetails{
		Booking: domain.Booking{
			ID:          uuid.New(),
			BusinessID:  business.ID,
			BookingDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			StartTime:   "10:00",
			EndTime:     "10:30",
			Status:      status,
		},
		CustomerName:  "Ana",
		CustomerPhone: "+57 300 1234567",
	}
	repo := &memoryBookings{items: map[uuid.UUID]*domain.BookingDetails{booking.ID: booking}}
	svc := NewService(repo, ownerBusinesses{owner: {business}}, logger.NewNop())
	return svc, repo, owner, booking.ID
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		from    domain.BookingStatus
		to      string
		allowed bool
	}{
		{domain.StatusPending, "confirmed", true},
		{domain.StatusPending, "cancelled", true},
		{domain.StatusPending, "completed", false},
		{domain.StatusConfirmed, "completed", true},
		{domain.StatusConfirmed, "cancelled", true},
		{domain.StatusCancelled, "confirmed", false},
		{domain.StatusCompleted, "cancelled", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+tt.to, func(t *testing.T) {
			svc, _, owner, id := newBookings(tt.from)

			resp, err := svc.UpdateStatus(context.Background(), owner, id, tt.to)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, resp.Status)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}

func TestUpdateStatus_ConcurrentCancelWins(t *testing.T) {
	svc, repo, owner, id := newBookings(domain.StatusPending)

	// Отмена фиксируется между чтением записи и записью нового статуса
	repo.beforeUpdate = func() {
		repo.items[id].Status = domain.StatusCancelled
	}

	_, err := svc.UpdateStatus(context.Background(), owner, id, "confirmed")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, domain.StatusCancelled, repo.items[id].Status)
}

func TestUpdateStatus_SlotTakenIsConflict(t *testing.T) {
	svc, repo, owner, id := newBookings(domain.StatusPending)
	repo.updateErr = bookingRepo.ErrSlotTaken

	_, err := svc.UpdateStatus(context.Background(), owner, id, "confirmed")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, domain.StatusPending, repo.items[id].Status)
}

func TestUpdateStatus_UnknownStatusAndForeignUser(t *testing.T) {
	svc, _, owner, id := newBookings(domain.StatusPending)

	_, err := svc.UpdateStatus(context.Background(), owner, id, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(context.Background(), uuid.New(), id, "confirmed")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList(t *testing.T) {
	svc, repo, owner, _ := newBookings(domain.StatusConfirmed)

	resp, err := svc.List(context.Background(), owner, ptr.Ptr("confirmed"))
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "Confirmada", resp.Bookings[0].StatusLabel)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastFilter.Status)
	assert.Len(t, repo.lastFilter.BusinessIDs, 1)

	_, err = svc.List(context.Background(), owner, ptr.Ptr("unknown"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	empty, err := svc.List(context.Background(), uuid.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty.Bookings)
}

func TestReminder(t *testing.T) {
	svc, _, owner, id := newBookings(domain.StatusPending)

	resp, err := svc.Reminder(context.Background(), owner, id)
	require.NoError(t, err)

	assert.Equal(t, "Hola Ana, te recordamos tu cita para el 10/3/2025 a las 10:00. ¡Te esperamos!", resp.Message)
	assert.Contains(t, resp.URL, "https://wa.me/573001234567?text=")
	assert.Contains(t, resp.URL, "Hola%20Ana%2C%20te%20recordamos")
}
