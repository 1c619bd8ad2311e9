package booking

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andrez18/lummoo-core/internal/domain"
	"github.com/Andrez18/lummoo-core/internal/infra/storage/storagetest"
	"github.com/Andrez18/lummoo-core/pkg/types"
)

type fixture struct {
	businessID uuid.UUID
	serviceID  uuid.UUID
	customerID uuid.UUID
}

func seed(t *testing.T, db *sql.DB) fixture {
	t.Helper()
	ctx := context.Background()

	var f fixture
	var userID uuid.UUID
	require.NoError(t, db.QueryRowContext(ctx,
		`INSERT INTO users (email, password_hash) VALUES ('owner@example.com', 'x') RETURNING id`).Scan(&userID))
	require.NoError(t, db.QueryRowContext(ctx,
		`INSERT INTO businesses (user_id, name, email, phone, address)
		 VALUES ($1, 'Barbería Central', 'bar@example.com', '3001234567', 'Calle 1 # 2-3') RETURNING id`,
		userID).Scan(&f.businessID))
	require.NoError(t, db.QueryRowContext(ctx,
		`INSERT INTO services (business_id, name, price, duration) VALUES ($1, 'Haircut', 15.00, 30) RETURNING id`,
		f.businessID).Scan(&f.serviceID))
	require.NoError(t, db.QueryRowContext(ctx,
		`INSERT INTO customers (name, email, phone) VALUES ('Ana', 'ana@example.com', '3001234567') RETURNING id`).Scan(&f.customerID))
	return f
}

func newBooking(f fixture, start, end string) *domain.Booking {
	return &domain.Booking{
		BusinessID:  f.businessID,
		ServiceID:   f.serviceID,
		CustomerID:  f.customerID,
		BookingDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		Status:      domain.StatusPending,
	}
}

func TestCreate_RoundTrip(t *testing.T) {
	db := storagetest.Open(t)
	repo := NewRepository(db)
	f := seed(t, db)
	ctx := context.Background()

	created, err := repo.Create(ctx, newBooking(f, "10:00", "10:30"))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "10:00", got.StartTime.String())
	assert.Equal(t, "10:30", got.EndTime.String())
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Equal(t, "2025-03-10", got.BookingDate.Format(domain.DateFormat))

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCreate_SameSlotIsRejected(t *testing.T) {
	db := storagetest.Open(t)
	repo := NewRepository(db)
	f := seed(t, db)
	ctx := context.Background()

	_, err := repo.Create(ctx, newBooking(f, "10:00", "10:30"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newBooking(f, "10:00", "10:30"))
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCreate_CancelledSlotCanBeRebooked(t *testing.T) {
	db := storagetest.Open(t)
	repo := NewRepository(db)
	f := seed(t, db)
	ctx := context.Background()

	first, err := repo.Create(ctx, newBooking(f, "10:00", "10:30"))
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatus(ctx, first.ID, domain.StatusPending, domain.StatusCancelled))

	_, err = repo.Create(ctx, newBooking(f, "10:00", "10:30"))
	assert.NoError(t, err)
}

func TestUpdateStatus_StaleStatusIsRejected(t *testing.T) {
	db := storagetest.Open(t)
	repo := NewRepository(db)
	f := seed(t, db)
	ctx := context.Background()

	booking, err := repo.Create(ctx, newBooking(f, "10:00", "10:30"))
	require.NoError(t, err)

	// Отмена прошла первой, подтверждение видит устаревший статус pending
	require.NoError(t, repo.UpdateStatus(ctx, booking.ID, domain.StatusPending, domain.StatusCancelled))
	err = repo.UpdateStatus(ctx, booking.ID, domain.StatusPending, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrStatusChanged)

	stored, err := repo.GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, stored.Status)
}

func TestUpdateStatus_UnknownBooking(t *testing.T) {
	repo := NewRepository(storagetest.Open(t))

	err := repo.UpdateStatus(context.Background(), uuid.New(), domain.StatusPending, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
