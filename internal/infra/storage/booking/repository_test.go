package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andrez18/lummoo-core/internal/domain"
	"github.com/Andrez18/lummoo-core/pkg/psqlbuilder"
)

func TestApplyFilter_ActiveSlotsForDate(t *testing.T) {
	businessID := uuid.New()
	serviceID := uuid.New()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	query, args, err := applyFilter(psqlbuilder.Select("b.id").From("bookings b"), domain.BookingsFilter{
		BusinessIDs: []uuid.UUID{businessID},
		ServiceID:   &serviceID,
		Date:        &date,
		ActiveOnly:  true,
	}).ToSql()

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT b.id FROM bookings b WHERE b.business_id IN ($1) AND b.service_id = $2 AND b.booking_date = $3 AND b.status <> $4",
		query)
	require.Len(t, args, 4)
	assert.Equal(t, "2025-03-10", args[2])
	assert.Equal(t, domain.StatusCancelled, args[3])
}

func TestApplyFilter_StatusOverridesActiveOnly(t *testing.T) {
	status := domain.StatusConfirmed

	query, _, err := applyFilter(psqlbuilder.Select("b.id").From("bookings b"), domain.BookingsFilter{
		BusinessIDs: []uuid.UUID{uuid.New(), uuid.New()},
		Status:      &status,
		ActiveOnly:  true,
	}).ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT b.id FROM bookings b WHERE b.business_id IN ($1,$2) AND b.status = $3", query)
}

func TestDetailsSelect_JoinsRelatedTables(t *testing.T) {
	query, _, err := detailsSelect().ToSql()

	require.NoError(t, err)
	assert.Contains(t, query, "JOIN customers c ON c.id = b.customer_id")
	assert.Contains(t, query, "JOIN services s ON s.id = b.service_id")
	assert.Contains(t, query, "JOIN businesses bz ON bz.id = b.business_id")
}
