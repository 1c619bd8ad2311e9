package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_Transitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusPending.CanTransitionTo(StatusCancelled))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCompleted))
	assert.False(t, StatusPending.CanTransitionTo(StatusCompleted))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusConfirmed))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusCancelled))
}

func TestBookingStatus_Label(t *testing.T) {
	assert.Equal(t, "Pendiente", StatusPending.Label())
	assert.Equal(t, "Confirmada", StatusConfirmed.Label())
	assert.Equal(t, "Cancelada", StatusCancelled.Label())
	assert.Equal(t, "Completada", StatusCompleted.Label())
	assert.Equal(t, "Pendiente", BookingStatus("unknown").Label())
}

func TestParseBookingStatus(t *testing.T) {
	s, ok := ParseBookingStatus("confirmed")
	assert.True(t, ok)
	assert.Equal(t, StatusConfirmed, s)

	_, ok = ParseBookingStatus("no_show")
	assert.False(t, ok)
}

func TestBooking_Overlaps(t *testing.T) {
	b := &Booking{StartTime: "10:00", EndTime: "10:30"}

	assert.True(t, b.Overlaps("10:00", "10:30"))
	assert.True(t, b.Overlaps("10:15", "10:45"))
	assert.True(t, b.Overlaps("09:30", "11:00"))
	assert.False(t, b.Overlaps("10:30", "11:00"), "touching intervals do not overlap")
	assert.False(t, b.Overlaps("09:30", "10:00"))
}
