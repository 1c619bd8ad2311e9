package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDayHours_SundayClosed(t *testing.T) {
	hours := &BusinessHours{
		Sunday: &DaySchedule{Open: "09:00", Close: "18:00", Closed: true},
	}

	label := FormatDayHours(hours.Day(time.Sunday), "No configurado")

	assert.Equal(t, "Cerrado", label)
	assert.NotContains(t, label, "09:00")
	assert.NotContains(t, label, "18:00")
}

func TestFormatDayHours(t *testing.T) {
	assert.Equal(t, "09:00 - 14:00", FormatDayHours(&DaySchedule{Open: "09:00", Close: "14:00"}, "-"))
	assert.Equal(t, "No configurado", FormatDayHours(nil, "No configurado"))
}

func TestHoursDisplay(t *testing.T) {
	b := &Business{BusinessHours: DefaultBusinessHours()}

	display := b.HoursDisplay()
	require.Len(t, display, 7)

	assert.Equal(t, DayHours{Key: "monday", Label: "Lunes", Hours: "09:00 - 18:00"}, display[0])
	assert.Equal(t, DayHours{Key: "saturday", Label: "Sábado", Hours: "09:00 - 14:00"}, display[5])
	assert.Equal(t, DayHours{Key: "sunday", Label: "Domingo", Hours: "Cerrado"}, display[6])
}

func TestHoursDisplay_NotConfigured(t *testing.T) {
	b := &Business{}

	for _, d := range b.HoursDisplay() {
		assert.Equal(t, "No configurado", d.Hours)
	}
}

func TestTodayHours_UsesBusinessTimezone(t *testing.T) {
	b := &Business{
		Timezone: "America/Bogota",
		BusinessHours: &BusinessHours{
			Sunday: &DaySchedule{Closed: true},
			Monday: &DaySchedule{Open: "08:00", Close: "12:00"},
		},
	}

	// Понедельник 03:00 UTC = воскресенье 22:00 в Боготе
	now := time.Date(2025, 3, 10, 3, 0, 0, 0, time.UTC)

	assert.Equal(t, "Cerrado", b.TodayHours(now))
	assert.Equal(t, "No disponible", (&Business{}).TodayHours(now))
}

func TestBusinessHours_Validate(t *testing.T) {
	assert.NoError(t, DefaultBusinessHours().Validate())

	bad := &BusinessHours{Monday: &DaySchedule{Open: "18:00", Close: "09:00"}}
	assert.ErrorIs(t, bad.Validate(), ErrInvalidBusinessHours)

	malformed := &BusinessHours{Tuesday: &DaySchedule{Open: "9am", Close: "17:00"}}
	assert.ErrorIs(t, malformed.Validate(), ErrInvalidBusinessHours)

	closed := &BusinessHours{Sunday: &DaySchedule{Closed: true}}
	assert.NoError(t, closed.Validate())
}

func TestBusinessHours_JSONRoundTripThroughScanner(t *testing.T) {
	value, err := DefaultBusinessHours().Value()
	require.NoError(t, err)

	var scanned BusinessHours
	require.NoError(t, scanned.Scan([]byte(value.(string))))

	assert.Equal(t, "14:00", scanned.Saturday.Close)
	assert.True(t, scanned.Sunday.Closed)
}

func TestBookingLink(t *testing.T) {
	id := uuid.MustParse("6f1c2c1e-7a55-4c55-9d1f-0b0d6e1f2a3b")
	b := &Business{ID: id}

	assert.Equal(t, "/booking/6f1c2c1e-7a55-4c55-9d1f-0b0d6e1f2a3b", b.BookingLink())
}
