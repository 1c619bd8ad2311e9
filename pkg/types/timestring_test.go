package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("9:05")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:05"), ts)

	ts, err = NewTimeStringFromString("17:30:00")
	require.NoError(t, err)
	assert.Equal(t, TimeString("17:30"), ts)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		start    TimeString
		minutes  int
		expected TimeString
	}{
		{start: "10:00", minutes: 30, expected: "10:30"},
		{start: "09:45", minutes: 90, expected: "11:15"},
		{start: "23:00", minutes: 59, expected: "23:59"},
		{start: "00:00", minutes: 15, expected: "00:15"},
	}

	for _, tt := range tests {
		t.Run(string(tt.start), func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAddMinutes_PastMidnight(t *testing.T) {
	_, err := TimeString("23:30").AddMinutes(30)
	assert.ErrorIs(t, err, ErrOutOfDay)
}

func TestCompare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
	assert.True(t, TimeString("18:00").IsAfter("17:59"))
	assert.False(t, TimeString("bad").IsAfter("00:00"))
}

func TestScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("10:30:00")))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 8, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
