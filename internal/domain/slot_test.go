package domain

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andrez18/lummoo-core/pkg/types"
)

func TestStaticSlots(t *testing.T) {
	slots := slices.Collect(StaticSlots())

	require.Len(t, slots, 17)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("09:30"), slots[1])
	assert.Equal(t, types.TimeString("17:00"), slots[16])
}

func TestStaticSlots_Restartable(t *testing.T) {
	seq := StaticSlots()

	var first []types.TimeString
	for s := range seq {
		first = append(first, s)
		if len(first) == 3 {
			break
		}
	}

	second := slices.Collect(seq)

	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00"}, first)
	assert.Equal(t, types.TimeString("09:00"), second[0])
	assert.Len(t, second, 17)
}

func TestSession_IsAdmin(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.IsAdmin())
	assert.False(t, (&Session{}).IsAdmin())
	assert.False(t, (&Session{Profile: &Profile{IsAdmin: false}}).IsAdmin())
	assert.True(t, (&Session{Profile: &Profile{IsAdmin: true}}).IsAdmin())
}
