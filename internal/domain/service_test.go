package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := map[int]string{
		15:  "15min",
		30:  "30min",
		60:  "1h",
		90:  "1h 30min",
		120: "2h",
		135: "2h 15min",
	}

	for minutes, expected := range tests {
		assert.Equal(t, expected, FormatDuration(minutes))
	}
}

func TestEffectiveDuration(t *testing.T) {
	assert.Equal(t, 30, (&Service{Duration: 30}).EffectiveDuration())
	assert.Equal(t, 60, (&Service{}).EffectiveDuration())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@example.com", NormalizeEmail("  Ana@Example.COM "))
}
