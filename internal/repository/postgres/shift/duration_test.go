package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcWorkHours(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		breakMin  int
		hours     float64
		overnight bool
	}{
		{"day shift", "09:00", "18:00", 60, 8.00, false},
		{"night shift", "22:00", "07:00", 60, 8.00, true},
		{"no break", "08:00", "16:00", 0, 8.00, false},
		{"short shift", "10:00", "10:30", 0, 0.50, false},
		{"uneven minutes", "09:15", "17:40", 45, 7.67, false},
		{"ends at midnight", "16:00", "00:00", 30, 7.50, true},
		{"with seconds", "09:00:00", "18:00:00", 60, 8.00, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours, overnight, err := CalcWorkHours(tt.start, tt.end, tt.breakMin)
			require.NoError(t, err)
			assert.Equal(t, tt.hours, hours)
			assert.Equal(t, tt.overnight, overnight)
		})
	}
}

func TestCalcWorkHoursRejects(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		breakMin int
	}{
		{"break equals span", "09:00", "10:00", 60},
		{"break exceeds span", "09:00", "10:00", 90},
		{"negative break", "09:00", "18:00", -15},
		{"bad start", "9am", "18:00", 0},
		{"bad end", "09:00", "25:00", 0},
		{"bad minute", "09:60", "18:00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := CalcWorkHours(tt.start, tt.end, tt.breakMin)
			assert.Error(t, err)
		})
	}
}

func TestNormalizeTimes(t *testing.T) {
	start := "09:00:00"
	end := "18:30:00"
	sp, ep := &start, &end

	normalizeTimes(&sp, &ep)

	assert.Equal(t, "09:00", *sp)
	assert.Equal(t, "18:30", *ep)

	var nilPtr *string
	normalizeTimes(&nilPtr)
	assert.Nil(t, nilPtr)
}
