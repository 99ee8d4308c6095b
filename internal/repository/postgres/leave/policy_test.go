package leave

import (
	"testing"

	"hrm/backend/internal/pkg/dateutil"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) date.Date {
	t.Helper()
	d, err := dateutil.Parse(s)
	require.NoError(t, err)
	return d
}

func floatPtr(f float64) *float64 { return &f }

func TestCountDays(t *testing.T) {
	policy := Policy{HalfDayMaxHours: 4}

	tests := []struct {
		name  string
		start string
		end   string
		hours *float64
		want  float64
	}{
		{"single day", "2024-03-11", "2024-03-11", nil, 1},
		{"full week", "2024-03-11", "2024-03-15", nil, 5},
		{"across month end", "2024-03-30", "2024-04-02", nil, 4},
		{"half day", "2024-03-11", "2024-03-11", floatPtr(3), 0.5},
		{"at the threshold", "2024-03-11", "2024-03-11", floatPtr(4), 0.5},
		{"over the threshold", "2024-03-11", "2024-03-11", floatPtr(5), 1},
		{"hours ignored on multi-day", "2024-03-11", "2024-03-12", floatPtr(3), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.CountDays(day(t, tt.start), day(t, tt.end), tt.hours)
			assert.Equal(t, tt.want, got)
		})
	}
}
