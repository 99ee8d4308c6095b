package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(2024, time.February)
	assert.Equal(t, "2024-02-01", first.String())
	assert.Equal(t, "2024-02-29", last.String())

	first, last = MonthBounds(2023, time.February)
	assert.Equal(t, "2023-02-01", first.String())
	assert.Equal(t, "2023-02-28", last.String())

	first, last = MonthBounds(2024, time.December)
	assert.Equal(t, "2024-12-01", first.String())
	assert.Equal(t, "2024-12-31", last.String())
}

// FromTime must keep the wall-clock day, not the UTC day.
func TestFromTimeKeepsLocalDay(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)

	// 00:30 local on the 15th is still the 14th in UTC
	early := time.Date(2024, time.March, 15, 0, 30, 0, 0, loc)
	assert.Equal(t, "2024-03-15", FromTime(early).String())

	late := time.Date(2024, time.March, 15, 23, 30, 0, 0, loc)
	assert.Equal(t, "2024-03-15", FromTime(late).String())
}

func TestNextCrossesMonth(t *testing.T) {
	d, err := Parse("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", Next(d).String())
}

func TestMinMax(t *testing.T) {
	a, err := Parse("2024-03-01")
	require.NoError(t, err)
	b, err := Parse("2024-03-15")
	require.NoError(t, err)

	assert.Equal(t, a, Min(a, b))
	assert.Equal(t, b, Max(a, b))
	assert.Equal(t, a, Min(a, a))

	assert.True(t, Before(a, b))
	assert.False(t, Before(a, a))
	assert.True(t, After(b, a))
}
