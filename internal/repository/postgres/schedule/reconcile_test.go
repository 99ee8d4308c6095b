package schedule

import (
	"testing"
	"time"

	"hrm/backend/internal/entity"
	"hrm/backend/internal/pkg/dateutil"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) date.Date {
	t.Helper()
	parsed, err := dateutil.Parse(s)
	require.NoError(t, err)
	return parsed
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func timePtr(t *testing.T, day, clock string) *time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", day+" "+clock)
	require.NoError(t, err)
	return &ts
}

func TestMergeMonthStatusResolution(t *testing.T) {
	today := day(t, "2024-03-15")

	rows := []ScheduleRow{
		// finished on time
		{
			WorkDay:        day(t, "2024-03-01"),
			ScheduleStatus: strPtr(entity.ScheduleScheduled),
			ShiftID:        intPtr(1),
			ClockIn:        timePtr(t, "2024-03-01", "08:58"),
			ClockOut:       timePtr(t, "2024-03-01", "18:02"),
			Punctuality:    strPtr("on_time"),
		},
		// finished late
		{
			WorkDay:        day(t, "2024-03-04"),
			ScheduleStatus: strPtr(entity.ScheduleScheduled),
			ShiftID:        intPtr(1),
			ClockIn:        timePtr(t, "2024-03-04", "09:31"),
			ClockOut:       timePtr(t, "2024-03-04", "18:00"),
			Punctuality:    strPtr("late"),
		},
		// clocked in, still at work
		{
			WorkDay:        day(t, "2024-03-15"),
			ScheduleStatus: strPtr(entity.ScheduleScheduled),
			ShiftID:        intPtr(1),
			ClockIn:        timePtr(t, "2024-03-15", "09:00"),
		},
		// scheduled in the past, never showed up
		{
			WorkDay:        day(t, "2024-03-05"),
			ScheduleStatus: strPtr(entity.ScheduleScheduled),
			ShiftID:        intPtr(1),
		},
		// scheduled in the future
		{
			WorkDay:        day(t, "2024-03-20"),
			ScheduleStatus: strPtr(entity.ScheduleScheduled),
			ShiftID:        intPtr(1),
		},
		// day off
		{
			WorkDay:        day(t, "2024-03-06"),
			ScheduleStatus: strPtr(entity.ScheduleOff),
		},
		// public holiday wins over the assigned shift
		{
			WorkDay:            day(t, "2024-03-08"),
			ScheduleStatus:     strPtr(entity.ScheduleScheduled),
			ShiftID:            intPtr(1),
			Holiday:            true,
			HolidayDescription: strPtr("Women's Day"),
		},
	}

	list := MergeMonth(rows, nil, 2024, time.March, today)
	require.Len(t, list, len(rows))

	byDay := map[string]DayView{}
	for _, view := range list {
		byDay[view.WorkDay.String()] = view
	}

	assert.Equal(t, StatusOnTime, byDay["2024-03-01"].Status)
	assert.Equal(t, StatusLate, byDay["2024-03-04"].Status)
	assert.Equal(t, StatusWorking, byDay["2024-03-15"].Status)
	assert.Equal(t, StatusAbsent, byDay["2024-03-05"].Status)
	assert.Equal(t, StatusScheduled, byDay["2024-03-20"].Status)
	assert.Equal(t, StatusOff, byDay["2024-03-06"].Status)
	assert.Equal(t, StatusHoliday, byDay["2024-03-08"].Status)

	require.NotNil(t, byDay["2024-03-01"].ClockIn)
	assert.Equal(t, "08:58", *byDay["2024-03-01"].ClockIn)
	require.NotNil(t, byDay["2024-03-01"].ClockOut)
	assert.Equal(t, "18:02", *byDay["2024-03-01"].ClockOut)
	assert.Nil(t, byDay["2024-03-15"].ClockOut)
}

func TestMergeMonthLeaveWins(t *testing.T) {
	today := day(t, "2024-03-15")

	rows := []ScheduleRow{
		{
			WorkDay:        day(t, "2024-03-11"),
			ScheduleStatus: strPtr(entity.ScheduleScheduled),
			ShiftID:        intPtr(2),
			ClockIn:        timePtr(t, "2024-03-11", "09:00"),
			ClockOut:       timePtr(t, "2024-03-11", "18:00"),
			Punctuality:    strPtr("on_time"),
		},
		{
			WorkDay: day(t, "2024-03-12"),
			Holiday: true,
		},
	}
	leaves := []LeaveSpan{
		{Start: day(t, "2024-03-11"), End: day(t, "2024-03-13"), TypeName: "Annual Leave"},
	}

	list := MergeMonth(rows, leaves, 2024, time.March, today)
	require.Len(t, list, 3)

	for _, view := range list {
		assert.Equal(t, StatusLeave, view.Status, view.WorkDay.String())
		require.NotNil(t, view.LeaveType)
		assert.Equal(t, "Annual Leave", *view.LeaveType)
	}
}

func TestMergeMonthClipsLeaveToMonth(t *testing.T) {
	today := day(t, "2024-03-15")

	leaves := []LeaveSpan{
		{Start: day(t, "2024-02-26"), End: day(t, "2024-03-02"), TypeName: "Sick Leave"},
		{Start: day(t, "2024-03-30"), End: day(t, "2024-04-05"), TypeName: "Annual Leave"},
	}

	list := MergeMonth(nil, leaves, 2024, time.March, today)
	require.Len(t, list, 4)

	assert.Equal(t, "2024-03-01", list[0].WorkDay.String())
	assert.Equal(t, "2024-03-02", list[1].WorkDay.String())
	assert.Equal(t, "2024-03-30", list[2].WorkDay.String())
	assert.Equal(t, "2024-03-31", list[3].WorkDay.String())
}

func TestMergeMonthSortsAscending(t *testing.T) {
	today := day(t, "2024-03-15")

	rows := []ScheduleRow{
		{WorkDay: day(t, "2024-03-20"), ScheduleStatus: strPtr(entity.ScheduleScheduled)},
		{WorkDay: day(t, "2024-03-02"), ScheduleStatus: strPtr(entity.ScheduleScheduled)},
		{WorkDay: day(t, "2024-03-10"), ScheduleStatus: strPtr(entity.ScheduleScheduled)},
	}

	list := MergeMonth(rows, nil, 2024, time.March, today)
	require.Len(t, list, 3)

	for i := 1; i < len(list); i++ {
		assert.True(t, dateutil.Before(list[i-1].WorkDay, list[i].WorkDay))
	}
}
