package schedule

import (
	"sort"
	"time"

	"hrm/backend/internal/entity"
	"hrm/backend/internal/pkg/dateutil"

	"github.com/Azure/go-autorest/autorest/date"
)

// MergeMonth overlays schedule/attendance/holiday rows with approved leave
// spans into one DayView per calendar day. Rows land in the map first, leaves
// are applied last and replace whatever they collide with. Leave spans
// crossing month boundaries are clipped to the requested month. The result is
// ordered by date.
func MergeMonth(rows []ScheduleRow, leaves []LeaveSpan, year int, month time.Month, today date.Date) []DayView {
	first, last := dateutil.MonthBounds(year, month)

	days := make(map[string]*DayView)

	for _, row := range rows {
		day := &DayView{
			WorkDay:     row.WorkDay,
			Status:      resolveFromRow(row, today),
			ShiftID:     row.ShiftID,
			ShiftName:   row.ShiftName,
			ShiftColor:  row.ShiftColor,
			StartTime:   row.StartTime,
			EndTime:     row.EndTime,
			ClockIn:     clock(row.ClockIn),
			ClockOut:    clock(row.ClockOut),
			Description: row.HolidayDescription,
		}
		days[row.WorkDay.String()] = day
	}

	for _, leave := range leaves {
		start := dateutil.Max(leave.Start, first)
		end := dateutil.Min(leave.End, last)

		for d := start; !dateutil.After(d, end); d = dateutil.Next(d) {
			typeName := leave.TypeName
			days[d.String()] = &DayView{
				WorkDay:   d,
				Status:    StatusLeave,
				LeaveType: &typeName,
			}
		}
	}

	list := make([]DayView, 0, len(days))
	for _, day := range days {
		list = append(list, *day)
	}

	sort.Slice(list, func(i, j int) bool {
		return dateutil.Before(list[i].WorkDay, list[j].WorkDay)
	})

	return list
}

// resolveFromRow decides a day's status when no leave covers it.
// Priority: holiday > off > attendance > absent/scheduled by date.
func resolveFromRow(row ScheduleRow, today date.Date) DayStatus {
	if row.Holiday {
		return StatusHoliday
	}

	if row.ScheduleStatus != nil {
		switch *row.ScheduleStatus {
		case entity.ScheduleHoliday:
			return StatusHoliday
		case entity.ScheduleOff:
			return StatusOff
		}
	}

	if row.ClockIn != nil {
		if row.ClockOut == nil {
			return StatusWorking
		}
		if row.Punctuality != nil && *row.Punctuality == "late" {
			return StatusLate
		}
		return StatusOnTime
	}

	if dateutil.Before(row.WorkDay, today) {
		return StatusAbsent
	}

	return StatusScheduled
}

func clock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}
