package schedule

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/uptrace/bun"
)

// DayStatus is the derived per-day state shown on the calendar. Resolution
// lives in ResolveStatus; nothing else decides a day's status.
type DayStatus string

const (
	StatusOnTime    DayStatus = "ontime"
	StatusLate      DayStatus = "late"
	StatusAbsent    DayStatus = "absent"
	StatusScheduled DayStatus = "scheduled"
	StatusOff       DayStatus = "off"
	StatusHoliday   DayStatus = "holiday"
	StatusLeave     DayStatus = "leave"
	StatusWorking   DayStatus = "working"
)

// DayView is the merged per-user-per-date record. It is derived, never
// persisted.
type DayView struct {
	WorkDay     date.Date `json:"work_day"`
	Status      DayStatus `json:"status"`
	ShiftID     *int      `json:"shift_id,omitempty"`
	ShiftName   *string   `json:"shift_name,omitempty"`
	ShiftColor  *string   `json:"shift_color,omitempty"`
	StartTime   *string   `json:"start_time,omitempty"`
	EndTime     *string   `json:"end_time,omitempty"`
	ClockIn     *string   `json:"clock_in,omitempty"`
	ClockOut    *string   `json:"clock_out,omitempty"`
	LeaveType   *string   `json:"leave_type,omitempty"`
	Description *string   `json:"description,omitempty"`
}

// ScheduleRow is one joined row of the month query: a schedule entry and/or
// attendance record for a day, with shift and holiday context.
type ScheduleRow struct {
	WorkDay            date.Date
	ScheduleStatus     *string
	ShiftID            *int
	ShiftName          *string
	ShiftColor         *string
	StartTime          *string
	EndTime            *string
	ClockIn            *time.Time
	ClockOut           *time.Time
	Punctuality        *string
	Holiday            bool
	HolidayDescription *string
}

// LeaveSpan is an approved leave overlapping the queried month.
type LeaveSpan struct {
	Start    date.Date
	End      date.Date
	TypeName string
}

type ListFilter struct {
	Month int
	Year  int
}

type ListMonthResponse struct {
	ID         int       `json:"id"`
	UserID     *int      `json:"user_id"`
	UserName   *string   `json:"user_name"`
	ShiftID    *int      `json:"shift_id"`
	ShiftName  *string   `json:"shift_name"`
	ShiftColor *string   `json:"shift_color"`
	StartTime  *string   `json:"start_time,omitempty"`
	EndTime    *string   `json:"end_time,omitempty"`
	WorkDay    date.Date `json:"work_day"`
	Status     *string   `json:"status"`
}

// AssignmentItem is one user's schedule for the batch date. A present
// shift_id upserts a scheduled row; a bare off/holiday status upserts a
// shiftless row; neither clears the day.
type AssignmentItem struct {
	UserID  *int    `json:"user_id" form:"user_id"`
	ShiftID *int    `json:"shift_id" form:"shift_id"`
	Status  *string `json:"status" form:"status"`
}

type AssignRequest struct {
	Date        string           `json:"date" form:"date"`
	Assignments []AssignmentItem `json:"assignments" form:"assignments"`
}

type HolidayFilter struct {
	Month int
	Year  int
}

type HolidayListResponse struct {
	ID          int       `json:"id"`
	HolidayDate date.Date `json:"holiday_date"`
	Description *string   `json:"description"`
}

type HolidayCreateRequest struct {
	HolidayDate *string `json:"holiday_date" form:"holiday_date"`
	Description *string `json:"description" form:"description"`
}

type HolidayCreateResponse struct {
	bun.BaseModel `bun:"table:holidays"`

	ID          int       `json:"id" bun:"-"`
	HolidayDate *string   `json:"holiday_date" bun:"holiday_date"`
	Description *string   `json:"description" bun:"description"`
	CreatedAt   time.Time `json:"-" bun:"created_at"`
	CreatedBy   int       `json:"-" bun:"created_by"`
}

type HolidayUpdateRequest struct {
	ID          int     `json:"id" form:"id"`
	HolidayDate *string `json:"holiday_date" form:"holiday_date"`
	Description *string `json:"description" form:"description"`
}
