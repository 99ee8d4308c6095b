package entity

import (
	"github.com/uptrace/bun"
)

// Schedule statuses. Absence of a row means "unscheduled".
const (
	ScheduleScheduled = "scheduled"
	ScheduleOff       = "off"
	ScheduleHoliday   = "holiday"
)

type ScheduleEntry struct {
	bun.BaseModel `bun:"table:employee_schedules"`

	BasicEntity
	UserID  *int    `json:"user_id" bun:"user_id"`
	ShiftID *int    `json:"shift_id" bun:"shift_id"`
	WorkDay string  `json:"work_day" bun:"work_day"`
	Status  *string `json:"status" bun:"status"`
}

type Holiday struct {
	bun.BaseModel `bun:"table:holidays"`

	BasicEntity
	HolidayDate string  `json:"holiday_date" bun:"holiday_date"`
	Description *string `json:"description" bun:"description"`
}
