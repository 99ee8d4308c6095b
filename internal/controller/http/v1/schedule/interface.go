package schedule

import (
	"context"

	"hrm/backend/internal/repository/postgres/schedule"
)

type Schedule interface {
	GetMonthlySchedule(ctx context.Context, month, year int) ([]schedule.DayView, error)
	ListMonth(ctx context.Context, filter schedule.ListFilter) ([]schedule.ListMonthResponse, error)
	Assign(ctx context.Context, request schedule.AssignRequest) error

	GetHolidayList(ctx context.Context, filter schedule.HolidayFilter) ([]schedule.HolidayListResponse, error)
	CreateHoliday(ctx context.Context, request schedule.HolidayCreateRequest) (schedule.HolidayCreateResponse, error)
	UpdateHoliday(ctx context.Context, request schedule.HolidayUpdateRequest) error
	DeleteHoliday(ctx context.Context, id int) error
}
