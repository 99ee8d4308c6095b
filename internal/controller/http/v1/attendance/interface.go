package attendance

import (
	"context"

	"hrm/backend/internal/repository/postgres/attendance"
)

type Attendance interface {
	ClockIn(ctx context.Context, request attendance.ClockInRequest) (attendance.ClockInResponse, error)
	ClockOut(ctx context.Context) (attendance.ClockOutResponse, error)
	GetHistory(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.HistoryResponse, error)
	GetStats(ctx context.Context) (attendance.StatsResponse, error)
	GetMonthlyReport(ctx context.Context, filter attendance.ReportFilter) ([]attendance.ReportRow, error)
}
