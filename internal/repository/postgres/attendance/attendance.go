package attendance

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"hrm/backend/foundation/web"
	"hrm/backend/internal/auth"
	"hrm/backend/internal/entity"
	"hrm/backend/internal/pkg/dateutil"
	"hrm/backend/internal/pkg/repository/postgresql"

	"github.com/pkg/errors"
)

type Repository struct {
	*postgresql.Database

	// lateGrace is added to the assigned shift start before a clock-in
	// counts as late.
	lateGrace time.Duration
}

func NewRepository(database *postgresql.Database, lateGraceMinutes int) *Repository {
	return &Repository{
		Database:  database,
		lateGrace: time.Duration(lateGraceMinutes) * time.Minute,
	}
}

// ClockIn records the caller's check-in for today. Punctuality is judged
// against the assigned shift start plus the grace window; without an
// assigned shift the clock-in is on time.
func (r Repository) ClockIn(ctx context.Context, request ClockInRequest) (ClockInResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return ClockInResponse{}, err
	}

	now := time.Now()
	workDay := dateutil.FromTime(now).String()

	exists, err := r.NewSelect().Model((*entity.Attendance)(nil)).
		Where("user_id = ? AND work_day = ? AND deleted_at IS NULL", claims.UserId, workDay).
		Exists(ctx)
	if err != nil {
		return ClockInResponse{}, web.NewRequestError(errors.Wrap(err, "attendance check"), http.StatusInternalServerError)
	}
	if exists {
		return ClockInResponse{}, web.NewRequestError(errors.New("already clocked in today"), http.StatusBadRequest)
	}

	punctuality := "on_time"

	var shiftStart *string
	err = r.QueryRowContext(ctx, `
		SELECT ws.start_time
		FROM employee_schedules es
		JOIN work_shifts ws ON ws.id = es.shift_id
		WHERE es.user_id = ? AND es.work_day = ? AND es.deleted_at IS NULL AND es.status = 'scheduled'
	`, claims.UserId, workDay).Scan(&shiftStart)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return ClockInResponse{}, web.NewRequestError(errors.Wrap(err, "selecting assigned shift"), http.StatusInternalServerError)
	}

	if shiftStart != nil {
		start, err := time.Parse("15:04:05", *shiftStart)
		if err != nil {
			start, err = time.Parse("15:04", *shiftStart)
		}
		if err == nil {
			deadline := time.Date(now.Year(), now.Month(), now.Day(),
				start.Hour(), start.Minute(), 0, 0, now.Location()).Add(r.lateGrace)
			if now.After(deadline) {
				punctuality = "late"
			}
		}
	}

	var response ClockInResponse

	response.UserID = &claims.UserId
	response.WorkDay = workDay
	response.ClockIn = now
	response.Punctuality = punctuality
	response.CheckInImage = request.ImagePath
	response.CreatedAt = now
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return ClockInResponse{}, web.NewRequestError(errors.Wrap(err, "creating attendance"), http.StatusBadRequest)
	}

	return response, nil
}

// ClockOut closes today's open attendance record.
func (r Repository) ClockOut(ctx context.Context) (ClockOutResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return ClockOutResponse{}, err
	}

	now := time.Now()
	workDay := dateutil.FromTime(now).String()

	var response ClockOutResponse

	err = r.QueryRowContext(ctx, `
		UPDATE attendance
		SET clock_out = ?, updated_at = ?, updated_by = ?
		WHERE user_id = ? AND work_day = ? AND clock_out IS NULL AND deleted_at IS NULL
		RETURNING id
	`, now, now, claims.UserId, claims.UserId, workDay).Scan(&response.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return ClockOutResponse{}, web.NewRequestError(errors.New("no open attendance record for today"), http.StatusNotFound)
	}
	if err != nil {
		return ClockOutResponse{}, web.NewRequestError(errors.Wrap(err, "updating attendance"), http.StatusBadRequest)
	}

	response.WorkDay = workDay
	response.ClockOut = now

	return response, nil
}

func (r Repository) GetHistory(ctx context.Context, filter HistoryFilter) ([]HistoryResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	if filter.Month < 1 || filter.Month > 12 {
		return nil, web.NewRequestError(errors.New("month must be between 1 and 12"), http.StatusBadRequest)
	}

	first, last := dateutil.MonthBounds(filter.Year, time.Month(filter.Month))

	query := `
		SELECT
			id,
			work_day,
			clock_in,
			clock_out,
			punctuality
		FROM attendance
		WHERE deleted_at IS NULL AND user_id = ? AND work_day BETWEEN ? AND ?
		ORDER BY work_day
	`

	rows, err := r.QueryContext(ctx, query, claims.UserId, first.String(), last.String())
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting attendance history"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []HistoryResponse

	for rows.Next() {
		var (
			detail     HistoryResponse
			workDayStr string
		)
		if err = rows.Scan(
			&detail.ID,
			&workDayStr,
			&detail.ClockIn,
			&detail.ClockOut,
			&detail.Punctuality); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning attendance history"), http.StatusInternalServerError)
		}

		if detail.WorkDay, err = dateutil.Parse(workDayStr); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "converting work_day to date"), http.StatusInternalServerError)
		}

		detail.TotalHours = totalHours(detail.ClockIn, detail.ClockOut)

		list = append(list, detail)
	}

	return list, nil
}

// GetStats returns the admin dashboard counters plus the latest clock-ins.
func (r Repository) GetStats(ctx context.Context) (StatsResponse, error) {
	_, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return StatsResponse{}, err
	}

	today := dateutil.Today().String()

	var response StatsResponse

	query := `
		SELECT
			(SELECT COUNT(id) FROM users WHERE deleted_at IS NULL AND role = 'EMPLOYEE') AS total_employees,
			(SELECT COUNT(id) FROM attendance WHERE deleted_at IS NULL AND work_day = ?) AS present_today,
			(SELECT COUNT(id) FROM attendance WHERE deleted_at IS NULL AND work_day = ? AND punctuality = 'on_time') AS on_time_today,
			(SELECT COUNT(id) FROM attendance WHERE deleted_at IS NULL AND work_day = ? AND punctuality = 'late') AS late_today,
			(SELECT COUNT(id) FROM leaves WHERE deleted_at IS NULL AND status = 'approved' AND start_date <= ? AND end_date >= ?) AS on_leave_today,
			(SELECT COUNT(id) FROM leaves WHERE deleted_at IS NULL AND status = 'pending') AS pending_leaves
	`

	err = r.QueryRowContext(ctx, query, today, today, today, today, today).Scan(
		&response.TotalEmployees,
		&response.PresentToday,
		&response.OnTimeToday,
		&response.LateToday,
		&response.OnLeaveToday,
		&response.PendingLeaves,
	)
	if err != nil {
		return StatsResponse{}, web.NewRequestError(errors.Wrap(err, "fetching statistics"), http.StatusInternalServerError)
	}

	activityQuery := `
		SELECT a.user_id, u.full_name, a.work_day, a.clock_in, a.punctuality
		FROM attendance a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.deleted_at IS NULL
		ORDER BY a.clock_in DESC
		LIMIT 10
	`

	rows, err := r.QueryContext(ctx, activityQuery)
	if err != nil {
		return StatsResponse{}, web.NewRequestError(errors.Wrap(err, "fetching recent activity"), http.StatusInternalServerError)
	}
	defer rows.Close()

	for rows.Next() {
		var activity RecentActivity
		if err = rows.Scan(
			&activity.UserID,
			&activity.UserName,
			&activity.WorkDay,
			&activity.ClockIn,
			&activity.Punctuality); err != nil {
			return StatsResponse{}, web.NewRequestError(errors.Wrap(err, "scanning recent activity"), http.StatusInternalServerError)
		}
		response.RecentActivity = append(response.RecentActivity, activity)
	}

	return response, nil
}

// GetMonthlyReport returns every user's attendance rows for the month, for
// the workbook export.
func (r Repository) GetMonthlyReport(ctx context.Context, filter ReportFilter) ([]ReportRow, error) {
	_, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return nil, err
	}

	if filter.Month < 1 || filter.Month > 12 {
		return nil, web.NewRequestError(errors.New("month must be between 1 and 12"), http.StatusBadRequest)
	}

	first, last := dateutil.MonthBounds(filter.Year, time.Month(filter.Month))

	query := `
		SELECT
			u.full_name,
			a.work_day,
			a.clock_in,
			a.clock_out,
			a.punctuality
		FROM attendance a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.deleted_at IS NULL AND a.work_day BETWEEN ? AND ?
		ORDER BY a.work_day, u.full_name
	`

	rows, err := r.QueryContext(ctx, query, first.String(), last.String())
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting monthly report"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []ReportRow

	for rows.Next() {
		var (
			name        *string
			workDay     string
			clockIn     *time.Time
			clockOut    *time.Time
			punctuality *string
		)
		if err = rows.Scan(&name, &workDay, &clockIn, &clockOut, &punctuality); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning monthly report row"), http.StatusInternalServerError)
		}

		row := ReportRow{WorkDay: workDay, TotalHours: totalHours(clockIn, clockOut)}
		if name != nil {
			row.UserName = *name
		}
		if clockIn != nil {
			row.ClockIn = clockIn.Format("15:04")
		}
		if clockOut != nil {
			row.ClockOut = clockOut.Format("15:04")
		}
		if punctuality != nil {
			row.Punctuality = *punctuality
		}

		list = append(list, row)
	}

	return list, nil
}

// totalHours formats the worked span as HH:MM, empty while still working.
func totalHours(clockIn, clockOut *time.Time) string {
	if clockIn == nil || clockOut == nil {
		return ""
	}

	diff := clockOut.Sub(*clockIn)
	hours := int(diff.Hours())
	minutes := int(diff.Minutes()) % 60

	return fmt.Sprintf("%02d:%02d", hours, minutes)
}
