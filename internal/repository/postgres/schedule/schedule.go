package schedule

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"hrm/backend/foundation/web"
	"hrm/backend/internal/auth"
	"hrm/backend/internal/entity"
	"hrm/backend/internal/pkg/dateutil"
	"hrm/backend/internal/pkg/repository/postgresql"
	"hrm/backend/internal/repository/postgres"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetMonthlySchedule produces the merged per-day calendar for the
// authenticated user: schedule entries, attendance and holidays first, then
// approved leaves on top.
func (r Repository) GetMonthlySchedule(ctx context.Context, month, year int) ([]DayView, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	return r.monthlyScheduleFor(ctx, claims.UserId, month, year)
}

func (r Repository) monthlyScheduleFor(ctx context.Context, userID, month, year int) ([]DayView, error) {
	if month < 1 || month > 12 {
		return nil, web.NewRequestError(errors.New("month must be between 1 and 12"), http.StatusBadRequest)
	}

	first, last := dateutil.MonthBounds(year, time.Month(month))

	query := `
		SELECT
			COALESCE(es.work_day, a.work_day),
			es.status,
			ws.id,
			ws.name,
			ws.color,
			ws.start_time,
			ws.end_time,
			a.clock_in,
			a.clock_out,
			a.punctuality,
			h.id,
			h.description
		FROM (
			SELECT * FROM employee_schedules
			WHERE user_id = ? AND deleted_at IS NULL AND work_day BETWEEN ? AND ?
		) es
		FULL JOIN (
			SELECT * FROM attendance
			WHERE user_id = ? AND deleted_at IS NULL AND work_day BETWEEN ? AND ?
		) a ON a.work_day = es.work_day
		LEFT JOIN work_shifts ws ON ws.id = es.shift_id
		LEFT JOIN holidays h ON h.deleted_at IS NULL AND h.holiday_date = COALESCE(es.work_day, a.work_day)
	`

	rows, err := r.QueryContext(ctx, query,
		userID, first.String(), last.String(),
		userID, first.String(), last.String())
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting monthly schedule"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var scheduleRows []ScheduleRow

	for rows.Next() {
		var (
			row        ScheduleRow
			workDayStr string
			holidayID  *int
		)
		if err = rows.Scan(
			&workDayStr,
			&row.ScheduleStatus,
			&row.ShiftID,
			&row.ShiftName,
			&row.ShiftColor,
			&row.StartTime,
			&row.EndTime,
			&row.ClockIn,
			&row.ClockOut,
			&row.Punctuality,
			&holidayID,
			&row.HolidayDescription); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning monthly schedule row"), http.StatusInternalServerError)
		}

		workDay, err := dateutil.Parse(workDayStr)
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "converting work_day to date"), http.StatusInternalServerError)
		}
		row.WorkDay = workDay
		row.Holiday = holidayID != nil

		scheduleRows = append(scheduleRows, row)
	}
	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading monthly schedule rows"), http.StatusInternalServerError)
	}

	// Company holidays on days no schedule or attendance row touched.
	holidayQuery := `
		SELECT h.holiday_date, h.description
		FROM holidays h
		WHERE h.deleted_at IS NULL
			AND h.holiday_date BETWEEN ? AND ?
			AND NOT EXISTS (
				SELECT 1 FROM employee_schedules es
				WHERE es.user_id = ? AND es.deleted_at IS NULL AND es.work_day = h.holiday_date
			)
			AND NOT EXISTS (
				SELECT 1 FROM attendance a
				WHERE a.user_id = ? AND a.deleted_at IS NULL AND a.work_day = h.holiday_date
			)
	`

	holidayRows, err := r.QueryContext(ctx, holidayQuery, first.String(), last.String(), userID, userID)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting uncovered holidays"), http.StatusInternalServerError)
	}
	defer holidayRows.Close()

	for holidayRows.Next() {
		var (
			row        ScheduleRow
			workDayStr string
		)
		if err = holidayRows.Scan(&workDayStr, &row.HolidayDescription); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning holiday row"), http.StatusInternalServerError)
		}

		workDay, err := dateutil.Parse(workDayStr)
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "converting holiday_date to date"), http.StatusInternalServerError)
		}
		row.WorkDay = workDay
		row.Holiday = true

		scheduleRows = append(scheduleRows, row)
	}
	if err = holidayRows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading holiday rows"), http.StatusInternalServerError)
	}

	leaves, err := r.approvedLeaves(ctx, userID, first.String(), last.String())
	if err != nil {
		return nil, err
	}

	return MergeMonth(scheduleRows, leaves, year, time.Month(month), dateutil.Today()), nil
}

// approvedLeaves returns approved leave spans overlapping [first, last].
func (r Repository) approvedLeaves(ctx context.Context, userID int, first, last string) ([]LeaveSpan, error) {
	query := `
		SELECT l.start_date, l.end_date, lt.name
		FROM leaves l
		JOIN leave_types lt ON lt.id = l.leave_type_id
		WHERE l.user_id = ?
			AND l.deleted_at IS NULL
			AND l.status = 'approved'
			AND l.start_date <= ?
			AND l.end_date >= ?
	`

	rows, err := r.QueryContext(ctx, query, userID, last, first)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting approved leaves"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var leaves []LeaveSpan

	for rows.Next() {
		var startStr, endStr, typeName string
		if err = rows.Scan(&startStr, &endStr, &typeName); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning leave span"), http.StatusInternalServerError)
		}

		start, err := dateutil.Parse(startStr)
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "converting start_date to date"), http.StatusInternalServerError)
		}
		end, err := dateutil.Parse(endStr)
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "converting end_date to date"), http.StatusInternalServerError)
		}

		leaves = append(leaves, LeaveSpan{Start: start, End: end, TypeName: typeName})
	}
	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading leave spans"), http.StatusInternalServerError)
	}

	return leaves, nil
}

// ListMonth returns every user's schedule entries for the month, for the
// admin schedule grid.
func (r Repository) ListMonth(ctx context.Context, filter ListFilter) ([]ListMonthResponse, error) {
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
			es.id,
			es.user_id,
			u.full_name,
			es.shift_id,
			ws.name,
			ws.color,
			ws.start_time,
			ws.end_time,
			es.work_day,
			es.status
		FROM employee_schedules es
		LEFT JOIN users u ON u.id = es.user_id
		LEFT JOIN work_shifts ws ON ws.id = es.shift_id
		WHERE es.deleted_at IS NULL AND es.work_day BETWEEN ? AND ?
		ORDER BY es.work_day, es.user_id
	`

	rows, err := r.QueryContext(ctx, query, first.String(), last.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting schedule entries"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []ListMonthResponse

	for rows.Next() {
		var (
			detail     ListMonthResponse
			workDayStr string
		)
		if err = rows.Scan(
			&detail.ID,
			&detail.UserID,
			&detail.UserName,
			&detail.ShiftID,
			&detail.ShiftName,
			&detail.ShiftColor,
			&detail.StartTime,
			&detail.EndTime,
			&workDayStr,
			&detail.Status); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning schedule entry"), http.StatusInternalServerError)
		}

		workDay, err := dateutil.Parse(workDayStr)
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "converting work_day to date"), http.StatusInternalServerError)
		}
		detail.WorkDay = workDay

		list = append(list, detail)
	}

	return list, nil
}

// Assign upserts or clears each user's schedule entry for one date inside a
// single transaction. Any failing pair rolls the whole batch back.
func (r Repository) Assign(ctx context.Context, request AssignRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "Date"); err != nil {
		return err
	}

	workDay, err := dateutil.Parse(request.Date)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "parsing assignment date"), http.StatusBadRequest)
	}

	err = r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		for _, item := range request.Assignments {
			action, status, err := planAssignment(item)
			if err != nil {
				return err
			}

			switch action {
			case assignShift:
				known, err := tx.NewSelect().Model((*entity.WorkShift)(nil)).
					Where("id = ? AND deleted_at IS NULL", *item.ShiftID).
					Exists(ctx)
				if err != nil {
					return errors.Wrap(err, "checking work shift")
				}
				if !known {
					return web.NewRequestError(errors.New("unknown shift_id"), http.StatusBadRequest)
				}

				if err := upsertEntry(ctx, tx, *item.UserID, item.ShiftID, workDay.String(), status, claims.UserId); err != nil {
					return err
				}
			case assignStatus:
				if err := upsertEntry(ctx, tx, *item.UserID, nil, workDay.String(), status, claims.UserId); err != nil {
					return err
				}
			case assignClear:
				// The delete is physical so the (user_id, work_day) slot
				// can be reassigned later.
				if _, err := tx.NewDelete().Model((*entity.ScheduleEntry)(nil)).
					Where("user_id = ? AND work_day = ?", *item.UserID, workDay.String()).
					Exec(ctx); err != nil {
					return errors.Wrap(err, "clearing schedule entry")
				}
			}
		}

		return nil
	})
	if err != nil {
		if _, ok := errors.Cause(err).(*web.Error); ok {
			return err
		}
		return web.NewRequestError(errors.Wrap(err, "assigning schedule"), http.StatusInternalServerError)
	}

	return nil
}

type assignAction int

const (
	assignShift assignAction = iota
	assignStatus
	assignClear
)

// planAssignment decides what a batch item does to the user's day: a present
// shift_id upserts a scheduled row, a bare off/holiday status upserts a
// shiftless row, anything else clears the day.
func planAssignment(item AssignmentItem) (assignAction, string, error) {
	if item.UserID == nil {
		return 0, "", web.NewRequestError(errors.New("assignment user_id is required"), http.StatusBadRequest)
	}

	status := entity.ScheduleScheduled
	if item.Status != nil {
		status = *item.Status
	}

	switch {
	case item.ShiftID != nil:
		return assignShift, status, nil
	case item.Status != nil && (status == entity.ScheduleOff || status == entity.ScheduleHoliday):
		return assignStatus, status, nil
	default:
		return assignClear, "", nil
	}
}

func upsertEntry(ctx context.Context, tx bun.Tx, userID int, shiftID *int, workDay, status string, by int) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO employee_schedules (user_id, shift_id, work_day, status, created_at, created_by)
		VALUES (?, ?, ?, ?, now(), ?)
		ON CONFLICT (user_id, work_day) DO UPDATE
		SET shift_id = EXCLUDED.shift_id,
			status = EXCLUDED.status,
			updated_at = now(),
			updated_by = ?,
			deleted_at = NULL,
			deleted_by = NULL
	`, userID, shiftID, workDay, status, by, by)
	if err != nil {
		return errors.Wrap(err, "upserting schedule entry")
	}

	return nil
}

func (r Repository) GetHolidayList(ctx context.Context, filter HolidayFilter) ([]HolidayListResponse, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	if filter.Month < 1 || filter.Month > 12 {
		return nil, web.NewRequestError(errors.New("month must be between 1 and 12"), http.StatusBadRequest)
	}

	first, last := dateutil.MonthBounds(filter.Year, time.Month(filter.Month))

	query := `
		SELECT id, holiday_date, description
		FROM holidays
		WHERE deleted_at IS NULL AND holiday_date BETWEEN ? AND ?
		ORDER BY holiday_date
	`

	rows, err := r.QueryContext(ctx, query, first.String(), last.String())
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting holidays"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []HolidayListResponse

	for rows.Next() {
		var (
			detail  HolidayListResponse
			dateStr string
		)
		if err = rows.Scan(&detail.ID, &dateStr, &detail.Description); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning holiday"), http.StatusInternalServerError)
		}

		holidayDate, err := dateutil.Parse(dateStr)
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "converting holiday_date to date"), http.StatusInternalServerError)
		}
		detail.HolidayDate = holidayDate

		list = append(list, detail)
	}

	return list, nil
}

func (r Repository) CreateHoliday(ctx context.Context, request HolidayCreateRequest) (HolidayCreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return HolidayCreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "HolidayDate"); err != nil {
		return HolidayCreateResponse{}, err
	}

	if _, err := dateutil.Parse(*request.HolidayDate); err != nil {
		return HolidayCreateResponse{}, web.NewRequestError(errors.Wrap(err, "parsing holiday_date"), http.StatusBadRequest)
	}

	taken, err := r.NewSelect().Model((*entity.Holiday)(nil)).
		Where("holiday_date = ? AND deleted_at IS NULL", *request.HolidayDate).
		Exists(ctx)
	if err != nil {
		return HolidayCreateResponse{}, web.NewRequestError(errors.Wrap(err, "holiday date check"), http.StatusInternalServerError)
	}
	if taken {
		return HolidayCreateResponse{}, web.NewRequestError(errors.New("holiday already exists for this date"), http.StatusBadRequest)
	}

	var response HolidayCreateResponse

	// Re-registering a date removed earlier resurrects the soft-deleted row.
	if _, err := r.ExecContext(ctx, `
		INSERT INTO holidays (holiday_date, description, created_at, created_by)
		VALUES (?, ?, now(), ?)
		ON CONFLICT (holiday_date) DO UPDATE
		SET description = EXCLUDED.description,
			updated_at = now(),
			updated_by = ?,
			deleted_at = NULL,
			deleted_by = NULL
	`, *request.HolidayDate, request.Description, claims.UserId, claims.UserId); err != nil {
		return HolidayCreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating holiday"), http.StatusBadRequest)
	}

	if err := r.QueryRowContext(ctx,
		`SELECT id FROM holidays WHERE holiday_date = ?`, *request.HolidayDate).Scan(&response.ID); err != nil {
		return HolidayCreateResponse{}, web.NewRequestError(errors.Wrap(err, "reading holiday id"), http.StatusInternalServerError)
	}

	response.HolidayDate = request.HolidayDate
	response.Description = request.Description
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	return response, nil
}

func (r Repository) UpdateHoliday(ctx context.Context, request HolidayUpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	q := r.NewUpdate().Table("holidays").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.HolidayDate != nil {
		if _, err := dateutil.Parse(*request.HolidayDate); err != nil {
			return web.NewRequestError(errors.Wrap(err, "parsing holiday_date"), http.StatusBadRequest)
		}
		q.Set("holiday_date = ?", request.HolidayDate)
	}
	if request.Description != nil {
		q.Set("description = ?", request.Description)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating holiday"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) DeleteHoliday(ctx context.Context, id int) error {
	if _, err := r.CheckClaims(ctx, auth.RoleEmployee); err != nil {
		return err
	}

	return r.DeleteRow(ctx, "holidays", id)
}