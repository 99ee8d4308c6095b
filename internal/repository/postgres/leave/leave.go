package leave

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
	"hrm/backend/internal/repository/postgres"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type Repository struct {
	*postgresql.Database
	policy Policy
}

func NewRepository(database *postgresql.Database, policy Policy) *Repository {
	return &Repository{Database: database, policy: policy}
}

// GetSummary returns the caller's per-type balance for the current year.
// Types without a balance row fall back to the type's annual quota.
func (r Repository) GetSummary(ctx context.Context) ([]SummaryResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	year := time.Now().Year()

	query := `
		SELECT
			lt.id,
			lt.name,
			COALESCE(lb.quota, lt.annual_quota),
			COALESCE(lb.used_days, 0)
		FROM leave_types lt
		LEFT JOIN leave_balance lb
			ON lb.leave_type_id = lt.id AND lb.user_id = ? AND lb.year = ? AND lb.deleted_at IS NULL
		WHERE lt.deleted_at IS NULL
		ORDER BY lt.id
	`

	rows, err := r.QueryContext(ctx, query, claims.UserId, year)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting leave summary"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []SummaryResponse

	for rows.Next() {
		var detail SummaryResponse
		if err = rows.Scan(
			&detail.LeaveTypeID,
			&detail.LeaveType,
			&detail.Quota,
			&detail.UsedDays); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning leave summary"), http.StatusInternalServerError)
		}

		detail.Remaining = detail.Quota - detail.UsedDays

		list = append(list, detail)
	}

	return list, nil
}

func (r Repository) GetHistory(ctx context.Context, filter HistoryFilter) ([]HistoryResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	query, args := historyQuery(claims.UserId, filter)

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting leave history"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []HistoryResponse

	for rows.Next() {
		var (
			detail   HistoryResponse
			startStr string
			endStr   string
		)
		if err = rows.Scan(
			&detail.ID,
			&detail.LeaveType,
			&startStr,
			&endStr,
			&detail.DayCount,
			&detail.Reason,
			&detail.Attachment,
			&detail.Status,
			&detail.DecidedAt); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning leave history"), http.StatusInternalServerError)
		}

		if detail.StartDate, err = dateutil.Parse(startStr); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "converting start_date to date"), http.StatusInternalServerError)
		}
		if detail.EndDate, err = dateutil.Parse(endStr); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "converting end_date to date"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	return list, nil
}

func historyQuery(userID int, filter HistoryFilter) (string, []interface{}) {
	query := `
		SELECT
			l.id,
			lt.name,
			l.start_date,
			l.end_date,
			l.day_count,
			l.reason,
			l.attachment,
			l.status,
			l.decided_at
		FROM leaves l
		LEFT JOIN leave_types lt ON lt.id = l.leave_type_id
		WHERE l.deleted_at IS NULL AND l.user_id = ?
	`
	args := []interface{}{userID}

	if filter.Year != nil {
		query += ` AND date_part('year', l.start_date) = ?`
		args = append(args, *filter.Year)
	}
	if filter.Status != nil {
		query += ` AND l.status = ?`
		args = append(args, *filter.Status)
	}
	query += " ORDER BY l.start_date DESC"

	return query, args
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "LeaveTypeID", "StartDate", "EndDate"); err != nil {
		return CreateResponse{}, err
	}

	start, err := dateutil.Parse(*request.StartDate)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "parsing start_date"), http.StatusBadRequest)
	}
	end, err := dateutil.Parse(*request.EndDate)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "parsing end_date"), http.StatusBadRequest)
	}
	if dateutil.After(start, end) {
		return CreateResponse{}, web.NewRequestError(errors.New("start_date must not be after end_date"), http.StatusBadRequest)
	}

	dayCount := r.policy.CountDays(start, end, request.Hours)

	known, err := r.NewSelect().Model((*entity.LeaveType)(nil)).
		Where("id = ? AND deleted_at IS NULL", *request.LeaveTypeID).
		Exists(ctx)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "checking leave type"), http.StatusInternalServerError)
	}
	if !known {
		return CreateResponse{}, web.NewRequestError(errors.New("unknown leave type"), http.StatusBadRequest)
	}

	overlaps, err := r.NewSelect().Model((*entity.Leave)(nil)).
		Where("user_id = ? AND deleted_at IS NULL AND status IN (?, ?) AND start_date <= ? AND end_date >= ?",
			claims.UserId, entity.LeavePending, entity.LeaveApproved, end.String(), start.String()).
		Exists(ctx)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "checking overlapping leaves"), http.StatusInternalServerError)
	}
	if overlaps {
		return CreateResponse{}, web.NewRequestError(errors.New("an overlapping leave request already exists"), http.StatusBadRequest)
	}

	var quota, used float64
	err = r.QueryRowContext(ctx, `
		SELECT
			COALESCE(lb.quota, lt.annual_quota),
			COALESCE(lb.used_days, 0)
		FROM leave_types lt
		LEFT JOIN leave_balance lb
			ON lb.leave_type_id = lt.id AND lb.user_id = ? AND lb.year = ? AND lb.deleted_at IS NULL
		WHERE lt.deleted_at IS NULL AND lt.id = ?
	`, claims.UserId, start.Year(), *request.LeaveTypeID).Scan(&quota, &used)
	if errors.Is(err, sql.ErrNoRows) {
		return CreateResponse{}, web.NewRequestError(errors.New("unknown leave type"), http.StatusBadRequest)
	}
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "checking leave balance"), http.StatusInternalServerError)
	}

	if used+dayCount > quota {
		return CreateResponse{}, web.NewRequestError(errors.New("insufficient leave balance"), http.StatusBadRequest)
	}

	var response CreateResponse

	response.UserID = &claims.UserId
	response.LeaveTypeID = request.LeaveTypeID
	response.StartDate = start.String()
	response.EndDate = end.String()
	response.DayCount = dayCount
	response.Reason = request.Reason
	response.Attachment = request.Attachment
	response.Status = entity.LeavePending
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating leave request"), http.StatusBadRequest)
	}

	return response, nil
}

// Cancel lets the owner withdraw a still-pending request.
func (r Repository) Cancel(ctx context.Context, id int) error {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	res, err := r.NewUpdate().Table("leaves").
		Where("deleted_at IS NULL AND id = ? AND user_id = ? AND status = ?", id, claims.UserId, entity.LeavePending).
		Set("status = ?", entity.LeaveCancelled).
		Set("updated_at = ?", time.Now()).
		Set("updated_by = ?", claims.UserId).
		Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "cancelling leave request"), http.StatusBadRequest)
	}

	rows, err := res.RowsAffected()
	if err == nil && rows == 0 {
		return web.NewRequestError(errors.New("pending leave request not found"), http.StatusNotFound)
	}

	return nil
}

func (r Repository) GetAdminList(ctx context.Context, filter AdminListFilter) ([]AdminListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
		WHERE
			l.deleted_at IS NULL
		`
	args := []interface{}{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		whereQuery += ` AND l.status = ?`
	}

	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}

	limitQuery := ""
	if filter.Limit != nil {
		limitQuery += fmt.Sprintf(" LIMIT %d", *filter.Limit)
	}
	if filter.Offset != nil {
		limitQuery += fmt.Sprintf(" OFFSET %d", *filter.Offset)
	}

	query := `
		SELECT
			l.id,
			l.user_id,
			u.full_name,
			lt.name,
			l.start_date,
			l.end_date,
			l.day_count,
			l.reason,
			l.status
		FROM leaves l
		LEFT JOIN users u ON u.id = l.user_id
		LEFT JOIN leave_types lt ON lt.id = l.leave_type_id
	` + whereQuery + " ORDER BY l.created_at DESC" + limitQuery

	rows, err := r.QueryContext(ctx, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting leave requests"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []AdminListResponse

	for rows.Next() {
		var (
			detail   AdminListResponse
			startStr string
			endStr   string
		)
		if err = rows.Scan(
			&detail.ID,
			&detail.UserID,
			&detail.UserName,
			&detail.LeaveType,
			&startStr,
			&endStr,
			&detail.DayCount,
			&detail.Reason,
			&detail.Status); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning leave request"), http.StatusInternalServerError)
		}

		if detail.StartDate, err = dateutil.Parse(startStr); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "converting start_date to date"), http.StatusInternalServerError)
		}
		if detail.EndDate, err = dateutil.Parse(endStr); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "converting end_date to date"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	countQuery := `
		SELECT count(l.id)
		FROM leaves l
	` + whereQuery

	count := 0
	if err = r.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning leave request count"), http.StatusInternalServerError)
	}

	return list, count, nil
}

// Decide approves or rejects a pending request. Approval charges the user's
// balance for the year in the same transaction, so the status change and the
// balance update land or fail together.
func (r Repository) Decide(ctx context.Context, request DecideRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID", "Status"); err != nil {
		return err
	}

	status := *request.Status
	if status != entity.LeaveApproved && status != entity.LeaveRejected {
		return web.NewRequestError(errors.New("status must be approved or rejected"), http.StatusBadRequest)
	}

	err = r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var (
			userID      int
			leaveTypeID int
			dayCount    float64
			startStr    string
		)
		err := tx.QueryRowContext(ctx, `
			SELECT user_id, leave_type_id, day_count, start_date
			FROM leaves
			WHERE deleted_at IS NULL AND id = ? AND status = ?
			FOR UPDATE
		`, request.ID, entity.LeavePending).Scan(&userID, &leaveTypeID, &dayCount, &startStr)
		if errors.Is(err, sql.ErrNoRows) {
			return web.NewRequestError(errors.New("pending leave request not found"), http.StatusNotFound)
		}
		if err != nil {
			return errors.Wrap(err, "selecting leave request")
		}

		if _, err = tx.ExecContext(ctx, `
			UPDATE leaves
			SET status = ?, decided_by = ?, decided_at = now(), updated_at = now(), updated_by = ?
			WHERE id = ?
		`, status, claims.UserId, claims.UserId, request.ID); err != nil {
			return errors.Wrap(err, "updating leave status")
		}

		if status != entity.LeaveApproved {
			return nil
		}

		start, err := dateutil.Parse(startStr)
		if err != nil {
			return errors.Wrap(err, "parsing leave start_date")
		}

		var annualQuota float64
		if err = tx.QueryRowContext(ctx,
			`SELECT annual_quota FROM leave_types WHERE id = ?`, leaveTypeID).Scan(&annualQuota); err != nil {
			return errors.Wrap(err, "selecting leave type quota")
		}

		year := start.Year()
		now := time.Now()
		balance := entity.LeaveBalance{
			UserID:      &userID,
			LeaveTypeID: &leaveTypeID,
			Year:        year,
			Quota:       &annualQuota,
			UsedDays:    &dayCount,
		}
		balance.CreatedAt = now
		balance.CreatedBy = &claims.UserId

		if _, err = tx.NewInsert().Model(&balance).
			On("CONFLICT (user_id, leave_type_id, year) DO UPDATE").
			Set("used_days = leave_balance.used_days + EXCLUDED.used_days").
			Set("updated_at = EXCLUDED.created_at").
			Set("updated_by = EXCLUDED.created_by").
			Exec(ctx); err != nil {
			return errors.Wrap(err, "charging leave balance")
		}

		return nil
	})
	if err != nil {
		if _, ok := errors.Cause(err).(*web.Error); ok {
			return err
		}
		return web.NewRequestError(errors.Wrap(err, "deciding leave request"), http.StatusInternalServerError)
	}

	return nil
}
