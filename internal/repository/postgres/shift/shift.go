package shift

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"hrm/backend/foundation/web"
	"hrm/backend/internal/auth"
	"hrm/backend/internal/pkg/repository/postgresql"
	"hrm/backend/internal/repository/postgres"

	"github.com/pkg/errors"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
			WHERE
				deleted_at IS NULL
			`
	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND
				name ILIKE '%s'`, "%"+search+"%")
	}
	orderQuery := "ORDER BY start_time asc"

	var limitQuery, offsetQuery string

	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}

	if filter.Limit != nil {
		limitQuery += fmt.Sprintf(" LIMIT %d", *filter.Limit)
	}

	if filter.Offset != nil {
		offsetQuery += fmt.Sprintf(" OFFSET %d", *filter.Offset)
	}

	query := fmt.Sprintf(`
		SELECT
			id,
			name,
			start_time,
			end_time,
			break_minutes,
			color
		FROM work_shifts

		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting work shifts"), http.StatusInternalServerError)
	}

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Name,
			&detail.StartTime,
			&detail.EndTime,
			&detail.BreakMinutes,
			&detail.Color); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning work shift list"), http.StatusInternalServerError)
		}

		normalizeTimes(&detail.StartTime, &detail.EndTime)

		if detail.StartTime != nil && detail.EndTime != nil {
			breakMin := 0
			if detail.BreakMinutes != nil {
				breakMin = *detail.BreakMinutes
			}
			if hours, overnight, calcErr := CalcWorkHours(*detail.StartTime, *detail.EndTime, breakMin); calcErr == nil {
				detail.WorkHours = hours
				detail.Overnight = overnight
			}
		}

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(id)
		FROM  work_shifts
			%s
	`, whereQuery)

	countRows, err := r.QueryContext(ctx, countQuery)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting work shifts count"), http.StatusInternalServerError)
	}

	count := 0

	for countRows.Next() {
		if err = countRows.Scan(&count); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning work shift count"), http.StatusInternalServerError)
		}
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return GetDetailByIdResponse{}, err
	}

	query := fmt.Sprintf(`
		SELECT
			id,
			name,
			start_time,
			end_time,
			break_minutes,
			color
		FROM
		    work_shifts
		WHERE deleted_at IS NULL AND id = %d
	`, id)

	var detail GetDetailByIdResponse

	err = r.QueryRowContext(ctx, query).Scan(
		&detail.ID,
		&detail.Name,
		&detail.StartTime,
		&detail.EndTime,
		&detail.BreakMinutes,
		&detail.Color,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting work shift detail"), http.StatusInternalServerError)
	}

	normalizeTimes(&detail.StartTime, &detail.EndTime)

	if detail.StartTime != nil && detail.EndTime != nil {
		breakMin := 0
		if detail.BreakMinutes != nil {
			breakMin = *detail.BreakMinutes
		}
		if hours, overnight, calcErr := CalcWorkHours(*detail.StartTime, *detail.EndTime, breakMin); calcErr == nil {
			detail.WorkHours = hours
			detail.Overnight = overnight
		}
	}

	return detail, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Name", "StartTime", "EndTime"); err != nil {
		return CreateResponse{}, err
	}

	breakMin := 0
	if request.BreakMinutes != nil {
		breakMin = *request.BreakMinutes
	}

	hours, overnight, err := CalcWorkHours(*request.StartTime, *request.EndTime, breakMin)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(err, http.StatusBadRequest)
	}

	var response CreateResponse

	response.Name = request.Name
	response.StartTime = request.StartTime
	response.EndTime = request.EndTime
	response.BreakMinutes = &breakMin
	response.Color = request.Color
	response.WorkHours = hours
	response.Overnight = overnight
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating work shift"), http.StatusBadRequest)
	}

	return response, nil
}

func (r Repository) UpdateAll(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID", "Name", "StartTime", "EndTime"); err != nil {
		return err
	}

	breakMin := 0
	if request.BreakMinutes != nil {
		breakMin = *request.BreakMinutes
	}

	if _, _, err := CalcWorkHours(*request.StartTime, *request.EndTime, breakMin); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	q := r.NewUpdate().Table("work_shifts").Where("deleted_at IS NULL AND id = ?", request.ID)

	q.Set("name = ?", request.Name)
	q.Set("start_time = ?", request.StartTime)
	q.Set("end_time = ?", request.EndTime)
	q.Set("break_minutes = ?", breakMin)
	q.Set("color = ?", request.Color)
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating work shift"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "work_shifts", id)
}

// normalizeTimes trims the seconds Postgres appends to time columns so
// responses always carry HH:MM.
func normalizeTimes(times ...**string) {
	for _, t := range times {
		if *t == nil {
			continue
		}
		v := **t
		if len(v) > 5 {
			v = v[:5]
			*t = &v
		}
	}
}
