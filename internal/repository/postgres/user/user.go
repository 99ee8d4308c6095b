package user

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"hrm/backend/foundation/web"
	"hrm/backend/internal/auth"
	"hrm/backend/internal/entity"
	"hrm/backend/internal/pkg/repository/postgresql"
	"hrm/backend/internal/repository/postgres"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetByLogin looks a user up by username or email for sign-in.
func (r Repository) GetByLogin(ctx context.Context, login string) (entity.User, error) {
	var detail entity.User

	err := r.NewSelect().Model(&detail).
		Where("(username = ? OR email = ?) AND deleted_at IS NULL", login, login).
		Scan(ctx)
	if err != nil {
		return entity.User{}, &web.Error{
			Err:    errors.New("user not found"),
			Status: http.StatusUnauthorized,
		}
	}

	return detail, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return nil, 0, err
	}

	// deleted=true lists only soft-deleted users; anything else hides them.
	whereQuery := `
			WHERE
				u.deleted_at IS NULL
			`
	if filter.Deleted != nil && *filter.Deleted {
		whereQuery = `
			WHERE
				u.deleted_at IS NOT NULL
			`
	}

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND
		(u.username ILIKE '%s' OR u.full_name ILIKE '%s' OR u.email ILIKE '%s')`,
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	orderQuery := "ORDER BY u.created_at desc"

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
			u.id,
			u.username,
			u.email,
			u.full_name,
			u.role,
			u.position,
			u.profile_image,
			u.deleted_at
		FROM users u

		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting users"), http.StatusInternalServerError)
	}

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Username,
			&detail.Email,
			&detail.FullName,
			&detail.Role,
			&detail.Position,
			&detail.ProfileImage,
			&detail.DeletedAt); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning user list"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(u.id)
		FROM  users u
			%s
	`, whereQuery)

	countRows, err := r.QueryContext(ctx, countQuery)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting user count"), http.StatusInternalServerError)
	}

	count := 0

	for countRows.Next() {
		if err = countRows.Scan(&count); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning user count"), http.StatusInternalServerError)
		}
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	_, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return GetDetailByIdResponse{}, err
	}

	query := fmt.Sprintf(`
		SELECT
			u.id,
			u.username,
			u.email,
			u.full_name,
			u.role,
			u.position,
			u.profile_image
		FROM
		    users u
		WHERE u.deleted_at IS NULL AND u.id = %d
	`, id)

	var detail GetDetailByIdResponse

	err = r.QueryRowContext(ctx, query).Scan(
		&detail.ID,
		&detail.Username,
		&detail.Email,
		&detail.FullName,
		&detail.Role,
		&detail.Position,
		&detail.ProfileImage,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting user detail"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Username", "Password", "FullName"); err != nil {
		return CreateResponse{}, err
	}

	taken := true
	if err := r.QueryRowContext(ctx, `
		SELECT CASE WHEN
			(SELECT id FROM users WHERE username = ? AND deleted_at IS NULL) IS NOT NULL
			THEN true ELSE false END`, *request.Username).Scan(&taken); err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "username check"), http.StatusInternalServerError)
	}
	if taken {
		return CreateResponse{}, web.NewRequestError(errors.New("username is used"), http.StatusBadRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
	}
	hashedPassword := string(hash)

	role := auth.RoleEmployee
	if request.Role != nil {
		role = strings.ToUpper(*request.Role)
	}
	if role != auth.RoleEmployee && role != auth.RoleAdmin {
		return CreateResponse{}, web.NewRequestError(errors.New("incorrect role. role should be EMPLOYEE or ADMIN"), http.StatusBadRequest)
	}

	var response CreateResponse

	response.Username = request.Username
	response.Email = request.Email
	response.FullName = request.FullName
	response.Password = &hashedPassword
	response.Role = &role
	response.Position = request.Position
	response.ProfileImage = request.ProfileImage
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating user"), http.StatusBadRequest)
	}

	response.Password = nil

	return response, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	q := r.NewUpdate().Table("users").Where("deleted_at IS NULL AND id = ? ", request.ID)

	if request.Username != nil {
		taken := true
		if err := r.QueryRowContext(ctx, `
			SELECT CASE WHEN
				(SELECT id FROM users WHERE username = ? AND deleted_at IS NULL AND id != ?) IS NOT NULL
				THEN true ELSE false END`, *request.Username, request.ID).Scan(&taken); err != nil {
			return web.NewRequestError(errors.Wrap(err, "username check"), http.StatusInternalServerError)
		}
		if taken {
			return web.NewRequestError(errors.New("username is used"), http.StatusBadRequest)
		}
		q.Set("username = ?", request.Username)
	}

	if request.Role != nil {
		role := strings.ToUpper(*request.Role)
		if role != auth.RoleEmployee && role != auth.RoleAdmin {
			return web.NewRequestError(errors.New("incorrect role. role should be EMPLOYEE or ADMIN"), http.StatusBadRequest)
		}
		q.Set("role = ?", role)
	}

	if request.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
		}
		q.Set("password = ?", string(hash))
	}

	if request.Email != nil {
		q.Set("email = ?", request.Email)
	}
	if request.FullName != nil {
		q.Set("full_name = ?", request.FullName)
	}
	if request.Position != nil {
		q.Set("position = ?", request.Position)
	}
	if request.ProfileImage != nil {
		q.Set("profile_image = ?", request.ProfileImage)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	res, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating user"), http.StatusBadRequest)
	}

	rows, err := res.RowsAffected()
	if err == nil && rows == 0 {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	if _, err := r.CheckClaims(ctx, auth.RoleEmployee); err != nil {
		return err
	}

	return r.DeleteRow(ctx, "users", id)
}

// GetBadgeList returns the active users for the QR badge sheet.
func (r Repository) GetBadgeList(ctx context.Context) ([]BadgeRow, error) {
	_, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, `
		SELECT id, username, COALESCE(full_name, ''), COALESCE(position, '')
		FROM users
		WHERE deleted_at IS NULL
		ORDER BY full_name
	`)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting badge list"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []BadgeRow

	for rows.Next() {
		var row BadgeRow
		if err = rows.Scan(&row.ID, &row.Username, &row.FullName, &row.Position); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning badge row"), http.StatusInternalServerError)
		}
		list = append(list, row)
	}

	return list, nil
}

// GetExportList returns the active users for the workbook export.
func (r Repository) GetExportList(ctx context.Context) ([]ExportRow, error) {
	_, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, `
		SELECT id, username, COALESCE(email, ''), COALESCE(full_name, ''), COALESCE(role::text, ''), COALESCE(position, '')
		FROM users
		WHERE deleted_at IS NULL
		ORDER BY id
	`)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting export list"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []ExportRow

	for rows.Next() {
		var row ExportRow
		if err = rows.Scan(&row.ID, &row.Username, &row.Email, &row.FullName, &row.Role, &row.Position); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning export row"), http.StatusInternalServerError)
		}
		list = append(list, row)
	}

	return list, nil
}
