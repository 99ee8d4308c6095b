package user

import (
	"net/http"
	"reflect"

	"hrm/backend/foundation/web"
	"hrm/backend/internal/repository/postgres/user"
	"hrm/backend/internal/service"
)

type Controller struct {
	user    User
	baseUrl string
}

func NewController(user User, baseUrl string) *Controller {
	return &Controller{user: user, baseUrl: baseUrl}
}

func (uc Controller) GetUserList(c *web.Context) error {
	var filter user.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = search
	}
	if deleted, ok := c.GetQueryFunc(reflect.Bool, "deleted").(*bool); ok {
		filter.Deleted = deleted
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.user.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   count,
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetUserDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.user.GetDetailById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) CreateUser(c *web.Context) error {
	var request user.CreateRequest

	if err := c.BindFunc(&request, "Username", "Password", "FullName"); err != nil {
		return c.RespondError(err)
	}

	if file, err := c.FormFile("profile_image"); err == nil {
		path, err := service.Upload(file, "profile")
		if err != nil {
			return c.RespondError(web.NewRequestError(err, http.StatusBadRequest))
		}
		request.ProfileImage = &path
	}

	response, err := uc.user.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) UpdateUserColumns(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request user.UpdateRequest

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	if file, err := c.FormFile("profile_image"); err == nil {
		path, err := service.Upload(file, "profile")
		if err != nil {
			return c.RespondError(web.NewRequestError(err, http.StatusBadRequest))
		}
		request.ProfileImage = &path
	}

	if err := uc.user.UpdateColumns(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) DeleteUser(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := uc.user.Delete(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

// ExportEmployees builds an xlsx workbook of the active users and serves it
// as a download.
func (uc Controller) ExportEmployees(c *web.Context) error {
	list, err := uc.user.GetExportList(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	entries := make([]service.EmployeeEntry, 0, len(list))
	for _, row := range list {
		entries = append(entries, service.EmployeeEntry{
			ID:       row.ID,
			Username: row.Username,
			Email:    row.Email,
			FullName: row.FullName,
			Role:     row.Role,
			Position: row.Position,
		})
	}

	fileName, err := service.BuildEmployeeExport(entries)
	if err != nil {
		return c.RespondError(err)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.FileAttachment(fileName, "employees.xlsx")

	return nil
}

// GetBadgeSheet renders the QR badge pdf for every active user.
func (uc Controller) GetBadgeSheet(c *web.Context) error {
	list, err := uc.user.GetBadgeList(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	badges := make([]service.Badge, 0, len(list))
	for _, row := range list {
		badges = append(badges, service.Badge{
			ID:       row.ID,
			Username: row.Username,
			FullName: row.FullName,
			Position: row.Position,
		})
	}

	fileName, err := service.BuildBadgeSheet(badges, uc.baseUrl)
	if err != nil {
		return c.RespondError(err)
	}

	c.Header("Content-Type", "application/pdf")
	c.FileAttachment(fileName, "badges.pdf")

	return nil
}
