package leave

import (
	"net/http"
	"reflect"

	"hrm/backend/foundation/web"
	"hrm/backend/internal/repository/postgres/leave"
	"hrm/backend/internal/service"
)

type Controller struct {
	leave Leave
}

func NewController(leave Leave) *Controller {
	return &Controller{leave}
}

func (lc Controller) GetSummary(c *web.Context) error {
	list, err := lc.leave.GetSummary(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   list,
		"status": true,
	}, http.StatusOK)
}

func (lc Controller) GetHistory(c *web.Context) error {
	var filter leave.HistoryFilter

	if year, ok := c.GetQueryFunc(reflect.Int, "year").(*int); ok {
		filter.Year = year
	}
	if status, ok := c.GetQueryFunc(reflect.String, "status").(*string); ok {
		filter.Status = status
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, err := lc.leave.GetHistory(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   list,
		"status": true,
	}, http.StatusOK)
}

func (lc Controller) Create(c *web.Context) error {
	var request leave.CreateRequest

	if err := c.BindFunc(&request, "LeaveTypeID", "StartDate", "EndDate"); err != nil {
		return c.RespondError(err)
	}

	if file, err := c.FormFile("attachment"); err == nil {
		path, err := service.Upload(file, "leaves")
		if err != nil {
			return c.RespondError(web.NewRequestError(err, http.StatusBadRequest))
		}
		request.Attachment = &path
	}

	response, err := lc.leave.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (lc Controller) Cancel(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := lc.leave.Cancel(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (lc Controller) GetAdminList(c *web.Context) error {
	var filter leave.AdminListFilter

	if status, ok := c.GetQueryFunc(reflect.String, "status").(*string); ok {
		filter.Status = status
	}
	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := lc.leave.GetAdminList(c.Ctx, filter)
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

func (lc Controller) Decide(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request leave.DecideRequest

	if err := c.BindFunc(&request, "Status"); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	if err := lc.leave.Decide(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}
