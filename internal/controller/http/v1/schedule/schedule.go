package schedule

import (
	"net/http"
	"reflect"
	"time"

	"hrm/backend/foundation/web"
	"hrm/backend/internal/repository/postgres/schedule"
)

type Controller struct {
	schedule Schedule
}

func NewController(schedule Schedule) *Controller {
	return &Controller{schedule}
}

func monthYearQuery(c *web.Context) (int, int, error) {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if m, ok := c.GetQueryFunc(reflect.Int, "month").(*int); ok && m != nil {
		month = *m
	}
	if y, ok := c.GetQueryFunc(reflect.Int, "year").(*int); ok && y != nil {
		year = *y
	}
	if err := c.ValidQuery(); err != nil {
		return 0, 0, err
	}

	return month, year, nil
}

// GetMySchedule returns the caller's merged calendar for the month.
func (sc Controller) GetMySchedule(c *web.Context) error {
	month, year, err := monthYearQuery(c)
	if err != nil {
		return c.RespondError(err)
	}

	list, err := sc.schedule.GetMonthlySchedule(c.Ctx, month, year)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   list,
		"status": true,
	}, http.StatusOK)
}

func (sc Controller) GetList(c *web.Context) error {
	month, year, err := monthYearQuery(c)
	if err != nil {
		return c.RespondError(err)
	}

	list, err := sc.schedule.ListMonth(c.Ctx, schedule.ListFilter{Month: month, Year: year})
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   list,
		"status": true,
	}, http.StatusOK)
}

func (sc Controller) Assign(c *web.Context) error {
	var request schedule.AssignRequest

	if err := c.BindFunc(&request, "Date"); err != nil {
		return c.RespondError(err)
	}

	if err := sc.schedule.Assign(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

// holidays

func (sc Controller) GetHolidayList(c *web.Context) error {
	month, year, err := monthYearQuery(c)
	if err != nil {
		return c.RespondError(err)
	}

	list, err := sc.schedule.GetHolidayList(c.Ctx, schedule.HolidayFilter{Month: month, Year: year})
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   list,
		"status": true,
	}, http.StatusOK)
}

func (sc Controller) CreateHoliday(c *web.Context) error {
	var request schedule.HolidayCreateRequest

	if err := c.BindFunc(&request, "HolidayDate", "Description"); err != nil {
		return c.RespondError(err)
	}

	response, err := sc.schedule.CreateHoliday(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (sc Controller) UpdateHoliday(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request schedule.HolidayUpdateRequest

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	if err := sc.schedule.UpdateHoliday(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (sc Controller) DeleteHoliday(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := sc.schedule.DeleteHoliday(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}
