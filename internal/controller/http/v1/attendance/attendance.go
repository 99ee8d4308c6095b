package attendance

import (
	"encoding/json"
	"net/http"
	"reflect"
	"time"

	"hrm/backend/foundation/web"
	"hrm/backend/internal/repository/postgres/attendance"
	"hrm/backend/internal/service"

	"github.com/redis/go-redis/v9"
)

const statsCacheTTL = time.Minute

type Controller struct {
	attendance Attendance
	redisDB    *redis.Client
}

func NewController(attendance Attendance, redisDB *redis.Client) *Controller {
	return &Controller{attendance: attendance, redisDB: redisDB}
}

func (ac Controller) ClockIn(c *web.Context) error {
	var request attendance.ClockInRequest

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	if request.Image != nil && *request.Image != "" {
		path, err := service.SaveBase64Image(*request.Image, "attendance")
		if err != nil {
			return c.RespondError(web.NewRequestError(err, http.StatusBadRequest))
		}
		request.ImagePath = &path
	}

	response, err := ac.attendance.ClockIn(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   &response,
		"status": true,
	}, http.StatusOK)
}

func (ac Controller) ClockOut(c *web.Context) error {
	response, err := ac.attendance.ClockOut(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (ac Controller) GetHistory(c *web.Context) error {
	now := time.Now()
	filter := attendance.HistoryFilter{
		Month: int(now.Month()),
		Year:  now.Year(),
	}

	if month, ok := c.GetQueryFunc(reflect.Int, "month").(*int); ok && month != nil {
		filter.Month = *month
	}
	if year, ok := c.GetQueryFunc(reflect.Int, "year").(*int); ok && year != nil {
		filter.Year = *year
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, err := ac.attendance.GetHistory(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   list,
		"status": true,
	}, http.StatusOK)
}

// GetStats serves the admin dashboard counters. The counters are cached in
// redis for a minute to keep the dashboard polling off the database.
func (ac Controller) GetStats(c *web.Context) error {
	cacheKey := "attendance:stats:" + time.Now().Format("2006-01-02")

	if ac.redisDB != nil {
		if cached, err := ac.redisDB.Get(c.Ctx, cacheKey).Result(); err == nil {
			var stats attendance.StatsResponse
			if err = json.Unmarshal([]byte(cached), &stats); err == nil {
				return c.Respond(map[string]interface{}{
					"data":   stats,
					"status": true,
				}, http.StatusOK)
			}
		}
	}

	stats, err := ac.attendance.GetStats(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	if ac.redisDB != nil {
		if raw, err := json.Marshal(stats); err == nil {
			ac.redisDB.Set(c.Ctx, cacheKey, raw, statsCacheTTL)
		}
	}

	return c.Respond(map[string]interface{}{
		"data":   stats,
		"status": true,
	}, http.StatusOK)
}

// ExportMonthlyReport builds an xlsx workbook of everyone's attendance for
// the month and serves it as a download.
func (ac Controller) ExportMonthlyReport(c *web.Context) error {
	now := time.Now()
	filter := attendance.ReportFilter{
		Month: int(now.Month()),
		Year:  now.Year(),
	}

	if month, ok := c.GetQueryFunc(reflect.Int, "month").(*int); ok && month != nil {
		filter.Month = *month
	}
	if year, ok := c.GetQueryFunc(reflect.Int, "year").(*int); ok && year != nil {
		filter.Year = *year
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	rows, err := ac.attendance.GetMonthlyReport(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	entries := make([]service.AttendanceEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, service.AttendanceEntry{
			UserName:    row.UserName,
			WorkDay:     row.WorkDay,
			ClockIn:     row.ClockIn,
			ClockOut:    row.ClockOut,
			Punctuality: row.Punctuality,
			TotalHours:  row.TotalHours,
		})
	}

	fileName, err := service.BuildAttendanceReport(entries, filter.Year, filter.Month)
	if err != nil {
		return c.RespondError(err)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.FileAttachment(fileName, "attendance.xlsx")

	return nil
}
