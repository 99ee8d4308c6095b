package attendance

import (
	"encoding/json"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/uptrace/bun"
)

type ClockInRequest struct {
	// Image is the webcam capture as a base64 payload (optionally a data
	// URL). The controller stores it and passes the path along.
	Image *string `json:"image" form:"image"`

	ImagePath *string `json:"-" form:"-"`
}

type ClockInResponse struct {
	bun.BaseModel `bun:"table:attendance"`

	ID           int       `json:"id" bun:"-"`
	UserID       *int      `json:"user_id" bun:"user_id"`
	WorkDay      string    `json:"work_day" bun:"work_day"`
	ClockIn      time.Time `json:"clock_in" bun:"clock_in"`
	Punctuality  string    `json:"punctuality" bun:"punctuality"`
	CheckInImage *string   `json:"check_in_image,omitempty" bun:"check_in_image"`
	CreatedAt    time.Time `json:"-" bun:"created_at"`
	CreatedBy    int       `json:"-" bun:"created_by"`
}

func (r *ClockInResponse) MarshalJSON() ([]byte, error) {
	type Alias ClockInResponse
	aux := &struct {
		ClockIn string `json:"clock_in"`
		*Alias
	}{
		ClockIn: r.ClockIn.Format("15:04"),
		Alias:   (*Alias)(r),
	}

	return json.Marshal(aux)
}

type ClockOutResponse struct {
	ID       int       `json:"id"`
	WorkDay  string    `json:"work_day"`
	ClockOut time.Time `json:"clock_out"`
}

type HistoryFilter struct {
	Month int
	Year  int
}

type HistoryResponse struct {
	ID          int        `json:"id"`
	WorkDay     date.Date  `json:"work_day"`
	ClockIn     *time.Time `json:"clock_in"`
	ClockOut    *time.Time `json:"clock_out,omitempty"`
	Punctuality *string    `json:"punctuality"`
	TotalHours  string     `json:"total_hours"`
}

func (r *HistoryResponse) MarshalJSON() ([]byte, error) {
	type Alias HistoryResponse
	aux := &struct {
		ClockIn  string `json:"clock_in,omitempty"`
		ClockOut string `json:"clock_out,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(r),
	}

	if r.ClockIn != nil {
		aux.ClockIn = r.ClockIn.Format("15:04")
	}
	if r.ClockOut != nil {
		aux.ClockOut = r.ClockOut.Format("15:04")
	}

	return json.Marshal(aux)
}

type StatsResponse struct {
	TotalEmployees *int             `json:"total_employees"`
	PresentToday   *int             `json:"present_today"`
	OnTimeToday    *int             `json:"on_time_today"`
	LateToday      *int             `json:"late_today"`
	OnLeaveToday   *int             `json:"on_leave_today"`
	PendingLeaves  *int             `json:"pending_leaves"`
	RecentActivity []RecentActivity `json:"recent_activity"`
}

type RecentActivity struct {
	UserID      *int       `json:"user_id"`
	UserName    *string    `json:"user_name"`
	WorkDay     string     `json:"work_day"`
	ClockIn     *time.Time `json:"clock_in"`
	Punctuality *string    `json:"punctuality"`
}

type ReportFilter struct {
	Month int
	Year  int
}

// ReportRow feeds the monthly attendance workbook export.
type ReportRow struct {
	UserName    string
	WorkDay     string
	ClockIn     string
	ClockOut    string
	Punctuality string
	TotalHours  string
}
