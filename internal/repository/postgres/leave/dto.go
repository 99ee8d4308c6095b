package leave

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/uptrace/bun"
)

// Policy holds the leave rules that are business configuration, not code.
type Policy struct {
	// HalfDayMaxHours: a single-day request covering this many hours or
	// fewer counts as half a day.
	HalfDayMaxHours int
}

type SummaryResponse struct {
	LeaveTypeID int     `json:"leave_type_id"`
	LeaveType   string  `json:"leave_type"`
	Quota       float64 `json:"quota"`
	UsedDays    float64 `json:"used_days"`
	Remaining   float64 `json:"remaining"`
}

type HistoryFilter struct {
	Year   *int
	Status *string
}

type HistoryResponse struct {
	ID         int        `json:"id"`
	LeaveType  *string    `json:"leave_type"`
	StartDate  date.Date  `json:"start_date"`
	EndDate    date.Date  `json:"end_date"`
	DayCount   *float64   `json:"day_count"`
	Reason     *string    `json:"reason"`
	Attachment *string    `json:"attachment,omitempty"`
	Status     *string    `json:"status"`
	DecidedAt  *time.Time `json:"decided_at,omitempty"`
}

type CreateRequest struct {
	LeaveTypeID *int     `json:"leave_type_id" form:"leave_type_id"`
	StartDate   *string  `json:"start_date" form:"start_date"`
	EndDate     *string  `json:"end_date" form:"end_date"`
	Reason      *string  `json:"reason" form:"reason"`
	Hours       *float64 `json:"hours" form:"hours"`

	// Attachment is the stored path of the uploaded document, set by the
	// controller after saving the multipart file.
	Attachment *string `json:"-" form:"-"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:leaves"`

	ID          int       `json:"id" bun:"-"`
	UserID      *int      `json:"user_id" bun:"user_id"`
	LeaveTypeID *int      `json:"leave_type_id" bun:"leave_type_id"`
	StartDate   string    `json:"start_date" bun:"start_date"`
	EndDate     string    `json:"end_date" bun:"end_date"`
	DayCount    float64   `json:"day_count" bun:"day_count"`
	Reason      *string   `json:"reason" bun:"reason"`
	Attachment  *string   `json:"attachment,omitempty" bun:"attachment"`
	Status      string    `json:"status" bun:"status"`
	CreatedAt   time.Time `json:"-" bun:"created_at"`
	CreatedBy   int       `json:"-" bun:"created_by"`
}

type AdminListFilter struct {
	Status *string
	Page   *int
	Limit  *int
	Offset *int
}

type AdminListResponse struct {
	ID        int       `json:"id"`
	UserID    *int      `json:"user_id"`
	UserName  *string   `json:"user_name"`
	LeaveType *string   `json:"leave_type"`
	StartDate date.Date `json:"start_date"`
	EndDate   date.Date `json:"end_date"`
	DayCount  *float64  `json:"day_count"`
	Reason    *string   `json:"reason"`
	Status    *string   `json:"status"`
}

type DecideRequest struct {
	ID     int     `json:"id" form:"id"`
	Status *string `json:"status" form:"status"`
}
