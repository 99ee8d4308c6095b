package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Leave statuses. Only approved spans participate in the schedule merge.
const (
	LeavePending   = "pending"
	LeaveApproved  = "approved"
	LeaveRejected  = "rejected"
	LeaveCancelled = "cancelled"
)

type Leave struct {
	bun.BaseModel `bun:"table:leaves"`

	BasicEntity
	UserID      *int       `json:"user_id" bun:"user_id"`
	LeaveTypeID *int       `json:"leave_type_id" bun:"leave_type_id"`
	StartDate   string     `json:"start_date" bun:"start_date"`
	EndDate     string     `json:"end_date" bun:"end_date"`
	DayCount    *float64   `json:"day_count" bun:"day_count"`
	Reason      *string    `json:"reason" bun:"reason"`
	Attachment  *string    `json:"attachment" bun:"attachment"`
	Status      *string    `json:"status" bun:"status"`
	DecidedBy   *int       `json:"decided_by" bun:"decided_by"`
	DecidedAt   *time.Time `json:"decided_at" bun:"decided_at"`
}

type LeaveType struct {
	bun.BaseModel `bun:"table:leave_types"`

	BasicEntity
	Name        *string  `json:"name" bun:"name"`
	AnnualQuota *float64 `json:"annual_quota" bun:"annual_quota"`
}

type LeaveBalance struct {
	bun.BaseModel `bun:"table:leave_balance"`

	BasicEntity
	UserID      *int     `json:"user_id" bun:"user_id"`
	LeaveTypeID *int     `json:"leave_type_id" bun:"leave_type_id"`
	Year        int      `json:"year" bun:"year"`
	Quota       *float64 `json:"quota" bun:"quota"`
	UsedDays    *float64 `json:"used_days" bun:"used_days"`
}
