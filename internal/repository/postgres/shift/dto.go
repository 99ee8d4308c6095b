package shift

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
}

type GetListResponse struct {
	ID           int     `json:"id"`
	Name         *string `json:"name"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	BreakMinutes *int    `json:"break_minutes"`
	Color        *string `json:"color"`
	WorkHours    float64 `json:"work_hours"`
	Overnight    bool    `json:"overnight"`
}

type GetDetailByIdResponse struct {
	ID           int     `json:"id"`
	Name         *string `json:"name"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	BreakMinutes *int    `json:"break_minutes"`
	Color        *string `json:"color"`
	WorkHours    float64 `json:"work_hours"`
	Overnight    bool    `json:"overnight"`
}

type CreateRequest struct {
	Name         *string `json:"name" form:"name"`
	StartTime    *string `json:"start_time" form:"start_time"`
	EndTime      *string `json:"end_time" form:"end_time"`
	BreakMinutes *int    `json:"break_minutes" form:"break_minutes"`
	Color        *string `json:"color" form:"color"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:work_shifts"`

	ID           int       `json:"id" bun:"-"`
	Name         *string   `json:"name" bun:"name"`
	StartTime    *string   `json:"start_time" bun:"start_time"`
	EndTime      *string   `json:"end_time" bun:"end_time"`
	BreakMinutes *int      `json:"break_minutes" bun:"break_minutes"`
	Color        *string   `json:"color" bun:"color"`
	WorkHours    float64   `json:"work_hours" bun:"-"`
	Overnight    bool      `json:"overnight" bun:"-"`
	CreatedAt    time.Time `json:"-" bun:"created_at"`
	CreatedBy    int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID           int     `json:"id" form:"id"`
	Name         *string `json:"name" form:"name"`
	StartTime    *string `json:"start_time" form:"start_time"`
	EndTime      *string `json:"end_time" form:"end_time"`
	BreakMinutes *int    `json:"break_minutes" form:"break_minutes"`
	Color        *string `json:"color" form:"color"`
}
