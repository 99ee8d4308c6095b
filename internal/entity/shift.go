package entity

import (
	"github.com/uptrace/bun"
)

type WorkShift struct {
	bun.BaseModel `bun:"table:work_shifts"`

	BasicEntity
	Name         *string `json:"name" bun:"name"`
	StartTime    *string `json:"start_time" bun:"start_time"`
	EndTime      *string `json:"end_time" bun:"end_time"`
	BreakMinutes *int    `json:"break_minutes" bun:"break_minutes"`
	Color        *string `json:"color" bun:"color"`
}
