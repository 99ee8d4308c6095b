package entity

import (
	"time"

	"github.com/uptrace/bun"
)

type Attendance struct {
	bun.BaseModel `bun:"table:attendance"`

	BasicEntity
	UserID       *int       `json:"user_id" bun:"user_id"`
	WorkDay      string     `json:"work_day" bun:"work_day"`
	ClockIn      *time.Time `json:"clock_in" bun:"clock_in"`
	ClockOut     *time.Time `json:"clock_out" bun:"clock_out"`
	Punctuality  *string    `json:"punctuality" bun:"punctuality"`
	CheckInImage *string    `json:"check_in_image" bun:"check_in_image"`
}
