package entity

import (
	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users"`

	BasicEntity
	Username     *string `json:"username" bun:"username"`
	Email        *string `json:"email" bun:"email"`
	FullName     *string `json:"full_name" bun:"full_name"`
	Password     *string `json:"password" bun:"password"`
	Role         *string `json:"role" bun:"role"`
	Position     *string `json:"position" bun:"position"`
	ProfileImage *string `json:"profile_image" bun:"profile_image"`
}
