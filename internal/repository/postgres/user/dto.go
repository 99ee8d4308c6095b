package user

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit   *int
	Offset  *int
	Page    *int
	Search  *string
	Deleted *bool
}

type SignInRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" form:"refresh_token"`
}

type GetListResponse struct {
	ID           int        `json:"id"`
	Username     *string    `json:"username"`
	Email        *string    `json:"email"`
	FullName     *string    `json:"full_name"`
	Role         *string    `json:"role"`
	Position     *string    `json:"position"`
	ProfileImage *string    `json:"profile_image"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

type GetDetailByIdResponse struct {
	ID           int     `json:"id"`
	Username     *string `json:"username"`
	Email        *string `json:"email"`
	FullName     *string `json:"full_name"`
	Role         *string `json:"role"`
	Position     *string `json:"position"`
	ProfileImage *string `json:"profile_image"`
}

type CreateRequest struct {
	Username *string `json:"username" form:"username"`
	Email    *string `json:"email" form:"email"`
	FullName *string `json:"full_name" form:"full_name"`
	Password *string `json:"password" form:"password"`
	Role     *string `json:"role" form:"role"`
	Position *string `json:"position" form:"position"`

	// ProfileImage is the stored path of the uploaded file, set by the
	// controller after saving the multipart part.
	ProfileImage *string `json:"-" form:"-"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:users"`

	ID           int       `json:"id" bun:"-"`
	Username     *string   `json:"username" bun:"username"`
	Email        *string   `json:"email" bun:"email"`
	FullName     *string   `json:"full_name" bun:"full_name"`
	Password     *string   `json:"-" bun:"password"`
	Role         *string   `json:"role" bun:"role"`
	Position     *string   `json:"position" bun:"position"`
	ProfileImage *string   `json:"profile_image" bun:"profile_image"`
	CreatedAt    time.Time `json:"-" bun:"created_at"`
	CreatedBy    int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID           int     `json:"id" form:"id"`
	Username     *string `json:"username" form:"username"`
	Email        *string `json:"email" form:"email"`
	FullName     *string `json:"full_name" form:"full_name"`
	Password     *string `json:"password" form:"password"`
	Role         *string `json:"role" form:"role"`
	Position     *string `json:"position" form:"position"`
	ProfileImage *string `json:"-" form:"-"`
}

// BadgeRow feeds the QR badge sheet.
type BadgeRow struct {
	ID       int
	Username string
	FullName string
	Position string
}

// ExportRow feeds the employee workbook export.
type ExportRow struct {
	ID       int
	Username string
	Email    string
	FullName string
	Role     string
	Position string
}
