package auth

import (
	"context"

	"hrm/backend/internal/entity"
)

type User interface {
	GetByLogin(ctx context.Context, login string) (entity.User, error)
}
