package leave

import (
	"context"

	"hrm/backend/internal/repository/postgres/leave"
)

type Leave interface {
	GetSummary(ctx context.Context) ([]leave.SummaryResponse, error)
	GetHistory(ctx context.Context, filter leave.HistoryFilter) ([]leave.HistoryResponse, error)
	Create(ctx context.Context, request leave.CreateRequest) (leave.CreateResponse, error)
	Cancel(ctx context.Context, id int) error

	GetAdminList(ctx context.Context, filter leave.AdminListFilter) ([]leave.AdminListResponse, int, error)
	Decide(ctx context.Context, request leave.DecideRequest) error
}
