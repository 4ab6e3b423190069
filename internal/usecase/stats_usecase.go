package usecase

import (
	"context"
	"mixto_gestao/internal/domain/entities"
	"mixto_gestao/internal/domain/stats"
)

type IStatsUseCase interface {
	Dashboard(ctx context.Context) entities.DashboardStats
}

type StatsUseCase struct {
	ws *Workspace
}

var _ IStatsUseCase = (*StatsUseCase)(nil)

func NewStatsUseCase(ws *Workspace) *StatsUseCase {
	return &StatsUseCase{ws: ws}
}

func (u *StatsUseCase) Dashboard(_ context.Context) entities.DashboardStats {
	d := u.ws.Snapshot()
	return stats.Compute(d.Clients, d.Budgets)
}
