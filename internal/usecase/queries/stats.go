package queries

import (
	"context"

	"github.com/google/uuid"
)

type StatsQueries interface {
	GetUserStats(ctx context.Context, userID uuid.UUID) (*UserStatsView, error)
}

type StatsViewRepo interface {
	UserStats(ctx context.Context, userID uuid.UUID) (*UserStatsView, error)
}

type statsQueriesImpl struct {
	repo StatsViewRepo
}

func NewStatsQueries(repo StatsViewRepo) StatsQueries {
	return &statsQueriesImpl{repo: repo}
}

func (q *statsQueriesImpl) GetUserStats(ctx context.Context, userID uuid.UUID) (*UserStatsView, error) {
	return q.repo.UserStats(ctx, userID)
}
