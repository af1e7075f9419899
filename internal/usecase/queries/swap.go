package queries

import (
	"context"

	"github.com/google/uuid"
)

type SwapQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SwapRequestView, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*SwapRequestView, error)
	ListPendingForTarget(ctx context.Context, userID uuid.UUID) ([]*SwapRequestView, error)
}

type SwapViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SwapRequestView, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*SwapRequestView, error)
	ListPendingForTarget(ctx context.Context, userID uuid.UUID) ([]*SwapRequestView, error)
}

type swapQueriesImpl struct {
	repo SwapViewRepo
}

func NewSwapQueries(repo SwapViewRepo) SwapQueries {
	return &swapQueriesImpl{repo: repo}
}

func (q *swapQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SwapRequestView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *swapQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID) ([]*SwapRequestView, error) {
	return q.repo.ListForUser(ctx, userID)
}

func (q *swapQueriesImpl) ListPendingForTarget(ctx context.Context, userID uuid.UUID) ([]*SwapRequestView, error) {
	return q.repo.ListPendingForTarget(ctx, userID)
}
