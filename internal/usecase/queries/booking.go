package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type BookingQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	ListPendingApproval(ctx context.Context) ([]*BookingView, error)
}

type BookingViewRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	ListActiveByDay(ctx context.Context, day time.Time) ([]*BookingView, error)
	ListPendingApproval(ctx context.Context) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	return q.repo.ListByUser(ctx, userID)
}

func (q *bookingQueriesImpl) ListPendingApproval(ctx context.Context) ([]*BookingView, error) {
	return q.repo.ListPendingApproval(ctx)
}
