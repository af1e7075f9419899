package queries

import (
	"context"

	"github.com/google/uuid"
)

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	List(ctx context.Context) ([]*UserView, error)
	GetAuthorized(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type UserViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	List(ctx context.Context) ([]*UserView, error)
	FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	repo UserViewRepo
}

func NewUserQueries(repo UserViewRepo) UserQueries {
	return &userQueriesImpl{repo: repo}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*UserView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *userQueriesImpl) List(ctx context.Context) ([]*UserView, error) {
	return q.repo.List(ctx)
}

func (q *userQueriesImpl) GetAuthorized(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error) {
	return q.repo.FindAuthorizedByID(ctx, id)
}
