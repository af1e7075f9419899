package readstore

import (
	"context"
	"errors"

	"flexin/internal/infra"
	"flexin/internal/infra/db"
	"flexin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const userViewQuery = `
	SELECT u.id, u.name, u.email, u.is_admin, u.department_id, d.name, u.avatar_url, u.created_at
	FROM users u
	LEFT JOIN departments d ON d.id = u.department_id`

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row := s.db.QueryRow(ctx, userViewQuery+` WHERE u.id = $1`, id)

	var v queries.UserView
	err := row.Scan(&v.ID, &v.Name, &v.Email, &v.IsAdmin, &v.DepartmentID, &v.DepartmentName, &v.AvatarURL, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "user not found")
		}
		return nil, infra.WrapRepoErr("failed to find user view", err)
	}
	return &v, nil
}

func (s *UserReadStore) List(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := s.db.Query(ctx, userViewQuery+` ORDER BY u.name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	views := make([]*queries.UserView, 0)
	for rows.Next() {
		var v queries.UserView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.IsAdmin, &v.DepartmentID, &v.DepartmentName, &v.AvatarURL, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user view", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user views", err)
	}
	return views, nil
}

func (s *UserReadStore) FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const q = `
		SELECT id, name, email,
		       CASE WHEN is_admin THEN 'admin' ELSE 'member' END,
		       email_verified_at IS NOT NULL
		FROM users
		WHERE id = $1`

	var v queries.AuthorizedUserView
	err := s.db.QueryRow(ctx, q, id).Scan(&v.ID, &v.Name, &v.Email, &v.Role, &v.Verified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "user not found")
		}
		return nil, infra.WrapRepoErr("failed to find authorized user", err)
	}
	return &v, nil
}
