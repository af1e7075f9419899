package repository

import (
	"context"
	"errors"
	"time"

	"flexin/internal/domain/user"
	"flexin/internal/infra"
	"flexin/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	const q = `
		INSERT INTO users (id, name, email, password_hash, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, q, u.ID(), u.Name().Value(), u.Email().Value(), u.PasswordHash(), u.Role().IsAdmin()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*user.User, error) {
	const q = `
		SELECT id, name, email, password_hash, is_admin, department_id, avatar_url, email_verified_at, created_at, updated_at
		FROM users
		WHERE id = $1`

	return scanUser(tx.QueryRow(ctx, q, id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, tx db.DBTX, email string) (*user.User, error) {
	const q = `
		SELECT id, name, email, password_hash, is_admin, department_id, avatar_url, email_verified_at, created_at, updated_at
		FROM users
		WHERE email = $1`

	return scanUser(tx.QueryRow(ctx, q, email))
}

func (r *UserRepository) SetEmailVerified(ctx context.Context, tx db.DBTX, id uuid.UUID, at time.Time) error {
	tag, err := tx.Exec(ctx, `UPDATE users SET email_verified_at = $2, updated_at = now() WHERE id = $1`, id, at)
	if err != nil {
		return infra.WrapRepoErr("failed to mark email verified", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "user not found")
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, tx db.DBTX, id uuid.UUID, passwordHash string) error {
	tag, err := tx.Exec(ctx, `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`, id, passwordHash)
	if err != nil {
		return infra.WrapRepoErr("failed to update password", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "user not found")
	}
	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, tx db.DBTX, id uuid.UUID, name string, departmentID *uuid.UUID, avatarURL *string) error {
	const q = `
		UPDATE users
		SET name = $2, department_id = $3, avatar_url = $4, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, q, id, name, departmentID, avatarURL)
	if err != nil {
		return infra.WrapRepoErr("failed to update profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "user not found")
	}
	return nil
}

// Delete is the administrative escape hatch, not part of the normal flow.
func (r *UserRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "user not found")
	}
	return nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		id              uuid.UUID
		nameStr         string
		emailStr        string
		passwordHash    *string
		isAdmin         bool
		departmentID    *uuid.UUID
		avatarURL       *string
		emailVerifiedAt *time.Time
		createdAt       time.Time
		updatedAt       time.Time
	)
	if err := row.Scan(&id, &nameStr, &emailStr, &passwordHash, &isAdmin, &departmentID, &avatarURL, &emailVerifiedAt, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "user not found")
		}
		return nil, infra.WrapRepoErr("failed to scan user", err)
	}

	name, err := user.NewName(nameStr)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid user name in store", err)
	}
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid user email in store", err)
	}

	hash := ""
	if passwordHash != nil {
		hash = *passwordHash
	}

	return user.ReconstructUser(
		id, name, email, hash, user.RoleForAdmin(isAdmin),
		departmentID, avatarURL, emailVerifiedAt, createdAt, updatedAt,
	), nil
}
