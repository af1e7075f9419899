package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Admin flag and department change only through privileged
// actions; users are never deleted in the normal flow.
type User struct {
	id              uuid.UUID
	name            Name
	email           Email
	passwordHash    string
	role            Role
	departmentID    *uuid.UUID
	avatarURL       *string
	emailVerifiedAt *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func NewUser(name Name, email Email, passwordHash string) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         RoleMember,
	}
}

func ReconstructUser(
	id uuid.UUID,
	name Name,
	email Email,
	passwordHash string,
	role Role,
	departmentID *uuid.UUID,
	avatarURL *string,
	emailVerifiedAt *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:              id,
		name:            name,
		email:           email,
		passwordHash:    passwordHash,
		role:            role,
		departmentID:    departmentID,
		avatarURL:       avatarURL,
		emailVerifiedAt: emailVerifiedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (u *User) ID() uuid.UUID               { return u.id }
func (u *User) Name() Name                  { return u.name }
func (u *User) Email() Email                { return u.email }
func (u *User) PasswordHash() string        { return u.passwordHash }
func (u *User) Role() Role                  { return u.role }
func (u *User) DepartmentID() *uuid.UUID    { return u.departmentID }
func (u *User) AvatarURL() *string          { return u.avatarURL }
func (u *User) EmailVerifiedAt() *time.Time { return u.emailVerifiedAt }
func (u *User) CreatedAt() time.Time        { return u.createdAt }
func (u *User) UpdatedAt() time.Time        { return u.updatedAt }

func (u *User) IsVerified() bool {
	return u.emailVerifiedAt != nil
}
