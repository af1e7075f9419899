//go:build unit || e2e

package builder

import (
	"time"

	domuser "flexin/internal/domain/user"
	reqdto "flexin/internal/handler/dto/request"
	"flexin/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Name         string
	Email        string
	Password     string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:     "Taro Yamada",
		Email:    "taro@example.com",
		Password: "password123",
		// bcrypt of "password123"; entity tests never verify it
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuvwxyz0123456789abcdefghijklmnop",
		CreatedAt:    time.Now(),
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *UserBuilder) BuildDomain() (*domuser.User, error) {
	name, err := domuser.NewName(b.Name)
	if err != nil {
		return nil, err
	}
	email, err := domuser.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	if _, err := domuser.NewPassword(b.Password); err != nil {
		return nil, err
	}
	return domuser.NewUser(name, email, b.PasswordHash), nil
}

func (b *UserBuilder) BuildRegisterRequestDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:     b.Name,
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:        uuid.New(),
		Name:      b.Name,
		Email:     b.Email,
		IsAdmin:   b.IsAdmin,
		CreatedAt: b.CreatedAt,
	}
}

func (b *UserBuilder) BuildAuthorizedView() *queries.AuthorizedUserView {
	role := domuser.RoleForAdmin(b.IsAdmin)
	return &queries.AuthorizedUserView{
		ID:       uuid.New(),
		Name:     b.Name,
		Email:    b.Email,
		Role:     role.String(),
		Verified: true,
	}
}

// Fluent builder methods
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.Password = password
	return b
}

func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.IsAdmin = true
	return b
}
