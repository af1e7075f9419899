package response

import (
	"flexin/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	UserID uuid.UUID `json:"userId"`
	Role   string    `json:"role"`
}

type MeResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Verified bool      `json:"verified"`
}

func FromAuthorizedUserView(rm *queries.AuthorizedUserView) *MeResponse {
	return &MeResponse{
		ID:       rm.ID,
		Name:     rm.Name,
		Email:    rm.Email,
		Role:     rm.Role,
		Verified: rm.Verified,
	}
}
