package response

import (
	"time"

	"flexin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	IsAdmin        bool       `json:"isAdmin"`
	DepartmentID   *uuid.UUID `json:"departmentId,omitempty"`
	DepartmentName *string    `json:"departmentName,omitempty"`
	AvatarURL      *string    `json:"avatarUrl,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func FromUserView(rm *queries.UserView) *UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromUserViews(rms []*queries.UserView) []*UserResponse {
	resp := make([]*UserResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromUserView(rm)
	}
	return resp
}
