package request

import (
	"github.com/google/uuid"
)

type UpdateProfileRequest struct {
	Name         string     `json:"name" binding:"required"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	AvatarURL    *string    `json:"avatar_url,omitempty"`
}
