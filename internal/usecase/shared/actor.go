package shared

import (
	"flexin/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller a command acts on behalf of.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}
