package request

import (
	"strings"

	"flexin/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateSwapRequest struct {
	TargetUserID uuid.UUID `json:"target_user_id" binding:"required"`
	Date         string    `json:"date" binding:"required"`
	Message      *string   `json:"message,omitempty"`
}

func (r CreateSwapRequest) ToDay() (booking.Day, error) {
	return booking.ParseDay(r.Date)
}

func (r CreateSwapRequest) GetMessage() *string {
	if r.Message == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Message)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
