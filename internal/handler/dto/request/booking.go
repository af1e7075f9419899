package request

import (
	"flexin/internal/domain/booking"
)

type CreateBookingRequest struct {
	Date string `json:"date" binding:"required"`
}

func (r CreateBookingRequest) ToDay() (booking.Day, error) {
	return booking.ParseDay(r.Date)
}
