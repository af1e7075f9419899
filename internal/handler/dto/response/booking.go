package response

import (
	"time"

	"flexin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	UserName      string    `json:"userName"`
	Date          string    `json:"date"`
	Status        string    `json:"status"`
	NeedsApproval bool      `json:"needsApproval"`
	CreatedAt     time.Time `json:"createdAt"`
}

type DayCapacityResponse struct {
	Date      string             `json:"date"`
	Bookings  []*BookingResponse `json:"bookings"`
	Capacity  int                `json:"capacity"`
	Available int                `json:"available"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromBookingViews(rms []*queries.BookingView) []*BookingResponse {
	resp := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromBookingView(rm)
	}
	return resp
}

func FromDayCapacityView(rm *queries.DayCapacityView) *DayCapacityResponse {
	return &DayCapacityResponse{
		Date:      rm.Date,
		Bookings:  FromBookingViews(rm.Bookings),
		Capacity:  rm.Capacity,
		Available: rm.Available,
	}
}
