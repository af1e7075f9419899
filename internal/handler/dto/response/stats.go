package response

import (
	"flexin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserStatsResponse struct {
	UserID            uuid.UUID `json:"userId"`
	TotalBookings     int       `json:"totalBookings"`
	ConfirmedBookings int       `json:"confirmedBookings"`
	PendingBookings   int       `json:"pendingBookings"`
	CancelledBookings int       `json:"cancelledBookings"`
	SwapsRequested    int       `json:"swapsRequested"`
	SwapsReceived     int       `json:"swapsReceived"`
	SwapsApproved     int       `json:"swapsApproved"`
	SwapsRejected     int       `json:"swapsRejected"`
}

func FromUserStatsView(rm *queries.UserStatsView) *UserStatsResponse {
	var resp UserStatsResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
